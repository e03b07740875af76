package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userform/internal/flagx"
	"github.com/dmitrijs2005/userform/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// RequestTimeout uses timex.Duration so it can be given as "10s" or as
// integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded. Fields missing from
// the file keep their current values.
//
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
