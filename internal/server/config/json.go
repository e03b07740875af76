package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userform/internal/flagx"
	"github.com/dmitrijs2005/userform/internal/timex"
)

// JsonConfig is the DTO read from the JSON configuration file. Durations
// use timex.Duration so they can be written as "5s" or as nanoseconds.
type JsonConfig struct {
	EndpointAddr    string         `json:"endpoint_addr"`
	Storage         string         `json:"storage"`
	DatabaseDSN     string         `json:"database_dsn"`
	MongoURI        string         `json:"mongo_uri"`
	MongoDatabase   string         `json:"mongo_database"`
	CORSOrigins     []string       `json:"cors_origins"`
	LogBackend      string         `json:"log_backend"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads configuration values from the JSON file named by -c or
// -config into config. Keys absent from the file leave the current values
// alone. Panics if the file cannot be read or parsed.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	overlay(&config.EndpointAddr, c.EndpointAddr)
	overlay(&config.Storage, c.Storage)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.MongoURI, c.MongoURI)
	overlay(&config.MongoDatabase, c.MongoDatabase)
	overlay(&config.LogBackend, c.LogBackend)

	if c.CORSOrigins != nil {
		config.CORSOrigins = c.CORSOrigins
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
