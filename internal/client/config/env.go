package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envAPIBaseURL     = "USERFORM_API_URL"
	envRequestTimeout = "USERFORM_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; variables already set in
// the process environment win over it.
//
// USERFORM_REQUEST_TIMEOUT accepts a Go duration ("5s") or whole seconds.
// Panics on a malformed timeout.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(envAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}

	if v, ok := os.LookupEnv(envRequestTimeout); ok && v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", envRequestTimeout, err))
		}
		cfg.RequestTimeout = d
	}
}

func parseSeconds(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
