// Package config loads runtime configuration for the userform CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: USERFORM_API_URL and USERFORM_REQUEST_TIMEOUT, with a
//     .env file in the working directory loaded when present.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the user API
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:5000",
//	  "request_timeout": "10s"
//	}
package config
