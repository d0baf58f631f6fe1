package main

import "github.com/kelseyhightower/envconfig"

// envPrefix scopes the environment variables read by loadEnv: ITEMSETS_MIN_SUPPORT, ...
const envPrefix = "itemsets"

// envDefaults holds flag defaults overridable through the environment.
type envDefaults struct {
	MinSupport   float64 `envconfig:"MIN_SUPPORT" default:"0.5"`
	MaxLen       int     `envconfig:"MAX_LEN" default:"0"`
	Workers      int     `envconfig:"WORKERS" default:"1"`
	LogLevel     string  `envconfig:"LOG_LEVEL" default:"info"`
	OutputFormat string  `envconfig:"OUTPUT_FORMAT" default:"json"`
}

// loadEnv reads envDefaults. On a malformed variable the built-in defaults
// are returned along with the error.
func loadEnv() (envDefaults, error) {
	var env envDefaults
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return envDefaults{MinSupport: 0.5, Workers: 1, LogLevel: "info", OutputFormat: "json"}, err
	}
	return env, nil
}
