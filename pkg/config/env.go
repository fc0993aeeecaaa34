package config

import (
	"os"
	"strconv"
)

// Environment variables read directly by the CLI, outside the App struct.
const (
	EnvRatesFile = "RATES_FILE"
	EnvNoColor   = "NO_COLOR"
	EnvJSON      = "DEFERRAL_JSON"
	EnvVerbose   = "DEFERRAL_VERBOSE"
)

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// IsEnvSet reports whether key holds a non-empty value. NO_COLOR follows
// this convention: any value disables colour.
func IsEnvSet(key string) bool {
	return GetEnv(key, "") != ""
}

// GetEnvAsBool parses key with strconv.ParseBool. Unset or unparsable
// values yield fallback.
func GetEnvAsBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return b
}
