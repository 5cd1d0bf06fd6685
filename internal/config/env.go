// Package config reads runtime settings from the environment. The game
// binaries use plain lookups; the API server parses a struct, see
// server.go.
package config

import "os"

// GetEnv returns the environment variable named by key, or fallback when
// the variable is unset. An empty value counts as set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
