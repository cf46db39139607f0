package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables
	// authentication (development only).
	ApiKey string `mapstructure:"api_key" default:""`
	// VerifyCacheSeconds is the time-to-live for cached family verify
	// reports. Zero disables caching.
	VerifyCacheSeconds int `mapstructure:"verify_cache_seconds" default:"300"`
}

// VerifyCacheTTL returns the verify report cache TTL as a duration.
func (c Config) VerifyCacheTTL() time.Duration {
	if c.VerifyCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.VerifyCacheSeconds) * time.Second
}
