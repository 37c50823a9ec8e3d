package config

import (
	"os"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	HTTPRequest  time.Duration // Timeout for a single platform or CI request
	Provisioning time.Duration // Deadline around a whole provisioning run, 0 disables it
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - KSCAFFOLD_HTTP_TIMEOUT (default: 30s)
//   - KSCAFFOLD_PROVISION_TIMEOUT (default: 10m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		HTTPRequest:  parseDuration("KSCAFFOLD_HTTP_TIMEOUT", 30*time.Second),
		Provisioning: parseDuration("KSCAFFOLD_PROVISION_TIMEOUT", 10*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
