package remote

import (
	"os"
	"time"
)

// DefaultTimeout bounds every remote call. There are no automatic
// retries; on timeout the caller continues with local state.
const DefaultTimeout = 15 * time.Second

// Config holds the remote-service configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com".
	// Empty disables sync entirely.
	BaseURL string

	// Token is the x-auth-token value sent with every request.
	Token string

	// UserID identifies the learner for progress pulls.
	UserID string

	// Timeout is the per-request deadline.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sync disabled and the default timeout.
func DefaultConfig() Config {
	return Config{Timeout: DefaultTimeout}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("WORDTRAIL_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("WORDTRAIL_AUTH_TOKEN"); t != "" {
		cfg.Token = t
	}
	if id := os.Getenv("WORDTRAIL_USER_ID"); id != "" {
		cfg.UserID = id
	}
	if d := os.Getenv("WORDTRAIL_SYNC_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed > 0 {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Enabled reports whether a remote service is configured.
func (c Config) Enabled() bool {
	return c.BaseURL != ""
}
