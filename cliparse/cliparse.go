package cliparse

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	StorePath string
	Verbose   bool
}

// DefaultBaseURL is used when neither the flag nor API_BASE_URL is set.
const DefaultBaseURL = "http://localhost:4000"

// FromEnv builds the starting configuration from a .env file (if one is
// present in the working directory) and environment variables. Command
// line flags bound by the CLI override these values afterwards.
func FromEnv() Config {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:   os.Getenv("API_BASE_URL"),
		StorePath: os.Getenv("CREDENTIAL_STORE"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Normalize validates the configuration and strips trailing slashes
// from the base URL so path joining is uniform everywhere.
func (cfg *Config) Normalize() error {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return errors.New("base URL required (use -b or API_BASE_URL env)")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("invalid base URL: " + cfg.BaseURL)
	}

	if cfg.StorePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			// No home directory: fall back to an in-memory store later.
			return nil
		}
		cfg.StorePath = filepath.Join(dir, "mucsu-vote", "credentials.db")
	}
	return nil
}
