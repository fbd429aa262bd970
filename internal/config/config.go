package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultContactEndpoint is the form relay the contact page posts to.
const DefaultContactEndpoint = "https://formcarry.com/s/E8jgj0OKJrh"

// Config holds all application configuration
type Config struct {
	Port            string
	ProjectsFile    string
	ContactEndpoint string
	ContactTimeout  time.Duration
	RevealStagger   time.Duration
	SearchDebounce  time.Duration
	TrackVisitors   bool
}

// Load reads configuration from the environment. Values from a .env file are
// already present when the binary imports godotenv/autoload.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		ProjectsFile:    os.Getenv("PROJECTS_FILE"),
		ContactEndpoint: getenv("CONTACT_ENDPOINT", DefaultContactEndpoint),
	}

	var err error
	if cfg.ContactTimeout, err = durationEnv("CONTACT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RevealStagger, err = durationEnv("REVEAL_STAGGER", 100*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.SearchDebounce, err = durationEnv("SEARCH_DEBOUNCE", 0); err != nil {
		return nil, err
	}
	if cfg.TrackVisitors, err = boolEnv("TRACK_VISITORS", true); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
