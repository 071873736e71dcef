package config

import (
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds runtime configuration. Values come from an optional YAML file,
// with environment variables taking precedence over both the file and the
// defaults.
type Config struct {
	Port        string   `yaml:"port"`
	DatabaseURL string   `yaml:"database_url"`
	CORSOrigins []string `yaml:"cors_origins"`

	// ViewCooldownSeconds is the window during which repeat views from the
	// same browser session are not re-counted.
	ViewCooldownSeconds int `yaml:"view_cooldown_seconds"`
}

func defaults() Config {
	return Config{
		Port:                "5050",
		ViewCooldownSeconds: 5,
		CORSOrigins: []string{
			"http://localhost:5173",
			"http://localhost:5174",
		},
	}
}

// Load reads the config file at path (missing file is fine) and applies env
// overrides: PORT, DATABASE_URL, VIEW_COOLDOWN_SECONDS.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		} else if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}
	if s := os.Getenv("VIEW_COOLDOWN_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			cfg.ViewCooldownSeconds = n
		}
	}

	return cfg, nil
}

// ViewCooldown returns the cool-down window as a duration.
func (c Config) ViewCooldown() time.Duration {
	return time.Duration(c.ViewCooldownSeconds) * time.Second
}
