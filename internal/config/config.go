package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	ProjectID string `env:"PROJECTID"`
	Region    string `env:"REGION" envDefault:"us-central1"`
	LogLevel  string `env:"LOGLEVEL" envDefault:"info"`
	LogFile   string `env:"FACTCHECK_LOG_FILE"`

	// APIKey is the provider credential. APIKeySecret names a Secret Manager
	// secret holding it, consulted only when APIKey is empty.
	APIKey       string `env:"GEMINI_API_KEY"`
	APIKeySecret string `env:"GEMINI_API_KEY_SECRET"`
	VertexModel  string `env:"VERTEXMODEL" envDefault:"gemini-2.5-flash"`
}

type fallbackKey struct {
	APIKey string `env:"API_KEY"`
}

// New reads the environment. A value that does not parse is an error rather
// than a silent zero.
func New() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.APIKey == "" {
		var fb fallbackKey
		if err := env.Parse(&fb); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		cfg.APIKey = fb.APIKey
	}
	return cfg, nil
}
