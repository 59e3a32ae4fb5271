// Package config holds client configuration parsed from the environment.
// Flags override env values at the CLI layer; main loads .env first via
// godotenv autoload.
package config

import (
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"
)

type Config struct {
	// APIBase is the backend base path including /api.
	APIBase string `env:"INKWELL_API" envDefault:"http://localhost:8000/api"`

	// HTTPTimeout bounds every gateway request. There is no retry: a timed
	// out request surfaces to the user and must be re-triggered.
	HTTPTimeout time.Duration `env:"INKWELL_HTTP_TIMEOUT" envDefault:"15s"`

	// DebugLog enables request logging to the given file when set.
	DebugLog string `env:"INKWELL_DEBUG_LOG"`
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIBase, validation.Required, is.RequestURI),
		validation.Field(&c.HTTPTimeout, validation.Required, validation.Min(time.Second)),
	)
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds the gateway logger. Output is discarded unless a debug log
// path is configured, so normal CLI output stays clean for scripting.
func (c Config) Logger() zerolog.Logger {
	var w io.Writer = io.Discard
	if c.DebugLog != "" {
		if f, err := os.OpenFile(c.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = f
		}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
