// Package config manages environment configuration.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), maps them into structured Go types, and validates that
// required values are present so the application fails fast on bad or
// missing configuration instead of limping along and failing on the first
// request.
//
// Env vars use the WORKFORCE_ prefix. The first underscore after the prefix
// separates the section from the key, so:
//
//	WORKFORCE_DATABASE_HOST      -> database.host      -> Config.Database.Host
//	WORKFORCE_SERVER_READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: loads a local `.env` file into the process env
	// before any variable is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"required"` tags are enforced by go-playground/validator at
// load time.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and to switch behavior (e.g. SQL tracing in local).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// Host, port, user, password, and name are hard requirements: a missing
// value aborts startup rather than being logged and ignored.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode"`

	// Pool tuning; zero values defer to pgxpool defaults.
	MaxConns        int `koanf:"max_conns"`
	MinConns        int `koanf:"min_conns"`
	ConnMaxLifetime int `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int `koanf:"conn_max_idle_time"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output format: "json" for log pipelines,
	// "console" for human-friendly local output.
	Format string `koanf:"format"`
}

// envPrefix is the prefix shared by all recognized environment variables.
const envPrefix = "WORKFORCE_"

// Load reads configuration from the environment, unmarshals it into Config,
// applies defaults, and validates it.
//
// Any missing required value is returned as an error; callers are expected
// to treat that as fatal.
func Load() (*Config, error) {
	k := koanf.New(".")

	// The key-mapping func lowercases the var name, strips the prefix, and
	// turns the first underscore into the section delimiter:
	// WORKFORCE_DATABASE_SSL_MODE -> database.ssl_mode
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	// Env values are flat strings, so decoding needs two conversions the
	// default unmarshal does not perform: comma-separated values into
	// slices (cors_allowed_origins) and numeric strings into ints.
	cfg := &Config{}
	err = k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
			Result:           cfg,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills optional fields that were not provided.
func (c *Config) applyDefaults() {
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}
