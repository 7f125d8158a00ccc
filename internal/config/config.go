// Package config loads server settings from the environment
package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

// Config holds everything the server reads at startup
type Config struct {
	GRPCPort int `env:"STUMPY_GRPC_PORT" envDefault:"50051" validate:"min=1,max=65535"`
	// MetricsPort of zero disables the metrics listener
	MetricsPort int `env:"STUMPY_METRICS_PORT" envDefault:"9090" validate:"min=0,max=65535"`

	// RedisAddr empty keeps all state in memory
	RedisAddr     string `env:"STUMPY_REDIS_ADDR"`
	RedisPassword string `env:"STUMPY_REDIS_PASSWORD"`
	RedisDB       int    `env:"STUMPY_REDIS_DB" envDefault:"0" validate:"min=0"`

	LogLevel  string `env:"STUMPY_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"STUMPY_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`

	Profile    string `env:"STUMPY_PROFILE" envDefault:"default" validate:"required"`
	SwordLogic string `env:"STUMPY_SWORD_LOGIC" envDefault:"randomized" validate:"oneof=normal randomized swordless"`
	StartState string `env:"STUMPY_START_STATE" envDefault:"open" validate:"oneof=open standard"`

	// SnapshotTTL of zero keeps snapshots until deleted
	SnapshotTTL time.Duration `env:"STUMPY_SNAPSHOT_TTL" envDefault:"0s"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads an optional .env file, then the environment
func Load() (*Config, error) {
	// a missing .env file is normal outside development
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(errors.InvalidArgument(err.Error()), "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !stderrors.As(err, &fieldErrs) {
			return errors.Wrap(err, "failed to validate config")
		}
		for _, fe := range fieldErrs {
			vb.Field(fe.Field(), describe(fe))
		}
	}

	if c.SnapshotTTL < 0 {
		vb.InvalidField("SnapshotTTL", "cannot be negative")
	}

	return vb.Build()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}

// Settings returns the game-mode options a fresh profile starts with
func (c *Config) Settings() entities.Settings {
	return entities.Settings{
		Sword: entities.SwordLogic(c.SwordLogic),
		Start: entities.StartState(c.StartState),
	}
}

// SlogLevel maps LogLevel onto slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// UsesRedis reports whether state should be persisted to Redis
func (c *Config) UsesRedis() bool {
	return c.RedisAddr != ""
}
