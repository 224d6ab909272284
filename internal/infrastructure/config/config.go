package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"        validate:"required,numeric"`
	Env       string `env:"ENV,        default=development" validate:"oneof=development production test"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"        validate:"oneof=trace debug info warn warning error"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// UploadMaxBytes caps request bodies, CSV uploads included.
	UploadMaxBytes int64 `env:"UPLOAD_MAX_BYTES, default=52428800" validate:"gt=0"`

	Session  SessionConfig
	Auth     AuthConfig
	Branding BrandingConfig
	Report   ReportConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type SessionConfig struct {
	Secret  string        `env:"SESSION_SECRET"                  validate:"required,min=16"`
	TTL     time.Duration `env:"SESSION_TTL,     default=12h"    validate:"gt=0"`
	Backend string        `env:"SESSION_BACKEND, default=memory" validate:"oneof=memory redis"`
}

type AuthConfig struct {
	Backend  string `env:"AUTH_BACKEND, default=static" validate:"oneof=static mongo"`
	Username string `env:"AUTH_USERNAME"                validate:"required_if=Backend static"`
	Password string `env:"AUTH_PASSWORD"                validate:"required_if=Backend static"`
}

type BrandingConfig struct {
	LogoPath string `env:"BRANDING_LOGO_PATH"`
	Subtitle string `env:"BRANDING_SUBTITLE, default=Navigating the Vastness of Oceans and the Cosmos"`
	Tagline  string `env:"BRANDING_TAGLINE,  default=Uncover critical maritime and space anomalies with precision"`
}

type ReportConfig struct {
	ArchiveDir string `env:"REPORT_ARCHIVE_DIR"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shiptracker"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"             validate:"gt=0"`
}

// UsesMongo reports whether any component needs a MongoDB connection.
func (c *Config) UsesMongo() bool {
	return c.Auth.Backend == "mongo"
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.Session.Backend == "redis"
}

// Load reads an optional .env file, then configuration from environment
// variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom processes and validates configuration from l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load for process start-up: it panics on error.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadMongo reads only the MongoDB settings, for tools that need nothing
// else from the environment.
func LoadMongo(ctx context.Context) (*MongoConfig, error) {
	_ = godotenv.Load()
	var mc MongoConfig
	if err := envconfig.Process(ctx, &mc); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &mc, nil
}
