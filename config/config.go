package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Cloudinary CloudinaryConfig
	Log        LogConfig
	Seed       SeedConfig
}

type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"5000"`
	Env          string        `env:"APP_ENV" envDefault:"development"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	// Request bodies carry rich-text blog content with inline images.
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES" envDefault:"52428800"`
	// RequireAdmin puts the admin bearer token in front of every mutating route.
	RequireAdmin bool `env:"REQUIRE_ADMIN_TOKEN" envDefault:"false"`
}

type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"mysql"` // mysql | postgres | sqlite
	DSN             string        `env:"DB_DSN,required"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET,required"`
	Expiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"siteadmin"`
}

type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
	Folder    string `env:"CLOUDINARY_FOLDER" envDefault:"siteadmin"`
}

// Enabled reports whether upload credentials are present.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// SeedConfig creates a first admin on boot when both fields are set.
type SeedConfig struct {
	AdminName     string `env:"SEED_ADMIN_NAME" envDefault:"Administrator"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
}

func (s SeedConfig) Enabled() bool {
	return s.AdminEmail != "" && s.AdminPassword != ""
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	switch cfg.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}
