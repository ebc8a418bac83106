// Package config parses the environment into the process-wide settings object.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every setting the service reads. Loaded once at startup,
// never mutated afterwards.
type Config struct {
	Env         string `env:"ENVIRONMENT" env-default:"development"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	AppName     string `env:"APP_NAME" env-default:"BeCard API"`
	AppVersion  string `env:"APP_VERSION" env-default:"1.0.0"`
	Debug       bool   `env:"DEBUG" env-default:"false"`
	HTTPServer
	CORS
	Token
}

// HTTPServer holds the bind address and server timeouts.
type HTTPServer struct {
	Host        string        `env:"HOST" env-default:"0.0.0.0"`
	Port        int           `env:"PORT" env-default:"8000"`
	TimeoutHTTP time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// CORS holds the cross-origin policy. The default is permissive.
type CORS struct {
	Origins          string `env:"CORS_ORIGINS" env-default:"*"`
	AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
}

// Token holds the secret and lifetimes handed to the external auth service.
// Nothing in this repository issues or validates tokens.
type Token struct {
	SecretKey                string `env:"SECRET_KEY" env-default:""`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"30"`
	RefreshTokenExpireDays   int    `env:"REFRESH_TOKEN_EXPIRE_DAYS" env-default:"7"`
}

// MustLoad reads a .env file if one exists, then the environment.
// The process exits with a descriptive error when DATABASE_URL is missing.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return &cfg
}

// Address returns the host:port pair the HTTP server binds to.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.Origins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"AppName: %s\n"+
			"AppVersion: %s\n"+
			"Debug: %t\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"CORS:\n"+
			"  Origins: %s\n"+
			"  AllowCredentials: %t\n"+
			"Token:\n"+
			"  AccessTokenExpireMinutes: %d\n"+
			"  RefreshTokenExpireDays: %d\n",
		c.Env,
		c.AppName,
		c.AppVersion,
		c.Debug,
		c.Address(),
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Origins,
		c.AllowCredentials,
		c.AccessTokenExpireMinutes,
		c.RefreshTokenExpireDays,
	)
}
