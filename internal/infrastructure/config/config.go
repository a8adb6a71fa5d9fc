package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Google   GoogleConfig
	Facebook FacebookConfig
	Admin    AdminConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET"`
	Issuer   string        `env:"JWT_ISSUER,   default=authentication-gateway"`
	Audience string        `env:"JWT_AUDIENCE, default=authentication-gateway-clients"`
	TTL      time.Duration `env:"JWT_TTL,      default=3h"`
}

type GoogleConfig struct {
	TokenAudience string `env:"GOOGLE_TOKEN_AUDIENCE"`
}

type FacebookConfig struct {
	ClientID     string `env:"FACEBOOK_CLIENT_ID"`
	ClientSecret string `env:"FACEBOOK_CLIENT_SECRET"`
}

// AdminConfig controls the bootstrap admin account seeded at startup.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=AuthenticationAdmin"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	Password string `env:"ADMIN_PASSWORD, default=VerySecretPassword!1"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=authentication_gateway"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
