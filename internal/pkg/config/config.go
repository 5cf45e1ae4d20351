package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	Store StoreConfig
	Redis RedisConfig
	SMTP  SMTPConfig
	Admin AdminConfig
}

type StoreConfig struct {
	// Backend selects the key-value collaborator: "memory" or "redis".
	Backend string `env:"STORE_BACKEND, default=memory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST,     default=smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT,     default=587"`
	SSLPort  int    `env:"SMTP_SSL_PORT, default=465"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	To       string `env:"DEMO_REQUEST_TO, default=ievolve.tecnologia@gmail.com"`
}

// AdminConfig seeds the bootstrap administrator when no admin exists yet.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME,     default=Administrador"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@exemplo.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
