package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	PhotoDir  string `env:"PHOTO_DIR, default=uploads"`

	Postgres PostgresConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     int    `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_NAME,     default=hradmin"`
	// SSLRootCert points at a CA bundle; when set the connection requires
	// verified TLS, otherwise sslmode is left to the driver default.
	SSLRootCert string `env:"DB_SSL_CA"`
}

// DSN renders the configuration as a keyword/value pgx connection string.
func (p PostgresConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s", p.Host, p.Port, p.User, p.Database)
	if p.Password != "" {
		dsn += fmt.Sprintf(" password=%s", p.Password)
	}
	if p.SSLRootCert != "" {
		dsn += fmt.Sprintf(" sslmode=verify-full sslrootcert=%s", p.SSLRootCert)
	}
	return dsn
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
