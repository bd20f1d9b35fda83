package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	LogPretty   bool          `env:"LOG_PRETTY,   default=false"`
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=720h"`
	HashWorkers int           `env:"HASH_WORKERS, default=4"`
	BodyLimit   string        `env:"BODY_LIMIT,   default=51M"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Mail     MailConfig
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL,         required"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE,      default=true"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,            default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,              default=0"`
	CodeTTL  time.Duration `env:"VERIFICATION_CODE_TTL, default=10m"`
}

type StorageConfig struct {
	Bucket          string `env:"STORAGE_BUCKET"`
	CredentialsFile string `env:"STORAGE_CREDENTIALS_FILE"`
}

type MailConfig struct {
	Host       string `env:"SMTP_HOST,        default=smtp.gmail.com"`
	Port       int    `env:"SMTP_PORT,        default=587"`
	Secure     bool   `env:"SMTP_SECURE,      default=false"`
	User       string `env:"SMTP_USER"`
	Password   string `env:"SMTP_PASS"`
	From       string `env:"EMAIL_FROM"`
	Simulation bool   `env:"EMAIL_SIMULATION, default=false"`
}

// Sender returns the From header, falling back to the SMTP account.
func (m MailConfig) Sender() string {
	if m.From != "" {
		return m.From
	}
	return fmt.Sprintf("%q <%s>", "Career Charma", m.User)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom resolves configuration through an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.HashWorkers <= 0 {
		return nil, fmt.Errorf("HASH_WORKERS must be positive, got %d", cfg.HashWorkers)
	}
	return &cfg, nil
}
