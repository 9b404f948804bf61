package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"petcare-go/pkg/logger"
)

const envPrefix = "PETCARE_"

type Config struct {
	Env  string     `koanf:"env" validate:"required,oneof=development test staging production"`
	HTTP HTTPConfig `koanf:"http"`
	Log  LogConfig  `koanf:"log"`
	DB   DBConfig   `koanf:"db"`
}

type HTTPConfig struct {
	Port           string        `koanf:"port" validate:"required,numeric"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gt=0"`
	// CORSOrigins is a comma-separated allow list; empty disables CORS headers.
	CORSOrigins string `koanf:"cors_origins"`
}

func (c HTTPConfig) AllowedOrigins() []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

type DBConfig struct {
	DSN             string        `koanf:"dsn"`
	Host            string        `koanf:"host" validate:"required_without=DSN"`
	Port            string        `koanf:"port" validate:"required_without=DSN"`
	User            string        `koanf:"user" validate:"required_without=DSN"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required_without=DSN"`
	SSLMode         string        `koanf:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	TimeZone        string        `koanf:"timezone"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
	PingTimeout     time.Duration `koanf:"ping_timeout" validate:"gt=0"`
	SlowQuery       time.Duration `koanf:"slow_query" validate:"gte=0"`
	MigrationsDir   string        `koanf:"migrations_dir"`
}

// Defaults target a local development database. Anything else comes from
// PETCARE_* variables or a .env file.
func Defaults() Config {
	return Config{
		Env: "development",
		HTTP: HTTPConfig{
			Port:           "8080",
			RequestTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Format: "json",
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "5432",
			User:            "postgres",
			Name:            "petcare",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			PingTimeout:     3 * time.Second,
			SlowQuery:       200 * time.Millisecond,
			MigrationsDir:   "migrations",
		},
	}
}

func Load(log logger.Logger) (Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err == nil {
		log.Info("config: loaded .env")
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", envKey), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// envKey maps PETCARE_DB_MAX_OPEN_CONNS to db.max_open_conns: the first
// segment after the prefix names the section, the rest is the field.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
