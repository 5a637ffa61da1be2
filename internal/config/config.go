// Package config manages environment variables.
//
// It reads variables from the environment (and an optional `.env` file),
// layers them over built-in defaults, loads them into structured Go types
// and validates them so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the SHOP_ prefix. Keys are lowercased and the
	prefix removed; a double underscore separates nesting levels, so

		SHOP_SERVER__READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout

	Single underscores stay part of the key name.
*/

// EnvPrefix is the prefix every environment variable read by LoadConfig must carry.
const EnvPrefix = "SHOP_"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Fake          FakeConfig           `koanf:"fake" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the number of requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig selects the storage backend and tunes its pool.
//
// The sqlite driver only needs Path; the postgres driver needs the network fields.
// Pool durations are seconds.
type DatabaseConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=sqlite postgres"`

	// Path is the SQLite database file (":memory:" for a throwaway database).
	Path string `koanf:"path" validate:"required_if=Driver sqlite"`

	Host     string `koanf:"host" validate:"required_if=Driver postgres"`
	Port     int    `koanf:"port" validate:"required_if=Driver postgres"`
	User     string `koanf:"user" validate:"required_if=Driver postgres"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode  string `koanf:"ssl_mode"`

	MaxOpenConns    int `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int `koanf:"conn_max_lifetime" validate:"gte=0"`
	ConnMaxIdleTime int `koanf:"conn_max_idle_time" validate:"gte=0"`

	// EnforceForeignKeys creates the orders -> users/products constraints and,
	// for SQLite, turns on foreign key checking for the connection.
	EnforceForeignKeys bool `koanf:"enforce_foreign_keys"`
}

// FakeConfig controls the synthetic records produced by the /fake_* endpoints.
type FakeConfig struct {
	OrderUserID    int64    `koanf:"order_user_id"`
	OrderProductID int64    `koanf:"order_product_id"`
	OrderStatuses  []string `koanf:"order_statuses" validate:"len=2,dive,required,max=32"`
	MinPrice       int      `koanf:"min_price"`
	MaxPrice       int      `koanf:"max_price" validate:"gtefield=MinPrice"`
	BatchSize      int      `koanf:"batch_size" validate:"required,gt=0"`
}

// defaults is the base layer every environment variable is merged over.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env": "development",

		"server.port":                 "8000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"server.rate_limit":           20,

		"database.driver":             DriverSQLite,
		"database.path":               "shop.db",
		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     25,
		"database.conn_max_lifetime":  300,
		"database.conn_max_idle_time": 300,

		"fake.order_user_id":    2,
		"fake.order_product_id": 1,
		"fake.order_statuses":   []string{"in progress", "done"},
		"fake.min_price":        1,
		"fake.max_price":        100,
		"fake.batch_size":       100,

		"observability.service_name":                          "shop",
		"observability.environment":                           "development",
		"observability.logging.level":                         "info",
		"observability.logging.format":                        "json",
		"observability.logging.slow_query_threshold":          100 * time.Millisecond,
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.health_checks.enabled":                 true,
		"observability.health_checks.timeout":                 5 * time.Second,
		"observability.health_checks.checks":                  []string{"database"},
	}
}

// envKey maps SHOP_DATABASE__MAX_OPEN_CONNS to database.max_open_conns.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and applies observability defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load config defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces are tagged consistently.
	mainConfig.Observability.ServiceName = "shop"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
