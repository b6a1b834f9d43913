package config

import (
	"github.com/maxviazov/user-listing-service/internal/logger"
)

type Config struct {
	App    AppConfig           `mapstructure:"app"`
	Logger logger.LoggerConfig `mapstructure:"logger"`
	Store  StoreConfig         `mapstructure:"store"`
}

// AppConfig holds process-level settings for the HTTP server.
type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port    int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	// Timeouts are in seconds.
	ReadTimeout     int `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    int `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// StoreConfig selects the user store driver. Only the section of the selected driver is validated.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	// QueryTimeout bounds a single listing (count + page) in seconds; 0 disables it.
	QueryTimeout int            `mapstructure:"query_timeout"`
	Postgres     PostgresConfig `mapstructure:"postgres"`
	MySQL        MySQLConfig    `mapstructure:"mysql"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	DBName   string `mapstructure:"db" validate:"required"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`

	MaxConns int32 `mapstructure:"max_conns" validate:"gte=1"`
	MinConns int32 `mapstructure:"min_conns" validate:"gte=0"`
	// Durations below are in seconds.
	MaxConnLifetime   int `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int `mapstructure:"health_check_period"`
}

type MySQLConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	DBName   string `mapstructure:"db" validate:"required"`

	MaxOpenConns    int `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int `mapstructure:"max_idle_conns" validate:"gte=0"`
	MaxConnLifetime int `mapstructure:"max_conn_lifetime"`
}
