package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about, so every key gets a default.
	setDefaults(v)

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the app section and the section of the selected store driver.
// Logger settings are validated by logger.New after its own defaults are applied.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c.App); err != nil {
		return fmt.Errorf("app config validation error: %w", err)
	}
	if err := v.Var(c.Store.Driver, "oneof=postgres mysql"); err != nil {
		return fmt.Errorf("store.driver validation error: %w", err)
	}
	if err := v.Var(c.Store.QueryTimeout, "gte=0"); err != nil {
		return fmt.Errorf("store.query_timeout validation error: %w", err)
	}
	switch c.Store.Driver {
	case "postgres":
		if err := v.Struct(c.Store.Postgres); err != nil {
			return fmt.Errorf("postgres config validation error: %w", err)
		}
	case "mysql":
		if err := v.Struct(c.Store.MySQL); err != nil {
			return fmt.Errorf("mysql config validation error: %w", err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "user-listing-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.read_timeout", 10)
	v.SetDefault("app.write_timeout", 10)
	v.SetDefault("app.shutdown_timeout", 15)

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.env", "")

	v.SetDefault("store.driver", "postgres")
	v.SetDefault("store.query_timeout", 5)

	v.SetDefault("store.postgres.host", "localhost")
	v.SetDefault("store.postgres.port", 5432)
	v.SetDefault("store.postgres.user", "")
	v.SetDefault("store.postgres.password", "")
	v.SetDefault("store.postgres.db", "")
	v.SetDefault("store.postgres.sslmode", "disable")
	v.SetDefault("store.postgres.max_conns", 10)
	v.SetDefault("store.postgres.min_conns", 1)
	v.SetDefault("store.postgres.max_conn_lifetime", 3600)
	v.SetDefault("store.postgres.max_conn_idle_time", 300)
	v.SetDefault("store.postgres.health_check_period", 30)

	v.SetDefault("store.mysql.host", "localhost")
	v.SetDefault("store.mysql.port", 3306)
	v.SetDefault("store.mysql.user", "")
	v.SetDefault("store.mysql.password", "")
	v.SetDefault("store.mysql.db", "")
	v.SetDefault("store.mysql.max_open_conns", 10)
	v.SetDefault("store.mysql.max_idle_conns", 5)
	v.SetDefault("store.mysql.max_conn_lifetime", 3600)
}
