package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/maxviazov/user-listing-service/internal/config"
	"github.com/rs/zerolog"
)

// MySQL owns the database/sql pool backing the user store when store.driver is mysql.
type MySQL struct {
	db *sql.DB
}

// MySQLDSN renders the driver DSN via mysql.Config so credentials are escaped correctly.
func MySQLDSN(cfg config.MySQLConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	return mc.FormatDSN()
}

// NewMySQL opens and pings a pool and routes driver logs through zerolog.
func NewMySQL(ctx context.Context, cfg config.MySQLConfig, logger *zerolog.Logger) (*MySQL, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if err := mysql.SetLogger(newMySQLLogger(*logger)); err != nil {
		return nil, fmt.Errorf("failed to set mysql logger: %w", err)
	}

	db, err := sql.Open("mysql", MySQLDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.MaxConnLifetime) * time.Second)
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", MapMySQLError(err))
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("user", cfg.User).
		Str("db", cfg.DBName).
		Msg("Successfully connected to MySQL")

	return &MySQL{db: db}, nil
}

// DB exposes the pool to the mysql repository implementations.
func (m *MySQL) DB() *sql.DB { return m.db }

func (m *MySQL) Close() {
	if m.db != nil {
		_ = m.db.Close()
	}
}
