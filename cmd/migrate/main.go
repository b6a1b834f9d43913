// Command migrate applies the embedded users schema to the configured store.
//
//	migrate [-config config.yaml] up|down|status
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/maxviazov/user-listing-service/internal/config"
	"github.com/maxviazov/user-listing-service/internal/logger"
	"github.com/maxviazov/user-listing-service/internal/repository"
	"github.com/maxviazov/user-listing-service/migrations"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cmd := migrations.CommandUp
	if flag.NArg() > 0 {
		cmd = migrations.Command(flag.Arg(0))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	db, err := openDB(cfg.Store)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := migrations.Run(db, cfg.Store.Driver, cmd, appLogger); err != nil {
		appLogger.Error().Err(err).Str("command", string(cmd)).Msg("migration failed")
		db.Close()
		os.Exit(1)
	}
	appLogger.Info().Str("command", string(cmd)).Str("driver", cfg.Store.Driver).Msg("✅ Migration done")
}

func openDB(cfg config.StoreConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case "postgres":
		return sql.Open("pgx", repository.PostgresDSN(cfg.Postgres))
	case "mysql":
		return sql.Open("mysql", repository.MySQLDSN(cfg.MySQL))
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
