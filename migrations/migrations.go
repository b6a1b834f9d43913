// Package migrations embeds the users schema for each supported driver and runs it with goose.
// The service never migrates on its own; cmd/migrate and the contract tests do.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed postgres/*.sql mysql/*.sql
var FS embed.FS

// Command is one of the goose operations exposed by cmd/migrate.
type Command string

const (
	CommandUp     Command = "up"
	CommandDown   Command = "down"
	CommandStatus Command = "status"
)

// Run applies cmd for the given driver ("postgres" or "mysql"); the driver name doubles as goose dialect and directory.
// goose keeps its settings in package state, so Run must not be called concurrently.
func Run(db *sql.DB, driver string, cmd Command, logger zerolog.Logger) error {
	switch driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported driver %q", driver)
	}

	goose.SetBaseFS(FS)
	goose.SetLogger(gooseLogger{logger: logger.With().Str("component", "goose").Logger()})
	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	var err error
	switch cmd {
	case CommandUp:
		err = goose.Up(db, driver)
	case CommandDown:
		err = goose.Down(db, driver)
	case CommandStatus:
		err = goose.Status(db, driver)
	default:
		return fmt.Errorf("unknown migrate command %q", cmd)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", cmd, err)
	}
	return nil
}

type gooseLogger struct {
	logger zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}
