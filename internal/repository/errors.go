package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound = errors.New("not found")
	// ErrUnavailable marks failures to reach the store at all, as opposed to a failing query.
	ErrUnavailable = errors.New("store unavailable")
	// ErrInvalidPage is returned for a window no driver can execute, such as a negative offset.
	ErrInvalidPage = errors.New("invalid page window")
)

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// MapPgError translates Postgres connectivity failures to ErrUnavailable.
// Everything else passes through untouched so callers still see the driver detail.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return unavailable(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code) ||
			pgerrcode.IsInsufficientResources(pgErr.Code) {
			return unavailable(err)
		}
	}
	return err
}

// MySQL server error numbers that mean the server can't serve us right now.
const (
	mysqlTooManyConnections = 1040
	mysqlAccessDenied       = 1045
	mysqlUnknownDatabase    = 1049
	mysqlServerShutdown     = 1053
)

// MapMySQLError is the MySQL counterpart of MapPgError.
func MapMySQLError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return unavailable(err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return unavailable(err)
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlTooManyConnections, mysqlAccessDenied, mysqlUnknownDatabase, mysqlServerShutdown:
			return unavailable(err)
		}
	}
	return err
}
