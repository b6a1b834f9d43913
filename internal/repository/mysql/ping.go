package mysql

import (
	"context"
	"database/sql"

	"github.com/maxviazov/user-listing-service/internal/repository"
)

type pinger struct{ db *sql.DB }

// NewPinger adapts *sql.DB to the repository.Pinger interface.
func NewPinger(db *sql.DB) repository.Pinger { return &pinger{db: db} }

func (p *pinger) Ping(ctx context.Context) error {
	return repository.MapMySQLError(p.db.PingContext(ctx))
}
