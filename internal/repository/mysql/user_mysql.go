// Package mysql implements the repository contracts on top of database/sql and go-sql-driver/mysql.
package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/maxviazov/user-listing-service/internal/model"
	"github.com/maxviazov/user-listing-service/internal/repository"
)

// '!' needs no quoting inside a MySQL string literal, unlike a backslash.
const (
	countUsersSQL = `SELECT COUNT(*) FROM users WHERE username LIKE ? ESCAPE '` + repository.LikeEscape + `'`

	listUsersSQL = `SELECT id, username, email
		 FROM users
		 WHERE username LIKE ? ESCAPE '` + repository.LikeEscape + `'
		 ORDER BY id
		 LIMIT ? OFFSET ?`
)

type userRepository struct{ db *sql.DB }

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Search counts every match and then reads one window of it on a single dedicated connection.
func (r *userRepository) Search(ctx context.Context, f repository.UserFilter, p repository.Page) (repository.PageResult[model.User], error) {
	if r.db == nil {
		return repository.PageResult[model.User]{}, errors.New("mysql db is nil")
	}
	p, err := p.Normalize()
	if err != nil {
		return repository.PageResult[model.User]{}, err
	}
	pattern := repository.ContainsPattern(f.Search)

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return repository.PageResult[model.User]{}, repository.MapMySQLError(err)
	}
	defer conn.Close()

	res := repository.PageResult[model.User]{Items: make([]model.User, 0, p.Limit)}
	if err := conn.QueryRowContext(ctx, countUsersSQL, pattern).Scan(&res.Total); err != nil {
		return repository.PageResult[model.User]{}, repository.MapMySQLError(err)
	}

	rows, err := conn.QueryContext(ctx, listUsersSQL, pattern, p.Limit, p.Offset)
	if err != nil {
		return repository.PageResult[model.User]{}, repository.MapMySQLError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return repository.PageResult[model.User]{}, repository.MapMySQLError(err)
		}
		res.Items = append(res.Items, u)
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.User]{}, repository.MapMySQLError(err)
	}
	return res, nil
}

var _ repository.UserRepository = (*userRepository)(nil)
