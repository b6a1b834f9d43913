package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/user-listing-service/internal/model"
	"github.com/maxviazov/user-listing-service/internal/repository"
)

// ILIKE keeps the substring match case-insensitive, the way the listing behaves on MySQL's default collation.
const (
	countUsersSQL = `SELECT COUNT(*) FROM users WHERE username ILIKE $1 ESCAPE '` + repository.LikeEscape + `'`

	listUsersSQL = `SELECT id, username, email
		 FROM users
		 WHERE username ILIKE $1 ESCAPE '` + repository.LikeEscape + `'
		 ORDER BY id
		 LIMIT $2 OFFSET $3`
)

type userRepository struct{ run connRunner }

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{run: poolRunner(pool)}
}

// Search counts every match and then reads one window of it, both on the same pooled connection.
func (r *userRepository) Search(ctx context.Context, f repository.UserFilter, p repository.Page) (repository.PageResult[model.User], error) {
	p, err := p.Normalize()
	if err != nil {
		return repository.PageResult[model.User]{}, err
	}
	pattern := repository.ContainsPattern(f.Search)
	res := repository.PageResult[model.User]{Items: make([]model.User, 0, p.Limit)}

	err = r.run(ctx, func(exec q) error {
		if err := exec.QueryRow(ctx, countUsersSQL, pattern).Scan(&res.Total); err != nil {
			return repository.MapPgError(err)
		}

		rows, err := exec.Query(ctx, listUsersSQL, pattern, p.Limit, p.Offset)
		if err != nil {
			return repository.MapPgError(err)
		}
		defer rows.Close()
		for rows.Next() {
			var u model.User
			if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
				return repository.MapPgError(err)
			}
			res.Items = append(res.Items, u)
		}
		return repository.MapPgError(rows.Err())
	})
	if err != nil {
		return repository.PageResult[model.User]{}, err
	}
	return res, nil
}

var _ repository.UserRepository = (*userRepository)(nil)
