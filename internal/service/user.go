package service

import (
	"context"
	"time"

	"github.com/maxviazov/user-listing-service/internal/model"
	"github.com/maxviazov/user-listing-service/internal/repository"
	"github.com/rs/zerolog"
)

// userService holds user listing logic: validation + orchestration, no transport / SQL details.
type userService struct {
	repo         repository.UserRepository
	log          zerolog.Logger
	queryTimeout time.Duration
}

// UserServiceOption tweaks a user service at construction time.
type UserServiceOption func(*userService)

// WithQueryTimeout bounds one listing (count + page query). Zero leaves only the request context in charge.
func WithQueryTimeout(d time.Duration) UserServiceOption {
	return func(s *userService) { s.queryTimeout = d }
}

func NewUserService(repo repository.UserRepository, logger zerolog.Logger, opts ...UserServiceOption) UserService {
	l := logger.With().Str("module", "service").Str("component", "user").Logger()
	s := &userService{repo: repo, log: l}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListUsers validates the window before touching the store, then merges "page past the end"
// and "nothing matches" into the same not-found outcome.
func (s *userService) ListUsers(ctx context.Context, params model.ListUsersParams) (model.UserPage, error) {
	start := time.Now()
	if err := validateStruct(params); err != nil {
		s.log.Debug().
			Int("page", params.Page).
			Int("page_size", params.PageSize).
			Interface("field_errors", FieldErrors(err)).
			Msg("list users validation failed")
		return model.UserPage{}, err
	}

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	off, ok := offset(params.Page, params.PageSize)
	if !ok {
		s.log.Debug().
			Int("page", params.Page).
			Int("page_size", params.PageSize).
			Msg("page lies beyond any addressable row")
		return model.UserPage{}, NewNotFoundError(NoUsersFoundDetail)
	}

	page := repository.Page{Limit: params.PageSize, Offset: off}
	res, err := s.repo.Search(ctx, repository.UserFilter{Search: params.Search}, page)
	if err != nil {
		s.log.Error().Err(err).
			Int("limit", page.Limit).
			Int("offset", page.Offset).
			Msg("list users failed")
		return model.UserPage{}, err
	}

	if len(res.Items) == 0 {
		s.log.Debug().
			Int("page", params.Page).
			Int("page_size", params.PageSize).
			Int("total", res.Total).
			Msg("no users on requested page")
		return model.UserPage{}, NewNotFoundError(NoUsersFoundDetail)
	}

	out := model.UserPage{
		Items: res.Items,
		Pagination: model.Pagination{
			Page:       params.Page,
			PageSize:   params.PageSize,
			Total:      res.Total,
			TotalPages: TotalPages(res.Total, params.PageSize),
		},
	}
	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("items", len(out.Items)).
		Int("total", out.Pagination.Total).
		Msg("users listed")
	return out, nil
}
