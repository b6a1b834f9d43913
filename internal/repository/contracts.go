package repository

import (
	"context"

	"github.com/maxviazov/user-listing-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UserRepository declares the read operations the listing needs from the user store.
// Implementations run the count and the page query on one connection and release it before returning.
// An empty Items slice is not an error at this layer; deciding what "nothing found" means is the service's job.
type UserRepository interface {
	Search(ctx context.Context, f UserFilter, p Page) (PageResult[model.User], error)
}
