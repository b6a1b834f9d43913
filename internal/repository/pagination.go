package repository

import (
	"fmt"
	"strings"
)

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; page numbers and bounds belong to higher layers.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total int
}

// UserFilter narrows a user listing. An empty Search matches every user.
type UserFilter struct {
	Search string
}

// LikeEscape is the escape character used in every LIKE clause built from ContainsPattern.
// '!' means the same thing to Postgres and MySQL, unlike a backslash.
const LikeEscape = "!"

var likeEscaper = strings.NewReplacer(LikeEscape, LikeEscape+LikeEscape, "%", LikeEscape+"%", "_", LikeEscape+"_")

// ContainsPattern turns a raw search term into a LIKE pattern matching it as a literal substring.
// The result must still be bound as a query parameter, never spliced into SQL.
func ContainsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// DefaultLimit is applied when a caller hands the store a non-positive limit.
const DefaultLimit = 25

// Normalize fills in a missing limit. A negative offset is rejected rather than clamped:
// it only shows up when a caller computed the window wrong, and page 1 is not a safe answer.
func (p Page) Normalize() (Page, error) {
	if p.Offset < 0 {
		return p, fmt.Errorf("%w: offset %d", ErrInvalidPage, p.Offset)
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p, nil
}
