// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// User is the read-only projection of a row in the users table.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ListUsersParams carries the query string of GET /users after defaults are applied.
// Range checks live in the service so they run before any store access.
type ListUsersParams struct {
	Search   string `json:"search"`
	Page     int    `json:"page" validate:"gte=1"`
	PageSize int    `json:"page_size" validate:"gte=1,lte=100"`
}

// Pagination describes where a page sits inside the full match set.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// UserPage is the success envelope of the listing endpoint.
type UserPage struct {
	Items      []User     `json:"items"`
	Pagination Pagination `json:"pagination"`
}
