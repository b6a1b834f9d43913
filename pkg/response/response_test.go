package response_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/user-listing-service/internal/repository"
	"github.com/maxviazov/user-listing-service/internal/service"
	"github.com/maxviazov/user-listing-service/pkg/response"
)

// fakeInvalid mimics service aggregated validation error to test mapping without reaching into internals.
type fakeInvalid struct{ fe []service.FieldError }

func (f *fakeInvalid) Error() string                { return service.ErrInvalidInput.Error() }
func (f *fakeInvalid) Unwrap() error                { return service.ErrInvalidInput }
func (f *fakeInvalid) Fields() []service.FieldError { return f.fe }

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		in         error
		wantCode   int
		wantErr    string
		wantDetail string
	}{
		{"invalid_input", &fakeInvalid{fe: []service.FieldError{{Field: "page_size", Message: "must be <= 100"}}}, 400, "invalid_input", ""},
		{"not_found_with_detail", service.NewNotFoundError(service.NoUsersFoundDetail), 404, "not_found", "No users found"},
		{"not_found_bare", repository.ErrNotFound, 404, "not_found", ""},
		{"unavailable", fmt.Errorf("%w: dial tcp", repository.ErrUnavailable), 503, "store_unavailable", ""},
		{"internal", errors.New("boom"), 500, "internal_error", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error != tc.wantErr {
				t.Fatalf("unexpected mapping: got (%d,%s) want (%d,%s)", code, payload.Error, tc.wantCode, tc.wantErr)
			}
			if payload.Detail != tc.wantDetail {
				t.Fatalf("detail: got %q want %q", payload.Detail, tc.wantDetail)
			}
			if tc.wantErr == "invalid_input" && len(payload.FieldErrors) == 0 {
				t.Fatalf("expected field errors in payload")
			}
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	if code, _ := response.MapError(nil); code != 200 {
		t.Fatalf("expected 200 for nil error, got %d", code)
	}
}
