package contract

import (
	"context"
	"fmt"
	"testing"

	"github.com/maxviazov/user-listing-service/internal/model"
	"github.com/maxviazov/user-listing-service/internal/repository"
)

// UserFactory yields a repository over an empty users table, a way to insert rows with fixed ids, and a cleanup.
type UserFactory func(t *testing.T) (repo repository.UserRepository, seed func(ctx context.Context, users ...model.User) error, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func RunUserRepositoryContract(t *testing.T, makeRepo UserFactory) {
	t.Helper()

	t.Run("empty_table", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		res, err := repo.Search(context.Background(), repository.UserFilter{}, repository.Page{Limit: 25})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(res.Items) != 0 || res.Total != 0 {
			t.Fatalf("expected nothing, got len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("pagination_total", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var users []model.User
		for i := 1; i <= 30; i++ {
			users = append(users, model.User{ID: int64(i), Username: fmt.Sprintf("player%02d", i), Email: fmt.Sprintf("p%02d@example.com", i)})
		}
		users = append(users, model.User{ID: 31, Username: "coach", Email: "coach@example.com"})
		if err := seed(ctx, users...); err != nil {
			t.Fatalf("seed: %v", err)
		}

		res, err := repo.Search(ctx, repository.UserFilter{Search: "player"}, repository.Page{Limit: 25, Offset: 0})
		if err != nil {
			t.Fatalf("page1: %v", err)
		}
		if len(res.Items) != 25 || res.Total != 30 {
			t.Fatalf("unexpected page1: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.Search(ctx, repository.UserFilter{Search: "player"}, repository.Page{Limit: 25, Offset: 25})
		if err != nil {
			t.Fatalf("page2: %v", err)
		}
		if len(res2.Items) != 5 || res2.Total != 30 {
			t.Fatalf("unexpected page2: len=%d total=%d", len(res2.Items), res2.Total)
		}
		if res2.Items[0].ID != 26 || res2.Items[4].ID != 30 {
			t.Fatalf("page2 window wrong: first=%d last=%d", res2.Items[0].ID, res2.Items[4].ID)
		}
		res3, err := repo.Search(ctx, repository.UserFilter{Search: "player"}, repository.Page{Limit: 25, Offset: 50})
		if err != nil {
			t.Fatalf("page3: %v", err)
		}
		if len(res3.Items) != 0 || res3.Total != 30 {
			t.Fatalf("unexpected page3: len=%d total=%d", len(res3.Items), res3.Total)
		}
	})

	t.Run("ordered_by_id", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := seed(ctx,
			model.User{ID: 42, Username: "zed", Email: "zed@example.com"},
			model.User{ID: 7, Username: "amy", Email: "amy@example.com"},
			model.User{ID: 1000, Username: "bob", Email: "bob@example.com"},
			model.User{ID: 13, Username: "cid", Email: "cid@example.com"},
		); err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.Search(ctx, repository.UserFilter{}, repository.Page{Limit: 10})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		want := []int64{7, 13, 42, 1000}
		if len(res.Items) != len(want) {
			t.Fatalf("expected %d items, got %d", len(want), len(res.Items))
		}
		for i, id := range want {
			if res.Items[i].ID != id {
				t.Fatalf("position %d: want id %d, got %d", i, id, res.Items[i].ID)
			}
		}
	})

	t.Run("substring_case_insensitive", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := seed(ctx,
			model.User{ID: 1, Username: "Alice", Email: "alice@example.com"},
			model.User{ID: 2, Username: "malice", Email: "malice@example.com"},
			model.User{ID: 3, Username: "bob", Email: "bob@example.com"},
		); err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.Search(ctx, repository.UserFilter{Search: "ALI"}, repository.Page{Limit: 10})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if res.Total != 2 || len(res.Items) != 2 || res.Items[0].ID != 1 || res.Items[1].ID != 2 {
			t.Fatalf("unexpected match set: %+v total=%d", res.Items, res.Total)
		}
	})

	t.Run("sql_metacharacters_are_literal", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := seed(ctx,
			model.User{ID: 1, Username: "alice", Email: "alice@example.com"},
			model.User{ID: 2, Username: "o'reilly", Email: "tim@example.com"},
			model.User{ID: 3, Username: "100%_real", Email: "real@example.com"},
			model.User{ID: 4, Username: "bang!", Email: "bang@example.com"},
		); err != nil {
			t.Fatalf("seed: %v", err)
		}
		cases := []struct {
			search  string
			wantIDs []int64
		}{
			{"' OR '1'='1", nil},
			{"'; DROP TABLE users; --", nil},
			{"o'r", []int64{2}},
			{"%", []int64{3}},
			{"_", []int64{3}},
			{"!", []int64{4}},
			{"%_", []int64{3}},
		}
		for _, tc := range cases {
			res, err := repo.Search(ctx, repository.UserFilter{Search: tc.search}, repository.Page{Limit: 10})
			if err != nil {
				t.Fatalf("search %q: %v", tc.search, err)
			}
			if res.Total != len(tc.wantIDs) || len(res.Items) != len(tc.wantIDs) {
				t.Fatalf("search %q: want %d matches, got len=%d total=%d", tc.search, len(tc.wantIDs), len(res.Items), res.Total)
			}
			for i, id := range tc.wantIDs {
				if res.Items[i].ID != id {
					t.Fatalf("search %q: want id %d at %d, got %d", tc.search, id, i, res.Items[i].ID)
				}
			}
		}
		// table must survive the injection attempts
		res, err := repo.Search(ctx, repository.UserFilter{}, repository.Page{Limit: 10})
		if err != nil || res.Total != 4 {
			t.Fatalf("table damaged: total=%d err=%v", res.Total, err)
		}
	})

	t.Run("canceled_context", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := repo.Search(ctx, repository.UserFilter{}, repository.Page{Limit: 10}); err == nil {
			t.Fatalf("expected error on canceled context")
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("ping: %v", err)
		}
	})
}
