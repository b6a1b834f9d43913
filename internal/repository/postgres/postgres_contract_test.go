package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/maxviazov/user-listing-service/internal/model"
	"github.com/maxviazov/user-listing-service/internal/repository"
	"github.com/maxviazov/user-listing-service/internal/repository/contract"
	"github.com/maxviazov/user-listing-service/migrations"
	"github.com/rs/zerolog"
)

var (
	db     *sql.DB
	pool   *pgxpool.Pool
	dsn    string
	skippy bool
)

func TestMain(m *testing.M) {
	if os.Getenv("CONTRACT_TESTS") != "1" {
		// allow skipping contract tests unless explicitly enabled
		skippy = true
		os.Exit(m.Run())
	}

	dsn = buildDSNFromEnv()
	if dsn == "" {
		fmt.Println("[contract] DATABASE_URL or APP_STORE_POSTGRES_* env not set; skipping")
		skippy = true
		os.Exit(m.Run())
	}

	var err error
	db, err = sql.Open("pgx", dsn)
	if err != nil {
		fmt.Println("[contract] sql open error:", err)
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		fmt.Println("[contract] db ping error:", err)
		os.Exit(1)
	}

	if err := migrations.Run(db, "postgres", migrations.CommandUp, zerolog.Nop()); err != nil {
		fmt.Println("[contract] goose up error:", err)
		os.Exit(1)
	}

	pool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		fmt.Println("[contract] pgxpool new error:", err)
		os.Exit(1)
	}

	code := m.Run()
	pool.Close()
	db.Close()
	os.Exit(code)
}

func skipIfNeeded(t *testing.T) {
	if skippy {
		t.Skip("contract tests skipped; set CONTRACT_TESTS=1 and provide DB env")
	}
}

func buildDSNFromEnv() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	user := firstNonEmpty(os.Getenv("APP_STORE_POSTGRES_USER"), os.Getenv("POSTGRES_USER"))
	pass := firstNonEmpty(os.Getenv("APP_STORE_POSTGRES_PASSWORD"), os.Getenv("POSTGRES_PASSWORD"))
	host := firstNonEmpty(os.Getenv("APP_STORE_POSTGRES_HOST"), os.Getenv("POSTGRES_HOST"), "localhost")
	port := firstNonEmpty(os.Getenv("APP_STORE_POSTGRES_PORT"), os.Getenv("POSTGRES_PORT"), "5432")
	name := firstNonEmpty(os.Getenv("APP_STORE_POSTGRES_DB"), os.Getenv("POSTGRES_DB"))
	ssl := firstNonEmpty(os.Getenv("APP_STORE_POSTGRES_SSLMODE"), os.Getenv("POSTGRES_SSLMODE"), "disable")
	if user == "" || pass == "" || name == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, name, ssl)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncateUsers(t *testing.T) {
	t.Helper()
	if _, err := db.Exec("TRUNCATE TABLE users RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
}

func seedUsers(ctx context.Context, users ...model.User) error {
	for _, u := range users {
		if _, err := pool.Exec(ctx, `INSERT INTO users (id, username, email) VALUES ($1, $2, $3)`, u.ID, u.Username, u.Email); err != nil {
			return err
		}
	}
	return nil
}

func makeUserRepo(t *testing.T) (repository.UserRepository, func(ctx context.Context, users ...model.User) error, func()) {
	skipIfNeeded(t)
	truncateUsers(t)
	return NewUserRepository(pool), seedUsers, func() { truncateUsers(t) }
}

func makePinger(t *testing.T) (repository.Pinger, func()) {
	skipIfNeeded(t)
	return NewPinger(pool), func() {}
}

func TestUserRepository_PostgresContract(t *testing.T) {
	contract.RunUserRepositoryContract(t, makeUserRepo)
}

func TestPinger_PostgresContract(t *testing.T) {
	contract.RunPingerContract(t, makePinger)
}

// Every Search must hand its connection back, otherwise a small pool would starve.
func TestUserRepository_ReleasesConnection(t *testing.T) {
	skipIfNeeded(t)
	truncateUsers(t)
	t.Cleanup(func() { truncateUsers(t) })

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	cfg.MaxConns = 1
	small, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer small.Close()

	repo := NewUserRepository(small)
	for i := 0; i < 5; i++ {
		if _, err := repo.Search(context.Background(), repository.UserFilter{}, repository.Page{Limit: 1}); err != nil {
			t.Fatalf("search %d: %v", i, err)
		}
	}
	if acquired := small.Stat().AcquiredConns(); acquired != 0 {
		t.Fatalf("expected no acquired conns after searches, got %d", acquired)
	}
}
