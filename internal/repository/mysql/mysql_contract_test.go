package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/maxviazov/user-listing-service/internal/config"
	"github.com/maxviazov/user-listing-service/internal/model"
	"github.com/maxviazov/user-listing-service/internal/repository"
	"github.com/maxviazov/user-listing-service/internal/repository/contract"
	"github.com/maxviazov/user-listing-service/migrations"
	"github.com/rs/zerolog"
)

var (
	db     *sql.DB
	skippy bool
)

func TestMain(m *testing.M) {
	if os.Getenv("CONTRACT_TESTS") != "1" {
		skippy = true
		os.Exit(m.Run())
	}

	cfg, ok := configFromEnv()
	if !ok {
		fmt.Println("[contract] APP_STORE_MYSQL_* env not set; skipping")
		skippy = true
		os.Exit(m.Run())
	}

	var err error
	db, err = sql.Open("mysql", repository.MySQLDSN(cfg))
	if err != nil {
		fmt.Println("[contract] sql open error:", err)
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		fmt.Println("[contract] db ping error:", err)
		os.Exit(1)
	}
	if err := migrations.Run(db, "mysql", migrations.CommandUp, zerolog.Nop()); err != nil {
		fmt.Println("[contract] goose up error:", err)
		os.Exit(1)
	}

	code := m.Run()
	db.Close()
	os.Exit(code)
}

func configFromEnv() (config.MySQLConfig, bool) {
	port, _ := strconv.Atoi(os.Getenv("APP_STORE_MYSQL_PORT"))
	if port == 0 {
		port = 3306
	}
	host := os.Getenv("APP_STORE_MYSQL_HOST")
	if host == "" {
		host = "localhost"
	}
	cfg := config.MySQLConfig{
		Host:     host,
		Port:     port,
		User:     os.Getenv("APP_STORE_MYSQL_USER"),
		Password: os.Getenv("APP_STORE_MYSQL_PASSWORD"),
		DBName:   os.Getenv("APP_STORE_MYSQL_DB"),
	}
	return cfg, cfg.User != "" && cfg.DBName != ""
}

func skipIfNeeded(t *testing.T) {
	if skippy {
		t.Skip("contract tests skipped; set CONTRACT_TESTS=1 and provide DB env")
	}
}

func truncateUsers(t *testing.T) {
	t.Helper()
	if _, err := db.Exec("TRUNCATE TABLE users"); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
}

func seedUsers(ctx context.Context, users ...model.User) error {
	for _, u := range users {
		if _, err := db.ExecContext(ctx, `INSERT INTO users (id, username, email) VALUES (?, ?, ?)`, u.ID, u.Username, u.Email); err != nil {
			return err
		}
	}
	return nil
}

func makeUserRepo(t *testing.T) (repository.UserRepository, func(ctx context.Context, users ...model.User) error, func()) {
	skipIfNeeded(t)
	truncateUsers(t)
	return NewUserRepository(db), seedUsers, func() { truncateUsers(t) }
}

func makePinger(t *testing.T) (repository.Pinger, func()) {
	skipIfNeeded(t)
	return NewPinger(db), func() {}
}

func TestUserRepository_MySQLContract(t *testing.T) {
	contract.RunUserRepositoryContract(t, makeUserRepo)
}

func TestPinger_MySQLContract(t *testing.T) {
	contract.RunPingerContract(t, makePinger)
}
