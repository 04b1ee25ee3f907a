package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/deppfellow/phonecustody/internal/database"
)

var (
	testPool    *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	setupErr    error
)

// TestMain migrates a throwaway database. TEST_DB_HOST selects an external
// server; otherwise a PostgreSQL container is started. When neither is
// available every test that needs the database is skipped.
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, err := testDSN(ctx)
	if err == nil {
		err = setupDatabase(ctx, dsn)
	}
	setupErr = err
	if setupErr != nil {
		fmt.Printf("repository tests will be skipped: %v\n", setupErr)
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

func testDSN(ctx context.Context) (string, error) {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		port := envOr("TEST_DB_PORT", "5432")
		user := envOr("TEST_DB_USER", "postgres")
		password := envOr("TEST_DB_PASSWORD", "postgres")
		name := envOr("TEST_DB_NAME", "custody_test")

		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name), nil
	}

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("custody_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}
	pgContainer = container

	return container.ConnectionString(ctx, "sslmode=disable")
}

func setupDatabase(ctx context.Context, dsn string) error {
	logger := zerolog.Nop()
	if err := database.Migrate(ctx, &logger, dsn); err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	testPool = pool
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// requireDB skips the test without a database and empties every table.
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if setupErr != nil {
		t.Skipf("database unavailable: %v", setupErr)
	}

	_, err := testPool.Exec(context.Background(),
		`TRUNCATE ownership_records, phones, owners RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return testPool
}

func ptr[T any](v T) *T {
	return &v
}
