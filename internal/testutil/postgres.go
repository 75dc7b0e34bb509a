//go:build integration

package testutil

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mmynk/futebol/internal/storage/bunstore"
)

const (
	pgImage    = "postgres:16-alpine"
	pgDatabase = "futebol_app"
	pgUser     = "futebol"
	pgPassword = "futebol"
)

// NewPostgresStore starts a PostgreSQL container, opens a store on it and
// resets its schema. The container is terminated when the test ends.
func NewPostgresStore(t testing.TB) *bunstore.Store {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		pgImage,
		postgres.WithDatabase(pgDatabase),
		postgres.WithUsername(pgUser),
		postgres.WithPassword(pgPassword),
		testcontainers.WithWaitStrategy(
			wait.ForSQL("5432/tcp", "pgx",
				func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
						pgUser, pgPassword, host, port.Port(), pgDatabase)
				},
			).WithStartupTimeout(45*time.Second),
		),
	)
	if container != nil {
		t.Cleanup(func() { container.Terminate(context.Background()) })
	}
	require.NoError(t, err, "start postgres container")

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err, "postgres connection string")

	parsed, err := url.Parse(connStr)
	require.NoError(t, err)
	q := parsed.Query()
	q.Set("sslmode", "disable")
	parsed.RawQuery = q.Encode()

	return openAndReset(t, parsed.String())
}
