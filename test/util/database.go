// Package util provides the shared Postgres harness for package-level tests.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/pkg/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var shared struct {
	once    sync.Once
	connStr string
	err     error
}

// SetupTestDatabase gives the test its own schema inside a shared Postgres
// instance (an external one via CI_DATABASE_URL, or a package-scoped
// testcontainer) and returns an ent client plus the raw pool, both scoped
// to that schema. The schema is dropped when the test finishes.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()
	connStr := sharedConnString(t)
	schema := schemaNameFor(t)

	adminDB, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = adminDB.ExecContext(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	_ = adminDB.Close()
	t.Logf("Created test schema: %s", schema)

	// search_path goes into the connection string so every pooled
	// connection lands in the test schema.
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	db, err := stdsql.Open("pgx", connStr+sep+"search_path="+schema)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(ctx))

	// Plain SQL that ent's schema builder does not cover: the partial
	// indexes and the pg_notify catchup table. Production gets both from
	// the embedded golang-migrate migrations.
	require.NoError(t, database.CreatePartialIndexes(ctx, drv))
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			scope_id VARCHAR NOT NULL DEFAULT '',
			channel VARCHAR NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_channel_id ON events (channel, id)`,
	} {
		_, err = db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	t.Cleanup(func() {
		_, err := db.ExecContext(context.Background(),
			"DROP SCHEMA IF EXISTS "+schema+" CASCADE")
		if err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schema, err)
		}
		_ = client.Close()
		_ = db.Close()
	})

	return client, db
}

// sharedConnString returns the base connection string, starting the shared
// container on first use when no external database is configured.
func sharedConnString(t *testing.T) string {
	if ciURL := os.Getenv("CI_DATABASE_URL"); ciURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return ciURL
	}

	shared.once.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer for all tests")

		pg, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			shared.err = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		shared.connStr, shared.err = pg.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, shared.err, "Failed to setup shared test container")
	return shared.connStr
}

// schemaNameFor derives a unique Postgres-safe schema name from the test
// name, truncated to respect the 63-char identifier limit.
func schemaNameFor(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate random bytes for schema name: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}
