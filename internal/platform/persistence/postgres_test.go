package persistence

import (
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

// Opening a pgxpool needs a reachable database. The accessor is checked here;
// query behavior against the pool is covered by the pgxmock suites in
// internal/data/postgres.
func TestPostgresDB_Pool(t *testing.T) {
	var pool *pgxpool.Pool
	db := &PostgresDB{
		pool:   pool,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	assert.Equal(t, pool, db.Pool())
}
