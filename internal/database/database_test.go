package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// containerDSN is empty when docker is unavailable or -short is set
var containerDSN string

func TestMain(m *testing.M) {
	code := func() int {
		if testing.Short() {
			return m.Run()
		}
		ctx := context.Background()
		container, err := startPostgres(ctx)
		if err != nil {
			log.Printf("postgres container unavailable, integration tests skip: %v", err)
			return m.Run()
		}
		defer func() {
			if err := container.Terminate(ctx); err != nil {
				log.Printf("terminate container: %v", err)
			}
		}()
		if containerDSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
			log.Printf("container DSN: %v", err)
		}
		return m.Run()
	}()
	os.Exit(code)
}

func startPostgres(ctx context.Context) (c *postgres.PostgresContainer, err error) {
	// testcontainers panics when no docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("start postgres: %v", r)
		}
	}()
	return postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("vineyard_test"),
		postgres.WithUsername("vineyard"),
		postgres.WithPassword("vineyard"),
		postgres.BasicWaitStrategies(),
	)
}

func testPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if containerDSN == "" {
		t.Skip("postgres not available")
	}
	pool, err := NewPool(context.Background(), containerDSN, PoolOptions{
		MaxConns: maxConns,
		MaxIdle:  time.Minute,
		MaxLife:  5 * time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPoolOptions_Apply(t *testing.T) {
	tests := []struct {
		name      string
		opts      PoolOptions
		wantConns int32
		wantIdle  time.Duration
	}{
		{name: "Configured", opts: PoolOptions{MaxConns: 12, MaxIdle: 3 * time.Minute}, wantConns: 12, wantIdle: 3 * time.Minute},
		{name: "Raised To Minimum", opts: PoolOptions{MaxConns: 0}, wantConns: DefaultMinConnections},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/db")
			require.NoError(t, err)
			defaultIdle := cfg.MaxConnIdleTime

			tt.opts.apply(cfg)

			assert.Equal(t, tt.wantConns, cfg.MaxConns)
			assert.Equal(t, int32(DefaultMinConnections), cfg.MinConns)
			if tt.wantIdle == 0 {
				assert.Equal(t, defaultIdle, cfg.MaxConnIdleTime)
			} else {
				assert.Equal(t, tt.wantIdle, cfg.MaxConnIdleTime)
			}
		})
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz", PoolOptions{MaxConns: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestMigrate_CreatesSchema(t *testing.T) {
	pool := testPool(t, 5)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool), "rerun is a no-op")

	for _, table := range []string{"games", "session_state", "game_journal"} {
		var exists bool
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			table).Scan(&exists))
		assert.True(t, exists, table)
	}
}

func TestMigrateFS_BrokenMigration(t *testing.T) {
	pool := testPool(t, 2)

	err := MigrateFS(context.Background(), pool, fstest.MapFS{
		"90001_broken.sql": {Data: []byte("-- +goose Up\nCREATE TABLE broken (;\n-- +goose Down\n")},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToMigrate)
}

func TestNewPool_ReleasesConnections(t *testing.T) {
	pool := testPool(t, 3)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		var one int
		require.NoError(t, pool.QueryRow(ctx, "SELECT 1").Scan(&one))
		assert.Equal(t, 1, one)
	}
	assert.Zero(t, pool.Stat().AcquiredConns())
}
