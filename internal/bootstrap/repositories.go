package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/VineyardSim_Go/internal/config"
	"github.com/osse101/VineyardSim_Go/internal/database"
	"github.com/osse101/VineyardSim_Go/internal/database/postgres"
	"github.com/osse101/VineyardSim_Go/internal/database/sqlite"
	"github.com/osse101/VineyardSim_Go/internal/eventlog"
	"github.com/osse101/VineyardSim_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Game         repository.Game
	SessionState repository.SessionState
	Journal      eventlog.Repository
}

// InitializeRepositories opens the configured store, brings its schema up to
// date and returns the repositories backed by it. The returned pool must be closed.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, database.Pool, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
			MaxConns: cfg.DBMaxConns,
			MaxIdle:  cfg.DBMaxIdle,
			MaxLife:  cfg.DBMaxLife,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return &Repositories{
			Game:         postgres.NewGameRepository(pool),
			SessionState: postgres.NewSessionStateRepository(pool),
			Journal:      postgres.NewJournalRepository(pool),
		}, pool, nil

	case config.StorageDriverSQLite:
		if cfg.SQLitePath != sqlite.MemoryPath {
			if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
			}
		}
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver, "path", cfg.SQLitePath)
		return &Repositories{
			Game:         sqlite.NewGameRepository(db),
			SessionState: sqlite.NewSessionStateRepository(db),
			Journal:      sqlite.NewJournalRepository(db),
		}, db, nil

	default:
		return nil, nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}
}
