package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/config"
	"github.com/osse101/VineyardSim_Go/internal/database/sqlite"
	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/eventlog"
	"github.com/osse101/VineyardSim_Go/internal/sse"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
)

const balanceSchema = config.ConfigPathBalanceSchema

func TestLoadBalance(t *testing.T) {
	t.Run("shipped file", func(t *testing.T) {
		cfg, err := LoadBalance(filepath.Join("..", "..", config.ConfigPathBalance), balanceSchema)

		require.NoError(t, err)
		assert.Equal(t, vineyard.DefaultConfig().StartMoney, cfg.StartMoney)
		assert.Len(t, cfg.Varieties, len(vineyard.DefaultConfig().Varieties))
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadBalance(filepath.Join(t.TempDir(), "absent.yaml"), balanceSchema)

		require.NoError(t, err)
		assert.Equal(t, vineyard.DefaultConfig().MaxPlots, cfg.MaxPlots)
	})

	t.Run("override applied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "balance.yaml")
		require.NoError(t, os.WriteFile(path, []byte("start_money: 4000\n"), 0o644))

		cfg, err := LoadBalance(path, balanceSchema)

		require.NoError(t, err)
		assert.Equal(t, 4000, cfg.StartMoney)
	})

	t.Run("schema violation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "balance.yaml")
		require.NoError(t, os.WriteFile(path, []byte("weather_change_chance: 2\n"), 0o644))

		_, err := LoadBalance(path, balanceSchema)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidBalanceFile)
	})

	t.Run("schema valid but inconsistent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "balance.yaml")
		require.NoError(t, os.WriteFile(path, []byte("initial_plots: 6\nmax_plots: 4\n"), 0o644))

		_, err := LoadBalance(path, balanceSchema)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadBalance)
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_10-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"notes.txt",
		"session_2026-01-03_10-00-00.log",
		"session_2026-01-04_10-00-00.log",
		"session_2026-01-05_10-00-00.log",
	}, names)
}

func TestInitializeRepositories(t *testing.T) {
	t.Run("sqlite in memory", func(t *testing.T) {
		cfg := &config.Config{StorageDriver: config.StorageDriverSQLite, SQLitePath: sqlite.MemoryPath}

		repos, store, err := InitializeRepositories(context.Background(), cfg)

		require.NoError(t, err)
		t.Cleanup(store.Close)
		assert.NotNil(t, repos.Game)
		assert.NotNil(t, repos.SessionState)
		assert.NotNil(t, repos.Journal)
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("sqlite file creates directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "vineyard.db")
		cfg := &config.Config{StorageDriver: config.StorageDriverSQLite, SQLitePath: path}

		_, store, err := InitializeRepositories(context.Background(), cfg)

		require.NoError(t, err)
		t.Cleanup(store.Close)
		assert.FileExists(t, path)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, _, err := InitializeRepositories(context.Background(), &config.Config{StorageDriver: "mongo"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownStorageDriver)
	})
}

func TestRegisterEventHandlers(t *testing.T) {
	db, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	err = RegisterEventHandlers(EventHandlerDependencies{
		EventBus:       event.NewMemoryBus(),
		JournalService: eventlog.NewService(sqlite.NewJournalRepository(db)),
		Hub:            hub,
	})

	assert.NoError(t, err)
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := &config.Config{
		EventMaxRetries:     2,
		EventDeadLetterPath: filepath.Join(t.TempDir(), "dead", "letters.jsonl"),
	}

	bus, publisher, err := InitializeEventSystem(cfg)

	require.NoError(t, err)
	assert.NotNil(t, bus)
	require.NotNil(t, publisher)
	assert.NoError(t, publisher.Shutdown(context.Background()))
	assert.DirExists(t, filepath.Dir(cfg.EventDeadLetterPath))
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
