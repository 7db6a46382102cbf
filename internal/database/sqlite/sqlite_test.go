package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/eventlog"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func newGame(t *testing.T, session string) *domain.GameState {
	t.Helper()
	state, err := vineyard.NewGame(vineyard.DefaultConfig(), vineyard.NewGameOptions{
		ID:        uuid.NewString(),
		SessionID: session,
		Region:    "tuscany",
		Seed:      7,
		Now:       time.Now().UTC(),
	})
	require.NoError(t, err)
	return state
}

func TestGameRepository_RoundTrip(t *testing.T) {
	repo := NewGameRepository(openTestDB(t))
	ctx := context.Background()

	game := newGame(t, "s1")
	game.Plots[0].IsPlanted = true
	game.Plots[0].VarietyID = "merlot"
	game.Plots[0].Growth = 42.5
	require.NoError(t, repo.CreateGame(ctx, game))

	got, err := repo.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "tuscany", got.Region)
	assert.Equal(t, "Csb", got.ClimateCode)
	assert.Equal(t, "merlot", got.Plots[0].VarietyID)
	assert.InDelta(t, 42.5, got.Plots[0].Growth, 1e-9)
	assert.Equal(t, 0, got.Version)
}

func TestGameRepository_OptimisticSave(t *testing.T) {
	repo := NewGameRepository(openTestDB(t))
	ctx := context.Background()

	game := newGame(t, "s1")
	require.NoError(t, repo.CreateGame(ctx, game))

	a, err := repo.GetGame(ctx, game.ID)
	require.NoError(t, err)
	b, err := repo.GetGame(ctx, game.ID)
	require.NoError(t, err)

	a.Day = 2
	require.NoError(t, repo.SaveGame(ctx, a))
	assert.Equal(t, 1, a.Version)

	b.Day = 3
	assert.ErrorIs(t, repo.SaveGame(ctx, b), domain.ErrVersionConflict)

	got, err := repo.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Day)
	assert.Equal(t, 1, got.Version)
}

func TestGameRepository_NotFound(t *testing.T) {
	repo := NewGameRepository(openTestDB(t))
	ctx := context.Background()

	_, err := repo.GetGame(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)

	assert.ErrorIs(t, repo.DeleteGame(ctx, "missing"), domain.ErrGameNotFound)
	assert.ErrorIs(t, repo.SaveGame(ctx, &domain.GameState{ID: "missing"}), domain.ErrGameNotFound)
}

func TestGameRepository_ListAndDelete(t *testing.T) {
	repo := NewGameRepository(openTestDB(t))
	ctx := context.Background()

	first := newGame(t, "s1")
	second := newGame(t, "s1")
	foreign := newGame(t, "s2")
	for _, g := range []*domain.GameState{first, second, foreign} {
		require.NoError(t, repo.CreateGame(ctx, g))
	}

	list, err := repo.ListGames(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, s := range list {
		assert.Equal(t, domain.GameStatusPlaying, s.Status)
		assert.Equal(t, 1000, s.Money)
	}

	require.NoError(t, repo.DeleteGame(ctx, first.ID))
	list, err = repo.ListGames(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestSessionStateRepository(t *testing.T) {
	repo := NewSessionStateRepository(openTestDB(t))
	ctx := context.Background()

	v, err := repo.GetValue(ctx, "s", "theme")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, repo.PutValue(ctx, "s", "theme", []byte(`"dark"`)))
	require.NoError(t, repo.PutValue(ctx, "s", "theme", []byte(`"light"`)))
	v, err = repo.GetValue(ctx, "s", "theme")
	require.NoError(t, err)
	assert.Equal(t, `"light"`, string(v))

	// other sessions are isolated
	v, err = repo.GetValue(ctx, "other", "theme")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, repo.DeleteValue(ctx, "s", "theme"))
	v, err = repo.GetValue(ctx, "s", "theme")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestJournalRepository(t *testing.T) {
	db := openTestDB(t)
	games := NewGameRepository(db)
	repo := NewJournalRepository(db)
	ctx := context.Background()

	game := newGame(t, "s1")
	require.NoError(t, games.CreateGame(ctx, game))

	require.NoError(t, repo.LogEvent(ctx, "vineyard.day.advanced", game.ID, map[string]interface{}{"day": 2}, nil))
	require.NoError(t, repo.LogEvent(ctx, "vineyard.wine.sold", game.ID, map[string]interface{}{"value": 90},
		map[string]interface{}{"game_id": game.ID}))

	entries, err := repo.GetEvents(ctx, eventlog.Filter{GameID: game.ID})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "vineyard.wine.sold", entries[0].EventType)
	assert.Equal(t, game.ID, entries[0].Metadata["game_id"])
	assert.Nil(t, entries[1].Metadata)
	assert.Equal(t, float64(2), entries[1].Payload["day"])

	limited, err := repo.GetEvents(ctx, eventlog.Filter{GameID: game.ID, EventType: "vineyard.day.advanced", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	deleted, err := repo.CleanupOldEvents(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	deleted, err = repo.CleanupOldEvents(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestOpen_FileDatabasePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vineyard.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	game := newGame(t, "s1")
	require.NoError(t, NewGameRepository(db).CreateGame(ctx, game))
	db.Close()

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := NewGameRepository(reopened).GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, got.ID)
}
