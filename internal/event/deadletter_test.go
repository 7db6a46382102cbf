package event

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

func TestReadDeadLetters(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dead.jsonl")
		w, err := NewDeadLetterWriter(path)
		require.NoError(t, err)
		stamp := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		w.now = func() time.Time { return stamp }

		wine := domain.Wine{ID: "w-1", Name: "Sunrise Merlot", Quality: 82, Value: 140}
		require.NoError(t, w.Write(NewWineEvent(WineProduced, "game-1", wine), 3, errors.New("bus closed")))
		require.NoError(t, w.Write(NewNotificationEvent("game-2", domain.Notification{Message: "frost"}), 1, nil))
		require.NoError(t, w.Close())

		entries, err := ReadDeadLetters(path)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		first := entries[0]
		assert.Equal(t, DeadLetterSchemaVersion, first.SchemaVersion)
		assert.Equal(t, WineProduced, first.Event.Type)
		assert.Equal(t, "game-1", first.Event.GameID())
		assert.Equal(t, 3, first.Attempts)
		assert.Equal(t, "bus closed", first.LastError)
		assert.True(t, stamp.Equal(first.Timestamp))

		payload, err := DecodePayload[WinePayloadV1](first.Event.Payload)
		require.NoError(t, err)
		assert.Equal(t, "Sunrise Merlot", payload.Name)
		assert.Equal(t, 82, payload.Quality)

		assert.Equal(t, "game-2", entries[1].Event.GameID())
		assert.Empty(t, entries[1].LastError)
	})

	t.Run("Missing File", func(t *testing.T) {
		entries, err := ReadDeadLetters(filepath.Join(t.TempDir(), "absent.jsonl"))
		require.NoError(t, err)
		assert.Nil(t, entries)
	})

	t.Run("Corrupt Line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dead.jsonl")
		content := `{"schema_version":"1.0","attempts":1}` + "\n" + "not json\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := ReadDeadLetters(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path+":2")
	})
}
