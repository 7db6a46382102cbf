package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/event"
)

func TestWriteDeadLetters(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []event.DeadLetterEntry{
		{
			Timestamp: now.Add(-3 * time.Hour),
			Event:     event.NewNotificationEvent("game-7", domain.Notification{Message: "hail"}),
			Attempts:  5,
			LastError: "bus closed",
		},
		{Timestamp: now.Add(-time.Minute), Event: event.Event{Type: event.DayAdvanced}, Attempts: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, writeDeadLetters(&buf, entries, now))

	out := buf.String()
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "game-7")
	assert.Contains(t, out, "bus closed")
	assert.Contains(t, out, string(event.DayAdvanced))
	assert.Contains(t, out, "2 event(s)")
}

func TestDeadLettersCommand(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := rootCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"deadletters", "--file", filepath.Join(t.TempDir(), "none.jsonl")})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, buf.String(), "No dead-lettered events")
	})

	t.Run("Reads File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dead.jsonl")
		w, err := event.NewDeadLetterWriter(path)
		require.NoError(t, err)
		wine := domain.Wine{ID: "w-1", Name: "Old Vine Zinfandel", Quality: 70, Value: 90}
		require.NoError(t, w.Write(event.NewWineEvent(event.WineSold, "game-3", wine), 5, errors.New("timeout")))
		require.NoError(t, w.Close())

		var buf bytes.Buffer
		cmd := rootCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"deadletters", "--file", path})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, buf.String(), "game-3")
		assert.Contains(t, buf.String(), "timeout")
	})
}
