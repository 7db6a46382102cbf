package vineyard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// scriptedRand replays queued values, then returns fallback values that
// keep every random event from firing.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func quietRand() *scriptedRand { return &scriptedRand{} }

func newTestGame(t *testing.T, cfg *Config) *domain.GameState {
	t.Helper()
	state, err := NewGame(cfg, NewGameOptions{
		ID:        "game-1",
		SessionID: "session-1",
		Region:    "bordeaux",
		Seed:      42,
		Now:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return state
}

func newTestEngine(t *testing.T) (*Engine, *Config) {
	t.Helper()
	cfg := DefaultConfig()
	return NewEngine(cfg, newTestGame(t, cfg), quietRand(), nil), cfg
}

func plantDirect(p *domain.Plot, variety string, growth float64) {
	p.IsPlanted = true
	p.VarietyID = variety
	p.Growth = growth
}

func kinds(ns []domain.Notification) []domain.NotificationKind {
	out := make([]domain.NotificationKind, len(ns))
	for i, n := range ns {
		out[i] = n.Kind
	}
	return out
}
