package game_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/database/sqlite"
	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/game"
	"github.com/osse101/VineyardSim_Go/internal/repository"
	"github.com/osse101/VineyardSim_Go/internal/scheduler"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
	"github.com/osse101/VineyardSim_Go/internal/worker"
	"github.com/osse101/VineyardSim_Go/mocks"
)

// recordingPublisher keeps every published event in order
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func (p *recordingPublisher) count(t event.Type) int {
	n := 0
	for _, et := range p.types() {
		if et == t {
			n++
		}
	}
	return n
}

type fixture struct {
	svc   game.Service
	repo  repository.Game
	pub   *recordingPublisher
	sched *scheduler.Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	pool := worker.NewPool(2, 16, 5*time.Second)
	pool.Start()
	sched := scheduler.New(pool)
	t.Cleanup(func() {
		sched.Stop()
		pool.Stop()
	})

	repo := sqlite.NewGameRepository(db)
	pub := &recordingPublisher{}
	return &fixture{
		svc:   game.NewService(repo, vineyard.DefaultConfig(), pub, sched),
		repo:  repo,
		pub:   pub,
		sched: sched,
	}
}

func seed(v int64) *int64 { return &v }

func (f *fixture) create(t *testing.T) *domain.GameState {
	t.Helper()
	state, err := f.svc.CreateGame(context.Background(), game.CreateGameRequest{
		SessionID: "session-1",
		Region:    "bordeaux",
		Seed:      seed(42),
	})
	require.NoError(t, err)
	return state
}

// mutate edits a stored game directly, bypassing the engine
func (f *fixture) mutate(t *testing.T, id string, fn func(s *domain.GameState)) {
	t.Helper()
	ctx := context.Background()
	state, err := f.repo.GetGame(ctx, id)
	require.NoError(t, err)
	fn(state)
	require.NoError(t, f.repo.SaveGame(ctx, state))
}

func TestCreateGame(t *testing.T) {
	tests := []struct {
		name    string
		region  string
		wantErr error
	}{
		{name: "known region", region: "bordeaux"},
		{name: "case insensitive region", region: "Tuscany"},
		{name: "unknown region", region: "atlantis", wantErr: domain.ErrRegionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			state, err := f.svc.CreateGame(context.Background(), game.CreateGameRequest{
				SessionID: "s",
				Region:    tt.region,
				Seed:      seed(1),
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.pub.types())
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, state.ID)
			assert.Equal(t, int64(1), state.Seed)
			assert.Equal(t, []event.Type{event.GameCreated}, f.pub.types())

			stored, err := f.svc.GetGame(context.Background(), state.ID)
			require.NoError(t, err)
			assert.Equal(t, state.Region, stored.Region)
			assert.Zero(t, stored.Tick)
		})
	}
}

func TestAdvanceDay_PersistsAndPublishes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.create(t)

	res, err := f.svc.AdvanceDay(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Day+1, res.State.Day)
	assert.Equal(t, int64(1), res.State.Tick)
	assert.NotNil(t, res.Notifications)

	stored, err := f.svc.GetGame(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, res.State.Day, stored.Day)
	assert.Equal(t, res.State.Version, stored.Version)
	assert.Equal(t, 1, f.pub.count(event.DayAdvanced))
	assert.Equal(t, len(res.Notifications), f.pub.count(event.NotificationRaised))
}

func TestOperations_ReplayDeterministically(t *testing.T) {
	play := func() *domain.GameState {
		f := newFixture(t)
		ctx := context.Background()
		g := f.create(t)
		_, err := f.svc.Plant(ctx, g.ID, 1, "merlot", false)
		require.NoError(t, err)
		_, err = f.svc.Plant(ctx, g.ID, 2, "syrah", false)
		require.NoError(t, err)

		var last *domain.GameState
		for i := 0; i < 90; i++ {
			res, err := f.svc.AdvanceDay(ctx, g.ID)
			if err != nil {
				require.ErrorIs(t, err, domain.ErrGameOver)
				break
			}
			last = res.State
		}
		return last
	}

	a, b := play(), play()
	assert.Equal(t, a.Day, b.Day)
	assert.Equal(t, a.Weather, b.Weather)
	assert.Equal(t, a.Plots, b.Plots)
	assert.Equal(t, a.Economy, b.Economy)
}

func TestOperation_FailureLeavesGameUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.create(t)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"unknown variety", func() error {
			_, err := f.svc.Plant(ctx, g.ID, 1, "zinfandel", false)
			return err
		}, domain.ErrVarietyNotFound},
		{"locked plot", func() error {
			_, err := f.svc.Water(ctx, g.ID, 9)
			return err
		}, domain.ErrPlotLocked},
		{"empty plot", func() error {
			_, err := f.svc.Fertilize(ctx, g.ID, 1)
			return err
		}, domain.ErrPlotEmpty},
		{"unknown wine", func() error {
			_, err := f.svc.SellWine(ctx, g.ID, "nope")
			return err
		}, domain.ErrWineNotFound},
		{"unknown game", func() error {
			_, err := f.svc.AdvanceDay(ctx, "00000000-0000-0000-0000-000000000000")
			return err
		}, domain.ErrGameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.wantErr)
		})
	}

	stored, err := f.svc.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Tick)
	assert.Equal(t, g.Version, stored.Version)
	assert.Equal(t, []event.Type{event.GameCreated}, f.pub.types())
}

func TestHarvestAndSellWine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.create(t)
	f.mutate(t, g.ID, func(s *domain.GameState) {
		s.Day = 65
		p := s.Plot(1)
		p.IsPlanted = true
		p.VarietyID = "cabernet_sauvignon"
		p.Growth = 100
		p.Health = 80
		p.Fertilizer = 40
	})

	res, err := f.svc.Harvest(ctx, g.ID, 1, domain.HarvestMakeWine)
	require.NoError(t, err)
	require.NotNil(t, res.Wine)
	assert.Equal(t, 82, res.Wine.Quality)
	require.Len(t, res.State.Wines, 1)
	assert.Equal(t, 1, f.pub.count(event.WineProduced))

	money := res.State.Economy.Money
	sold, err := f.svc.SellWine(ctx, g.ID, res.Wine.ID)
	require.NoError(t, err)
	assert.Positive(t, sold.Earned)
	assert.Equal(t, money+sold.Earned, sold.State.Economy.Money)
	assert.Empty(t, sold.State.Wines)
	require.NotNil(t, sold.Wine)
	assert.Equal(t, sold.Earned, sold.Wine.Value)
	assert.Equal(t, 1, f.pub.count(event.WineSold))
}

func TestBulkActionsReportProcessed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.create(t)
	f.mutate(t, g.ID, func(s *domain.GameState) {
		for _, id := range []int{1, 2} {
			p := s.Plot(id)
			p.IsPlanted = true
			p.VarietyID = "merlot"
			p.Water = 10
			p.Fertilizer = 10
		}
	})

	res, err := f.svc.WaterAll(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)

	res, err = f.svc.FertilizeAll(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
}

func TestGameEnd_PublishedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.create(t)
	f.mutate(t, g.ID, func(s *domain.GameState) { s.Economy.Money = -10 })

	res, err := f.svc.AdvanceDay(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GameStatusOver, res.State.Status)
	assert.Equal(t, domain.EndReasonBankruptcy, res.State.EndReason)

	_, err = f.svc.AdvanceDay(ctx, g.ID)
	assert.ErrorIs(t, err, domain.ErrGameOver)
	assert.Equal(t, 1, f.pub.count(event.GameEnded))
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.create(t)

	res, err := f.svc.UpdateSettings(ctx, g.ID, true)
	require.NoError(t, err)
	assert.True(t, res.State.Settings.AutoCoverDisasters)

	stored, err := f.svc.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, stored.Settings.AutoCoverDisasters)
}

func TestListAndDeleteGames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.create(t)
	f.create(t)

	games, err := f.svc.ListGames(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, games, 2)

	require.NoError(t, f.svc.DeleteGame(ctx, a.ID))
	_, err = f.svc.GetGame(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
	assert.ErrorIs(t, f.svc.DeleteGame(ctx, a.ID), domain.ErrGameNotFound)
}

func TestGetMastery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.create(t)
	f.mutate(t, g.ID, func(s *domain.GameState) {
		s.ClimateProgress[s.ClimateCode] = 100
		s.ClimateProgress["Csa"] = 5
	})

	levels, err := f.svc.GetMastery(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, g.ClimateCode, levels[0].ClimateCode)
	assert.Equal(t, "Master", levels[0].Title)
}

func TestAdvanceDay_VersionConflict(t *testing.T) {
	repo := mocks.NewMockGameRepository(t)
	pub := mocks.NewMockEventPublisher(t)
	svc := game.NewService(repo, vineyard.DefaultConfig(), pub, nil)

	state, err := vineyard.NewGame(vineyard.DefaultConfig(), vineyard.NewGameOptions{
		ID: "g1", SessionID: "s", Region: "bordeaux", Seed: 3, Now: time.Now(),
	})
	require.NoError(t, err)

	repo.On("GetGame", mock.Anything, "g1").Return(state, nil)
	repo.On("SaveGame", mock.Anything, mock.AnythingOfType("*domain.GameState")).Return(domain.ErrVersionConflict)

	_, err = svc.AdvanceDay(context.Background(), "g1")
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	pub.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything)
}

func TestAutoAdvance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.create(t)

	t.Run("interval bounds", func(t *testing.T) {
		for _, d := range []time.Duration{time.Millisecond, time.Minute} {
			assert.ErrorIs(t, f.svc.StartAutoAdvance(ctx, g.ID, d), domain.ErrInvalidInput)
		}
	})

	t.Run("stop when idle", func(t *testing.T) {
		assert.ErrorIs(t, f.svc.StopAutoAdvance(ctx, g.ID), domain.ErrAutoAdvanceStopped)
	})

	t.Run("advances until stopped", func(t *testing.T) {
		require.NoError(t, f.svc.StartAutoAdvance(ctx, g.ID, game.MinAutoAdvanceInterval))
		assert.ErrorIs(t, f.svc.StartAutoAdvance(ctx, g.ID, game.MinAutoAdvanceInterval), domain.ErrAutoAdvanceRunning)

		state, err := f.svc.GetGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, state.Settings.AutoAdvanceInterval)

		require.Eventually(t, func() bool {
			s, err := f.svc.GetGame(ctx, g.ID)
			return err == nil && s.Day >= g.Day+2
		}, 5*time.Second, 50*time.Millisecond)

		require.NoError(t, f.svc.StopAutoAdvance(ctx, g.ID))
		state, err = f.svc.GetGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Zero(t, state.Settings.AutoAdvanceInterval)
	})
}

func TestAutoAdvance_HaltsWhenGameEnds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.create(t)
	f.mutate(t, g.ID, func(s *domain.GameState) { s.Economy.Money = -10 })

	require.NoError(t, f.svc.StartAutoAdvance(ctx, g.ID, game.MinAutoAdvanceInterval))
	require.Eventually(t, func() bool {
		return f.sched.Active() == 0
	}, 5*time.Second, 50*time.Millisecond)

	state, err := f.svc.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, state.IsFinished())
	assert.Equal(t, 1, f.pub.count(event.GameEnded))
	assert.ErrorIs(t, f.svc.StartAutoAdvance(ctx, g.ID, 0), domain.ErrGameOver)
}
