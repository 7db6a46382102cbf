// Package game runs vineyard operations against stored games: it loads a game,
// applies one engine operation, saves the result and announces what happened.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/VineyardSim_Go/internal/concurrency"
	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/metrics"
	"github.com/osse101/VineyardSim_Go/internal/repository"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
	"github.com/osse101/VineyardSim_Go/internal/worker"
)

// Service defines the vineyard game operations
type Service interface {
	CreateGame(ctx context.Context, req CreateGameRequest) (*domain.GameState, error)
	GetGame(ctx context.Context, gameID string) (*domain.GameState, error)
	ListGames(ctx context.Context, sessionID string) ([]domain.GameSummary, error)
	DeleteGame(ctx context.Context, gameID string) error
	GetMastery(ctx context.Context, gameID string) ([]domain.MasteryLevel, error)

	AdvanceDay(ctx context.Context, gameID string) (*domain.TurnResult, error)
	Plant(ctx context.Context, gameID string, plotID int, varietyID string, confirm bool) (*domain.TurnResult, error)
	Water(ctx context.Context, gameID string, plotID int) (*domain.TurnResult, error)
	Fertilize(ctx context.Context, gameID string, plotID int) (*domain.TurnResult, error)
	WaterAll(ctx context.Context, gameID string) (*domain.TurnResult, error)
	FertilizeAll(ctx context.Context, gameID string) (*domain.TurnResult, error)
	Harvest(ctx context.Context, gameID string, plotID int, mode domain.HarvestMode) (*domain.TurnResult, error)
	SellWine(ctx context.Context, gameID, wineID string) (*domain.TurnResult, error)
	TreatDisease(ctx context.Context, gameID string, plotID int) (*domain.TurnResult, error)
	BuyUpgrade(ctx context.Context, gameID string, kind domain.UpgradeKind) (*domain.TurnResult, error)
	Expand(ctx context.Context, gameID string) (*domain.TurnResult, error)
	BuySupplies(ctx context.Context, gameID string, water, fertilizer int) (*domain.TurnResult, error)
	SetRegion(ctx context.Context, gameID, region string) (*domain.TurnResult, error)
	UpdateSettings(ctx context.Context, gameID string, autoCover bool) (*domain.TurnResult, error)

	StartAutoAdvance(ctx context.Context, gameID string, interval time.Duration) error
	StopAutoAdvance(ctx context.Context, gameID string) error
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Scheduler runs keyed periodic jobs
type Scheduler interface {
	Start(key string, interval time.Duration, job worker.Job) bool
	Cancel(key string) bool
	Interval(key string) (time.Duration, bool)
	Active() int
}

// CreateGameRequest holds the player's choices for a new game
type CreateGameRequest struct {
	SessionID          string
	Region             string
	Seed               *int64
	AutoCoverDisasters bool
}

type service struct {
	repo      repository.Game
	cfg       *vineyard.Config
	publisher EventPublisher
	scheduler Scheduler
	locks     *concurrency.LockManager

	now     func() time.Time
	newSeed func() int64
}

// NewService creates a new game service. publisher and scheduler may be nil.
func NewService(repo repository.Game, cfg *vineyard.Config, publisher EventPublisher, scheduler Scheduler) Service {
	return &service{
		repo:      repo,
		cfg:       cfg,
		publisher: publisher,
		scheduler: scheduler,
		locks:     concurrency.NewLockManager(),
		now:       func() time.Time { return time.Now().UTC() },
		newSeed:   func() int64 { return time.Now().UnixNano() },
	}
}

func (s *service) CreateGame(ctx context.Context, req CreateGameRequest) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	seed := s.newSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	state, err := vineyard.NewGame(s.cfg, vineyard.NewGameOptions{
		ID:        uuid.NewString(),
		SessionID: req.SessionID,
		Region:    req.Region,
		Seed:      seed,
		Settings:  domain.GameSettings{AutoCoverDisasters: req.AutoCoverDisasters},
		Now:       s.now(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateGame(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.publish(ctx, event.NewGameCreatedEvent(state))
	log.Info(LogMsgGameCreated, "game_id", state.ID, "region", state.Region, "seed", seed)
	return state, nil
}

func (s *service) GetGame(ctx context.Context, gameID string) (*domain.GameState, error) {
	state, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	s.decorate(state)
	return state, nil
}

func (s *service) ListGames(ctx context.Context, sessionID string) ([]domain.GameSummary, error) {
	return s.repo.ListGames(ctx, sessionID)
}

func (s *service) DeleteGame(ctx context.Context, gameID string) error {
	s.cancelAutoAdvance(gameID)

	err := s.locks.WithLock(gameID, func() error {
		return s.repo.DeleteGame(ctx, gameID)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgGameDeleted, "game_id", gameID)
	return nil
}

func (s *service) GetMastery(ctx context.Context, gameID string) ([]domain.MasteryLevel, error) {
	state, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	codes := []string{state.ClimateCode}
	for code := range state.ClimateProgress {
		if code != state.ClimateCode {
			codes = append(codes, code)
		}
	}

	levels := make([]domain.MasteryLevel, 0, len(codes))
	for _, code := range codes {
		levels = append(levels, vineyard.Mastery(s.cfg, state, code))
	}
	return levels, nil
}

// operation mutates the engine and fills in any op-specific fields of the result
type operation func(e *vineyard.Engine, result *domain.TurnResult) error

// apply runs one engine operation under the game's lock and persists the outcome
func (s *service) apply(ctx context.Context, op, gameID string, fn operation) (*domain.TurnResult, error) {
	ctx = logger.WithGameID(ctx, gameID)
	start := time.Now()

	var (
		result *domain.TurnResult
		ended  bool
	)
	err := s.locks.WithLock(gameID, func() error {
		var err error
		result, ended, err = s.applyLocked(ctx, gameID, fn)
		return err
	})

	metrics.GameOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GameOperations.WithLabelValues(op, metrics.ResultError).Inc()
		logger.FromContext(ctx).Debug(LogMsgOperationFailed, "operation", op, "error", err)
		return nil, err
	}
	metrics.GameOperations.WithLabelValues(op, metrics.ResultSuccess).Inc()

	s.announce(ctx, op, result)
	if ended {
		s.cancelAutoAdvance(gameID)
		s.publish(ctx, event.NewGameEndedEvent(result.State))
		logger.FromContext(ctx).Info(LogMsgGameFinished,
			"status", result.State.Status, "reason", result.State.EndReason, "day", result.State.Day)
	}

	s.decorate(result.State)
	return result, nil
}

func (s *service) applyLocked(ctx context.Context, gameID string, fn operation) (*domain.TurnResult, bool, error) {
	state, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, false, err
	}
	wasFinished := state.IsFinished()

	engine := vineyard.NewEngine(s.cfg, state,
		vineyard.NewRand(state.Seed, state.Tick), vineyard.DeciderFor(state.Settings))

	result := &domain.TurnResult{}
	if err := fn(engine, result); err != nil {
		return nil, false, err
	}

	state.Tick++
	if err := s.repo.SaveGame(ctx, state); err != nil {
		return nil, false, err
	}

	result.State = state
	result.Notifications = engine.Notifications()
	if result.Notifications == nil {
		result.Notifications = []domain.Notification{}
	}
	return result, !wasFinished && state.IsFinished(), nil
}

// announce publishes what an operation did
func (s *service) announce(ctx context.Context, op string, result *domain.TurnResult) {
	id := result.State.ID

	if op == OpAdvanceDay {
		s.publish(ctx, event.NewDayAdvancedEvent(result.State))
	}
	if result.Wine != nil {
		eventType := event.WineProduced
		if op == OpSellWine {
			eventType = event.WineSold
		}
		s.publish(ctx, event.NewWineEvent(eventType, id, *result.Wine))
	}
	for _, n := range result.Notifications {
		s.publish(ctx, event.NewNotificationEvent(id, n))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

// decorate fills fields that live outside storage
func (s *service) decorate(state *domain.GameState) {
	state.Settings.AutoAdvanceInterval = 0
	if s.scheduler == nil {
		return
	}
	if interval, ok := s.scheduler.Interval(state.ID); ok {
		state.Settings.AutoAdvanceInterval = int(interval / time.Millisecond)
	}
}

func (s *service) AdvanceDay(ctx context.Context, gameID string) (*domain.TurnResult, error) {
	return s.apply(ctx, OpAdvanceDay, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		_, err := e.AdvanceDay()
		return err
	})
}

func (s *service) Plant(ctx context.Context, gameID string, plotID int, varietyID string, confirm bool) (*domain.TurnResult, error) {
	return s.apply(ctx, OpPlant, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		return e.Plant(plotID, varietyID, confirm)
	})
}

func (s *service) Water(ctx context.Context, gameID string, plotID int) (*domain.TurnResult, error) {
	return s.apply(ctx, OpWater, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		return e.Water(plotID)
	})
}

func (s *service) Fertilize(ctx context.Context, gameID string, plotID int) (*domain.TurnResult, error) {
	return s.apply(ctx, OpFertilize, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		return e.Fertilize(plotID)
	})
}

func (s *service) WaterAll(ctx context.Context, gameID string) (*domain.TurnResult, error) {
	return s.apply(ctx, OpWaterAll, gameID, func(e *vineyard.Engine, r *domain.TurnResult) error {
		n, err := e.WaterAll()
		r.Processed = n
		return err
	})
}

func (s *service) FertilizeAll(ctx context.Context, gameID string) (*domain.TurnResult, error) {
	return s.apply(ctx, OpFertilizeAll, gameID, func(e *vineyard.Engine, r *domain.TurnResult) error {
		n, err := e.FertilizeAll()
		r.Processed = n
		return err
	})
}

func (s *service) Harvest(ctx context.Context, gameID string, plotID int, mode domain.HarvestMode) (*domain.TurnResult, error) {
	return s.apply(ctx, OpHarvest, gameID, func(e *vineyard.Engine, r *domain.TurnResult) error {
		hr, err := e.Harvest(plotID, mode)
		if err != nil {
			return err
		}
		r.Earned = hr.Earned
		r.Wine = hr.Wine
		return nil
	})
}

func (s *service) SellWine(ctx context.Context, gameID, wineID string) (*domain.TurnResult, error) {
	return s.apply(ctx, OpSellWine, gameID, func(e *vineyard.Engine, r *domain.TurnResult) error {
		var sold *domain.Wine
		for _, w := range e.State().Wines {
			if w.ID == wineID {
				sold = &w
				break
			}
		}
		earned, err := e.SellWine(wineID)
		if err != nil {
			return err
		}
		r.Earned = earned
		if sold != nil {
			sold.Value = earned
			r.Wine = sold
		}
		return nil
	})
}

func (s *service) TreatDisease(ctx context.Context, gameID string, plotID int) (*domain.TurnResult, error) {
	return s.apply(ctx, OpTreat, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		return e.TreatDisease(plotID)
	})
}

func (s *service) BuyUpgrade(ctx context.Context, gameID string, kind domain.UpgradeKind) (*domain.TurnResult, error) {
	return s.apply(ctx, OpUpgrade, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		return e.BuyUpgrade(kind)
	})
}

func (s *service) Expand(ctx context.Context, gameID string) (*domain.TurnResult, error) {
	return s.apply(ctx, OpExpand, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		return e.Expand()
	})
}

func (s *service) BuySupplies(ctx context.Context, gameID string, water, fertilizer int) (*domain.TurnResult, error) {
	return s.apply(ctx, OpSupplies, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		return e.BuySupplies(water, fertilizer)
	})
}

func (s *service) SetRegion(ctx context.Context, gameID, region string) (*domain.TurnResult, error) {
	return s.apply(ctx, OpSetRegion, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		return e.SetRegion(region)
	})
}

func (s *service) UpdateSettings(ctx context.Context, gameID string, autoCover bool) (*domain.TurnResult, error) {
	return s.apply(ctx, OpSettings, gameID, func(e *vineyard.Engine, _ *domain.TurnResult) error {
		state := e.State()
		if state.IsFinished() {
			return domain.ErrGameOver
		}
		state.Settings.AutoCoverDisasters = autoCover
		return nil
	})
}

// isTerminal reports errors after which a game can never advance again
func isTerminal(err error) bool {
	return errors.Is(err, domain.ErrGameOver) || errors.Is(err, domain.ErrGameNotFound)
}
