package game

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/metrics"
)

// advanceJob advances one game by a day on every scheduler tick
type advanceJob struct {
	svc    *service
	gameID string
}

// Process implements worker.Job
func (j *advanceJob) Process(ctx context.Context) error {
	ctx = logger.WithGameID(ctx, j.gameID)

	_, err := j.svc.AdvanceDay(ctx, j.gameID)
	if err == nil {
		return nil
	}
	if isTerminal(err) {
		j.svc.cancelAutoAdvance(j.gameID)
		logger.FromContext(ctx).Info(LogMsgAutoAdvanceHalted, "reason", err.Error())
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgAutoAdvanceTickError, "error", err)
	return err
}

func (s *service) StartAutoAdvance(ctx context.Context, gameID string, interval time.Duration) error {
	if s.scheduler == nil {
		return fmt.Errorf("%w: auto-advance is disabled", domain.ErrInvalidInput)
	}
	if interval == 0 {
		interval = DefaultAutoAdvanceInterval
	}
	if interval < MinAutoAdvanceInterval || interval > MaxAutoAdvanceInterval {
		return fmt.Errorf("%w: interval must be between %s and %s",
			domain.ErrInvalidInput, MinAutoAdvanceInterval, MaxAutoAdvanceInterval)
	}

	state, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if state.IsFinished() {
		return domain.ErrGameOver
	}

	if !s.scheduler.Start(gameID, interval, &advanceJob{svc: s, gameID: gameID}) {
		return domain.ErrAutoAdvanceRunning
	}
	metrics.AutoAdvanceActive.Set(float64(s.scheduler.Active()))

	logger.FromContext(ctx).Info(LogMsgAutoAdvanceStarted, "game_id", gameID, "interval", interval)
	return nil
}

func (s *service) StopAutoAdvance(ctx context.Context, gameID string) error {
	if !s.cancelAutoAdvance(gameID) {
		return domain.ErrAutoAdvanceStopped
	}
	logger.FromContext(ctx).Info(LogMsgAutoAdvanceStopped, "game_id", gameID)
	return nil
}

func (s *service) cancelAutoAdvance(gameID string) bool {
	if s.scheduler == nil {
		return false
	}
	cancelled := s.scheduler.Cancel(gameID)
	metrics.AutoAdvanceActive.Set(float64(s.scheduler.Active()))
	return cancelled
}
