package eventlog

import (
	"context"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/worker"
)

// NewCleanupJob prunes journal entries older than retentionDays each time it runs
func NewCleanupJob(service Service, retentionDays int) worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		log := logger.FromContext(ctx).With("retention_days", retentionDays)
		log.Debug(LogMsgCleanupJobStarting)

		started := time.Now()
		deleted, err := service.CleanupOldEvents(ctx, retentionDays)
		if err != nil {
			log.Error(LogMsgCleanupJobFailed, "error", err, "elapsed", time.Since(started))
			return err
		}
		log.Info(LogMsgCleanupJobDone, "deleted", deleted, "elapsed", time.Since(started))
		return nil
	})
}
