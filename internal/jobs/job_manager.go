package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	relayJob *OutboxRelayJob
	purgeJob *OutboxPurgeJob
}

type Settings struct {
	RelayBatch      int
	OutboxRetention time.Duration
}

func NewJobManager(
	relayHandler usecases.CommandHandler[commands.RelayOutboxCommand],
	purgeHandler usecases.CommandHandler[commands.PurgeOutboxCommand],
	settings Settings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		relayJob: NewOutboxRelayJob(relayHandler, settings.RelayBatch, logger),
		purgeJob: NewOutboxPurgeJob(purgeHandler, settings.OutboxRetention, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.relayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.purgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.relayJob.Stop()
		return fmt.Errorf("failed to start outbox purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.purgeJob.Stop()
	jm.relayJob.Stop()
}

// newCron skips a tick while the previous run is still going, so slow
// publishes never overlap.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
