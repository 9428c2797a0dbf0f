package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurgeSchedule runs the purge at the top of every hour.
const PurgeSchedule = "0 0 * * * *"

// OutboxPurgeJob deletes published outbox messages older than the retention.
type OutboxPurgeJob struct {
	handler   usecases.CommandHandler[commands.PurgeOutboxCommand]
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxPurgeJob(
	handler usecases.CommandHandler[commands.PurgeOutboxCommand],
	retention time.Duration,
	logger *slog.Logger,
) *OutboxPurgeJob {
	return &OutboxPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      newCron(),
		logger:    logger.With("component", "outbox_purge_job"),
	}
}

func (j *OutboxPurgeJob) Start() error {
	cmd, err := commands.NewPurgeOutboxCommand(j.retention)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(PurgeSchedule, func() { j.run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox purge job started", "schedule", PurgeSchedule, "retention", j.retention.String())
	return nil
}

func (j *OutboxPurgeJob) run(ctx context.Context, cmd commands.PurgeOutboxCommand) {
	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Outbox purge job failed", "error", err)
	}
}

func (j *OutboxPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox purge job stopped")
}
