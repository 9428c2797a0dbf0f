package jobs

import (
	"context"
	"log/slog"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RelaySchedule runs the relay every second.
const RelaySchedule = "* * * * * *"

// OutboxRelayJob publishes pending outbox messages on a schedule.
type OutboxRelayJob struct {
	handler usecases.CommandHandler[commands.RelayOutboxCommand]
	batch   int
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewOutboxRelayJob(
	handler usecases.CommandHandler[commands.RelayOutboxCommand],
	batch int,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler: handler,
		batch:   batch,
		cron:    newCron(),
		logger:  logger.With("component", "outbox_relay_job"),
	}
}

// Start validates the batch size up front so a bad setting fails at boot
// rather than on every tick.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batch)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(RelaySchedule, func() { j.run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", RelaySchedule, "batch", j.batch)
	return nil
}

func (j *OutboxRelayJob) run(ctx context.Context, cmd commands.RelayOutboxCommand) {
	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
	}
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
