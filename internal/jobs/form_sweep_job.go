package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultFormSweepSchedule runs the sweep at the top of every minute.
const DefaultFormSweepSchedule = "0 * * * * *"

// SweepHandler removes expired delivery forms and reports how many it removed.
type SweepHandler interface {
	Handle(ctx context.Context, cmd commands.SweepExpiredFormsCommand) (int, error)
}

// FormSweepJob removes delivery forms nobody touched within the session TTL.
type FormSweepJob struct {
	handler  SweepHandler
	cmd      commands.SweepExpiredFormsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFormSweepJob schedules handler with a six-field cron expression
// (seconds first). An empty schedule means DefaultFormSweepSchedule.
func NewFormSweepJob(
	handler SweepHandler,
	cmd commands.SweepExpiredFormsCommand,
	schedule string,
	logger *slog.Logger,
) *FormSweepJob {
	if schedule == "" {
		schedule = DefaultFormSweepSchedule
	}
	return &FormSweepJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "form_sweep_job"),
	}
}

func (j *FormSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Form sweep job started",
		"schedule", j.schedule,
		"ttl", j.cmd.TTL().String())
	return nil
}

// Run performs one sweep. Start calls it on schedule.
func (j *FormSweepJob) Run() {
	ctx := context.Background()

	removed, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Form sweep job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired delivery forms removed", "count", removed)
	}
}

// Stop waits for a running sweep to finish.
func (j *FormSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Form sweep job stopped")
}
