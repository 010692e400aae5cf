package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	DefaultTipExpirySchedule = "*/10 * * * * *"
	DefaultTipExpiryBatch    = 100
)

// TipExpirer fails tips whose gateway result never arrived.
type TipExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireTipsCommand) (int, error)
}

// TipExpiryJob periodically fails PENDING tips older than the payment timeout.
// A run that is still going when the next tick fires makes that tick a no-op.
type TipExpiryJob struct {
	handler  TipExpirer
	schedule string
	timeout  time.Duration
	batch    int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTipExpiryJob creates the job. schedule is a six-field cron expression
// with seconds.
func NewTipExpiryJob(
	handler TipExpirer,
	schedule string,
	timeout time.Duration,
	batch int,
	logger *slog.Logger,
) *TipExpiryJob {
	if schedule == "" {
		schedule = DefaultTipExpirySchedule
	}
	if batch <= 0 {
		batch = DefaultTipExpiryBatch
	}
	return &TipExpiryJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		batch:    batch,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "tip_expiry_job"),
	}
}

func (j *TipExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tip expiry job started",
		"schedule", j.schedule, "timeout", j.timeout.String())
	return nil
}

// Stop waits for a running expiry pass to finish.
func (j *TipExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Tip expiry job stopped")
}

func (j *TipExpiryJob) run() {
	ctx := context.Background()
	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Tip expiry job failed", "error", err)
	}
}

// RunOnce performs a single expiry pass and returns how many tips it failed.
func (j *TipExpiryJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpireTipsCommand(j.timeout, j.batch)
	if err != nil {
		return 0, err
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired pending tips", "count", expired)
	}
	return expired, nil
}
