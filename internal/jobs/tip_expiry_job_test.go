package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tipExpirerMock struct {
	mock.Mock
}

func (m *tipExpirerMock) Handle(ctx context.Context, cmd commands.ExpireTipsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestTipExpiryJob_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("passes timeout and batch", func(t *testing.T) {
		handler := &tipExpirerMock{}
		handler.On("Handle", ctx, mock.MatchedBy(func(cmd commands.ExpireTipsCommand) bool {
			return cmd.Timeout() == 2*time.Minute && cmd.Batch() == 25
		})).Return(3, nil).Once()

		job := jobs.NewTipExpiryJob(handler, "", 2*time.Minute, 25, discard())
		expired, err := job.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, expired)
		handler.AssertExpectations(t)
	})

	t.Run("returns handler errors", func(t *testing.T) {
		boom := errors.New("database is down")
		handler := &tipExpirerMock{}
		handler.On("Handle", ctx, mock.Anything).Return(0, boom).Once()

		_, err := jobs.NewTipExpiryJob(handler, "", time.Minute, 0, discard()).RunOnce(ctx)

		require.ErrorIs(t, err, boom)
	})

	t.Run("rejects a non-positive timeout", func(t *testing.T) {
		handler := &tipExpirerMock{}

		_, err := jobs.NewTipExpiryJob(handler, "", 0, 10, discard()).RunOnce(ctx)

		require.Error(t, err)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestTipExpiryJob_Schedule(t *testing.T) {
	handler := &tipExpirerMock{}
	called := make(chan struct{}, 1)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Run(func(mock.Arguments) {
		select {
		case called <- struct{}{}:
		default:
		}
	})

	job := jobs.NewTipExpiryJob(handler, "* * * * * *", time.Minute, 10, discard())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("expiry job did not run")
	}
}

func TestTipExpiryJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewTipExpiryJob(&tipExpirerMock{}, "every ten seconds", time.Minute, 10, discard())

	require.Error(t, job.Start())
}

type fakeJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (f *fakeJob) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeJob) Stop() { f.stopped = true }

func TestJobManager_StopsStartedJobsWhenOneFails(t *testing.T) {
	first := &fakeJob{}
	broken := &fakeJob{startErr: errors.New("bad schedule")}

	jm := jobs.NewJobManager(jobs.NewTipExpiryJob(&tipExpirerMock{}, "0 0 0 1 1 *", time.Hour, 1, discard()))
	jm.Add("first", first)
	jm.Add("broken", broken)

	err := jm.StartAll()

	require.ErrorContains(t, err, "failed to start broken job")
	assert.True(t, first.started)
	assert.True(t, first.stopped)
	assert.False(t, broken.stopped)
}
