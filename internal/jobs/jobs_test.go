package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSweepHandler struct{ mock.Mock }

func (m *MockSweepHandler) Handle(ctx context.Context, cmd commands.SweepExpiredFormsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sweepCommand(t *testing.T) commands.SweepExpiredFormsCommand {
	t.Helper()
	cmd, err := commands.NewSweepExpiredFormsCommand(30 * time.Minute)
	require.NoError(t, err)
	return cmd
}

func TestFormSweepJob_Run(t *testing.T) {
	cmd := sweepCommand(t)

	t.Run("removes expired forms", func(t *testing.T) {
		handler := new(MockSweepHandler)
		handler.On("Handle", mock.Anything, cmd).Return(3, nil).Once()

		jobs.NewFormSweepJob(handler, cmd, "", discardLogger()).Run()

		handler.AssertExpectations(t)
	})

	t.Run("failure is logged, not raised", func(t *testing.T) {
		handler := new(MockSweepHandler)
		handler.On("Handle", mock.Anything, cmd).Return(0, errors.New("redis down")).Once()

		assert.NotPanics(t, func() {
			jobs.NewFormSweepJob(handler, cmd, "", discardLogger()).Run()
		})
		handler.AssertExpectations(t)
	})
}

func TestFormSweepJob_StartRunsOnSchedule(t *testing.T) {
	cmd := sweepCommand(t)
	handler := new(MockSweepHandler)
	called := make(chan struct{}, 1)
	handler.On("Handle", mock.Anything, cmd).Return(0, nil).Run(func(mock.Arguments) {
		select {
		case called <- struct{}{}:
		default:
		}
	})

	job := jobs.NewFormSweepJob(handler, cmd, "* * * * * *", discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}
}

func TestFormSweepJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewFormSweepJob(new(MockSweepHandler), sweepCommand(t), "every minute", discardLogger())

	require.Error(t, job.Start())
}

type fakeJob struct {
	startErr error
	events   *[]string
	name     string
}

func (j fakeJob) Start() error {
	*j.events = append(*j.events, "start "+j.name)
	return j.startErr
}

func (j fakeJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func TestJobManager(t *testing.T) {
	t.Run("starts in order and stops in reverse", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManager().
			Add("a", fakeJob{name: "a", events: &events}).
			Add("b", fakeJob{name: "b", events: &events})

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
	})

	t.Run("failed start stops the jobs already running", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManager().
			Add("a", fakeJob{name: "a", events: &events}).
			Add("b", fakeJob{name: "b", events: &events, startErr: errors.New("bad schedule")})

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start b job")
		assert.Equal(t, []string{"start a", "start b", "stop a"}, events)
	})
}
