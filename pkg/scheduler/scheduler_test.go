package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/scheduler/mocks"
	"github.com/umputun/feedsync/pkg/syncer"
)

func TestNewScheduler(t *testing.T) {
	runner := &mocks.RunnerMock{}
	s := NewScheduler(Params{Runner: runner, Interval: 5 * time.Minute, RunOnStart: true})
	assert.Equal(t, 5*time.Minute, s.interval)
	assert.True(t, s.runOnStart)

	s = NewScheduler(Params{Runner: runner})
	assert.Equal(t, time.Hour, s.interval)
	assert.False(t, s.runOnStart)
}

func TestScheduler_StartStop(t *testing.T) {
	var calls int32
	runner := &mocks.RunnerMock{RunFunc: func(_ context.Context, dryRun bool, source domain.Source) (domain.RunReport, error) {
		assert.False(t, dryRun)
		assert.Equal(t, domain.SourceCron, source)
		n := atomic.AddInt32(&calls, 1)
		switch n {
		case 1:
			return domain.RunReport{}, syncer.ErrRunInProgress
		case 2:
			return domain.RunReport{Errors: 1}, &syncer.FetchError{URL: "http://x", Err: errors.New("timeout")}
		}
		return domain.RunReport{RunID: "r"}, nil
	}}
	s := NewScheduler(Params{Runner: runner, Interval: 30 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	time.Sleep(150 * time.Millisecond)
	s.Stop()

	n := len(runner.RunCalls())
	assert.GreaterOrEqual(t, n, 3, "errors don't stop the schedule")

	time.Sleep(60 * time.Millisecond)
	assert.Len(t, runner.RunCalls(), n, "no runs after stop")
}

func TestScheduler_RunOnStart(t *testing.T) {
	done := make(chan struct{})
	runner := &mocks.RunnerMock{RunFunc: func(context.Context, bool, domain.Source) (domain.RunReport, error) {
		select {
		case <-done:
		default:
			close(done)
		}
		return domain.RunReport{}, nil
	}}
	s := NewScheduler(Params{Runner: runner, Interval: time.Hour, RunOnStart: true})
	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "run on start didn't happen")
	}
	assert.Len(t, runner.RunCalls(), 1)
}
