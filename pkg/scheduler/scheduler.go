package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/syncer"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner performs one sync run
type Runner interface {
	Run(ctx context.Context, dryRun bool, source domain.Source) (domain.RunReport, error)
}

// Params for NewScheduler
type Params struct {
	Runner     Runner
	Interval   time.Duration // time between runs, default 1h
	RunOnStart bool          // run immediately on start instead of after the first interval
}

// Scheduler runs cron-sourced syncs periodically
type Scheduler struct {
	runner     Runner
	interval   time.Duration
	runOnStart bool
	wg         sync.WaitGroup
	cancel     context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.Interval == 0 {
		params.Interval = time.Hour
	}
	return &Scheduler{runner: params.Runner, interval: params.Interval, runOnStart: params.RunOnStart}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.syncWorker(ctx)

	lgr.Printf("[INFO] scheduler started with sync interval %v, run on start %v", s.interval, s.runOnStart)
}

// Stop gracefully stops the scheduler, waiting for an active run to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// syncWorker periodically runs the sync
func (s *Scheduler) syncWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.runSync(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

// runSync performs a scheduled run, results only go to the log
func (s *Scheduler) runSync(ctx context.Context) {
	rep, err := s.runner.Run(ctx, false, domain.SourceCron)
	switch {
	case errors.Is(err, syncer.ErrRunInProgress):
		lgr.Printf("[INFO] scheduled sync skipped, another run is in progress")
	case err != nil:
		lgr.Printf("[WARN] scheduled sync failed: %v", err)
	default:
		lgr.Printf("[DEBUG] scheduled sync finished, run %s", rep.RunID)
	}
}
