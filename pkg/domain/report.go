package domain

import (
	"fmt"
	"time"
)

// Source identifies what triggered a sync run
type Source string

const (
	SourceManual Source = "manual"
	SourceCron   Source = "cron"
)

// Outcome is the terminal state of a single feed item
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeSkipped Outcome = "skipped"
	OutcomeError   Outcome = "error"
)

// SweepPolicy decides what happens to feed-origin products missing from the feed
type SweepPolicy string

const (
	// SweepFlag demotes the product to draft and marks it as not in feed
	SweepFlag SweepPolicy = "flag"
	// SweepDelete removes the product permanently
	SweepDelete SweepPolicy = "delete"
)

// RunReport aggregates the counters of one sync run
type RunReport struct {
	RunID       string      `json:"run_id"`
	Source      Source      `json:"source"`
	DryRun      bool        `json:"dry_run"`
	SweepPolicy SweepPolicy `json:"sweep_policy"`
	StartedAt   time.Time   `json:"started_at"`
	FinishedAt  time.Time   `json:"finished_at"`

	Items    int `json:"items"`
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Deleted  int `json:"deleted"`
	Flagged  int `json:"flagged"`
	Restored int `json:"restored"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// Count adds an item outcome to the counters
func (r *RunReport) Count(o Outcome) {
	switch o {
	case OutcomeCreated:
		r.Created++
	case OutcomeUpdated:
		r.Updated++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeError:
		r.Errors++
	}
}

// Duration of the run, zero if not finished
func (r RunReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Summary renders the one-line completion message
func (r RunReport) Summary() string {
	mode := ""
	if r.DryRun {
		mode = " (dry-run)"
	}
	return fmt.Sprintf("sync%s done [%s]: items=%d created=%d updated=%d deleted=%d flagged=%d restored=%d skipped=%d errors=%d in %v",
		mode, r.Source, r.Items, r.Created, r.Updated, r.Deleted, r.Flagged, r.Restored, r.Skipped, r.Errors,
		r.Duration().Round(time.Millisecond))
}
