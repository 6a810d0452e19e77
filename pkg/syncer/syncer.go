// Package syncer reconciles the product feed against the catalog. One run fetches and parses the
// feed, creates or updates a product per feed item and sweeps feed-origin products missing from
// the feed.
package syncer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/feed"
	"github.com/umputun/feedsync/pkg/images"
	"github.com/umputun/feedsync/pkg/normalize"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog
//go:generate moq -out mocks/image_attacher.go -pkg mocks -skip-ensure -fmt goimports . ImageAttacher
//go:generate moq -out mocks/log_sink.go -pkg mocks -skip-ensure -fmt goimports . LogSink
//go:generate moq -out mocks/lease.go -pkg mocks -skip-ensure -fmt goimports . Lease

const leaseName = "feed-sync"

// Fetcher retrieves the feed document
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Parser splits the feed document into raw items
type Parser interface {
	Parse(body []byte) ([]domain.RawItem, error)
}

// Catalog is the product store the feed is reconciled against
type Catalog interface {
	FindBySKU(ctx context.Context, sku string) (id int64, found bool, err error)
	Load(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (int64, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
	SetMeta(ctx context.Context, id int64, key, value string) error
	DeleteMeta(ctx context.Context, id int64, key string) error
	Tag(ctx context.Context, id int64, taxonomy, value string) error
	Untag(ctx context.Context, id int64, taxonomy, value string) error
	QueryByMeta(ctx context.Context, key, value string, afterID int64, limit int) ([]int64, error)
}

// ImageAttacher resolves image urls to product image and gallery
type ImageAttacher interface {
	Attach(ctx context.Context, urls []string) images.Attachment
}

// LogSink receives operation log lines
type LogSink interface {
	Append(ctx context.Context, line string) error
}

// Lease is a persisted run lock shared between processes
type Lease interface {
	Acquire(ctx context.Context, name, owner string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, name, owner string) error
}

// Config defines run behavior
type Config struct {
	FeedURL          string
	SweepPolicy      domain.SweepPolicy // flag or delete, default flag
	OverwriteContent bool               // update name, description and price of existing products
	Workers          int                // parallel item reconciliation, default 1
	PageSize         int                // sweep page size, default 100
	LockTTL          time.Duration      // persisted lease expiry, default 30m
	ProductStatus    string             // status of created products, draft or pending
}

// Params for New. Images, Log and Lease are optional.
type Params struct {
	Fetcher Fetcher
	Parser  Parser
	Catalog Catalog
	Images  ImageAttacher
	Log     LogSink
	Lease   Lease
	Fields  feed.FieldMap
	Config  Config
}

// Status is a snapshot of the syncer state
type Status struct {
	Running   bool              `json:"running"`
	LastRun   *domain.RunReport `json:"last_run,omitempty"`
	LastError string            `json:"last_error,omitempty"`
}

// Syncer runs feed synchronization, one run at a time
type Syncer struct {
	Params
	collector *images.Collector
	sanitizer *normalize.Sanitizer

	runMu   sync.Mutex
	running atomic.Bool

	statusMu  sync.RWMutex
	lastRun   *domain.RunReport
	lastError string
}

// New makes a syncer with defaults applied to missing config values
func New(params Params) *Syncer {
	if params.Config.SweepPolicy == "" {
		params.Config.SweepPolicy = domain.SweepFlag
	}
	if params.Config.Workers <= 0 {
		params.Config.Workers = 1
	}
	if params.Config.PageSize <= 0 {
		params.Config.PageSize = 100
	}
	if params.Config.LockTTL <= 0 {
		params.Config.LockTTL = 30 * time.Minute
	}
	if params.Config.ProductStatus == "" {
		params.Config.ProductStatus = domain.StatusDraft
	}
	if params.Fields == (feed.FieldMap{}) {
		params.Fields = feed.DefaultFieldMap()
	}
	return &Syncer{
		Params:    params,
		collector: images.NewCollector(params.Fields.PrimaryImage, params.Fields.AdditionalImagePrefix),
		sanitizer: normalize.NewSanitizer(),
	}
}

// Run performs one sync. Fetch and parse failures are returned as *FetchError and *ParseError with
// Errors=1 in the report and nothing else done. A run overlapping another one gets ErrRunInProgress.
func (s *Syncer) Run(ctx context.Context, dryRun bool, source domain.Source) (domain.RunReport, error) {
	if !s.runMu.TryLock() {
		return domain.RunReport{}, ErrRunInProgress
	}
	defer s.runMu.Unlock()

	runID := uuid.NewString()
	if s.Lease != nil {
		ok, err := s.Lease.Acquire(ctx, leaseName, runID, s.Config.LockTTL)
		if err != nil {
			return domain.RunReport{}, fmt.Errorf("acquire run lease: %w", err)
		}
		if !ok {
			return domain.RunReport{}, ErrRunInProgress
		}
		defer func() {
			if err := s.Lease.Release(context.WithoutCancel(ctx), leaseName, runID); err != nil {
				lgr.Printf("[WARN] failed to release run lease %s: %v", runID, err)
			}
		}()
	}

	s.running.Store(true)
	defer s.running.Store(false)

	r := &run{
		Syncer: s,
		dryRun: dryRun,
		seen:   map[string]bool{},
		report: domain.RunReport{
			RunID:       runID,
			Source:      source,
			DryRun:      dryRun,
			SweepPolicy: s.Config.SweepPolicy,
			StartedAt:   time.Now(),
		},
	}
	r.logf("INFO", "sync started [%s], run %s, feed %s", source, runID, s.Config.FeedURL)

	err := r.execute(ctx)
	r.report.FinishedAt = time.Now()
	s.setLast(r.report, err)
	if err != nil {
		r.logf("ERROR", "sync failed [%s]: %v", source, err)
		return r.report, err
	}
	r.logf("INFO", "%s", r.report.Summary())
	return r.report, nil
}

// Status returns the current state and the outcome of the last run
func (s *Syncer) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	res := Status{Running: s.running.Load(), LastError: s.lastError}
	if s.lastRun != nil {
		last := *s.lastRun
		res.LastRun = &last
	}
	return res
}

func (s *Syncer) setLast(rep domain.RunReport, err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.lastRun = &rep
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// run is the state of a single sync run
type run struct {
	*Syncer
	dryRun bool
	seen   map[string]bool // external ids present in the feed
	report domain.RunReport
}

func (r *run) execute(ctx context.Context) error {
	body, err := r.Fetcher.Fetch(ctx, r.Config.FeedURL)
	if err != nil {
		r.report.Errors++
		return &FetchError{URL: r.Config.FeedURL, Err: err}
	}

	items, err := r.Parser.Parse(body)
	if err != nil {
		r.report.Errors++
		return &ParseError{Err: err}
	}
	r.report.Items = len(items)
	r.logf("INFO", "feed parsed, %d items", len(items))

	r.reconcileAll(ctx, items)

	// the sweep needs the complete seen set of this run
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sync interrupted before sweep: %w", err)
	}
	r.sweep(ctx)
	return nil
}

// logf writes to the service log and to the operation log sink
func (r *run) logf(level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	lgr.Printf("["+level+"] %s", msg)
	if r.Log == nil || level == "DEBUG" {
		return
	}
	prefix := "[feedsync]"
	if r.dryRun {
		prefix = "[feedsync][dry-run]"
	}
	if err := r.Log.Append(context.Background(), prefix+" "+msg); err != nil {
		lgr.Printf("[WARN] failed to write operation log: %v", err)
	}
}
