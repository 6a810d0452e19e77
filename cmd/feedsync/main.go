package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/feedsync/pkg/config"
	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/feed"
	"github.com/umputun/feedsync/pkg/images"
	"github.com/umputun/feedsync/pkg/media"
	"github.com/umputun/feedsync/pkg/repository"
	"github.com/umputun/feedsync/pkg/scheduler"
	"github.com/umputun/feedsync/pkg/syncer"
	"github.com/umputun/feedsync/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Once   bool   `long:"once" description:"run a single sync and exit"`
	DryRun bool   `long:"dry-run" description:"report what a sync would do without changing the catalog"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	lgr.Printf("[INFO] starting feedsync version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		LogMaxEntries:   cfg.Log.MaxEntries,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	sync := makeSyncer(cfg, repos)

	if opts.Once {
		rep, err := sync.Run(ctx, opts.DryRun, domain.SourceManual)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		fmt.Println(rep.Summary())
		return nil
	}

	token, err := triggerToken(ctx, cfg.Server.Token, repos.Setting)
	if err != nil {
		return fmt.Errorf("failed to resolve trigger token: %w", err)
	}
	setupLog(opts.Debug, opts.NoColor, token)

	if cfg.Schedule.Enabled {
		sched := scheduler.NewScheduler(scheduler.Params{
			Runner:     sync,
			Interval:   cfg.Schedule.Interval,
			RunOnStart: cfg.Schedule.RunOnStart,
		})
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, sync, repos.Log, token, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeSyncer wires the engine to the feed, the catalog store and the image sideloader
func makeSyncer(cfg *config.Config, repos *repository.Repositories) *syncer.Syncer {
	params := syncer.Params{
		Fetcher: feed.NewHTTPFetcher(cfg.Feed.Timeout, cfg.Feed.UserAgent),
		Parser:  feed.NewXMLParser(cfg.Feed.ItemsPath),
		Catalog: repos.Product,
		Log:     repos.Log,
		Lease:   repos.Lease,
		Fields: feed.FieldMap{
			ID:                    cfg.Feed.Fields.ID,
			Name:                  cfg.Feed.Fields.Name,
			Description:           cfg.Feed.Fields.Description,
			Price:                 cfg.Feed.Fields.Price,
			Stock:                 cfg.Feed.Fields.Stock,
			StockPresenceAttr:     cfg.Feed.Fields.StockPresenceAttr,
			Brand:                 cfg.Feed.Fields.Brand,
			PrimaryImage:          cfg.Feed.Fields.PrimaryImage,
			AdditionalImagePrefix: cfg.Feed.Fields.AdditionalImagePrefix,
		},
		Config: syncer.Config{
			FeedURL:          cfg.Feed.URL,
			SweepPolicy:      domain.SweepPolicy(cfg.Sync.SweepPolicy),
			OverwriteContent: cfg.Sync.OverwriteContent,
			Workers:          cfg.Sync.Workers,
			PageSize:         cfg.Sync.PageSize,
			LockTTL:          cfg.Sync.LockTTL,
			ProductStatus:    cfg.Sync.ProductStatus,
		},
	}

	if !cfg.Images.Disabled {
		sideloader := media.NewSideloader(repos.Asset, media.Params{
			Dir:       cfg.Images.Dir,
			MaxSize:   cfg.Images.MaxSize,
			UserAgent: cfg.Feed.UserAgent,
		})
		params.Images = images.NewAttacher(sideloader, cfg.Images.Timeout, cfg.Images.MaxConcurrent)
	}

	return syncer.New(params)
}

// settingStore keeps the generated trigger token
type settingStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// triggerToken returns the configured token, or the stored one. A token is generated and stored
// on first start.
func triggerToken(ctx context.Context, configured string, settings settingStore) (string, error) {
	if configured != "" {
		return configured, nil
	}

	token, err := settings.GetSetting(ctx, domain.SettingTriggerToken)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	token = uuid.NewString()
	if err := settings.SetSetting(ctx, domain.SettingTriggerToken, token); err != nil {
		return "", err
	}
	lgr.Printf("[INFO] generated trigger token, stored as setting %q", domain.SettingTriggerToken)
	return token, nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
