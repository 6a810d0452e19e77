package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Feed     FeedConfig     `yaml:"feed" json:"feed" jsonschema:"description=Product feed source"`
	Sync     SyncConfig     `yaml:"sync" json:"sync" jsonschema:"description=Reconciliation behavior"`
	Images   ImagesConfig   `yaml:"images" json:"images" jsonschema:"description=Image sideloading"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduled sync runs"`
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Log      LogConfig      `yaml:"log" json:"log" jsonschema:"description=Operation log"`
}

// FeedConfig defines where and how the feed is fetched
type FeedConfig struct {
	URL       string        `yaml:"url" json:"url" jsonschema:"required,description=XML product feed URL"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Feed download timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=feedsync/1.0,description=User agent for HTTP requests"`
	ItemsPath string        `yaml:"items_path" json:"items_path" jsonschema:"default=izdelki/izdelek,description=Element path of feed items below the root"`
	Fields    FieldsConfig  `yaml:"fields" json:"fields" jsonschema:"description=Item field names"`
}

// FieldsConfig names the item fields of the feed
type FieldsConfig struct {
	ID                    string `yaml:"id" json:"id" jsonschema:"default=izdelekID,description=External product id"`
	Name                  string `yaml:"name" json:"name" jsonschema:"default=izdelekIme,description=Product name"`
	Description           string `yaml:"description" json:"description" jsonschema:"default=opis,description=HTML description"`
	Price                 string `yaml:"price" json:"price" jsonschema:"default=PPC,description=Price"`
	Stock                 string `yaml:"stock" json:"stock" jsonschema:"default=dobava,description=Stock marker"`
	StockPresenceAttr     string `yaml:"stock_presence_attr" json:"stock_presence_attr" jsonschema:"default=id,description=Presence id attribute of the stock marker"`
	Brand                 string `yaml:"brand" json:"brand" jsonschema:"default=blagovnaZnamka,description=Brand"`
	PrimaryImage          string `yaml:"primary_image" json:"primary_image" jsonschema:"default=slikaVelika,description=Primary image URL"`
	AdditionalImagePrefix string `yaml:"additional_image_prefix" json:"additional_image_prefix" jsonschema:"default=dodatnaSlika,description=Name prefix of additional image fields"`
}

// SyncConfig defines reconciliation behavior
type SyncConfig struct {
	SweepPolicy      string        `yaml:"sweep_policy" json:"sweep_policy" jsonschema:"default=flag,enum=flag,enum=delete,description=What happens to feed products missing from the feed"`
	OverwriteContent bool          `yaml:"overwrite_content" json:"overwrite_content" jsonschema:"default=false,description=Overwrite name description and price of existing products"`
	Workers          int           `yaml:"workers" json:"workers" jsonschema:"default=1,minimum=1,description=Parallel item reconciliation"`
	PageSize         int           `yaml:"page_size" json:"page_size" jsonschema:"default=100,minimum=1,description=Sweep page size"`
	LockTTL          time.Duration `yaml:"lock_ttl" json:"lock_ttl" jsonschema:"default=30m,description=Run lock expiry"`
	ProductStatus    string        `yaml:"product_status" json:"product_status" jsonschema:"default=draft,enum=draft,enum=pending,description=Status of created products"`
}

// ImagesConfig defines image sideloading
type ImagesConfig struct {
	Disabled      bool          `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Skip image sideloading"`
	Dir           string        `yaml:"dir" json:"dir" jsonschema:"default=media,description=Directory for stored images"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Download timeout per image"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=4,minimum=1,description=Maximum concurrent downloads per product"`
	MaxSize       int64         `yaml:"max_size" json:"max_size" jsonschema:"default=10485760,description=Maximum image size in bytes"`
}

// ScheduleConfig defines scheduled runs
type ScheduleConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable scheduled sync"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Interval between scheduled runs"`
	RunOnStart bool          `yaml:"run_on_start" json:"run_on_start" jsonschema:"default=false,description=Run a sync right after start"`
}

// ServerConfig defines the HTTP trigger
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=5m,description=HTTP server timeout"`
	Token   string        `yaml:"token" json:"token" jsonschema:"description=Trigger token (generated and stored if empty)"`
}

// DatabaseConfig defines the catalog database
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedsync.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// LogConfig defines the operation log
type LogConfig struct {
	MaxEntries int `yaml:"max_entries" json:"max_entries" jsonschema:"default=200,minimum=1,description=Operation log retention"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// feed
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = 60 * time.Second
	}
	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = "feedsync/1.0"
	}
	if c.Feed.ItemsPath == "" {
		c.Feed.ItemsPath = "izdelki/izdelek"
	}
	f := &c.Feed.Fields
	for _, d := range []struct {
		val *string
		def string
	}{
		{&f.ID, "izdelekID"}, {&f.Name, "izdelekIme"}, {&f.Description, "opis"}, {&f.Price, "PPC"},
		{&f.Stock, "dobava"}, {&f.StockPresenceAttr, "id"}, {&f.Brand, "blagovnaZnamka"},
		{&f.PrimaryImage, "slikaVelika"}, {&f.AdditionalImagePrefix, "dodatnaSlika"},
	} {
		if *d.val == "" {
			*d.val = d.def
		}
	}

	// sync
	if c.Sync.SweepPolicy == "" {
		c.Sync.SweepPolicy = "flag"
	}
	if c.Sync.Workers == 0 {
		c.Sync.Workers = 1
	}
	if c.Sync.PageSize == 0 {
		c.Sync.PageSize = 100
	}
	if c.Sync.LockTTL == 0 {
		c.Sync.LockTTL = 30 * time.Minute
	}
	if c.Sync.ProductStatus == "" {
		c.Sync.ProductStatus = "draft"
	}

	// images
	if c.Images.Dir == "" {
		c.Images.Dir = "media"
	}
	if c.Images.Timeout == 0 {
		c.Images.Timeout = 30 * time.Second
	}
	if c.Images.MaxConcurrent == 0 {
		c.Images.MaxConcurrent = 4
	}
	if c.Images.MaxSize == 0 {
		c.Images.MaxSize = 10 << 20
	}

	// schedule
	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = time.Hour
	}

	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 5 * time.Minute
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedsync.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// log
	if c.Log.MaxEntries == 0 {
		c.Log.MaxEntries = 200
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate feed config
	if cfg.Feed.URL == "" {
		return fmt.Errorf("feed.url is required")
	}
	u, err := url.Parse(cfg.Feed.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("feed.url must be an http or https URL, got %q", cfg.Feed.URL)
	}
	if cfg.Feed.Timeout < time.Second {
		return fmt.Errorf("feed.timeout must be at least 1 second")
	}

	// validate sync config
	switch cfg.Sync.SweepPolicy {
	case "flag", "delete":
	default:
		return fmt.Errorf("sync.sweep_policy must be flag or delete, got %q", cfg.Sync.SweepPolicy)
	}
	switch cfg.Sync.ProductStatus {
	case "draft", "pending":
	default:
		return fmt.Errorf("sync.product_status must be draft or pending, got %q", cfg.Sync.ProductStatus)
	}
	if cfg.Sync.Workers < 1 {
		return fmt.Errorf("sync.workers must be at least 1")
	}
	if cfg.Sync.PageSize < 1 {
		return fmt.Errorf("sync.page_size must be at least 1")
	}
	if cfg.Sync.LockTTL < time.Minute {
		return fmt.Errorf("sync.lock_ttl must be at least 1 minute")
	}

	// validate images config
	if !cfg.Images.Disabled {
		if cfg.Images.Timeout < time.Second {
			return fmt.Errorf("images.timeout must be at least 1 second")
		}
		if cfg.Images.MaxConcurrent < 1 {
			return fmt.Errorf("images.max_concurrent must be at least 1")
		}
		if cfg.Images.MaxSize < 1 {
			return fmt.Errorf("images.max_size must be positive")
		}
	}

	// validate schedule config
	if cfg.Schedule.Enabled && cfg.Schedule.Interval < time.Minute {
		return fmt.Errorf("schedule.interval must be at least 1 minute")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Log.MaxEntries < 1 {
		return fmt.Errorf("log.max_entries must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
