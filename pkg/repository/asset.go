package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedsync/pkg/domain"
)

// AssetRepository keeps sideloaded images, one asset per source url
type AssetRepository struct {
	db *sqlx.DB
}

type assetSQL struct {
	ID        int64     `db:"id"`
	URL       string    `db:"url"`
	Path      string    `db:"path"`
	MimeType  string    `db:"mime_type"`
	Size      int64     `db:"size"`
	CreatedAt time.Time `db:"created_at"`
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *sqlx.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// FindByURL returns the asset stored for the url, ErrNotFound if there is none
func (r *AssetRepository) FindByURL(ctx context.Context, url string) (*domain.Asset, error) {
	var row assetSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM assets WHERE url = ?", url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find asset: %w", err)
	}
	return &domain.Asset{ID: row.ID, URL: row.URL, Path: row.Path, MimeType: row.MimeType,
		Size: row.Size, CreatedAt: row.CreatedAt}, nil
}

// Create registers a stored asset and sets a.ID. An existing url keeps its asset and id.
func (r *AssetRepository) Create(ctx context.Context, a *domain.Asset) error {
	query := `
		INSERT INTO assets (url, path, mime_type, size) VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET path = excluded.path, mime_type = excluded.mime_type, size = excluded.size
	`
	err := withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, a.URL, a.Path, a.MimeType, a.Size); err != nil {
			return err
		}
		return r.db.GetContext(ctx, &a.ID, "SELECT id FROM assets WHERE url = ?", a.URL)
	})
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	return nil
}
