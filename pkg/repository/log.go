package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedsync/pkg/domain"
)

const defaultLogMaxEntries = 200

// LogRepository is the persistent operation log, keeps only the newest maxEntries lines
type LogRepository struct {
	db         *sqlx.DB
	maxEntries int
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *sqlx.DB, maxEntries int) *LogRepository {
	if maxEntries <= 0 {
		maxEntries = defaultLogMaxEntries
	}
	return &LogRepository{db: db, maxEntries: maxEntries}
}

// Append adds a line and drops everything beyond the retention limit
func (r *LogRepository) Append(ctx context.Context, line string) error {
	err := withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx, "INSERT INTO sync_log (created_at, line) VALUES (?, ?)",
			time.Now().UnixMilli(), line); err != nil {
			return err
		}
		trim := `
			DELETE FROM sync_log WHERE id NOT IN (
				SELECT id FROM sync_log ORDER BY id DESC LIMIT ?
			)
		`
		if _, err := tx.ExecContext(ctx, trim, r.maxEntries); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}

// Recent returns up to limit newest lines in chronological order
func (r *LogRepository) Recent(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	if limit <= 0 || limit > r.maxEntries {
		limit = r.maxEntries
	}
	var rows []struct {
		ID        int64  `db:"id"`
		CreatedAt int64  `db:"created_at"`
		Line      string `db:"line"`
	}
	query := `
		SELECT id, created_at, line FROM (
			SELECT id, created_at, line FROM sync_log ORDER BY id DESC LIMIT ?
		) ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get recent log: %w", err)
	}
	res := make([]domain.LogEntry, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.LogEntry{ID: row.ID, Time: time.UnixMilli(row.CreatedAt), Line: row.Line})
	}
	return res, nil
}
