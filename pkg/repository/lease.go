package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// LeaseRepository holds named leases with expiry, used as a cross-process run lock
type LeaseRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewLeaseRepository creates a new lease repository
func NewLeaseRepository(db *sqlx.DB) *LeaseRepository {
	return &LeaseRepository{db: db, now: time.Now}
}

// Acquire takes the named lease for owner until ttl passes. Returns false if another owner
// holds an unexpired lease. The same owner may extend its own lease.
func (r *LeaseRepository) Acquire(ctx context.Context, name, owner string, ttl time.Duration) (bool, error) {
	now := r.now()
	query := `
		INSERT INTO run_lease (name, owner, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET owner = excluded.owner, expires_at = excluded.expires_at
		WHERE run_lease.expires_at <= ? OR run_lease.owner = excluded.owner
	`
	var affected int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, name, owner, now.Add(ttl).UnixMilli(), now.UnixMilli())
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("acquire lease %s: %w", name, err)
	}
	return affected > 0, nil
}

// Release drops the lease if owner still holds it
func (r *LeaseRepository) Release(ctx context.Context, name, owner string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM run_lease WHERE name = ? AND owner = ?", name, owner)
		return err
	})
	if err != nil {
		return fmt.Errorf("release lease %s: %w", name, err)
	}
	return nil
}
