package syncer

import (
	"context"

	"github.com/umputun/feedsync/pkg/domain"
)

// sweep walks feed-origin products page by page and withdraws ones missing from the seen set
func (r *run) sweep(ctx context.Context) {
	var afterID int64
	for {
		if ctx.Err() != nil {
			r.logf("WARN", "sweep interrupted: %v", ctx.Err())
			return
		}
		ids, err := r.Catalog.QueryByMeta(ctx, domain.MetaFromFeed, domain.MetaYes, afterID, r.Config.PageSize)
		if err != nil {
			r.logf("ERROR", "failed to query feed products after id %d: %v", afterID, err)
			r.report.Errors++
			return
		}
		for _, id := range ids {
			r.sweepProduct(ctx, id)
		}
		if len(ids) < r.Config.PageSize {
			return
		}
		afterID = ids[len(ids)-1]
	}
}

func (r *run) sweepProduct(ctx context.Context, id int64) {
	p, err := r.Catalog.Load(ctx, id)
	if err != nil {
		r.logf("ERROR", "could not load feed product %d: %v", id, err)
		r.report.Errors++
		return
	}
	if !p.FromFeed() {
		return
	}

	if r.seen[p.SKU] {
		r.restore(ctx, p)
		return
	}

	if r.Config.SweepPolicy == domain.SweepFlag && isWithdrawn(p) {
		r.logf("DEBUG", "product %d (sku %s) already marked as missing from feed", p.ID, p.SKU)
		return
	}

	switch r.Config.SweepPolicy {
	case domain.SweepDelete:
		r.logf("INFO", "deleting product %d (sku %s) missing from feed", p.ID, p.SKU)
	default:
		r.logf("INFO", "marking product %d (sku %s) as missing from feed", p.ID, p.SKU)
	}
	if r.dryRun {
		r.report.Skipped++
		return
	}

	if r.Config.SweepPolicy == domain.SweepDelete {
		if err := r.Catalog.Delete(ctx, p.ID); err != nil {
			r.logf("ERROR", "failed to delete product %d (sku %s): %v", p.ID, p.SKU, err)
			r.report.Errors++
			return
		}
		r.report.Deleted++
		return
	}

	if err := r.withdraw(ctx, p); err != nil {
		r.logf("ERROR", "failed to mark product %d (sku %s) as missing: %v", p.ID, p.SKU, err)
		r.report.Errors++
		return
	}
	r.report.Flagged++
}

// withdraw demotes the product to draft and sets the missing markers
func (r *run) withdraw(ctx context.Context, p *domain.Product) error {
	p.Status = domain.StatusDraft
	if err := r.Catalog.Update(ctx, p); err != nil {
		return err
	}
	if err := r.Catalog.Tag(ctx, p.ID, domain.TaxonomyProductTag, domain.TagNotInFeed); err != nil {
		return err
	}
	return r.Catalog.SetMeta(ctx, p.ID, domain.MetaNotInFeed, domain.MetaYes)
}

// restore clears the missing markers of a product back in the feed, status is left as is
func (r *run) restore(ctx context.Context, p *domain.Product) {
	if r.Config.SweepPolicy != domain.SweepFlag {
		return
	}
	if !p.NotInFeed() && !p.HasTag(domain.TaxonomyProductTag, domain.TagNotInFeed) {
		return
	}
	r.logf("INFO", "product %d (sku %s) present in feed, removing missing markers", p.ID, p.SKU)
	if r.dryRun {
		return
	}
	if err := r.Catalog.DeleteMeta(ctx, p.ID, domain.MetaNotInFeed); err != nil {
		r.logf("ERROR", "failed to clear missing flag of product %d: %v", p.ID, err)
		r.report.Errors++
		return
	}
	if err := r.Catalog.Untag(ctx, p.ID, domain.TaxonomyProductTag, domain.TagNotInFeed); err != nil {
		r.logf("ERROR", "failed to untag product %d: %v", p.ID, err)
		r.report.Errors++
		return
	}
	r.report.Restored++
}

func isWithdrawn(p *domain.Product) bool {
	return p.NotInFeed() && p.Status == domain.StatusDraft && p.HasTag(domain.TaxonomyProductTag, domain.TagNotInFeed)
}
