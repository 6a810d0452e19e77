package syncer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/images"
	"github.com/umputun/feedsync/pkg/normalize"
)

// reconcileAll builds the seen set and reconciles every feed item. Outcomes are collected per item
// and counted after all workers are done.
func (r *run) reconcileAll(ctx context.Context, raw []domain.RawItem) {
	pending := make([]domain.FeedItem, 0, len(raw))
	for _, ri := range raw {
		item := r.Fields.Item(ri)
		if item.ExternalID == "" {
			r.logf("WARN", "skipping product with missing external id")
			r.report.Count(domain.OutcomeSkipped)
			continue
		}
		if r.seen[item.ExternalID] {
			r.logf("WARN", "skipping duplicate feed item for sku %s", item.ExternalID)
			r.report.Count(domain.OutcomeSkipped)
			continue
		}
		r.seen[item.ExternalID] = true
		item.ImageRefs = r.collector.Refs(ri)
		pending = append(pending, item)
	}

	outcomes := make([]domain.Outcome, len(pending))
	g := errgroup.Group{}
	g.SetLimit(r.Config.Workers)
	for i, item := range pending {
		g.Go(func() error {
			if ctx.Err() != nil {
				outcomes[i] = domain.OutcomeError
				return nil
			}
			outcomes[i] = r.reconcile(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	for _, o := range outcomes {
		r.report.Count(o)
	}
}

// reconcile applies one feed item to the catalog, creating or updating the product with its sku
func (r *run) reconcile(ctx context.Context, item domain.FeedItem) domain.Outcome {
	id, found, err := r.Catalog.FindBySKU(ctx, item.ExternalID)
	if err != nil {
		r.logf("ERROR", "failed to look up sku %s: %v", item.ExternalID, err)
		return domain.OutcomeError
	}
	if !found {
		return r.create(ctx, item)
	}
	return r.update(ctx, id, item)
}

func (r *run) create(ctx context.Context, item domain.FeedItem) domain.Outcome {
	r.logf("INFO", "creating product for sku %s", item.ExternalID)
	if r.dryRun {
		return domain.OutcomeSkipped
	}

	p := &domain.Product{
		SKU:         item.ExternalID,
		Name:        item.Name,
		Description: r.sanitizer.Sanitize(item.DescriptionRaw),
		Status:      r.Config.ProductStatus,
		Price:       normalize.Price(item.PriceRaw),
		StockStatus: domain.StockStatusFor(normalize.InStock(item.Stock)),
		Brand:       item.Brand,
		Tags:        []domain.Tag{{Taxonomy: domain.TaxonomyProductTag, Value: domain.TagNewFromFeed}},
	}

	if urls := imageURLs(item); len(urls) > 0 && r.Images != nil {
		att := r.Images.Attach(ctx, urls)
		p.ImageID, p.GalleryIDs = att.PrimaryID, att.GalleryIDs
		if att.Failed > 0 {
			r.logf("WARN", "sku %s: %d of %d images failed to load", item.ExternalID, att.Failed, len(urls))
		}
	}

	id, err := r.Catalog.Create(ctx, p)
	if err != nil {
		r.logf("ERROR", "failed to create product for sku %s: %v", item.ExternalID, err)
		return domain.OutcomeError
	}
	if _, err := r.Catalog.Load(ctx, id); err != nil {
		r.logf("ERROR", "failed to load created product %d for sku %s: %v", id, item.ExternalID, err)
		return domain.OutcomeError
	}
	if err := r.markFromFeed(ctx, id, item.ExternalID); err != nil {
		r.logf("ERROR", "failed to mark created product %d for sku %s: %v", id, item.ExternalID, err)
		return domain.OutcomeError
	}
	return domain.OutcomeCreated
}

func (r *run) update(ctx context.Context, id int64, item domain.FeedItem) domain.Outcome {
	r.logf("INFO", "updating product for sku %s", item.ExternalID)
	p, err := r.Catalog.Load(ctx, id)
	if err != nil {
		r.logf("ERROR", "could not load product with id %d for sku %s: %v", id, item.ExternalID, err)
		return domain.OutcomeError
	}
	if r.dryRun {
		return domain.OutcomeUpdated
	}

	p.ManageStock = false
	p.StockStatus = domain.StockStatusFor(normalize.InStock(item.Stock))
	if r.Config.OverwriteContent {
		p.Name = item.Name
		p.Description = r.sanitizer.Sanitize(item.DescriptionRaw)
		p.Price = normalize.Price(item.PriceRaw)
	}
	if err := r.Catalog.Update(ctx, p); err != nil {
		r.logf("ERROR", "failed to update product %d for sku %s: %v", id, item.ExternalID, err)
		return domain.OutcomeError
	}
	if err := r.markFromFeed(ctx, id, item.ExternalID); err != nil {
		r.logf("ERROR", "failed to mark product %d for sku %s: %v", id, item.ExternalID, err)
		return domain.OutcomeError
	}
	return domain.OutcomeUpdated
}

// markFromFeed sets the feed-origin flag and the external id metadata
func (r *run) markFromFeed(ctx context.Context, id int64, externalID string) error {
	if err := r.Catalog.SetMeta(ctx, id, domain.MetaFromFeed, domain.MetaYes); err != nil {
		return err
	}
	return r.Catalog.SetMeta(ctx, id, domain.MetaExternalID, externalID)
}

func imageURLs(item domain.FeedItem) []string {
	if len(item.ImageRefs) == 0 {
		return nil
	}
	return images.URLs(item.ImageRefs)
}
