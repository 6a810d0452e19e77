package domain

import "time"

// product statuses
const (
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPublish = "publish"
)

// stock statuses
const (
	StockIn  = "instock"
	StockOut = "outofstock"
)

// metadata keys and tag values written by the sync
const (
	MetaFromFeed   = "_from_xml_feed"
	MetaExternalID = "_external_id"
	MetaNotInFeed  = "_not_in_xml_feed"
	MetaYes        = "yes"

	TaxonomyProductTag = "product_tag"
	TagNewFromFeed     = "xml-feed-new"
	TagNotInFeed       = "not-in-xml-feed"
)

// Product is a catalog entry
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	Status      string
	Price       float64
	StockStatus string
	ManageStock bool
	Brand       string
	ImageID     int64
	GalleryIDs  []int64
	Meta        map[string]string
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag is a taxonomy term attached to a product
type Tag struct {
	Taxonomy string
	Value    string
}

// FromFeed reports whether the product carries the feed-origin flag
func (p *Product) FromFeed() bool {
	return p.Meta[MetaFromFeed] == MetaYes
}

// NotInFeed reports whether the product is flagged as missing from the feed
func (p *Product) NotInFeed() bool {
	return p.Meta[MetaNotInFeed] == MetaYes
}

// HasTag checks if the product has the given taxonomy term
func (p *Product) HasTag(taxonomy, value string) bool {
	for _, t := range p.Tags {
		if t.Taxonomy == taxonomy && t.Value == value {
			return true
		}
	}
	return false
}

// StockStatusFor maps availability to a stock status
func StockStatusFor(inStock bool) string {
	if inStock {
		return StockIn
	}
	return StockOut
}

// Asset is a stored image registered by the sideloader
type Asset struct {
	ID        int64
	URL       string
	Path      string
	MimeType  string
	Size      int64
	CreatedAt time.Time
}
