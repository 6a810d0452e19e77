package feed

import (
	"github.com/umputun/feedsync/pkg/domain"
)

// FieldMap names the item fields of the feed schema
type FieldMap struct {
	ID                    string
	Name                  string
	Description           string
	Price                 string
	Stock                 string
	StockPresenceAttr     string
	Brand                 string
	PrimaryImage          string
	AdditionalImagePrefix string
}

// DefaultFieldMap returns the field names used by the product export
func DefaultFieldMap() FieldMap {
	return FieldMap{
		ID:                    "izdelekID",
		Name:                  "izdelekIme",
		Description:           "opis",
		Price:                 "PPC",
		Stock:                 "dobava",
		StockPresenceAttr:     "id",
		Brand:                 "blagovnaZnamka",
		PrimaryImage:          "slikaVelika",
		AdditionalImagePrefix: "dodatnaSlika",
	}
}

// Item maps a raw item to feed fields, image refs are left to the image collector
func (m FieldMap) Item(raw domain.RawItem) domain.FeedItem {
	item := domain.FeedItem{
		ExternalID:     raw.Value(m.ID),
		Name:           raw.Value(m.Name),
		DescriptionRaw: fieldText(raw, m.Description),
		PriceRaw:       fieldText(raw, m.Price),
		Brand:          raw.Value(m.Brand),
	}
	if f, ok := raw.Get(m.Stock); ok {
		item.Stock = &domain.StockMarker{PresenceID: f.Attr(m.StockPresenceAttr), Text: f.Text}
	}
	return item
}

func fieldText(raw domain.RawItem, name string) string {
	f, ok := raw.Get(name)
	if !ok {
		return ""
	}
	return f.Text
}
