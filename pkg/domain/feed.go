package domain

import "strings"

// Field is a single child element of a feed item
type Field struct {
	Name  string
	Text  string
	Attrs map[string]string
}

// Attr returns the trimmed value of the named attribute
func (f Field) Attr(name string) string {
	return strings.TrimSpace(f.Attrs[name])
}

// RawItem is a feed item as parsed from the document, fields in document order
type RawItem struct {
	Fields []Field
}

// Get returns the first field with the given name
func (r RawItem) Get(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Value returns the trimmed text of the first field with the given name, empty if missing
func (r RawItem) Value(name string) string {
	f, ok := r.Get(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(f.Text)
}

// StockMarker is the availability element of a feed item
type StockMarker struct {
	PresenceID string
	Text       string
}

// ImageRef is an image url keyed by its slot, "primary-0" or "additional-NNNN"
type ImageRef struct {
	Slot string
	URL  string
}

// FeedItem is a feed entry mapped to catalog fields, rebuilt on every run
type FeedItem struct {
	ExternalID     string
	Name           string
	DescriptionRaw string
	PriceRaw       string
	Stock          *StockMarker // nil if the item has no stock element
	Brand          string
	ImageRefs      []ImageRef
}
