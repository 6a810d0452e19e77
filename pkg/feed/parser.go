package feed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/umputun/feedsync/pkg/domain"
)

// DefaultItemsPath is the item element path below the document root
const DefaultItemsPath = "izdelki/izdelek"

var (
	// ErrEmptyDocument returned when the body has no root element
	ErrEmptyDocument = errors.New("empty document")
	// ErrNoItemList returned when the item container is absent
	ErrNoItemList = errors.New("item list not found")
	// ErrNoItems returned when the container has no items
	ErrNoItems = errors.New("no items in feed")
)

// XMLParser decodes the product feed into raw items
type XMLParser struct {
	itemsPath []string
}

// NewXMLParser makes a parser for items at the given slash separated path below the root
func NewXMLParser(itemsPath string) *XMLParser {
	if itemsPath == "" {
		itemsPath = DefaultItemsPath
	}
	return &XMLParser{itemsPath: strings.Split(strings.Trim(itemsPath, "/"), "/")}
}

// Parse decodes body and returns the items in document order. A document without the item list,
// or with an empty one, is an error.
func (p *XMLParser) Parse(body []byte) ([]domain.RawItem, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel
	dec.Entity = xml.HTMLEntity

	var items []domain.RawItem
	var path []string
	rootSeen, containerSeen := false, false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !rootSeen {
				rootSeen = true
				if len(p.itemsPath) == 1 {
					containerSeen = true
				}
				continue
			}
			path = append(path, t.Name.Local)
			if len(path) == len(p.itemsPath)-1 && pathEqual(path, p.itemsPath[:len(path)]) {
				containerSeen = true
			}
			if len(path) == len(p.itemsPath) && pathEqual(path, p.itemsPath) {
				item, err := decodeItem(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
				path = path[:len(path)-1]
			}
		case xml.EndElement:
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}

	switch {
	case !rootSeen:
		return nil, ErrEmptyDocument
	case !containerSeen:
		return nil, fmt.Errorf("%w: %s", ErrNoItemList, strings.Join(p.itemsPath[:len(p.itemsPath)-1], "/"))
	case len(items) == 0:
		return nil, ErrNoItems
	}
	return items, nil
}

// decodeItem reads child elements up to the item's end element
func decodeItem(dec *xml.Decoder) (domain.RawItem, error) {
	item := domain.RawItem{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return item, fmt.Errorf("decode item: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			f, err := decodeField(dec, t)
			if err != nil {
				return item, err
			}
			item.Fields = append(item.Fields, f)
		case xml.EndElement:
			return item, nil
		}
	}
}

// decodeField collects direct text of the element, nested elements are skipped
func decodeField(dec *xml.Decoder, start xml.StartElement) (domain.Field, error) {
	f := domain.Field{Name: start.Name.Local}
	if len(start.Attr) > 0 {
		f.Attrs = make(map[string]string, len(start.Attr))
		for _, a := range start.Attr {
			f.Attrs[a.Name.Local] = a.Value
		}
	}

	var text strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return f, fmt.Errorf("decode field %s: %w", f.Name, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				f.Text = text.String()
				return f, nil
			}
			depth--
		case xml.CharData:
			if depth == 0 {
				text.Write(t)
			}
		}
	}
}

func pathEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
