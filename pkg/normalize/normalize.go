// Package normalize converts raw feed field strings into typed catalog values.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/umputun/feedsync/pkg/domain"
)

// inStockPhrases mark availability in the stock element text
var inStockPhrases = []string{"na zalogi", "zaloga", "na voljo"}

var floatPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

var lower = cases.Lower(language.Slovenian)

// Price strips spaces, converts a decimal comma to a point and parses the leading number.
// Anything unparsable is 0, negative values are clamped to 0.
func Price(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		if r == ',' {
			return '.'
		}
		return r
	}, raw)

	num := floatPrefix.FindString(cleaned)
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// InStock resolves availability from the stock marker. A non-zero presence id wins over the text.
func InStock(m *domain.StockMarker) bool {
	if m == nil {
		return false
	}

	id := strings.TrimSpace(m.PresenceID)
	if id != "" && id != "0" {
		return true
	}

	text := lower.String(strings.TrimSpace(m.Text))
	if text == "" {
		return false
	}
	for _, phrase := range inStockPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// Sanitizer cleans product descriptions with an allow-list html policy
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer makes a sanitizer keeping formatting markup, links, images and tables
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("span", "div", "p")
	p.RequireNoFollowOnLinks(false)
	return &Sanitizer{policy: p}
}

// Sanitize strips scripting and unsafe markup from the description
func (s *Sanitizer) Sanitize(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
