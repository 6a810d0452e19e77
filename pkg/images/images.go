// Package images orders feed image references and attaches them to products via a sideloader.
package images

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedsync/pkg/domain"
)

//go:generate moq -out mocks/sideloader.go -pkg mocks -skip-ensure -fmt goimports . Sideloader

const primarySlot = "primary-0"

// Sideloader stores the image behind url and returns its asset id
type Sideloader interface {
	Sideload(ctx context.Context, url string) (int64, error)
}

// Collector extracts image references from raw feed items
type Collector struct {
	primaryField string
	additional   *regexp.Regexp
}

// NewCollector makes a collector for the given primary field name and additional field prefix.
// Additional fields are matched case-insensitively as <prefix><N>, N optional.
func NewCollector(primaryField, additionalPrefix string) *Collector {
	return &Collector{
		primaryField: primaryField,
		additional:   regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(additionalPrefix) + `(\d*)$`),
	}
}

// Refs returns the keyed image references of the item. A later field with the same slot replaces
// an earlier one.
func (c *Collector) Refs(item domain.RawItem) []domain.ImageRef {
	bySlot := map[string]string{}
	var order []string
	set := func(slot, url string) {
		if _, ok := bySlot[slot]; !ok {
			order = append(order, slot)
		}
		bySlot[slot] = url
	}

	if primary := item.Value(c.primaryField); primary != "" {
		set(primarySlot, primary)
	}

	for _, f := range item.Fields {
		m := c.additional.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		url := strings.TrimSpace(f.Text)
		if url == "" {
			continue
		}
		idx := 0
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			idx = n
		}
		set(fmt.Sprintf("additional-%04d", idx), url)
	}

	refs := make([]domain.ImageRef, 0, len(order))
	for _, slot := range order {
		refs = append(refs, domain.ImageRef{Slot: slot, URL: bySlot[slot]})
	}
	return refs
}

// URLs orders references primary first, then additional slots by index, and drops repeated urls
// keeping the earliest position.
func URLs(refs []domain.ImageRef) []string {
	sorted := make([]domain.ImageRef, len(refs))
	copy(sorted, refs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return slotLess(sorted[i].Slot, sorted[j].Slot)
	})

	seen := make(map[string]bool, len(sorted))
	res := make([]string, 0, len(sorted))
	for _, r := range sorted {
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		res = append(res, r.URL)
	}
	return res
}

// slotLess puts the primary slot first and compares the rest in natural order
func slotLess(a, b string) bool {
	if a == primarySlot || b == primarySlot {
		return a == primarySlot && b != primarySlot
	}
	ai, aok := slotIndex(a)
	bi, bok := slotIndex(b)
	if aok && bok && ai != bi {
		return ai < bi
	}
	return a < b
}

func slotIndex(slot string) (int, bool) {
	_, num, ok := strings.Cut(slot, "-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Attachment is the result of sideloading an ordered url list
type Attachment struct {
	PrimaryID  int64
	GalleryIDs []int64
	Failed     int
}

// Attacher resolves image urls to asset ids
type Attacher struct {
	sideloader    Sideloader
	timeout       time.Duration
	maxConcurrent int
}

// NewAttacher makes an attacher with a per-image timeout and a concurrency limit
func NewAttacher(sideloader Sideloader, timeout time.Duration, maxConcurrent int) *Attacher {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Attacher{sideloader: sideloader, timeout: timeout, maxConcurrent: maxConcurrent}
}

// Attach sideloads all urls. Failures are skipped, the first resolved asset becomes the primary
// image and the rest form the gallery, unique by asset id.
func (a *Attacher) Attach(ctx context.Context, urls []string) Attachment {
	ids := make([]int64, len(urls))
	g := errgroup.Group{}
	g.SetLimit(a.maxConcurrent)
	for i, url := range urls {
		g.Go(func() error {
			ids[i] = a.sideload(ctx, url)
			return nil
		})
	}
	_ = g.Wait()

	res := Attachment{}
	seen := map[int64]bool{}
	for _, id := range ids {
		if id == 0 {
			res.Failed++
			continue
		}
		if res.PrimaryID == 0 {
			res.PrimaryID = id
			seen[id] = true
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		res.GalleryIDs = append(res.GalleryIDs, id)
	}
	return res
}

// sideload returns 0 on failure
func (a *Attacher) sideload(ctx context.Context, url string) int64 {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	id, err := a.sideloader.Sideload(ctx, url)
	if err != nil {
		lgr.Printf("[WARN] failed to sideload image %s: %v", url, err)
		return 0
	}
	return id
}
