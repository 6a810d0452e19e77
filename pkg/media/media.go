// Package media downloads product images and registers them as catalog assets.
package media

import (
	"context"
	"crypto/sha1" //nolint:gosec // file naming only
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/repository"
)

//go:generate moq -out mocks/asset_store.go -pkg mocks -skip-ensure -fmt goimports . AssetStore

const defaultMaxSize = 10 << 20

// AssetStore keeps asset records, FindByURL returns repository.ErrNotFound for unknown urls
type AssetStore interface {
	FindByURL(ctx context.Context, url string) (*domain.Asset, error)
	Create(ctx context.Context, a *domain.Asset) error
}

// Sideloader stores remote images under a local directory
type Sideloader struct {
	client    *http.Client
	store     AssetStore
	dir       string
	maxSize   int64
	userAgent string
}

// Params for NewSideloader
type Params struct {
	Dir       string
	MaxSize   int64 // bytes, default 10MB
	UserAgent string
	Client    *http.Client
}

// NewSideloader makes a sideloader writing files into params.Dir
func NewSideloader(store AssetStore, params Params) *Sideloader {
	res := &Sideloader{store: store, dir: params.Dir, maxSize: params.MaxSize,
		userAgent: params.UserAgent, client: params.Client}
	if res.maxSize <= 0 {
		res.maxSize = defaultMaxSize
	}
	if res.client == nil {
		res.client = &http.Client{}
	}
	return res
}

// Sideload downloads the image at url and returns its asset id. Urls already stored return the
// existing asset without download. The request is bounded by ctx.
func (s *Sideloader) Sideload(ctx context.Context, url string) (int64, error) {
	existing, err := s.store.FindByURL(ctx, url)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("lookup asset %s: %w", url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	req.Header.Set("Accept", "image/avif,image/webp,image/*,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	mimeType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mimeType, "image/") {
		return 0, fmt.Errorf("not an image: %q", resp.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return 0, fmt.Errorf("read image: %w", err)
	}
	if int64(len(body)) > s.maxSize {
		return 0, fmt.Errorf("image exceeds %d bytes", s.maxSize)
	}
	if len(body) == 0 {
		return 0, errors.New("empty image")
	}

	if err = os.MkdirAll(s.dir, 0o750); err != nil {
		return 0, fmt.Errorf("create media dir: %w", err)
	}
	file := filepath.Join(s.dir, fileName(url, mimeType))
	tmp := file + ".tmp"
	if err = os.WriteFile(tmp, body, 0o600); err != nil {
		return 0, fmt.Errorf("write image: %w", err)
	}
	if err = os.Rename(tmp, file); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("store image: %w", err)
	}

	asset := &domain.Asset{URL: url, Path: file, MimeType: mimeType, Size: int64(len(body)), CreatedAt: time.Now()}
	if err = s.store.Create(ctx, asset); err != nil {
		return 0, fmt.Errorf("register asset: %w", err)
	}
	lgr.Printf("[DEBUG] sideloaded %s as asset %d, %d bytes", url, asset.ID, asset.Size)
	return asset.ID, nil
}

// fileName derives a stable file name from the url, extension from the url path or mime type
func fileName(url, mimeType string) string {
	sum := sha1.Sum([]byte(url)) //nolint:gosec // not used for security
	name := hex.EncodeToString(sum[:])

	ext := strings.ToLower(path.Ext(strings.SplitN(strings.SplitN(url, "?", 2)[0], "#", 2)[0]))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif", ".bmp", ".svg":
		return name + ext
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return name + exts[0]
	}
	return name
}
