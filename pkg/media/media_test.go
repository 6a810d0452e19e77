package media

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/media/mocks"
	"github.com/umputun/feedsync/pkg/repository"
)

func newStore() *mocks.AssetStoreMock {
	var lastID int64
	byURL := map[string]*domain.Asset{}
	return &mocks.AssetStoreMock{
		FindByURLFunc: func(_ context.Context, url string) (*domain.Asset, error) {
			if a, ok := byURL[url]; ok {
				return a, nil
			}
			return nil, repository.ErrNotFound
		},
		CreateFunc: func(_ context.Context, a *domain.Asset) error {
			lastID++
			a.ID = lastID
			byURL[a.URL] = a
			return nil
		},
	}
}

func TestSideloader_Sideload(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		switch r.URL.Path {
		case "/a.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("jpeg-bytes"))
		case "/noext":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		case "/page.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html></html>"))
		case "/big.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		case "/slow.jpg":
			time.Sleep(200 * time.Millisecond)
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("slow"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	t.Run("stores image and registers asset", func(t *testing.T) {
		dir := t.TempDir()
		store := newStore()
		s := NewSideloader(store, Params{Dir: dir, UserAgent: "feedsync-test"})

		id, err := s.Sideload(context.Background(), ts.URL+"/a.jpg")
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		require.Len(t, store.CreateCalls(), 1)
		asset := store.CreateCalls()[0].A
		assert.Equal(t, "image/jpeg", asset.MimeType)
		assert.Equal(t, int64(10), asset.Size)
		assert.Equal(t, ".jpg", filepath.Ext(asset.Path))
		data, err := os.ReadFile(asset.Path)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(data))

		before := atomic.LoadInt32(&hits)
		again, err := s.Sideload(context.Background(), ts.URL+"/a.jpg")
		require.NoError(t, err)
		assert.Equal(t, id, again)
		assert.Equal(t, before, atomic.LoadInt32(&hits), "known url is not downloaded again")
		assert.Len(t, store.CreateCalls(), 1)
	})

	t.Run("extension from mime type", func(t *testing.T) {
		store := newStore()
		s := NewSideloader(store, Params{Dir: t.TempDir()})
		_, err := s.Sideload(context.Background(), ts.URL+"/noext")
		require.NoError(t, err)
		assert.Equal(t, ".png", filepath.Ext(store.CreateCalls()[0].A.Path))
	})

	t.Run("failures", func(t *testing.T) {
		tbl := []struct {
			name string
			url  string
			err  string
		}{
			{"not found", "/missing.jpg", "unexpected status code: 404"},
			{"not an image", "/page.html", "not an image"},
			{"too big", "/big.jpg", "exceeds 50 bytes"},
		}
		for _, tt := range tbl {
			t.Run(tt.name, func(t *testing.T) {
				store := newStore()
				s := NewSideloader(store, Params{Dir: t.TempDir(), MaxSize: 50})
				_, err := s.Sideload(context.Background(), ts.URL+tt.url)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.err)
				assert.Empty(t, store.CreateCalls())
			})
		}
	})

	t.Run("context timeout", func(t *testing.T) {
		store := newStore()
		s := NewSideloader(store, Params{Dir: t.TempDir()})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := s.Sideload(ctx, ts.URL+"/slow.jpg")
		require.Error(t, err)
		assert.Empty(t, store.CreateCalls())
	})

	t.Run("store lookup error", func(t *testing.T) {
		store := &mocks.AssetStoreMock{
			FindByURLFunc: func(context.Context, string) (*domain.Asset, error) { return nil, fmt.Errorf("db down") },
		}
		s := NewSideloader(store, Params{Dir: t.TempDir()})
		_, err := s.Sideload(context.Background(), ts.URL+"/a.jpg")
		require.ErrorContains(t, err, "db down")
	})
}

func TestFileName(t *testing.T) {
	assert.Equal(t, ".jpg", filepath.Ext(fileName("https://x.com/a/b.JPG?w=100", "image/jpeg")))
	assert.Equal(t, ".webp", filepath.Ext(fileName("https://x.com/a/b.webp#frag", "image/webp")))
	assert.Equal(t, fileName("https://x.com/a", "image/gif"), fileName("https://x.com/a", "image/gif"))
	assert.NotEqual(t, fileName("https://x.com/a", "image/gif"), fileName("https://x.com/b", "image/gif"))
}
