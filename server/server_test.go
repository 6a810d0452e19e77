package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/syncer"
	"github.com/umputun/feedsync/server/mocks"
)

const testToken = "secret-token"

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
}

func testReport(dryRun bool) domain.RunReport {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.RunReport{
		Source: domain.SourceManual, DryRun: dryRun, StartedAt: started, FinishedAt: started.Add(2 * time.Second),
		Items: 3, Created: 1, Updated: 2,
	}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), &mocks.SyncerMock{}, &mocks.LogReaderMock{}, testToken, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.Equal(t, testToken, srv.token)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	srv := New(cfg, &mocks.SyncerMock{}, &mocks.LogReaderMock{}, testToken, "1.0.0", true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_statusHandler(t *testing.T) {
	rep := testReport(false)
	sync := &mocks.SyncerMock{
		StatusFunc: func() syncer.Status {
			return syncer.Status{Running: true, LastRun: &rep}
		},
	}
	srv := New(testConfig(), sync, &mocks.LogReaderMock{}, testToken, "1.2.3", false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Status  string        `json:"status"`
		Version string        `json:"version"`
		Sync    syncer.Status `json:"sync"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.True(t, resp.Sync.Running)
	require.NotNil(t, resp.Sync.LastRun)
	assert.Equal(t, 3, resp.Sync.LastRun.Items)
}

func TestServer_tokenAuth(t *testing.T) {
	sync := &mocks.SyncerMock{
		RunFunc: func(ctx context.Context, dryRun bool, source domain.Source) (domain.RunReport, error) {
			return testReport(dryRun), nil
		},
	}

	tests := []struct {
		name   string
		token  string
		target string
		header string
		code   int
	}{
		{name: "bearer", token: testToken, target: "/api/v1/sync", header: "Bearer " + testToken, code: http.StatusOK},
		{name: "query", token: testToken, target: "/api/v1/sync?token=" + testToken, code: http.StatusOK},
		{name: "missing", token: testToken, target: "/api/v1/sync", code: http.StatusUnauthorized},
		{name: "wrong bearer", token: testToken, target: "/api/v1/sync", header: "Bearer nope", code: http.StatusUnauthorized},
		{name: "wrong query", token: testToken, target: "/api/v1/sync?token=nope", code: http.StatusUnauthorized},
		{name: "server without token", token: "", target: "/api/v1/sync?token=", code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(testConfig(), sync, &mocks.LogReaderMock{}, tt.token, "test", false)
			req := httptest.NewRequest(http.MethodPost, tt.target, http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestServer_syncHandler(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		sync := &mocks.SyncerMock{
			RunFunc: func(ctx context.Context, dryRun bool, source domain.Source) (domain.RunReport, error) {
				return testReport(dryRun), nil
			},
		}
		srv := New(testConfig(), sync, &mocks.LogReaderMock{}, testToken, "test", false)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sync?token="+testToken, http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, testReport(false).Summary()+"\n", w.Body.String())

		require.Len(t, sync.RunCalls(), 1)
		assert.False(t, sync.RunCalls()[0].DryRun)
		assert.Equal(t, domain.SourceManual, sync.RunCalls()[0].Source)
	})

	t.Run("dry run", func(t *testing.T) {
		sync := &mocks.SyncerMock{
			RunFunc: func(ctx context.Context, dryRun bool, source domain.Source) (domain.RunReport, error) {
				return testReport(dryRun), nil
			},
		}
		srv := New(testConfig(), sync, &mocks.LogReaderMock{}, testToken, "test", false)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync?dryrun=1&token="+testToken, http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "(dry-run)")
		require.Len(t, sync.RunCalls(), 1)
		assert.True(t, sync.RunCalls()[0].DryRun)
	})

	t.Run("json report", func(t *testing.T) {
		sync := &mocks.SyncerMock{
			RunFunc: func(ctx context.Context, dryRun bool, source domain.Source) (domain.RunReport, error) {
				return testReport(dryRun), nil
			},
		}
		srv := New(testConfig(), sync, &mocks.LogReaderMock{}, testToken, "test", false)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync?format=json&token="+testToken, http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var rep domain.RunReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
		assert.Equal(t, 1, rep.Created)
		assert.Equal(t, 2, rep.Updated)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			code int
			body string
		}{
			{name: "in progress", err: syncer.ErrRunInProgress, code: http.StatusConflict, body: "in progress"},
			{name: "fetch", err: &syncer.FetchError{URL: "http://feed", Err: errors.New("timeout")},
				code: http.StatusBadGateway, body: "timeout"},
			{name: "parse", err: &syncer.ParseError{Err: errors.New("bad xml")}, code: http.StatusBadGateway, body: "bad xml"},
			{name: "other", err: errors.New("sync interrupted before sweep"), code: http.StatusInternalServerError,
				body: "interrupted"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				sync := &mocks.SyncerMock{
					RunFunc: func(ctx context.Context, dryRun bool, source domain.Source) (domain.RunReport, error) {
						return domain.RunReport{Errors: 1}, tt.err
					},
				}
				srv := New(testConfig(), sync, &mocks.LogReaderMock{}, testToken, "test", false)

				req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", http.NoBody)
				req.Header.Set("Authorization", "Bearer "+testToken)
				w := httptest.NewRecorder()
				srv.router.ServeHTTP(w, req)

				assert.Equal(t, tt.code, w.Code)
				assert.Contains(t, w.Body.String(), tt.body)
				assert.Equal(t, 1, strings.Count(w.Body.String(), "\n"))
			})
		}
	})

	t.Run("run survives dropped client", func(t *testing.T) {
		sync := &mocks.SyncerMock{
			RunFunc: func(ctx context.Context, dryRun bool, source domain.Source) (domain.RunReport, error) {
				assert.NoError(t, ctx.Err())
				return testReport(dryRun), nil
			},
		}
		srv := New(testConfig(), sync, &mocks.LogReaderMock{}, testToken, "test", false)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync?token="+testToken, http.NoBody).WithContext(ctx)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, sync.RunCalls(), 1)
	})
}

func TestServer_logHandler(t *testing.T) {
	entries := []domain.LogEntry{
		{ID: 1, Time: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), Line: "[INFO] [feedsync] sync started"},
		{ID: 2, Time: time.Date(2026, 3, 1, 10, 0, 1, 0, time.UTC), Line: "[INFO] [feedsync] created 1001"},
	}

	t.Run("default limit", func(t *testing.T) {
		logs := &mocks.LogReaderMock{
			RecentFunc: func(ctx context.Context, limit int) ([]domain.LogEntry, error) {
				return entries, nil
			},
		}
		srv := New(testConfig(), &mocks.SyncerMock{}, logs, testToken, "test", false)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/log?token="+testToken, http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []domain.LogEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, entries, got)
		require.Len(t, logs.RecentCalls(), 1)
		assert.Equal(t, 50, logs.RecentCalls()[0].Limit)
	})

	t.Run("limit capped", func(t *testing.T) {
		logs := &mocks.LogReaderMock{
			RecentFunc: func(ctx context.Context, limit int) ([]domain.LogEntry, error) {
				return nil, nil
			},
		}
		srv := New(testConfig(), &mocks.SyncerMock{}, logs, testToken, "test", false)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/log?limit=5000&token="+testToken, http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, logs.RecentCalls(), 1)
		assert.Equal(t, maxLogLimit, logs.RecentCalls()[0].Limit)
	})

	t.Run("invalid limit", func(t *testing.T) {
		srv := New(testConfig(), &mocks.SyncerMock{}, &mocks.LogReaderMock{}, testToken, "test", false)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/log?limit=abc&token="+testToken, http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("read error", func(t *testing.T) {
		logs := &mocks.LogReaderMock{
			RecentFunc: func(ctx context.Context, limit int) ([]domain.LogEntry, error) {
				return nil, errors.New("db is gone")
			},
		}
		srv := New(testConfig(), &mocks.SyncerMock{}, logs, testToken, "test", false)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/log?token="+testToken, http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "db is gone")
	})

	t.Run("requires token", func(t *testing.T) {
		srv := New(testConfig(), &mocks.SyncerMock{}, &mocks.LogReaderMock{}, testToken, "test", false)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/log", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	RenderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
