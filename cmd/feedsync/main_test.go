package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/repository"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<podjetje>
	<izdelki>
		<izdelek>
			<izdelekID>1001</izdelekID>
			<izdelekIme>Polnilec USB-C 65W</izdelekIme>
			<PPC>29,90</PPC>
			<dobava id="1">Na zalogi</dobava>
		</izdelek>
		<izdelek>
			<izdelekID>1002</izdelekID>
			<izdelekIme>Kabel 1m</izdelekIme>
			<PPC>4.50</PPC>
			<dobava>po naročilu</dobava>
		</izdelek>
	</izdelki>
</podjetje>`

// setupEnv points the test config to a feed server, a temp database and a free port
func setupEnv(t *testing.T, token string) (dbPath string, port int) {
	t.Helper()
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, testFeed)
	}))
	t.Cleanup(feedSrv.Close)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port = listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	dbPath = t.TempDir()
	t.Setenv("FEED_URL", feedSrv.URL)
	t.Setenv("DB_PATH", dbPath)
	t.Setenv("LISTEN", fmt.Sprintf("127.0.0.1:%d", port))
	t.Setenv("TRIGGER_TOKEN", token)
	return dbPath, port
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: cfgFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_Once(t *testing.T) {
	dbPath, _ := setupEnv(t, "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t.Run("dry run leaves catalog empty", func(t *testing.T) {
		require.NoError(t, run(ctx, Opts{Config: "testdata/test_config.yml", Once: true, DryRun: true}))
		assert.Equal(t, int64(0), countProducts(t, dbPath))
	})

	t.Run("sync creates products", func(t *testing.T) {
		require.NoError(t, run(ctx, Opts{Config: "testdata/test_config.yml", Once: true}))
		assert.Equal(t, int64(2), countProducts(t, dbPath))
	})
}

func TestRun_ServerStartStop(t *testing.T) {
	_, port := setupEnv(t, "test-token")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() { serverErr <- run(ctx, Opts{Config: "testdata/test_config.yml"}) }()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	// unauthorized trigger
	resp, err := http.Post(base+"/api/v1/sync", "text/plain", http.NoBody)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// manual trigger
	req, err := http.NewRequest(http.MethodPost, base+"/api/v1/sync", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-token")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "sync done [manual]: items=2 created=2"), string(body))

	cancel()
	select {
	case err := <-serverErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestTriggerToken(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	t.Run("configured token wins", func(t *testing.T) {
		token, err := triggerToken(ctx, "from-config", repos.Setting)
		require.NoError(t, err)
		assert.Equal(t, "from-config", token)

		stored, err := repos.Setting.GetSetting(ctx, domain.SettingTriggerToken)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("generated once and reused", func(t *testing.T) {
		first, err := triggerToken(ctx, "", repos.Setting)
		require.NoError(t, err)
		require.NotEmpty(t, first)

		second, err := triggerToken(ctx, "", repos.Setting)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		stored, err := repos.Setting.GetSetting(ctx, domain.SettingTriggerToken)
		require.NoError(t, err)
		assert.Equal(t, first, stored)
	})
}

func countProducts(t *testing.T, dbPath string) int64 {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN: "file:" + dbPath + "/feedsync.db?cache=shared&mode=rwc&_txlock=immediate", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()
	count, err := repos.Product.Count(context.Background())
	require.NoError(t, err)
	return count
}
