package modelfile

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/word-salad/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeModelDir creates a directory holding all required artifact files.
func writeModelDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range RequiredFiles() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("stub"), 0o644))
	}
	return dir
}

func TestExists(t *testing.T) {
	t.Run("complete directory", func(t *testing.T) {
		assert.True(t, Exists(writeModelDir(t)))
	})

	t.Run("empty path", func(t *testing.T) {
		assert.False(t, Exists(""))
	})

	t.Run("missing directory", func(t *testing.T) {
		assert.False(t, Exists(filepath.Join(t.TempDir(), "nope")))
	})

	t.Run("incomplete directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("{}"), 0o644))
		assert.False(t, Exists(dir))
	})
}

func TestCheckTokenStatus(t *testing.T) {
	t.Run("model exists", func(t *testing.T) {
		t.Setenv(tokenEnvVar, "")
		assert.Equal(t, TokenNotRequired, CheckTokenStatus(writeModelDir(t)))
	})

	t.Run("token set", func(t *testing.T) {
		t.Setenv(tokenEnvVar, "hf_dummy")
		assert.Equal(t, TokenAvailable, CheckTokenStatus(t.TempDir()))
	})

	t.Run("token missing", func(t *testing.T) {
		t.Setenv(tokenEnvVar, "")
		assert.Equal(t, TokenRequired, CheckTokenStatus(t.TempDir()))
	})
}

func TestTokenStatusString(t *testing.T) {
	assert.Equal(t, "not required", TokenNotRequired.String())
	assert.Equal(t, "available", TokenAvailable.String())
	assert.Equal(t, "required", TokenRequired.String())
}

// serveArtifacts stands in for the HuggingFace repo.
func serveArtifacts(t *testing.T, requireAuth bool) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requireAuth && r.Header.Get("Authorization") != "Bearer hf_test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte("payload for " + filepath.Base(r.URL.Path)))
	}))
	t.Cleanup(server.Close)
	return server
}

func withRepoBaseURL(t *testing.T, url string) {
	t.Helper()
	old := repoBaseURL
	repoBaseURL = url + "/"
	t.Cleanup(func() { repoBaseURL = old })
}

func TestDownload(t *testing.T) {
	withRepoBaseURL(t, serveArtifacts(t, true).URL)
	dir := t.TempDir()

	var fractions []float64
	err := Download(context.Background(), dir, func(f float64) {
		fractions = append(fractions, f)
	}, "hf_test")
	require.NoError(t, err)

	assert.True(t, Exists(dir))
	_, err = os.Stat(filepath.Join(dir, InfoFile))
	assert.NoError(t, err)

	require.NotEmpty(t, fractions)
	assert.InDelta(t, 1.0, fractions[len(fractions)-1], 1e-9)
	for i := 1; i < len(fractions); i++ {
		assert.GreaterOrEqual(t, fractions[i], fractions[i-1], "progress must be monotone")
	}
}

func TestDownloadSkipsExistingFiles(t *testing.T) {
	withRepoBaseURL(t, serveArtifacts(t, true).URL)
	dir := t.TempDir()

	pinned := filepath.Join(dir, WeightsFile)
	require.NoError(t, os.WriteFile(pinned, []byte("already here"), 0o644))

	require.NoError(t, Download(context.Background(), dir, nil, "hf_test"))

	data, err := os.ReadFile(pinned)
	require.NoError(t, err)
	assert.Equal(t, "already here", string(data), "existing file must not be re-fetched")
	assert.True(t, Exists(dir))
}

func TestDownloadWithoutToken(t *testing.T) {
	t.Setenv(tokenEnvVar, "")
	err := Download(context.Background(), t.TempDir(), nil, "")
	assert.ErrorIs(t, err, common.ErrTokenRequired)
}

func TestDownloadTokenFromEnvironment(t *testing.T) {
	withRepoBaseURL(t, serveArtifacts(t, true).URL)
	t.Setenv(tokenEnvVar, "hf_test")

	dir := t.TempDir()
	require.NoError(t, Download(context.Background(), dir, nil, ""))
	assert.True(t, Exists(dir))
}

func TestDownloadHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	withRepoBaseURL(t, server.URL)

	dir := t.TempDir()
	err := Download(context.Background(), dir, nil, "hf_test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDownloadFailed))
	assert.False(t, Exists(dir), "failed download must not leave a complete-looking model")
}

func TestDownloadCanceledContext(t *testing.T) {
	withRepoBaseURL(t, serveArtifacts(t, false).URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Download(ctx, t.TempDir(), nil, "hf_test")
	assert.ErrorIs(t, err, common.ErrDownloadFailed)
}
