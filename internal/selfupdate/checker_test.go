package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReleaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/ritika/funlearn/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	t.Run("update available", func(t *testing.T) {
		server := newReleaseServer(t, "v2.0.0")
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.0.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v2.0.0", result.ReleaseURL)
	})

	t.Run("already latest", func(t *testing.T) {
		server := newReleaseServer(t, "v1.0.0")
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("version without v prefix", func(t *testing.T) {
		server := newReleaseServer(t, "v2.0.0")
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "1.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})

	t.Run("dev build never updates", func(t *testing.T) {
		server := newReleaseServer(t, "v2.0.0")
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
	})
}
