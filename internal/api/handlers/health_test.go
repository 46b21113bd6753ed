package handlers_test

import (
	"net/http"
	"testing"

	"github.com/calperez/auth-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/health"))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Status      string `json:"status"`
			Version     string `json:"version"`
			Environment string `json:"environment"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "healthy", result.Status)
		assert.Equal(t, "test", result.Version)
		assert.Equal(t, "test", result.Environment)
	})

	t.Run("live", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/health/live"))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "alive", result["status"])
	})

	t.Run("ready", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/health/ready"))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "ready", result["status"])
	})

	t.Run("detailed", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/health/detailed"))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Status   string `json:"status"`
			Services map[string]struct {
				Status string `json:"status"`
			} `json:"services"`
			UptimeSeconds float64 `json:"uptime_seconds"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "healthy", result.Status)
		assert.Equal(t, "healthy", result.Services["database"].Status)
		// No redis configured in the test server
		assert.Equal(t, "skipped", result.Services["redis"].Status)
		assert.GreaterOrEqual(t, result.UptimeSeconds, 0.0)
	})

	t.Run("metrics", func(t *testing.T) {
		// At least one request has gone through by now
		resp, err := http.Get(ts.APIURL("/health/metrics"))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			UptimeSeconds     float64 `json:"uptime_seconds"`
			Version           string  `json:"version"`
			RequestsProcessed int64   `json:"requests_processed"`
			Goroutines        int     `json:"goroutines"`
			InstanceID        string  `json:"instance_id"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "test", result.Version)
		assert.GreaterOrEqual(t, result.RequestsProcessed, int64(1))
		assert.Greater(t, result.Goroutines, 0)
		assert.NotEmpty(t, result.InstanceID)
	})
}
