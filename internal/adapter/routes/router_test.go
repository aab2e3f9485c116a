package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashAnalysisBackend/internal/core/service"
)

func TestNewRouter_EndToEnd(t *testing.T) {
	svc := service.NewAnalysisService(nil, service.NewAnalyzer(nil))
	r := NewRouter(svc, gin.TestMode)

	t.Run("root", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Body.String(), "Password Hash Analysis Engine")
	})

	t.Run("analyze", func(t *testing.T) {
		body := `{"hashes":["5d41402abc4b2a76b9719d911017c592","not-a-hash"],"attack_type":"dictionary"}`
		req := httptest.NewRequest(http.MethodPost, "/api/analyze-hashes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"plaintext":"hello"`)
		assert.Contains(t, w.Body.String(), `"status":"UNSUPPORTED_FAMILY"`)
		assert.Contains(t, w.Body.String(), "Cracked 1 (50.0%)")
	})

	t.Run("empty batch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze-hashes", strings.NewReader(`{"hashes":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("analysis without storage", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analysis/abc", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("stats without storage", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hash-stats", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"total_analyses": 0,
			"total_hashes_analyzed": 0,
			"average_crack_rate": 0,
			"most_common_hash_types": [],
			"weakest_passwords": []
		}`, w.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/analyze-hashes", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
