package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/mocks"
)

func newTestRouter(svc *mocks.MockAnalysisService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, NewWebHandler(svc))
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	w := perform(newTestRouter(mocks.NewMockAnalysisService()), http.MethodGet, "/api/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Password Hash Analysis Engine"}`, w.Body.String())
}

func TestAnalyzeHashes(t *testing.T) {
	hello := "hello"
	analysis := &domain.HashAnalysis{
		ID: "abc",
		Results: []domain.AnalysisResult{{
			Digest:        domain.NewDigestRecord("5d41402abc4b2a76b9719d911017c592"),
			Family:        domain.FamilyMD5,
			StrengthScore: 1,
			CrackOutcome:  domain.CrackOutcome{Cracked: true, Plaintext: &hello, Attempts: 193, Status: domain.StatusCracked},
		}},
		BatchSummary: domain.BatchSummary{TotalHashes: 1, TotalCracked: 1, CrackRate: 100},
	}

	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.MockAnalysisService)
		wantStatus int
		check      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			body: `{"hashes":["5d41402abc4b2a76b9719d911017c592"],"attack_type":"dictionary"}`,
			setup: func(svc *mocks.MockAnalysisService) {
				svc.On("AnalyzeHashes", mock.Anything, mock.MatchedBy(func(req domain.AnalysisRequest) bool {
					return len(req.Hashes) == 1 && req.AttackType == domain.AttackDictionary
				})).Return(analysis, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "abc", body["id"])
				assert.Equal(t, float64(1), body["total_cracked"])
				results := body["results"].([]interface{})
				first := results[0].(map[string]interface{})
				assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", first["hash_value"])
				assert.Equal(t, "MD5", first["hash_type"])
				assert.Equal(t, "hello", first["plaintext"])
				assert.Equal(t, float64(193), first["attempts"])
			},
		},
		{
			name:       "malformed_json",
			body:       `{"hashes":`,
			setup:      func(*mocks.MockAnalysisService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation_error",
			body: `{"hashes":[]}`,
			setup: func(svc *mocks.MockAnalysisService) {
				svc.On("AnalyzeHashes", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: no hashes provided", domain.ErrInvalidInput))
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "no hashes provided")
			},
		},
		{
			name: "limit_error",
			body: `{"hashes":["a","b"]}`,
			setup: func(svc *mocks.MockAnalysisService) {
				svc.On("AnalyzeHashes", mock.Anything, mock.Anything).Return(nil, domain.ErrTooManyHashes)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "internal_error",
			body: `{"hashes":["a"]}`,
			setup: func(svc *mocks.MockAnalysisService) {
				svc.On("AnalyzeHashes", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "Analysis failed: db down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAnalysisService()
			tt.setup(svc)

			w := perform(newTestRouter(svc), http.MethodPost, "/api/analyze-hashes", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGetHistory(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(*mocks.MockAnalysisService)
		wantStatus int
	}{
		{
			name: "default_limit",
			setup: func(svc *mocks.MockAnalysisService) {
				svc.On("GetHistory", mock.Anything, 0).Return([]domain.HashAnalysis{{ID: "x"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "explicit_limit",
			query: "?limit=3",
			setup: func(svc *mocks.MockAnalysisService) {
				svc.On("GetHistory", mock.Anything, 3).Return([]domain.HashAnalysis{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad_limit",
			query:      "?limit=ten",
			setup:      func(*mocks.MockAnalysisService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service_error",
			setup: func(svc *mocks.MockAnalysisService) {
				svc.On("GetHistory", mock.Anything, 0).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAnalysisService()
			tt.setup(svc)

			w := perform(newTestRouter(svc), http.MethodGet, "/api/analysis-history"+tt.query, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetStats(t *testing.T) {
	svc := mocks.NewMockAnalysisService()
	svc.On("GetStats", mock.Anything).Return(&domain.HashStats{
		TotalAnalyses:       2,
		TotalHashesAnalyzed: 4,
		AverageCrackRate:    50,
		MostCommonHashTypes: []domain.HashTypeCount{{HashType: domain.FamilyMD5, Count: 4}},
		WeakestPasswords:    []string{"hello"},
	}, nil)

	w := perform(newTestRouter(svc), http.MethodGet, "/api/hash-stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"total_analyses": 2,
		"total_hashes_analyzed": 4,
		"average_crack_rate": 50,
		"most_common_hash_types": [{"hash_type": "MD5", "count": 4}],
		"weakest_passwords": ["hello"]
	}`, w.Body.String())
}

func TestGetStatsError(t *testing.T) {
	svc := mocks.NewMockAnalysisService()
	svc.On("GetStats", mock.Anything).Return(nil, errors.New("boom"))

	w := perform(newTestRouter(svc), http.MethodGet, "/api/hash-stats", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetMetrics(t *testing.T) {
	svc := mocks.NewMockAnalysisService()
	svc.On("GetMetrics").Return(domain.ResourceMetrics{Workers: 4, TotalAttempts: 9})

	w := perform(newTestRouter(svc), http.MethodGet, "/api/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(4), body["workers"])
	assert.Equal(t, float64(9), body["totalAttempts"])
}

func TestGetAnalysis(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		ret        *domain.HashAnalysis
		err        error
		wantStatus int
	}{
		{"found", "abc", &domain.HashAnalysis{ID: "abc"}, nil, http.StatusOK},
		{"not_found", "nope", nil, fmt.Errorf("%w: nope", domain.ErrAnalysisNotFound), http.StatusNotFound},
		{"store_error", "abc", nil, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAnalysisService()
			svc.On("GetAnalysis", mock.Anything, tt.id).Return(tt.ret, tt.err)

			w := perform(newTestRouter(svc), http.MethodGet, "/api/analysis/"+tt.id, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"id":"abc"`)
			}
			svc.AssertExpectations(t)
		})
	}
}
