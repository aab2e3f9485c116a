package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashAnalysisBackend/internal/config"
	"hashAnalysisBackend/internal/core/domain"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"},
		Pool:     config.PoolConfig{Workers: 2, QueueSize: 4},
		Limits:   config.LimitsConfig{MaxHashes: 10, MaxWordlistSize: 100},
		Metrics:  config.MetricsConfig{Interval: time.Hour},
	}
}

func TestRuntime_PersistedAnalysis(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.ReportPath = filepath.Join(t.TempDir(), "metrics.log")

	rt, err := New(context.Background(), cfg, true)
	require.NoError(t, err)
	require.NotNil(t, rt.Repo)

	ctx := context.Background()
	analysis, err := rt.Service.AnalyzeHashes(ctx, domain.AnalysisRequest{
		Hashes: []string{"5d41402abc4b2a76b9719d911017c592"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, analysis.TotalCracked)

	history, err := rt.Service.GetHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, analysis.ID, history[0].ID)

	stats, err := rt.Service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalAnalyses)
	assert.Equal(t, []string{"hello"}, stats.WeakestPasswords)

	m := rt.Service.GetMetrics()
	assert.Equal(t, 2, m.Workers)

	require.NoError(t, rt.Close())

	report, err := os.ReadFile(cfg.Metrics.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), analysis.ID)
}

func TestRuntime_LimitsApplied(t *testing.T) {
	cfg := testConfig(t)
	cfg.Limits.MaxHashes = 1

	rt, err := New(context.Background(), cfg, false)
	require.NoError(t, err)
	defer rt.Close()

	_, err = rt.Service.AnalyzeHashes(context.Background(), domain.AnalysisRequest{Hashes: []string{"a", "b"}})
	assert.ErrorIs(t, err, domain.ErrTooManyHashes)
}

func TestRuntime_WithoutPersistence(t *testing.T) {
	rt, err := New(context.Background(), testConfig(t), false)
	require.NoError(t, err)
	defer rt.Close()

	assert.Nil(t, rt.Repo)
	_, err = rt.Service.AnalyzeHashes(context.Background(), domain.AnalysisRequest{Hashes: []string{"5d41402abc4b2a76b9719d911017c592"}})
	require.NoError(t, err)

	history, err := rt.Service.GetHistory(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRuntime_BadDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "oracle"

	_, err := New(context.Background(), cfg, true)
	assert.Error(t, err)
}

func TestRuntime_BadReportPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.ReportPath = filepath.Join(t.TempDir(), "missing", "metrics.log")

	_, err := New(context.Background(), cfg, false)
	assert.Error(t, err)
}

func TestRuntime_ReportWrittenWhileOpen(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Interval = 20 * time.Millisecond
	cfg.Metrics.ReportPath = filepath.Join(t.TempDir(), "metrics.log")

	rt, err := New(context.Background(), cfg, false)
	require.NoError(t, err)
	defer rt.Close()

	var ids []string
	for i := 0; i < 3; i++ {
		analysis, err := rt.Service.AnalyzeHashes(context.Background(), domain.AnalysisRequest{
			Hashes: []string{"5d41402abc4b2a76b9719d911017c592"},
		})
		require.NoError(t, err)
		ids = append(ids, analysis.ID)
	}

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(cfg.Metrics.ReportPath)
		if err != nil {
			return false
		}
		for _, id := range ids {
			if !strings.Contains(string(data), id) {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)

	m := rt.Service.GetMetrics()
	assert.Equal(t, int64(3*193), m.TotalAttempts)
	assert.Equal(t, int64(3), m.CompletedTasks)
}
