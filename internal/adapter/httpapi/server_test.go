package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coastwatch/sea-level-service/internal/adapter/httpapi"
	"github.com/coastwatch/sea-level-service/internal/catalog"
	"github.com/coastwatch/sea-level-service/internal/dataset"
	"github.com/coastwatch/sea-level-service/internal/domain"
	"github.com/coastwatch/sea-level-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	err       error
	published int
}

func (f *fakePublisher) PublishSnapshot(_ context.Context, snapshot domain.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.published = len(snapshot.Points)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, publisher httpapi.SnapshotPublisher) *httpapi.Server {
	t.Helper()
	cat := catalog.New(dataset.Measurements(), dataset.DamageSites(), nil, testLogger(), observability.NewMetricsForTesting())
	require.NoError(t, cat.Warm(context.Background()))
	return httpapi.NewServer(":0", cat, publisher, observability.NewMetricsForTesting(), testLogger())
}

func get(srv *httpapi.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(newTestServer(t, nil), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReady(t *testing.T) {
	rec := get(newTestServer(t, nil), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzNotReady(t *testing.T) {
	cat := catalog.New(dataset.Measurements(), nil, nil, testLogger(), observability.NewMetricsForTesting())
	srv := httpapi.NewServer(":0", cat, nil, observability.NewMetricsForTesting(), testLogger())

	rec := get(srv, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
}

func TestSeriesEndpoint(t *testing.T) {
	rec := get(newTestServer(t, nil), "/api/v1/sea-level")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		BaselineYear int                  `json:"baseline_year"`
		Points       []domain.SeriesPoint `json:"points"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 1989, body.BaselineYear)
	require.Len(t, body.Points, 36)
	assert.Nil(t, body.Points[0].AnnualDeltaMM)
	assert.Equal(t, 11.0, body.Points[35].CumulativeRiseCM)

	// Undefined values travel as explicit nulls.
	assert.Contains(t, rec.Body.String(), `"annual_delta_mm":null`)
}

func TestSummaryEndpoint(t *testing.T) {
	rec := get(newTestServer(t, nil), "/api/v1/sea-level/summary")

	require.Equal(t, http.StatusOK, rec.Code)

	var summary domain.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))

	assert.Equal(t, 11.0, summary.TotalRiseCM)
	assert.InDelta(t, 3.142857, summary.MeanAnnualRateMM, 1e-6)
	assert.InDelta(t, 4.2, summary.RecentRateMM, 1e-9)
	assert.Equal(t, 35, summary.SpanYears)
}

func TestSeriesCSVEndpoint(t *testing.T) {
	rec := get(newTestServer(t, nil), "/api/v1/sea-level.csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "korea_sea_level.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 37)
	assert.Equal(t, "year,cumulative_rise_cm,annual_delta_mm", lines[0])
	assert.Equal(t, "1989,0.0,", lines[1])
	assert.Equal(t, "2024,11.0,5", lines[36])
}

func TestDamageSitesEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("all sites", func(t *testing.T) {
		rec := get(srv, "/api/v1/damage-sites")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Sites   []domain.DamageSite `json:"sites"`
			MapView domain.MapView      `json:"map_view"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Sites, 5)
		assert.Equal(t, 6.0, body.MapView.Zoom)
	})

	t.Run("filtered by coast", func(t *testing.T) {
		rec := get(srv, "/api/v1/damage-sites?coast=west")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Sites   []domain.DamageSite `json:"sites"`
			MapView domain.MapView      `json:"map_view"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Sites, 2)
		for _, s := range body.Sites {
			assert.Equal(t, domain.CoastWest, s.Coast)
		}
		assert.Equal(t, domain.CoastWest, body.MapView.Coast)
	})

	t.Run("unknown coast", func(t *testing.T) {
		rec := get(srv, "/api/v1/damage-sites?coast=north")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMentalHealthEndpoint(t *testing.T) {
	rec := get(newTestServer(t, nil), "/api/v1/mental-health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		SymptomTrends []domain.SymptomTrend `json:"symptom_trends"`
		DailyImpacts  []domain.DailyImpact  `json:"daily_impacts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.SymptomTrends, 5)
	assert.Len(t, body.DailyImpacts, 5)
}

func TestProjectionsEndpoint(t *testing.T) {
	rec := get(newTestServer(t, nil), "/api/v1/projections")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Projections         []domain.Projection `json:"projections"`
		RiskThresholdCM     float64             `json:"risk_threshold_cm"`
		DisasterThresholdCM float64             `json:"disaster_threshold_cm"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Projections, 6)
	assert.Equal(t, 30.0, body.RiskThresholdCM)
	assert.Equal(t, 50.0, body.DisasterThresholdCM)
}

func TestPublishEndpoint(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		srv := newTestServer(t, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/snapshot/publish", nil))

		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})

	t.Run("publishes snapshot", func(t *testing.T) {
		publisher := &fakePublisher{}
		srv := newTestServer(t, publisher)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/snapshot/publish", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 36, publisher.published)
	})

	t.Run("publish failure", func(t *testing.T) {
		srv := newTestServer(t, &fakePublisher{err: errors.New("broker down")})
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/snapshot/publish", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(newTestServer(t, nil), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
