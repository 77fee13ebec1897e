package dataset

import (
	"testing"

	"github.com/coastwatch/sea-level-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurements(t *testing.T) {
	measurements := Measurements()
	require.Len(t, measurements, 36)

	assert.Equal(t, domain.Measurement{Year: 1989, CumulativeRiseMM: 0}, measurements[0])
	assert.Equal(t, domain.Measurement{Year: 2024, CumulativeRiseMM: 110}, measurements[35])

	for i := 1; i < len(measurements); i++ {
		assert.Equal(t, measurements[i-1].Year+1, measurements[i].Year)
		assert.GreaterOrEqual(t, measurements[i].CumulativeRiseMM, measurements[i-1].CumulativeRiseMM)
	}
}

func TestMeasurementsBuildCleanly(t *testing.T) {
	points, err := domain.BuildSeries(Measurements())
	require.NoError(t, err)
	require.Len(t, points, 36)

	summary, err := domain.Summarize(points)
	require.NoError(t, err)

	// Published dashboard figures: 11.0 cm total over 35 years,
	// mean rate 110/35 ≈ 3.14 mm/yr.
	assert.Equal(t, 11.0, summary.TotalRiseCM)
	assert.Equal(t, 35, summary.SpanYears)
	assert.InDelta(t, 3.142857, summary.MeanAnnualRateMM, 1e-6)

	// Last five deltas: 4, 4, 4, 4, 5.
	assert.InDelta(t, 4.2, summary.RecentRateMM, 1e-9)
	assert.Greater(t, summary.RecentRateDeltaPct, 0.0, "recent rate runs above the long-term mean")
}

func TestMeasurementsReturnsCopies(t *testing.T) {
	first := Measurements()
	first[0].CumulativeRiseMM = 999

	assert.Equal(t, 0, Measurements()[0].CumulativeRiseMM)
}

func TestDamageSites(t *testing.T) {
	sites := DamageSites()
	require.Len(t, sites, 5)

	byName := make(map[string]domain.DamageSite, len(sites))
	for _, s := range sites {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.SeverityLabel)
		byName[s.Name] = s
	}

	assert.Equal(t, domain.CoastWest, byName["Daecheongdo"].Coast)
	assert.Equal(t, 3, byName["Daecheongdo"].Severity)
	assert.Equal(t, domain.CoastSouth, byName["Mokpo"].Coast)
	assert.Equal(t, domain.CoastEast, byName["Pohang"].Coast)
	assert.Equal(t, 1, byName["Pohang"].Severity)
}

func TestMapViews(t *testing.T) {
	views := MapViews()
	require.Len(t, views, 3)

	coasts := make(map[domain.Coast]bool)
	for _, v := range views {
		coasts[v.Coast] = true
		assert.NotZero(t, v.Zoom)
	}
	assert.Len(t, coasts, 3)

	assert.Equal(t, 6.0, DefaultMapView().Zoom)
}

func TestSurveyTables(t *testing.T) {
	trends := SymptomTrends()
	require.Len(t, trends, 5)
	for _, tr := range trends {
		assert.Greater(t, tr.Pct2024, tr.Pct2020, "symptom %q", tr.Symptom)
	}

	impacts := DailyImpacts()
	require.Len(t, impacts, 5)
	for _, im := range impacts {
		assert.NotEmpty(t, im.Note)
	}
}

func TestProjections(t *testing.T) {
	projections := Projections()
	require.Len(t, projections, 6)

	assert.Equal(t, 2024, projections[0].Year)
	assert.Equal(t, 2100, projections[5].Year)
	for _, p := range projections {
		assert.LessOrEqual(t, p.OptimisticCM, p.MiddleCM)
		assert.LessOrEqual(t, p.MiddleCM, p.PessimisticCM)
	}
}
