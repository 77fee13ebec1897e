package domain

import "time"

// Measurement is one raw entry of the fixed sea-level table: a calendar
// year and the cumulative rise since the baseline year, in millimeters.
type Measurement struct {
	Year             int `json:"year"`
	CumulativeRiseMM int `json:"cumulative_rise_mm"`
}

// SeriesPoint is one derived row of the sea-level series. AnnualDeltaMM
// and MovingAvg5yrMM are nil where undefined; they marshal as JSON null
// rather than being coerced to zero.
type SeriesPoint struct {
	Year             int      `json:"year"`
	CumulativeRiseMM int      `json:"cumulative_rise_mm"`
	CumulativeRiseCM float64  `json:"cumulative_rise_cm"`
	AnnualDeltaMM    *float64 `json:"annual_delta_mm"`
	MovingAvg5yrMM   *float64 `json:"moving_avg_5yr_mm"`
}

// Summary holds the four scalar figures shown on the dashboard header.
type Summary struct {
	TotalRiseCM        float64 `json:"total_rise_cm"`
	MeanAnnualRateMM   float64 `json:"mean_annual_rate_mm"`
	RecentRateMM       float64 `json:"recent_rate_mm"`
	RecentRateDeltaPct float64 `json:"recent_rate_delta_pct"`
	SpanYears          int     `json:"span_years"`
}

// Snapshot bundles the derived series and its summary for downstream
// consumers, stamped with the generation time.
type Snapshot struct {
	Points      []SeriesPoint `json:"points"`
	Summary     Summary       `json:"summary"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coast identifies one of the three Korean coastlines used to group
// damage sites and map views.
type Coast string

const (
	CoastWest  Coast = "west"
	CoastSouth Coast = "south"
	CoastEast  Coast = "east"
)

// ValidCoast reports whether s names a known coast.
func ValidCoast(s string) bool {
	switch Coast(s) {
	case CoastWest, CoastSouth, CoastEast:
		return true
	}
	return false
}

// DamageSite is a coastal location with documented sea-level damage.
type DamageSite struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Geo           Geo    `json:"geo"`
	Coast         Coast  `json:"coast"`
	Severity      int    `json:"severity"` // 1-3, see SeverityLabel
	SeverityLabel string `json:"severity_label"`
	Condition     string `json:"condition"`
	Impact        string `json:"impact"`

	// Geocoding enrichment fields.
	FormattedAddress string  `json:"formatted_address,omitempty"`
	PlaceName        string  `json:"place_name,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "reverse", "original", "failed"
}

// MapView is a per-coast map center and zoom, served as plain data so the
// rendering collaborator owns tile and style selection.
type MapView struct {
	Coast  Coast   `json:"coast"`
	Center Geo     `json:"center"`
	Zoom   float64 `json:"zoom"`
}

// SymptomTrend is one row of the youth mental-health survey: the share of
// respondents reporting a symptom in 2020 and 2024 surveys.
type SymptomTrend struct {
	Symptom     string  `json:"symptom"`
	Pct2020     float64 `json:"pct_2020"`
	Pct2024     float64 `json:"pct_2024"`
	IncreasePct float64 `json:"increase_pct"`
}

// DailyImpact is one row of the daily-life impact survey.
type DailyImpact struct {
	Area      string  `json:"area"`
	ImpactPct float64 `json:"impact_pct"`
	Note      string  `json:"note"`
}

// Projection is one row of the IPCC-based future scenario table, in
// centimeters of cumulative rise.
type Projection struct {
	Year          int     `json:"year"`
	OptimisticCM  float64 `json:"optimistic_cm"`
	MiddleCM      float64 `json:"middle_cm"`
	PessimisticCM float64 `json:"pessimistic_cm"`
}

// Risk thresholds drawn on the scenario chart, in centimeters.
const (
	RiskThresholdCM     = 30.0
	DisasterThresholdCM = 50.0
)
