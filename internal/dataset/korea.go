// Package dataset holds the compiled-in tables behind the dashboard: the
// KHOA sea-level composite, the coastal damage site inventory, the youth
// mental-health survey results, and the IPCC-based projection table.
//
// The tables are fixed constants, not runtime configuration. Accessors
// return fresh copies so callers can never mutate the source data; the
// derived series is always recomputed from the raw table.
package dataset

import (
	"slices"

	"github.com/coastwatch/sea-level-service/internal/domain"
)

// BaselineYear is the first year of the measurement table and the zero
// point of cumulative rise.
const BaselineYear = 1989

// cumulativeRiseMM holds cumulative sea-level rise since BaselineYear,
// one entry per year through 2024, in millimeters.
var cumulativeRiseMM = []int{
	0, 2, 4, 7, 9, 12, 14, 16, 19, 22,
	24, 27, 30, 32, 35, 38, 41, 44, 47, 50,
	53, 57, 60, 63, 67, 70, 74, 77, 81, 85,
	89, 93, 97, 101, 105, 110,
}

// Measurements returns the fixed sea-level table, one Measurement per
// year starting at BaselineYear.
func Measurements() []domain.Measurement {
	measurements := make([]domain.Measurement, len(cumulativeRiseMM))
	for i, mm := range cumulativeRiseMM {
		measurements[i] = domain.Measurement{
			Year:             BaselineYear + i,
			CumulativeRiseMM: mm,
		}
	}
	return measurements
}

var damageSites = []domain.DamageSite{
	domain.NewDamageSite("Daecheongdo", domain.Geo{Lat: 37.828, Lon: 124.704}, domain.CoastWest, 3,
		"road and harbor flooding at high tide",
		"fishing activity restricted, residents evacuated"),
	domain.NewDamageSite("Yeonpyeongdo", domain.Geo{Lat: 37.666, Lon: 125.700}, domain.CoastWest, 3,
		"island flooding at high tide",
		"ferry service suspended, supply runs delayed"),
	domain.NewDamageSite("Busan coast", domain.Geo{Lat: 35.1796, Lon: 129.0756}, domain.CoastSouth, 2,
		"low-lying homes and roads flooded",
		"Haeundae and Gwangalli districts affected"),
	domain.NewDamageSite("Mokpo", domain.Geo{Lat: 34.8118, Lon: 126.3922}, domain.CoastSouth, 2,
		"harbor flooding at high tide",
		"fish market operations disrupted"),
	domain.NewDamageSite("Pohang", domain.Geo{Lat: 36.0190, Lon: 129.3435}, domain.CoastEast, 1,
		"ongoing coastal erosion",
		"coastal road damage"),
}

// DamageSites returns the coastal damage site inventory.
func DamageSites() []domain.DamageSite {
	return slices.Clone(damageSites)
}

var mapViews = []domain.MapView{
	{Coast: domain.CoastWest, Center: domain.Geo{Lat: 36.5, Lon: 125.5}, Zoom: 7},
	{Coast: domain.CoastSouth, Center: domain.Geo{Lat: 34.8, Lon: 128.0}, Zoom: 7},
	{Coast: domain.CoastEast, Center: domain.Geo{Lat: 37.0, Lon: 129.5}, Zoom: 7},
}

// MapViews returns the per-coast map centers.
func MapViews() []domain.MapView {
	return slices.Clone(mapViews)
}

// DefaultMapView frames the whole peninsula.
func DefaultMapView() domain.MapView {
	return domain.MapView{Center: domain.Geo{Lat: 36.0, Lon: 128.0}, Zoom: 6}
}

var symptomTrends = []domain.SymptomTrend{
	{Symptom: "climate anxiety", Pct2020: 45, Pct2024: 72, IncreasePct: 60},
	{Symptom: "depressed mood", Pct2020: 23, Pct2024: 38, IncreasePct: 65},
	{Symptom: "sleep disturbance", Pct2020: 18, Pct2024: 31, IncreasePct: 72},
	{Symptom: "PTSD symptoms", Pct2020: 12, Pct2024: 25, IncreasePct: 108},
	{Symptom: "helplessness", Pct2020: 35, Pct2024: 58, IncreasePct: 66},
}

// SymptomTrends returns the 2020-vs-2024 youth mental-health survey rows.
func SymptomTrends() []domain.SymptomTrend {
	return slices.Clone(symptomTrends)
}

var dailyImpacts = []domain.DailyImpact{
	{Area: "academic focus", ImpactPct: 82, Note: "concentration loss from climate disaster news"},
	{Area: "peer relationships", ImpactPct: 56, Note: "communication difficulties driven by climate anxiety"},
	{Area: "outdoor activity", ImpactPct: 73, Note: "heat waves and fine dust limit time outside"},
	{Area: "future planning", ImpactPct: 91, Note: "uncertainty makes long-term plans hard to commit to"},
	{Area: "hobbies", ImpactPct: 45, Note: "helplessness reduces leisure activity"},
}

// DailyImpacts returns the daily-life impact survey rows.
func DailyImpacts() []domain.DailyImpact {
	return slices.Clone(dailyImpacts)
}

var projections = []domain.Projection{
	{Year: 2024, OptimisticCM: 11, MiddleCM: 11, PessimisticCM: 11},
	{Year: 2030, OptimisticCM: 13, MiddleCM: 14, PessimisticCM: 15},
	{Year: 2040, OptimisticCM: 16, MiddleCM: 19, PessimisticCM: 23},
	{Year: 2050, OptimisticCM: 20, MiddleCM: 26, PessimisticCM: 35},
	{Year: 2070, OptimisticCM: 28, MiddleCM: 40, PessimisticCM: 58},
	{Year: 2100, OptimisticCM: 43, MiddleCM: 65, PessimisticCM: 110},
}

// Projections returns the IPCC-based future scenario table.
func Projections() []domain.Projection {
	return slices.Clone(projections)
}
