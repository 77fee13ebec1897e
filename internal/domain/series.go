package domain

import "fmt"

// movingWindow is the width of the centered moving-average window.
const movingWindow = 5

// trailingWindow is the number of trailing entries used for the recent
// rate summary figure.
const trailingWindow = 5

// BuildSeries derives the dashboard series from the raw measurement
// table: cumulative centimeters, year-over-year deltas (undefined at the
// baseline year), and a centered five-year moving average of the deltas
// (undefined for the first two and last two points).
//
// The input must be non-empty, ordered by strictly consecutive years,
// with non-negative, non-decreasing cumulative values. Violations fail
// with *InvalidInputError or *NonMonotonicDataError naming the offending
// index; the builder never repairs malformed input. Output length and
// ordering always match the input, and the function is pure: calling it
// twice on the same input yields identical results.
func BuildSeries(measurements []Measurement) ([]SeriesPoint, error) {
	if err := validateMeasurements(measurements); err != nil {
		return nil, err
	}

	points := make([]SeriesPoint, len(measurements))
	for i, m := range measurements {
		points[i] = SeriesPoint{
			Year:             m.Year,
			CumulativeRiseMM: m.CumulativeRiseMM,
			CumulativeRiseCM: float64(m.CumulativeRiseMM) / 10.0,
		}
		if i > 0 {
			delta := float64(m.CumulativeRiseMM - measurements[i-1].CumulativeRiseMM)
			points[i].AnnualDeltaMM = &delta
		}
	}

	half := movingWindow / 2
	for i := half; i <= len(points)-1-half; i++ {
		points[i].MovingAvg5yrMM = centeredDeltaMean(points, i, half)
	}

	return points, nil
}

// validateMeasurements checks ordering, year continuity, and monotonicity.
func validateMeasurements(measurements []Measurement) error {
	if len(measurements) == 0 {
		return &InvalidInputError{Index: 0, Reason: "measurement sequence is empty"}
	}
	for i, m := range measurements {
		if m.CumulativeRiseMM < 0 {
			return &InvalidInputError{
				Index:  i,
				Reason: fmt.Sprintf("negative cumulative rise %d mm", m.CumulativeRiseMM),
			}
		}
		if i == 0 {
			continue
		}
		prev := measurements[i-1]
		if m.Year != prev.Year+1 {
			return &InvalidInputError{
				Index:  i,
				Reason: fmt.Sprintf("year %d does not follow %d", m.Year, prev.Year),
			}
		}
		if m.CumulativeRiseMM < prev.CumulativeRiseMM {
			return &NonMonotonicDataError{
				Index:    i,
				Previous: prev.CumulativeRiseMM,
				Value:    m.CumulativeRiseMM,
			}
		}
	}
	return nil
}

// centeredDeltaMean averages the defined annual deltas in the window
// [i-half, i+half]. The baseline delta is undefined, so the window at the
// left boundary holds one fewer value than its width.
func centeredDeltaMean(points []SeriesPoint, i, half int) *float64 {
	var sum float64
	var n int
	for j := i - half; j <= i+half; j++ {
		if points[j].AnnualDeltaMM == nil {
			continue
		}
		sum += *points[j].AnnualDeltaMM
		n++
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// Summarize computes the four dashboard scalars from builder output.
// The recent rate uses the trailing five entries' raw deltas, not the
// centered moving-average column; only defined deltas contribute.
//
// A series spanning zero years (a single point) has no defined rate and
// fails with *DegenerateSeriesError, as does a series whose mean annual
// rate is zero (the recent-vs-mean percentage would divide by zero).
func Summarize(points []SeriesPoint) (Summary, error) {
	if len(points) == 0 {
		return Summary{}, &InvalidInputError{Index: 0, Reason: "series is empty"}
	}

	first := points[0]
	last := points[len(points)-1]
	span := last.Year - first.Year
	if span == 0 {
		return Summary{}, &DegenerateSeriesError{Reason: "series spans a single year"}
	}

	meanRate := float64(last.CumulativeRiseMM) / float64(span)
	if meanRate == 0 {
		return Summary{}, &DegenerateSeriesError{Reason: "mean annual rate is zero"}
	}

	recentRate, ok := trailingDeltaMean(points, trailingWindow)
	if !ok {
		return Summary{}, &DegenerateSeriesError{Reason: "no defined annual deltas"}
	}

	return Summary{
		TotalRiseCM:        last.CumulativeRiseCM,
		MeanAnnualRateMM:   meanRate,
		RecentRateMM:       recentRate,
		RecentRateDeltaPct: (recentRate/meanRate - 1) * 100,
		SpanYears:          span,
	}, nil
}

// trailingDeltaMean averages the defined deltas among the last n entries.
func trailingDeltaMean(points []SeriesPoint, n int) (float64, bool) {
	start := len(points) - n
	if start < 0 {
		start = 0
	}

	var sum float64
	var count int
	for _, p := range points[start:] {
		if p.AnnualDeltaMM == nil {
			continue
		}
		sum += *p.AnnualDeltaMM
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// BuildSnapshot runs the builder and summarizer over the raw table and
// stamps the result with the current clock time.
func BuildSnapshot(measurements []Measurement) (Snapshot, error) {
	points, err := BuildSeries(measurements)
	if err != nil {
		return Snapshot{}, err
	}
	summary, err := Summarize(points)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Points:      points,
		Summary:     summary,
		GeneratedAt: clock.Now(),
	}, nil
}
