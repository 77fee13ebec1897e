package domain

import "fmt"

// InvalidInputError reports a malformed measurement sequence: empty
// input, a year that does not follow its predecessor by exactly one, or
// a negative cumulative value. Index names the offending entry.
type InvalidInputError struct {
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid measurement at index %d: %s", e.Index, e.Reason)
}

// NonMonotonicDataError reports a cumulative rise value that decreased
// relative to its predecessor.
type NonMonotonicDataError struct {
	Index    int
	Previous int
	Value    int
}

func (e *NonMonotonicDataError) Error() string {
	return fmt.Sprintf("cumulative rise decreased at index %d: %d mm after %d mm",
		e.Index, e.Value, e.Previous)
}

// DegenerateSeriesError reports a series too short or too flat for the
// requested summary statistic.
type DegenerateSeriesError struct {
	Reason string
}

func (e *DegenerateSeriesError) Error() string {
	return "degenerate series: " + e.Reason
}
