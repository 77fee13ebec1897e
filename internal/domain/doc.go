// Package domain models Korean coastal sea-level observations and the
// derived series served to dashboard renderers.
//
// # Data Source
//
// The measurement table is the KHOA (Korea Hydrographic and Oceanographic
// Agency) coastal tide-gauge composite: one entry per calendar year from
// the 1989 baseline through 2024, each holding the cumulative sea-level
// rise since the baseline in millimeters. The table is compiled into the
// binary (see the dataset package); it is never fetched at runtime.
//
// # Series Conventions
//
// Cumulative values:
//
//	Non-negative millimeters, monotonically non-decreasing. A decrease
//	relative to the prior year is a data integrity failure, reported as
//	*NonMonotonicDataError with the offending index. The fixed table is
//	monotonic, so the guard only matters for future or foreign input.
//
// Annual delta:
//
//	First difference of the cumulative column. The baseline year has no
//	prior value, so its delta is undefined. Undefined is represented by a
//	nil pointer, never by zero: coercing to zero would silently drag down
//	every rate statistic computed from the column.
//
// Moving average:
//
//	Five-year centered mean of the annual delta, defined only where the
//	window fits inside the series (the first two and last two points have
//	none). Centered, not trailing: the dashboard trend line depends on the
//	symmetric window for its shape near the boundaries.
//
// Summary statistics:
//
//	The "recent rate" figure uses the trailing five entries' deltas, not
//	the centered column shown on the chart. The asymmetry is deliberate
//	and matches the published dashboard.
//
// # Damage Sites
//
// Coastal damage locations are graded on a three-level severity scale
// (1 advisory, 2 warning, 3 severe) and grouped by coast (west, south,
// east). Site IDs are deterministic SHA-256 hashes of name and position,
// so regenerating the table never changes an ID.
package domain
