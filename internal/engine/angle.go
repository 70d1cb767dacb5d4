// Package engine computes metal roof panel cut lists: the plan-view cut
// angles where the working roof plane meets a hip or valley, the per-panel
// length step along a run, and the schematic panel outline.
//
// Every function in this package is a pure function of its arguments.
package engine

import "math"

// slopeRun is the horizontal run a roofing slope is expressed against ("X in 12").
const slopeRun = 12.0

// SolveIntersectionAngle returns the horizontal cut angle, in degrees, between
// the working plane's cut line and the edge of an intersecting plane. Both
// slopes are rise per 12 of run. A joining slope of zero yields 0.
//
// The result is NaN only for degenerate geometry; callers check IsUndefined.
func SolveIntersectionAngle(workingSlope, joiningSlope float64) float64 {
	if joiningSlope == 0 {
		return 0
	}
	slopeDiff := joiningSlope - workingSlope
	adjustedRun := slopeRun - (slopeDiff/joiningSlope)*slopeRun

	denominator := math.Sqrt(slopeRun*slopeRun + workingSlope*workingSlope + adjustedRun*adjustedRun)
	return degrees(math.Acos(adjustedRun / denominator))
}

// PitchAngle returns the roof pitch in degrees for a rise-per-12 slope.
func PitchAngle(slope float64) float64 {
	return degrees(math.Atan(slope / slopeRun))
}

// IsUndefined reports whether v is NaN or infinite.
func IsUndefined(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// round1 rounds to one decimal place, the precision of every printed length.
func round1(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
