package engine

import (
	"math"

	"github.com/piwi3910/PanelCut/internal/model"
)

// conditionPair keys the step rule table.
type conditionPair struct {
	bottom model.BottomCondition
	top    model.TopCondition
}

// stepRule derives the per-panel length change from the edge offsets.
type stepRule func(topOffset, bottomOffset float64) float64

// stepRules covers every (bottom, top) combination the form can produce.
var stepRules = map[conditionPair]stepRule{
	{model.Eave, model.Ridge}: func(_, _ float64) float64 { return 0 },

	{model.ValleyMovingUp, model.Ridge}:   func(_, b float64) float64 { return -b },
	{model.ValleyMovingDown, model.Ridge}: func(_, b float64) float64 { return b },

	{model.Eave, model.HipMovingUp}:   func(t, _ float64) float64 { return t },
	{model.Eave, model.HipMovingDown}: func(t, _ float64) float64 { return -t },

	{model.ValleyMovingUp, model.HipMovingDown}: func(t, b float64) float64 { return -(b + t) },
	{model.ValleyMovingDown, model.HipMovingUp}: func(t, b float64) float64 { return b + t },

	{model.ValleyMovingUp, model.HipMovingUp}:     func(t, b float64) float64 { return t - b },
	{model.ValleyMovingDown, model.HipMovingDown}: func(t, b float64) float64 { return -(t - b) },
}

// StepLength returns the length change between consecutive panels for the
// given edge conditions. Combinations outside the table yield 0.
func StepLength(bottom model.BottomCondition, top model.TopCondition, topOffset, bottomOffset float64) float64 {
	rule, ok := stepRules[conditionPair{bottom: bottom, top: top}]
	if !ok {
		return 0
	}
	return rule(topOffset, bottomOffset)
}

// SameDirection reports whether both edges move the same way along their
// hip and valley, which is when panel lengths need a slope adjustment.
func SameDirection(bottom model.BottomCondition, top model.TopCondition) bool {
	return (bottom == model.ValleyMovingUp && top == model.HipMovingUp) ||
		(bottom == model.ValleyMovingDown && top == model.HipMovingDown)
}

// edgeOffset is the length gained or lost across one panel width at a cut angle.
func edgeOffset(width, angle float64) float64 {
	if angle == 0 {
		return 0
	}
	return width * math.Tan(radians(angle))
}

// Compute runs the panel geometry for one set of inputs and composes the report.
func Compute(spec model.PanelSpec) model.GeometryResult {
	var r model.GeometryResult

	r.WorkingAngle = PitchAngle(spec.WorkingSlope)
	if spec.Top.HasJoiningPlane() {
		r.TopJoiningAngle = SolveIntersectionAngle(spec.WorkingSlope, spec.TopJoiningSlope)
	}
	if spec.Bottom.HasJoiningPlane() {
		r.BottomJoiningAngle = SolveIntersectionAngle(spec.WorkingSlope, spec.BottomJoiningSlope)
	}

	r.TopOffset = edgeOffset(spec.PanelWidth, r.TopJoiningAngle)
	r.BottomOffset = edgeOffset(spec.PanelWidth, r.BottomJoiningAngle)
	r.StepLength = StepLength(spec.Bottom, spec.Top, r.TopOffset, r.BottomOffset)

	for i := range r.PanelLengths {
		r.PanelLengths[i] = round1(spec.StartLength + float64(i)*r.StepLength)
	}

	switch spec.Bottom {
	case model.ValleyMovingUp:
		r.BottomAngle = r.BottomJoiningAngle
	case model.ValleyMovingDown:
		r.BottomAngle = -r.BottomJoiningAngle
	}
	switch spec.Top {
	case model.HipMovingUp:
		r.TopAngle = r.TopJoiningAngle
	case model.HipMovingDown:
		r.TopAngle = -r.TopJoiningAngle
	}
	r.BottomAngleDisplay = math.Abs(r.BottomAngle)
	r.TopAngleDisplay = math.Abs(r.TopAngle)

	r.SameDirection = SameDirection(spec.Bottom, spec.Top)
	if r.SameDirection {
		r.SlopeAdjustment = spec.PanelWidth / math.Cos(radians(r.WorkingAngle))
		for i, length := range r.PanelLengths {
			r.RunLengths[i] = round1(length + r.SlopeAdjustment)
		}
		r.OrderLength = round1(spec.StartLength + r.SlopeAdjustment)
	}

	r.Report = buildReport(spec, r)
	return r
}
