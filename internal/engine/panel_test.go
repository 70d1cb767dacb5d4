package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PanelCut/internal/model"
)

func testSpec(start float64, top model.TopCondition, topSlope float64, bottom model.BottomCondition, bottomSlope float64) model.PanelSpec {
	s := model.DefaultPanelSpec()
	s.StartLength = start
	s.Top = top
	s.TopJoiningSlope = topSlope
	s.Bottom = bottom
	s.BottomJoiningSlope = bottomSlope
	return s
}

func TestStepRules_CoverEveryConditionPair(t *testing.T) {
	require.Len(t, stepRules, len(model.TopConditions)*len(model.BottomConditions))
	for _, b := range model.BottomConditions {
		for _, top := range model.TopConditions {
			_, ok := stepRules[conditionPair{bottom: b, top: top}]
			assert.True(t, ok, "missing step rule for %s / %s", b, top)
		}
	}
}

func TestStepLength_Table(t *testing.T) {
	const top, bottom = 5.0, 2.0
	cases := []struct {
		bottom model.BottomCondition
		top    model.TopCondition
		want   float64
	}{
		{model.Eave, model.Ridge, 0},
		{model.ValleyMovingUp, model.Ridge, -bottom},
		{model.ValleyMovingDown, model.Ridge, bottom},
		{model.Eave, model.HipMovingUp, top},
		{model.Eave, model.HipMovingDown, -top},
		{model.ValleyMovingUp, model.HipMovingDown, -(bottom + top)},
		{model.ValleyMovingDown, model.HipMovingUp, bottom + top},
		{model.ValleyMovingUp, model.HipMovingUp, top - bottom},
		{model.ValleyMovingDown, model.HipMovingDown, -(top - bottom)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StepLength(c.bottom, c.top, top, bottom), "%s / %s", c.bottom, c.top)
	}
}

func TestStepLength_UnknownPairIsZero(t *testing.T) {
	assert.Equal(t, 0.0, StepLength(model.BottomCondition(7), model.HipMovingUp, 5, 2))
	assert.Equal(t, 0.0, StepLength(model.ValleyMovingUp, model.TopCondition(-1), 5, 2))
}

func TestSameDirection_OnlyTwoPairs(t *testing.T) {
	count := 0
	for _, b := range model.BottomConditions {
		for _, top := range model.TopConditions {
			if SameDirection(b, top) {
				count++
			}
		}
	}
	assert.Equal(t, 2, count)
	assert.True(t, SameDirection(model.ValleyMovingUp, model.HipMovingUp))
	assert.True(t, SameDirection(model.ValleyMovingDown, model.HipMovingDown))
	assert.False(t, SameDirection(model.ValleyMovingUp, model.HipMovingDown))
	assert.False(t, SameDirection(model.Eave, model.Ridge))
}

func TestCompute_EaveToRidge(t *testing.T) {
	r := Compute(testSpec(100, model.Ridge, 6, model.Eave, 6))

	assert.Equal(t, 0.0, r.StepLength)
	assert.Equal(t, 0.0, r.TopAngle)
	assert.Equal(t, 0.0, r.BottomAngle)
	assert.False(t, r.SameDirection)
	assert.Equal(t, 0.0, r.SlopeAdjustment)
	for i, l := range r.PanelLengths {
		assert.Equal(t, 100.0, l, "panel %d", i+1)
	}
	assert.InDelta(t, 26.5651, r.WorkingAngle, 0.0001)
}

func TestCompute_RidgeAndEaveIgnoreJoiningSlopes(t *testing.T) {
	r := Compute(testSpec(100, model.Ridge, 12, model.Eave, 3))
	assert.Equal(t, 0.0, r.TopJoiningAngle)
	assert.Equal(t, 0.0, r.BottomJoiningAngle)
	assert.Equal(t, 0.0, r.StepLength)
}

func TestCompute_ValleyMovingUpEqualSlopes(t *testing.T) {
	r := Compute(testSpec(100, model.Ridge, 6, model.ValleyMovingUp, 6))

	assert.InDelta(t, 48.1897, r.BottomJoiningAngle, 0.001)
	assert.InDelta(t, 17.8885, r.BottomOffset, 0.001)
	assert.InDelta(t, -17.8885, r.StepLength, 0.001)
	assert.InDelta(t, 48.1897, r.BottomAngle, 0.001)
	assert.InDelta(t, 48.1897, r.BottomAngleDisplay, 0.001)
	assert.Equal(t, 0.0, r.TopAngle)

	want := []float64{100.0, 82.1, 64.2, 46.3, 28.4, 10.6, -7.3, -25.2, -43.1, -61.0}
	for i, w := range want {
		assert.InDelta(t, w, r.PanelLengths[i], 1e-9, "panel %d", i+1)
	}
}

func TestCompute_HipMovingUpSteeperHip(t *testing.T) {
	r := Compute(testSpec(100, model.HipMovingUp, 12, model.Eave, 6))

	assert.InDelta(t, 65.9052, r.TopAngle, 0.001)
	assert.InDelta(t, 35.7771, r.StepLength, 0.001)
	assert.InDelta(t, 135.8, r.PanelLengths[1], 1e-9)
	assert.InDelta(t, 422.0, r.PanelLengths[9], 1e-9)
	assert.False(t, r.SameDirection)
}

func TestCompute_PanelLengthsFollowClosedForm(t *testing.T) {
	spec := testSpec(37.3, model.HipMovingDown, 9, model.ValleyMovingUp, 4)
	r := Compute(spec)

	require.Len(t, r.PanelLengths, model.PanelCount)
	for i, l := range r.PanelLengths {
		want := math.Round((spec.StartLength+float64(i)*r.StepLength)*10) / 10
		assert.InDelta(t, want, l, 1e-9, "panel %d", i+1)
	}
}

func TestCompute_DisplayAngleSigns(t *testing.T) {
	down := Compute(testSpec(100, model.HipMovingDown, 6, model.ValleyMovingDown, 4))
	assert.Less(t, down.TopAngle, 0.0)
	assert.Less(t, down.BottomAngle, 0.0)
	assert.InDelta(t, -down.TopAngle, down.TopAngleDisplay, 1e-12)
	assert.InDelta(t, -down.BottomAngle, down.BottomAngleDisplay, 1e-12)

	up := Compute(testSpec(100, model.HipMovingUp, 6, model.ValleyMovingUp, 4))
	assert.Greater(t, up.TopAngle, 0.0)
	assert.Greater(t, up.BottomAngle, 0.0)
}

func TestCompute_SameDirectionDifferingSlopes(t *testing.T) {
	r := Compute(testSpec(120, model.HipMovingUp, 6, model.ValleyMovingUp, 4))

	require.True(t, r.SameDirection)
	assert.InDelta(t, 17.8885, r.SlopeAdjustment, 0.001)
	assert.InDelta(t, 5.9628, r.StepLength, 0.001)
	assert.InDelta(t, 120.0, r.PanelLengths[0], 1e-9)
	assert.InDelta(t, 137.9, r.RunLengths[0], 1e-9)
	assert.InDelta(t, 191.6, r.RunLengths[9], 1e-9)

	text := r.ReportText()
	assert.Contains(t, text, "[RUN  137.9 in]")
	assert.Contains(t, text, "differing top and bottom slopes")
	assert.NotContains(t, text, "Actual panel length used")
}

func TestCompute_SameDirectionEqualSlopes(t *testing.T) {
	r := Compute(testSpec(120, model.HipMovingDown, 6, model.ValleyMovingDown, 6))

	require.True(t, r.SameDirection)
	assert.InDelta(t, 0.0, r.StepLength, 1e-9)
	assert.InDelta(t, 137.9, r.OrderLength, 1e-9)

	last := r.Report[len(r.Report)-1]
	assert.Equal(t, model.StyleHighlight, last.Style)
	assert.Equal(t, "Reminder: Actual panel length used is input length + slope adjustment:  137.9 in (11 ft 5.9 in)", last.Text)
}

func TestCompute_OpposingDirectionsHaveNoRun(t *testing.T) {
	r := Compute(testSpec(50, model.HipMovingDown, 6, model.ValleyMovingUp, 6))

	assert.False(t, r.SameDirection)
	assert.InDelta(t, -35.7771, r.StepLength, 0.001)
	assert.Equal(t, [model.PanelCount]float64{}, r.RunLengths)
	assert.NotContains(t, r.ReportText(), "RUN")
	assert.NotContains(t, r.ReportText(), "Reminder")
}

func TestCompute_ReportLayout(t *testing.T) {
	r := Compute(testSpec(100, model.Ridge, 6, model.ValleyMovingUp, 6))

	require.Len(t, r.Report, 5+model.PanelCount)
	assert.Equal(t, "Step Length:  -17.9 in (-1 ft -5.9 in)", r.Report[0].Text)
	assert.Equal(t, "Top Angle:    0.0°", r.Report[1].Text)
	assert.Equal(t, "Bottom Angle:   48.2°", r.Report[2].Text)
	assert.Equal(t, model.StyleSeparator, r.Report[3].Style)
	assert.Equal(t, "Panel Lengths:", r.Report[4].Text)
	assert.Equal(t, " 1:  100.0 in (8 ft 4.0 in)", r.Report[5].Text)
	assert.Equal(t, "10:  -61.0 in (-5 ft -1.0 in)", r.Report[14].Text)
}

func TestCompute_UndefinedRendersNA(t *testing.T) {
	spec := testSpec(100, model.HipMovingUp, math.Inf(1), model.Eave, 6)
	r := Compute(spec)

	assert.True(t, IsUndefined(r.StepLength))
	text := r.ReportText()
	assert.True(t, strings.Contains(text, "N/A"), "expected N/A in report:\n%s", text)
	assert.NotContains(t, text, "NaN")
	assert.NotContains(t, text, "Inf")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "48.2°", FormatAngle(-48.1897))
	assert.Equal(t, "N/A", FormatAngle(math.NaN()))
	assert.Equal(t, "137.9 in", FormatLength(137.888))
	assert.Equal(t, "N/A", FormatLength(math.Inf(1)))
}
