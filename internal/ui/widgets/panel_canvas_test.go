package widgets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PanelCut/internal/model"
)

func rectangle(w, h float64) model.Outline {
	return model.Outline{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
}

func TestFitView_ScalesToLimitingAxis(t *testing.T) {
	v, ok := fitView(rectangle(16, 48), 400, 300)
	require.True(t, ok)

	// Height limits: (300-20)/48
	assert.InDelta(t, 280.0/48.0, float64(v.scale), 1e-4)
	size := v.size()
	assert.InDelta(t, 300, float64(size.Height), 1e-3)
	assert.Less(t, size.Width, float32(400))
}

func TestFitView_RoundTrip(t *testing.T) {
	v, ok := fitView(rectangle(16, 48), 400, 300)
	require.True(t, ok)

	p := model.Point2D{X: 4, Y: 30}
	pos := v.toPos(p)
	back := v.fromPos(pos.X, pos.Y)
	assert.InDelta(t, p.X, back.X, 1e-3)
	assert.InDelta(t, p.Y, back.Y, 1e-3)

	// Top of the shape is drawn at the top of the widget.
	top := v.toPos(model.Point2D{X: 0, Y: 48})
	assert.InDelta(t, canvasPadding, float64(top.Y), 1e-3)
}

func TestFitView_Undefined(t *testing.T) {
	o := rectangle(16, 48)
	o[2].Y = math.NaN()
	_, ok := fitView(o, 400, 300)
	assert.False(t, ok)

	_, ok = fitView(rectangle(0, 48), 400, 300)
	assert.False(t, ok, "zero width has no drawable area")
}
