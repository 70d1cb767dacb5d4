package export

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/PanelCut/internal/model"
)

func TestExportDXF_RoundTrip(t *testing.T) {
	_, _, outline := hipJob()
	path := filepath.Join(t.TempDir(), "panel.dxf")
	require.NoError(t, ExportDXF(path, outline))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	var polylines []*entity.LwPolyline
	var lines []*entity.Line
	for _, ent := range drawing.Entities() {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			polylines = append(polylines, e)
		case *entity.Line:
			lines = append(lines, e)
		}
	}

	require.Len(t, polylines, 1)
	require.Len(t, polylines[0].Vertices, 4)
	for i, v := range polylines[0].Vertices {
		assert.InDelta(t, outline.Vertices[i].X, v[0], 1e-4)
		assert.InDelta(t, outline.Vertices[i].Y, v[1], 1e-4)
	}

	require.Len(t, lines, 1)
	from, to := outline.LeadingEdgePoints()
	assert.InDelta(t, from.X, lines[0].Start[0], 1e-4)
	assert.InDelta(t, from.Y, lines[0].Start[1], 1e-4)
	assert.InDelta(t, to.X, lines[0].End[0], 1e-4)
	assert.InDelta(t, to.Y, lines[0].End[1], 1e-4)
}

func TestExportDXF_UndefinedOutline(t *testing.T) {
	var outline model.PanelOutline
	outline.Vertices[model.TopRight].Y = math.Inf(1)

	assert.Error(t, ExportDXF(filepath.Join(t.TempDir(), "panel.dxf"), outline))
}
