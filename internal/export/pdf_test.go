package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PanelCut/internal/model"
)

func TestExportPDF_CreatesFile(t *testing.T) {
	for name, build := range map[string]func() (model.Job, model.GeometryResult, model.PanelOutline){
		"hip":            hipJob,
		"same direction": sameDirectionJob,
	} {
		t.Run(name, func(t *testing.T) {
			job, result, outline := build()
			path := filepath.Join(t.TempDir(), "cutlist.pdf")

			require.NoError(t, ExportPDF(path, job, result, outline))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(500), "PDF file seems too small")
		})
	}
}

func TestExportPDF_RejectsZeroWidth(t *testing.T) {
	job, result, outline := hipJob()
	job.Spec.PanelWidth = 0
	path := filepath.Join(t.TempDir(), "cutlist.pdf")

	assert.Error(t, ExportPDF(path, job, result, outline))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be written for invalid inputs")
}

func TestCutListRows(t *testing.T) {
	_, result, _ := hipJob()
	rows := cutListRows(result)
	require.Len(t, rows, model.PanelCount)
	assert.Equal(t, []string{"1", "120.0 in", "10 ft 0.0 in"}, rows[0])
	assert.Equal(t, []string{"2", "137.9 in", "11 ft 5.9 in"}, rows[1])

	_, result, _ = sameDirectionJob()
	rows = cutListRows(result)
	assert.Equal(t, []string{"1", "120.0 in", "10 ft 0.0 in", "137.9 in"}, rows[0])
}

func TestInputItems_JoiningSlopesOnlyWhenIntersecting(t *testing.T) {
	spec := model.DefaultPanelSpec()
	labels := func(items []labelValue) []string {
		var out []string
		for _, item := range items {
			out = append(out, item.label)
		}
		return out
	}

	assert.NotContains(t, labels(inputItems(spec)), "Top Intersecting")
	assert.NotContains(t, labels(inputItems(spec)), "Bottom Intersecting")

	spec.Top = model.HipMovingDown
	spec.Bottom = model.ValleyMovingDown
	got := labels(inputItems(spec))
	assert.Contains(t, got, "Top Intersecting")
	assert.Contains(t, got, "Bottom Intersecting")
}

func TestFitOutline_KeepsShapeInsideBox(t *testing.T) {
	_, _, outline := hipJob()
	const left, top, w, h = 200.0, 40.0, 80.0, 120.0
	toPage := fitOutline(outline.Polygon(), left, top, w, h)

	for _, v := range outline.Vertices {
		x, y := toPage(v)
		assert.GreaterOrEqual(t, x, left-1e-9)
		assert.LessOrEqual(t, x, left+w+1e-9)
		assert.GreaterOrEqual(t, y, top-1e-9)
		assert.LessOrEqual(t, y, top+h+1e-9)
	}

	// Page y grows downward, so the top edge lands above the bottom edge.
	_, yBottom := toPage(outline.Vertices[model.BottomLeft])
	_, yTop := toPage(outline.Vertices[model.TopLeft])
	assert.Less(t, yTop, yBottom)
}
