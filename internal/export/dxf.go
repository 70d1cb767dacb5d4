package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/piwi3910/PanelCut/internal/model"
)

// DXF layer names.
const (
	PanelLayer       = "PANEL"
	LeadingEdgeLayer = "LEADING_EDGE"
)

// ExportDXF writes the panel outline as a closed LWPOLYLINE on the PANEL
// layer and the leading edge as a LINE on a red LEADING_EDGE layer.
// Coordinates are in inches.
func ExportDXF(path string, outline model.PanelOutline) error {
	if !outline.Defined() {
		return fmt.Errorf("cannot export DXF: panel outline is undefined")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(PanelLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add panel layer: %w", err)
	}

	vertices := make([][]float64, 0, len(outline.Vertices))
	for _, v := range outline.Vertices {
		vertices = append(vertices, []float64{v.X, v.Y})
	}
	if _, err := d.LwPolyline(true, vertices...); err != nil {
		return fmt.Errorf("failed to write panel outline: %w", err)
	}

	if _, err := d.AddLayer(LeadingEdgeLayer, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add leading edge layer: %w", err)
	}
	from, to := outline.LeadingEdgePoints()
	if _, err := d.Line(from.X, from.Y, 0, to.X, to.Y, 0); err != nil {
		return fmt.Errorf("failed to write leading edge: %w", err)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}
