package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/piwi3910/PanelCut/internal/model"
)

// ReferenceHeight is the schematic panel height in inches. The drawing shows
// the cut shape only, not the actual panel length.
const ReferenceHeight = 48.0

// BuildOutline returns the schematic quadrilateral of a panel with the given
// signed top and bottom cut angles (degrees).
//
// Left to right, the left edge stands square from (0,0) to (0,48) and the
// angled cuts rise across the width to the leading edge on the right. Right
// to left is the same shape mirrored about the panel's centre line, putting
// the square edge on the right and the leading edge on the left.
func BuildOutline(topAngle, bottomAngle, panelWidth float64, direction model.InstallDirection) model.PanelOutline {
	rise := func(angle float64) float64 { return panelWidth * math.Tan(radians(angle)) }

	// Left to right: square edge at x=0.
	squareBottom := r2.Vec{X: 0, Y: 0}
	squareTop := r2.Vec{X: 0, Y: ReferenceHeight}
	cutBottom := r2.Add(squareBottom, r2.Vec{X: panelWidth, Y: rise(bottomAngle)})
	cutTop := r2.Add(squareTop, r2.Vec{X: panelWidth, Y: rise(topAngle)})

	if direction == model.RightToLeft {
		mirror := func(v r2.Vec) r2.Vec { return r2.Vec{X: panelWidth - v.X, Y: v.Y} }
		return model.PanelOutline{
			Vertices: [4]model.Point2D{
				model.BottomLeft:  point(mirror(cutBottom)),
				model.BottomRight: point(mirror(squareBottom)),
				model.TopRight:    point(mirror(squareTop)),
				model.TopLeft:     point(mirror(cutTop)),
			},
			LeadingEdge: [2]int{model.BottomLeft, model.TopLeft},
		}
	}

	return model.PanelOutline{
		Vertices: [4]model.Point2D{
			model.BottomLeft:  point(squareBottom),
			model.BottomRight: point(cutBottom),
			model.TopRight:    point(cutTop),
			model.TopLeft:     point(squareTop),
		},
		LeadingEdge: [2]int{model.BottomRight, model.TopRight},
	}
}

// OutlineFor builds the outline of a computed result.
func OutlineFor(spec model.PanelSpec, r model.GeometryResult) model.PanelOutline {
	return BuildOutline(r.TopAngle, r.BottomAngle, spec.PanelWidth, spec.Direction)
}

func point(v r2.Vec) model.Point2D {
	return model.Point2D{X: v.X, Y: v.Y}
}
