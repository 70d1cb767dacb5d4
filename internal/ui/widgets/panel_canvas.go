package widgets

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/chewxy/math32"

	"github.com/piwi3910/PanelCut/internal/model"
)

// LeadingEdgeNote is shown under the drawing.
const LeadingEdgeNote = "The leading edge (screw side) is shown in red"

var (
	panelFill        = color.NRGBA{R: 173, G: 216, B: 230, A: 255} // light blue
	panelStroke      = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	leadingEdgeColor = color.NRGBA{R: 220, G: 0, B: 0, A: 255}
)

const canvasPadding = 10

// PanelCanvas draws a filled panel outline with its leading edge in red.
type PanelCanvas struct {
	widget.BaseWidget
	outline   model.PanelOutline
	maxWidth  float32
	maxHeight float32
}

func NewPanelCanvas(outline model.PanelOutline, maxW, maxH float32) *PanelCanvas {
	pc := &PanelCanvas{
		outline:   outline,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

// SetOutline replaces the drawn shape.
func (pc *PanelCanvas) SetOutline(outline model.PanelOutline) {
	pc.outline = outline
	pc.Refresh()
}

func (pc *PanelCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPanelCanvasRenderer(pc)
}

// view maps outline inches to widget positions, y pointing down.
type view struct {
	min, max model.Point2D
	scale    float32
}

// fitView scales the outline to fit maxW x maxH less padding. ok is false
// when the outline has undefined or degenerate coordinates.
func fitView(o model.Outline, maxW, maxH float32) (v view, ok bool) {
	min, max := o.BoundingBox()
	spanX, spanY := max.X-min.X, max.Y-min.Y
	if math.IsNaN(spanX) || math.IsNaN(spanY) || math.IsInf(spanX, 0) || math.IsInf(spanY, 0) || spanX <= 0 || spanY <= 0 {
		return view{}, false
	}
	availW := math32.Max(maxW-2*canvasPadding, 1)
	availH := math32.Max(maxH-2*canvasPadding, 1)
	scale := math32.Min(availW/float32(spanX), availH/float32(spanY))
	return view{min: min, max: max, scale: scale}, true
}

func (v view) toPos(p model.Point2D) fyne.Position {
	return fyne.NewPos(
		canvasPadding+float32(p.X-v.min.X)*v.scale,
		canvasPadding+float32(v.max.Y-p.Y)*v.scale,
	)
}

func (v view) fromPos(x, y float32) model.Point2D {
	return model.Point2D{
		X: v.min.X + float64((x-canvasPadding)/v.scale),
		Y: v.max.Y - float64((y-canvasPadding)/v.scale),
	}
}

func (v view) size() fyne.Size {
	return fyne.NewSize(
		float32(v.max.X-v.min.X)*v.scale+2*canvasPadding,
		float32(v.max.Y-v.min.Y)*v.scale+2*canvasPadding,
	)
}

type panelCanvasRenderer struct {
	pc      *PanelCanvas
	objects []fyne.CanvasObject
	size    fyne.Size
}

func newPanelCanvasRenderer(pc *PanelCanvas) *panelCanvasRenderer {
	r := &panelCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

func (r *panelCanvasRenderer) rebuild() {
	r.objects = nil

	polygon := r.pc.outline.Polygon()
	v, ok := fitView(polygon, r.pc.maxWidth, r.pc.maxHeight)
	if !ok || !r.pc.outline.Defined() {
		msg := canvas.NewText("Shape not available for these inputs", color.Gray{Y: 120})
		msg.Move(fyne.NewPos(canvasPadding, canvasPadding))
		r.objects = append(r.objects, msg)
		r.size = fyne.NewSize(r.pc.maxWidth, 40)
		return
	}
	r.size = v.size()

	// Fill: rasterize by point-in-polygon since canvas has no polygon primitive.
	fill := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		fx := float32(x) / float32(w) * r.size.Width
		fy := float32(y) / float32(h) * r.size.Height
		if polygon.Contains(v.fromPos(fx, fy)) {
			return panelFill
		}
		return color.Transparent
	})
	fill.Resize(r.size)
	fill.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, fill)

	lead0, lead1 := r.pc.outline.LeadingEdge[0], r.pc.outline.LeadingEdge[1]
	for i := range polygon {
		j := (i + 1) % len(polygon)
		edge := canvas.NewLine(panelStroke)
		edge.StrokeWidth = 2
		if (i == lead0 && j == lead1) || (i == lead1 && j == lead0) {
			edge.StrokeColor = leadingEdgeColor
			edge.StrokeWidth = 4
		}
		edge.Position1 = v.toPos(polygon[i])
		edge.Position2 = v.toPos(polygon[j])
		r.objects = append(r.objects, edge)
	}
}

func (r *panelCanvasRenderer) Layout(size fyne.Size)        {}
func (r *panelCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *panelCanvasRenderer) Destroy()                     {}
func (r *panelCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *panelCanvasRenderer) MinSize() fyne.Size           { return r.size }

// RenderPanelShape returns the panel drawing with the leading edge note
// beneath it.
func RenderPanelShape(pc *PanelCanvas) fyne.CanvasObject {
	note := canvas.NewText(LeadingEdgeNote, leadingEdgeColor)
	note.TextSize = 11
	note.TextStyle = fyne.TextStyle{Italic: true}

	header := widget.NewLabelWithStyle("Panel Shape", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewVBox(header, container.NewCenter(pc), note)
}
