// Package export writes panel cut lists and outlines to files for the shop:
// a printable PDF sheet, QR-coded panel labels, an Excel workbook and a DXF
// outline for the shear table.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/PanelCut/internal/engine"
	"github.com/piwi3910/PanelCut/internal/model"
)

// rgb is a colour used in both the PDF and the on-screen canvas.
type rgb struct {
	R, G, B int
}

var (
	panelFill   = rgb{R: 173, G: 216, B: 230} // light blue
	panelStroke = rgb{R: 0, G: 0, B: 0}
	leadingEdge = rgb{R: 220, G: 0, B: 0}
	highlight   = rgb{R: 180, G: 120, B: 0}
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 6.0
	tableWidth   = 170.0
	drawAreaLeft = marginLeft + tableWidth + 10.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF writes a one-page cut sheet: the inputs, the step and cut angles,
// the ten panel lengths and the panel outline with its leading edge in red.
func ExportPDF(path string, job model.Job, result model.GeometryResult, outline model.PanelOutline) error {
	if err := job.Spec.Validate(); err != nil {
		return fmt.Errorf("cannot export cut sheet: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Panel Cut List: %s", job.Name)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, tr(title), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, marginTop+headerHeight-2)
	pdf.CellFormat(tableWidth, 5, fmt.Sprintf("Job %s | %s", job.ID, job.UpdatedAt), "", 0, "L", false, 0, "")

	y := drawAreaTop
	y = renderInputs(pdf, tr, job.Spec, y)
	y = renderAngles(pdf, tr, result, y+4)
	y = renderCutList(pdf, tr, result, y+4)
	renderReminder(pdf, tr, result, y+3)

	renderOutline(pdf, tr, outline, job.Spec.PanelWidth)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PanelCut - Metal Roof Panel Cut List", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderInputs draws the two-column input summary and returns the next y.
func renderInputs(pdf *fpdf.Fpdf, tr func(string) string, spec model.PanelSpec, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(tableWidth, 7, "Inputs", "", 0, "L", false, 0, "")
	y += 8

	items := inputItems(spec)
	pdf.SetFont("Helvetica", "", 9)
	for i, item := range items {
		col := float64(i % 2)
		x := marginLeft + col*tableWidth/2
		pdf.SetXY(x, y)
		pdf.CellFormat(38, 5, tr(item.label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(tableWidth/2-38, 5, tr(item.value), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		if i%2 == 1 {
			y += 5
		}
	}
	if len(items)%2 == 1 {
		y += 5
	}
	return y
}

type labelValue struct {
	label string
	value string
}

// inputItems lists the inputs in form order; joining slopes only appear for
// edges that meet another plane.
func inputItems(spec model.PanelSpec) []labelValue {
	items := []labelValue{
		{"Install Direction", spec.Direction.Arrow()},
		{"Start Length", fmt.Sprintf("%.1f in (%s)", spec.StartLength, engine.ToFeetInches(spec.StartLength))},
		{"Panel Width", fmt.Sprintf("%.1f in", spec.PanelWidth)},
		{"Working Slope", fmt.Sprintf("%.1f in 12", spec.WorkingSlope)},
		{"Top Condition", spec.Top.String()},
	}
	if spec.Top.HasJoiningPlane() {
		items = append(items, labelValue{"Top Intersecting", fmt.Sprintf("%.1f in 12", spec.TopJoiningSlope)})
	}
	items = append(items, labelValue{"Bottom Condition", spec.Bottom.String()})
	if spec.Bottom.HasJoiningPlane() {
		items = append(items, labelValue{"Bottom Intersecting", fmt.Sprintf("%.1f in 12", spec.BottomJoiningSlope)})
	}
	return items
}

func renderAngles(pdf *fpdf.Fpdf, tr func(string) string, result model.GeometryResult, y float64) float64 {
	items := []labelValue{
		{"Step Length", fmt.Sprintf("%s (%s)", engine.FormatLength(result.StepLength), engine.ToFeetInches(result.StepLength))},
		{"Top Angle", engine.FormatAngle(result.TopAngleDisplay)},
		{"Bottom Angle", engine.FormatAngle(result.BottomAngleDisplay)},
	}
	pdf.SetFont("Helvetica", "B", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(38, 6, tr(item.label+":"), "", 0, "L", false, 0, "")
		pdf.CellFormat(tableWidth-38, 6, tr(item.value), "", 0, "L", false, 0, "")
		y += 6
	}
	return y
}

// renderCutList draws the panel length table, adding the RUN column when
// both edges move the same way.
func renderCutList(pdf *fpdf.Fpdf, tr func(string) string, result model.GeometryResult, y float64) float64 {
	headers := []string{"Panel", "Length (in)", "Length (ft-in)"}
	colWidths := []float64{20, 45, 55}
	if result.SameDirection {
		headers = append(headers, "Run (in)")
		colWidths = append(colWidths, 45)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += rowHeight

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range cutListRows(result) {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, tr(cell), "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}
	return y
}

// cutListRows returns one row of printable cells per panel.
func cutListRows(result model.GeometryResult) [][]string {
	rows := make([][]string, 0, model.PanelCount)
	for i, length := range result.PanelLengths {
		row := []string{
			fmt.Sprintf("%d", i+1),
			engine.FormatLength(length),
			engine.ToFeetInches(length),
		}
		if result.SameDirection {
			row = append(row, engine.FormatLength(result.RunLengths[i]))
		}
		rows = append(rows, row)
	}
	return rows
}

func renderReminder(pdf *fpdf.Fpdf, tr func(string) string, result model.GeometryResult, y float64) {
	for _, line := range result.Report {
		switch line.Style {
		case model.StyleHighlight:
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetTextColor(highlight.R, highlight.G, highlight.B)
		case model.StyleNote:
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(80, 80, 80)
		default:
			continue
		}
		pdf.SetXY(marginLeft, y)
		pdf.MultiCell(tableWidth, 4.5, tr(line.Text), "", "L", false)
		y = pdf.GetY() + 1
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderOutline draws the panel shape to scale in the right-hand column.
func renderOutline(pdf *fpdf.Fpdf, tr func(string) string, outline model.PanelOutline, panelWidth float64) {
	areaW := pageWidth - marginRight - drawAreaLeft
	areaH := pageHeight - drawAreaTop - marginBottom - 20

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(drawAreaLeft, drawAreaTop)
	pdf.CellFormat(areaW, 7, "Panel Shape", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(leadingEdge.R, leadingEdge.G, leadingEdge.B)
	pdf.SetXY(drawAreaLeft, drawAreaTop+7)
	pdf.CellFormat(areaW, 4, "The leading edge (screw side) is shown in red", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	top := drawAreaTop + 16
	if !outline.Defined() {
		pdf.SetXY(drawAreaLeft, top)
		pdf.CellFormat(areaW, 6, "Shape not available for these inputs", "", 0, "L", false, 0, "")
		return
	}

	toPage := fitOutline(outline.Polygon(), drawAreaLeft, top, areaW, areaH)

	points := make([]fpdf.PointType, 0, len(outline.Vertices))
	for _, v := range outline.Vertices {
		x, y := toPage(v)
		points = append(points, fpdf.PointType{X: x, Y: y})
	}
	pdf.SetFillColor(panelFill.R, panelFill.G, panelFill.B)
	pdf.SetDrawColor(panelStroke.R, panelStroke.G, panelStroke.B)
	pdf.SetLineWidth(0.6)
	pdf.Polygon(points, "FD")

	from, to := outline.LeadingEdgePoints()
	x1, y1 := toPage(from)
	x2, y2 := toPage(to)
	pdf.SetDrawColor(leadingEdge.R, leadingEdge.G, leadingEdge.B)
	pdf.SetLineWidth(1.0)
	pdf.Line(x1, y1, x2, y2)

	// Width annotation below the shape
	min, _ := outline.Polygon().BoundingBox()
	leftX, bottomY := toPage(min)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	label := fmt.Sprintf("%.1f in wide (not to length scale)", panelWidth)
	pdf.SetXY(leftX, bottomY+2)
	pdf.CellFormat(areaW, 4, tr(label), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
}

// fitOutline returns a transform from outline inches to page millimetres that
// fits the outline inside the given box, y pointing up.
func fitOutline(o model.Outline, left, top, w, h float64) func(model.Point2D) (float64, float64) {
	min, max := o.BoundingBox()
	spanX := math.Max(max.X-min.X, 1e-6)
	spanY := math.Max(max.Y-min.Y, 1e-6)
	scale := math.Min(w/spanX, h/spanY)
	return func(p model.Point2D) (float64, float64) {
		return left + (p.X-min.X)*scale, top + (max.Y-p.Y)*scale
	}
}
