package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/PanelCut/internal/engine"
	"github.com/piwi3910/PanelCut/internal/model"
)

// PanelLabel holds the data encoded into each panel label's QR code.
type PanelLabel struct {
	JobID       string  `json:"job"`
	JobName     string  `json:"job_name"`
	Panel       int     `json:"panel"`
	Length      float64 `json:"length_in"`
	Run         float64 `json:"run_in,omitempty"`
	TopAngle    float64 `json:"top_angle_deg"`
	BottomAngle float64 `json:"bottom_angle_deg"`
	Direction   string  `json:"direction"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectPanelLabels returns one label per panel in the cut list.
func CollectPanelLabels(job model.Job, result model.GeometryResult) []PanelLabel {
	labels := make([]PanelLabel, 0, model.PanelCount)
	for i, length := range result.PanelLengths {
		label := PanelLabel{
			JobID:       job.ID,
			JobName:     job.Name,
			Panel:       i + 1,
			Length:      length,
			TopAngle:    result.TopAngleDisplay,
			BottomAngle: result.BottomAngleDisplay,
			Direction:   job.Spec.Direction.String(),
		}
		if result.SameDirection {
			label.Run = result.RunLengths[i]
		}
		labels = append(labels, label)
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels, one per panel. Each label
// shows the panel number, its length and cut angles, and a QR code encoding
// the same data as JSON. Labels are laid out on a standard label sheet
// format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, job model.Job, result model.GeometryResult) error {
	labels := CollectPanelLabels(job, result)
	for _, l := range labels {
		if engine.IsUndefined(l.Length) {
			return fmt.Errorf("panel %d has no defined length; check the inputs", l.Panel)
		}
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, tr, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for panel %d: %w", label.Panel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, info PanelLabel) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.JobID, info.Panel)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Panel %d", info.Panel), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%s (%s)", engine.FormatLength(info.Length), engine.ToFeetInches(info.Length)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	angles := fmt.Sprintf("Top %s / Bottom %s", engine.FormatAngle(info.TopAngle), engine.FormatAngle(info.BottomAngle))
	pdf.CellFormat(textW, 3, tr(angles), "", 1, "L", false, 0, "")

	if info.Run != 0 {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Run "+engine.FormatLength(info.Run), "", 0, "L", false, 0, "")
	}

	// Job name, truncated to fit
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelHeight-labelPadding-3)
	name := info.JobName
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 3, tr(name), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
