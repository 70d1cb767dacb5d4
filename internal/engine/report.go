package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/PanelCut/internal/model"
)

const notAvailable = "N/A"

// fmtInches prints a length right-aligned to six columns, or N/A.
func fmtInches(v float64) string {
	if IsUndefined(v) {
		return fmt.Sprintf("%6s", notAvailable)
	}
	return fmt.Sprintf("%6.1f", round1(v))
}

func fmtDegrees(v float64) string {
	if IsUndefined(v) {
		return fmt.Sprintf("%6s", notAvailable)
	}
	return fmt.Sprintf("%6.1f°", round1(v))
}

// buildReport lays out the cut list the way it is read on site: step and
// angles first, then one line per panel.
func buildReport(spec model.PanelSpec, r model.GeometryResult) []model.ReportLine {
	lines := []model.ReportLine{
		{Text: fmt.Sprintf("Step Length: %s in (%s)", fmtInches(r.StepLength), ToFeetInches(r.StepLength))},
		{Text: fmt.Sprintf("Top Angle: %s", fmtDegrees(r.TopAngleDisplay))},
		{Text: fmt.Sprintf("Bottom Angle: %s", fmtDegrees(r.BottomAngleDisplay))},
		{Text: "", Style: model.StyleSeparator},
		{Text: "Panel Lengths:", Style: model.StyleHeading},
	}

	for i, length := range r.PanelLengths {
		text := fmt.Sprintf("%2d: %s in (%s)", i+1, fmtInches(length), ToFeetInches(length))
		if r.SameDirection {
			text += fmt.Sprintf(" [RUN %s in]", fmtInches(r.RunLengths[i]))
		}
		lines = append(lines, model.ReportLine{Text: text})
	}

	if !r.SameDirection {
		return lines
	}
	if spec.TopJoiningSlope != spec.BottomJoiningSlope {
		lines = append(lines, model.ReportLine{
			Text:  "Reminder: Panel Cut Lengths shown in brackets adjust for slope geometry due to differing top and bottom slopes.",
			Style: model.StyleNote,
		})
		return lines
	}
	lines = append(lines, model.ReportLine{
		Text: fmt.Sprintf("Reminder: Actual panel length used is input length + slope adjustment: %s in (%s)",
			fmtInches(r.OrderLength), ToFeetInches(r.OrderLength)),
		Style: model.StyleHighlight,
	})
	return lines
}

// FormatAngle prints a cut angle magnitude with one decimal, or N/A.
func FormatAngle(v float64) string {
	if IsUndefined(v) {
		return notAvailable
	}
	return fmt.Sprintf("%.1f°", round1(math.Abs(v)))
}

// FormatLength prints a length in inches with one decimal, or N/A.
func FormatLength(v float64) string {
	if IsUndefined(v) {
		return notAvailable
	}
	return fmt.Sprintf("%.1f in", round1(v))
}
