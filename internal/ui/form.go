package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PanelCut/internal/model"
)

// formValues is the raw text of the inputs form.
type formValues struct {
	Direction   string
	Start       string
	Width       string
	Slope       string
	Top         string
	TopSlope    string
	Bottom      string
	BottomSlope string
}

// parseForm converts the form text into a PanelSpec. Intersecting slopes are
// only read for edges that meet another plane; the others follow the
// working slope.
func parseForm(v formValues) (model.PanelSpec, error) {
	var spec model.PanelSpec
	var err error

	if spec.Direction, err = model.ParseInstallDirection(v.Direction); err != nil {
		return spec, err
	}
	if spec.StartLength, err = parseNumber("start length", v.Start); err != nil {
		return spec, err
	}
	if spec.PanelWidth, err = parseNumber("panel width", v.Width); err != nil {
		return spec, err
	}
	if spec.WorkingSlope, err = parseNumber("working slope", v.Slope); err != nil {
		return spec, err
	}
	if spec.Top, err = model.ParseTopCondition(v.Top); err != nil {
		return spec, err
	}
	if spec.Bottom, err = model.ParseBottomCondition(v.Bottom); err != nil {
		return spec, err
	}
	if spec.Top.HasJoiningPlane() {
		if spec.TopJoiningSlope, err = parseNumber("top intersecting slope", v.TopSlope); err != nil {
			return spec, err
		}
	}
	if spec.Bottom.HasJoiningPlane() {
		if spec.BottomJoiningSlope, err = parseNumber("bottom intersecting slope", v.BottomSlope); err != nil {
			return spec, err
		}
	}
	return spec.Normalized(), nil
}

func parseNumber(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: enter a number", field, text)
	}
	return v, nil
}

// formFromSpec renders a spec back into form text.
func formFromSpec(s model.PanelSpec) formValues {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return formValues{
		Direction:   s.Direction.Arrow(),
		Start:       num(s.StartLength),
		Width:       num(s.PanelWidth),
		Slope:       num(s.WorkingSlope),
		Top:         s.Top.String(),
		TopSlope:    num(s.TopJoiningSlope),
		Bottom:      s.Bottom.String(),
		BottomSlope: num(s.BottomJoiningSlope),
	}
}

// reportSegments styles the report for a RichText: monospace throughout,
// headings bold, the order-length reminder in the highlight colour.
func reportSegments(lines []model.ReportLine) []widget.RichTextSegment {
	segments := make([]widget.RichTextSegment, 0, len(lines))
	mono := fyne.TextStyle{Monospace: true}
	for _, line := range lines {
		style := widget.RichTextStyle{ColorName: theme.ColorNameForeground, TextStyle: mono}
		switch line.Style {
		case model.StyleSeparator:
			segments = append(segments, &widget.SeparatorSegment{})
			continue
		case model.StyleHeading:
			style.TextStyle.Bold = true
		case model.StyleNote:
			style.TextStyle.Italic = true
		case model.StyleHighlight:
			style.ColorName = colorNameHighlight
			style.TextStyle.Bold = true
		}
		segments = append(segments, &widget.TextSegment{Text: line.Text, Style: style})
	}
	return segments
}
