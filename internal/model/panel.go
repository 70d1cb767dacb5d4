package model

import (
	"fmt"
	"strings"
)

// PanelCount is the number of sequential panel lengths in a cut list.
const PanelCount = 10

// TopCondition describes what the top edge of a panel run is cut against.
type TopCondition int

const (
	Ridge         TopCondition = iota // No intersecting plane
	HipMovingUp                       // Top edge climbs along a hip
	HipMovingDown                     // Top edge descends along a hip
)

func (c TopCondition) String() string {
	switch c {
	case HipMovingUp:
		return "Hip Moving Up"
	case HipMovingDown:
		return "Hip Moving Down"
	default:
		return "Ridge"
	}
}

// HasJoiningPlane reports whether the top edge meets another roof plane.
func (c TopCondition) HasJoiningPlane() bool {
	return c == HipMovingUp || c == HipMovingDown
}

// TopConditions lists every top condition in form order.
var TopConditions = []TopCondition{HipMovingUp, HipMovingDown, Ridge}

// ParseTopCondition maps a display label back to its TopCondition.
func ParseTopCondition(s string) (TopCondition, error) {
	for _, c := range TopConditions {
		if strings.EqualFold(c.String(), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return Ridge, fmt.Errorf("unknown top condition %q", s)
}

func (c TopCondition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *TopCondition) UnmarshalText(text []byte) error {
	parsed, err := ParseTopCondition(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// BottomCondition describes what the bottom edge of a panel run is cut against.
type BottomCondition int

const (
	Eave             BottomCondition = iota // No intersecting plane
	ValleyMovingUp                          // Bottom edge climbs along a valley
	ValleyMovingDown                        // Bottom edge descends along a valley
)

func (c BottomCondition) String() string {
	switch c {
	case ValleyMovingUp:
		return "Valley Moving Up"
	case ValleyMovingDown:
		return "Valley Moving Down"
	default:
		return "Eave"
	}
}

// HasJoiningPlane reports whether the bottom edge meets another roof plane.
func (c BottomCondition) HasJoiningPlane() bool {
	return c == ValleyMovingUp || c == ValleyMovingDown
}

// BottomConditions lists every bottom condition in form order.
var BottomConditions = []BottomCondition{ValleyMovingUp, ValleyMovingDown, Eave}

// ParseBottomCondition maps a display label back to its BottomCondition.
func ParseBottomCondition(s string) (BottomCondition, error) {
	for _, c := range BottomConditions {
		if strings.EqualFold(c.String(), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return Eave, fmt.Errorf("unknown bottom condition %q", s)
}

func (c BottomCondition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *BottomCondition) UnmarshalText(text []byte) error {
	parsed, err := ParseBottomCondition(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// InstallDirection is the side panels are laid from.
type InstallDirection int

const (
	LeftToRight InstallDirection = iota
	RightToLeft
)

// Arrow returns the selector label shown in the form.
func (d InstallDirection) Arrow() string {
	if d == RightToLeft {
		return "<<<<<"
	}
	return ">>>>>"
}

func (d InstallDirection) String() string {
	if d == RightToLeft {
		return "RTL"
	}
	return "LTR"
}

// ParseInstallDirection accepts either the short code or the arrow label.
func ParseInstallDirection(s string) (InstallDirection, error) {
	switch strings.TrimSpace(s) {
	case "LTR", "ltr", ">>>>>":
		return LeftToRight, nil
	case "RTL", "rtl", "<<<<<":
		return RightToLeft, nil
	}
	return LeftToRight, fmt.Errorf("unknown install direction %q", s)
}

func (d InstallDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *InstallDirection) UnmarshalText(text []byte) error {
	parsed, err := ParseInstallDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// PanelSpec holds the inputs of one cut list calculation.
// Lengths are in inches, slopes are rise per 12 of run.
type PanelSpec struct {
	StartLength        float64          `json:"start_length"`
	PanelWidth         float64          `json:"panel_width"`
	WorkingSlope       float64          `json:"working_slope"`
	Top                TopCondition     `json:"top_condition"`
	TopJoiningSlope    float64          `json:"top_joining_slope"`
	Bottom             BottomCondition  `json:"bottom_condition"`
	BottomJoiningSlope float64          `json:"bottom_joining_slope"`
	Direction          InstallDirection `json:"install_direction"`
}

// DefaultPanelSpec returns the form defaults: a 16" panel on a 6 in 12 roof
// running from eave to ridge.
func DefaultPanelSpec() PanelSpec {
	return PanelSpec{
		StartLength:        0,
		PanelWidth:         16.0,
		WorkingSlope:       6.0,
		Top:                Ridge,
		TopJoiningSlope:    6.0,
		Bottom:             Eave,
		BottomJoiningSlope: 6.0,
		Direction:          LeftToRight,
	}
}

// Normalized returns a copy where the joining slope of an edge without an
// intersecting plane follows the working slope.
func (s PanelSpec) Normalized() PanelSpec {
	if !s.Top.HasJoiningPlane() {
		s.TopJoiningSlope = s.WorkingSlope
	}
	if !s.Bottom.HasJoiningPlane() {
		s.BottomJoiningSlope = s.WorkingSlope
	}
	return s
}

// Validate checks the inputs the form must reject before drawing.
func (s PanelSpec) Validate() error {
	if s.PanelWidth <= 0 {
		return fmt.Errorf("panel width must be > 0, got %.2f", s.PanelWidth)
	}
	return nil
}

// ReportStyle tells the presentation layer how to render a report line.
type ReportStyle int

const (
	StyleNormal ReportStyle = iota
	StyleHeading
	StyleSeparator
	StyleNote
	StyleHighlight
)

// ReportLine is one line of the formatted calculation report.
type ReportLine struct {
	Text  string      `json:"text"`
	Style ReportStyle `json:"style"`
}

// GeometryResult is the output of one panel geometry calculation.
type GeometryResult struct {
	StepLength         float64             `json:"step_length"`  // Per-panel length change (in)
	TopAngle           float64             `json:"top_angle"`    // Signed top cut angle (deg)
	BottomAngle        float64             `json:"bottom_angle"` // Signed bottom cut angle (deg)
	TopAngleDisplay    float64             `json:"top_angle_display"`
	BottomAngleDisplay float64             `json:"bottom_angle_display"`
	PanelLengths       [PanelCount]float64 `json:"panel_lengths"`
	RunLengths         [PanelCount]float64 `json:"run_lengths,omitempty"` // Length + slope adjustment, zero unless SameDirection
	SlopeAdjustment    float64             `json:"slope_adjustment"`
	SameDirection      bool                `json:"same_direction"`
	OrderLength        float64             `json:"order_length,omitempty"` // Start length + slope adjustment when SameDirection

	WorkingAngle       float64 `json:"working_angle"`
	TopJoiningAngle    float64 `json:"top_joining_angle"`
	BottomJoiningAngle float64 `json:"bottom_joining_angle"`
	TopOffset          float64 `json:"top_offset"`
	BottomOffset       float64 `json:"bottom_offset"`

	Report []ReportLine `json:"report"`
}

// ReportText joins the report lines into a printable block of text.
func (r GeometryResult) ReportText() string {
	var b strings.Builder
	for _, line := range r.Report {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
