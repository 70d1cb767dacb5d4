// Package ui provides the PanelCut application window: the inputs form,
// the cut list report and the panel drawing.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Report highlight colour, used for the order-length reminder.
const colorNameHighlight fyne.ThemeColorName = "panelcutHighlight"

// PanelCutTheme wraps the default Fyne theme with compact sizing and a
// fixed light or dark variant chosen in settings.
type PanelCutTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewPanelCutTheme returns the theme for a config value: "light", "dark",
// or anything else to follow the system.
func NewPanelCutTheme(name string) *PanelCutTheme {
	t := &PanelCutTheme{base: theme.DefaultTheme()}
	t.SetVariantName(name)
	return t
}

// SetVariantName switches between "light", "dark" and "system".
func (t *PanelCutTheme) SetVariantName(name string) {
	switch name {
	case "light":
		t.variant, t.system = theme.VariantLight, false
	case "dark":
		t.variant, t.system = theme.VariantDark, false
	default:
		t.system = true
	}
}

func (t *PanelCutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.system {
		variant = t.variant
	}
	if name == colorNameHighlight {
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 193, B: 7, A: 255}
		}
		return color.NRGBA{R: 180, G: 120, B: 0, A: 255}
	}
	return t.base.Color(name, variant)
}

func (t *PanelCutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *PanelCutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *PanelCutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}
