package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestPanelCutTheme_FixedVariant(t *testing.T) {
	test.NewTempApp(t)
	dark := NewPanelCutTheme("dark")
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight),
		"a fixed variant ignores the requested one")

	light := NewPanelCutTheme("light")
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestPanelCutTheme_SystemFollowsRequest(t *testing.T) {
	test.NewTempApp(t)
	sys := NewPanelCutTheme("system")
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantDark),
		sys.Color(theme.ColorNameForeground, theme.VariantDark))
}

func TestPanelCutTheme_HighlightDiffersByVariant(t *testing.T) {
	test.NewTempApp(t)
	assert.NotEqual(t,
		NewPanelCutTheme("dark").Color(colorNameHighlight, theme.VariantDark),
		NewPanelCutTheme("light").Color(colorNameHighlight, theme.VariantLight))
	assert.Equal(t, float32(13), NewPanelCutTheme("dark").Size(theme.SizeNameText))
}
