package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MonoTheme is a dark theme: black surfaces, white text and accents, rounded inputs.
type MonoTheme struct{}

// NewMonoTheme creates the application theme
func NewMonoTheme() fyne.Theme {
	return &MonoTheme{}
}

// Color returns theme colors; the variant is ignored, the app is always dark
func (t *MonoTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return ColorSurface
	case theme.ColorNameButton, theme.ColorNameHeaderBackground:
		return ColorCard
	case theme.ColorNameForeground, theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorText
	case theme.ColorNameForegroundOnPrimary:
		return ColorBackground
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorTextMuted
	case theme.ColorNameHover, theme.ColorNamePressed, theme.ColorNameSelection:
		return ColorHover
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return ColorTextMuted
	case theme.ColorNameError:
		return ColorError
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *MonoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *MonoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with rounder corners
func (t *MonoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 10
	case theme.SizeNameSelectionRadius:
		return 8
	case theme.SizeNameHeadingText:
		return 28
	case theme.SizeNameSubHeadingText:
		return 15
	}

	return theme.DefaultTheme().Size(name)
}
