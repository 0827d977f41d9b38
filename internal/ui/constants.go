package ui

import (
	"image/color"
	"time"
)

// Icons (emojis/symbols)
const (
	IconApp      = "🎬"
	IconPaste    = "📋"
	IconFetch    = "🔍"
	IconFolder   = "📁"
	IconDownload = "⬇️"
	IconBusy     = "⏳"
	IconDone     = "✅"
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 750

	ThumbnailWidth  float32 = 120
	ThumbnailHeight float32 = 90

	PasteButtonWidth float32 = 80
)

// ProgressUIInterval bounds how often progress redraws the window.
const ProgressUIInterval = 100 * time.Millisecond

// Palette: deep black with white accents
var (
	ColorBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorSurface    = color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	ColorCard       = color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}
	ColorText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorTextMuted  = color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	ColorHover      = color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	ColorError      = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
)
