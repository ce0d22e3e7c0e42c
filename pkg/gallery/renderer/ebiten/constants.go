package ebiten

import (
	"image/color"
	"time"
)

// Color palette for the gallery chrome. Cards bring their own colours.
var (
	colorBackground      = color.RGBA{240, 240, 236, 255} // Paper white
	colorDot             = color.RGBA{200, 200, 196, 255} // Grid dots, a shade darker than the paper
	colorText            = color.RGBA{30, 30, 30, 255}
	colorSubtle          = color.RGBA{110, 110, 110, 255}
	colorPanelBackground = color.RGBA{255, 255, 255, 210} // Semi-transparent HUD strip
)

const (
	baseFontSize    = 14.0 // HUD font size at an 800px tall window
	minFontSize     = 10.0
	hudPadding      = 12
	dotRadius       = 1.5
	maxDots         = 4000 // dots drawn per frame before the background gives up
	statusLifetime  = 4 * time.Second
	touchIDCapacity = 10
)
