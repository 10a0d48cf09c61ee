package imaging

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Standard 8-bit components
//   - HSL: Perceptual color space for intuitive color operations
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// NewColorResult describes an 8-bit RGB color in hex, RGB and HSL form.
func NewColorResult(c RGBColor) ColorResult {
	cf := toColorful(c)
	return ColorResult{
		Hex: strings.ToUpper(cf.Hex()),
		RGB: c,
		HSL: rgbToHSL(cf),
	}
}

// Color returns the channel averages as a single RGB color.
func (a ChannelAverages) Color() RGBColor {
	return RGBColor{R: a.Red, G: a.Green, B: a.Blue}
}

func toColorful(c RGBColor) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// rgbToHSL truncates go-colorful's HSL to whole degrees and percentages.
// Achromatic colors report a hue of 0.
func rgbToHSL(c colorful.Color) HSLColor {
	h, s, l := c.Hsl()
	if h >= 360 {
		h = 0
	}
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
