package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Raster is an 8-bit RGB pixel grid with its origin at (0,0).
//
// A Raster is never modified after construction. Every operation in this
// package treats its input raster as read-only and returns a freshly
// allocated result, so a single Raster may be shared between goroutines
// without locking.
//
// Raster implements image.Image so it can be handed directly to encoders.
// All pixels are fully opaque; any alpha present in the source image is
// discarded when the raster is built.
type Raster struct {
	img *image.NRGBA
}

// LuminanceRaster is a Raster whose pixels all have equal red, green and
// blue components, each holding the luma of the corresponding source pixel.
type LuminanceRaster struct {
	*Raster
}

// LuminanceAverage is the floor of the mean luma over every pixel of a raster.
type LuminanceAverage uint8

// ChannelAverages holds the floor of the mean of each color channel.
type ChannelAverages struct {
	Red   uint8 `json:"r"`
	Green uint8 `json:"g"`
	Blue  uint8 `json:"b"`
}

// FromImage builds a Raster from any decoded image.
//
// The image bounds are re-based to (0,0). Colors are read non-premultiplied
// and alpha is forced to fully opaque.
func FromImage(img image.Image) *Raster {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return &Raster{img: dst}
}

// RasterFromPixels builds a Raster from a row-major pixel slice.
//
// Returns an error if either dimension is negative or if len(pixels) is not
// width*height. Zero-area rasters are accepted.
func RasterFromPixels(width, height int, pixels []RGBColor) (*Raster, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid raster dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match %dx%d raster", len(pixels), width, height)
	}

	r := newRaster(width, height)
	for i, p := range pixels {
		r.img.Pix[i*4+0] = p.R
		r.img.Pix[i*4+1] = p.G
		r.img.Pix[i*4+2] = p.B
		r.img.Pix[i*4+3] = 0xff
	}
	return r, nil
}

// NewUniformRaster returns a width x height raster filled with a single color.
// Negative dimensions are treated as zero.
func NewUniformRaster(width, height int, c RGBColor) *Raster {
	r := newRaster(max(width, 0), max(height, 0))
	for i := 0; i < len(r.img.Pix); i += 4 {
		r.img.Pix[i+0] = c.R
		r.img.Pix[i+1] = c.G
		r.img.Pix[i+2] = c.B
		r.img.Pix[i+3] = 0xff
	}
	return r
}

func newRaster(width, height int) *Raster {
	return &Raster{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the raster width in pixels. A nil raster has zero width.
func (r *Raster) Width() int {
	if r == nil || r.img == nil {
		return 0
	}
	return r.img.Rect.Dx()
}

// Height returns the raster height in pixels. A nil raster has zero height.
func (r *Raster) Height() int {
	if r == nil || r.img == nil {
		return 0
	}
	return r.img.Rect.Dy()
}

// Empty reports whether the raster has no pixels.
func (r *Raster) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Pixel returns the color at (x, y). Coordinates outside the raster yield
// the zero color.
func (r *Raster) Pixel(x, y int) RGBColor {
	if x < 0 || y < 0 || x >= r.Width() || y >= r.Height() {
		return RGBColor{}
	}
	i := r.img.PixOffset(x, y)
	s := r.img.Pix[i : i+3 : i+3]
	return RGBColor{R: s[0], G: s[1], B: s[2]}
}

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width(), r.Height())
}

// At implements image.Image.
func (r *Raster) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= r.Width() || y >= r.Height() {
		return color.NRGBA{}
	}
	p := r.Pixel(x, y)
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

// Equal reports whether two rasters have the same dimensions and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r.Width() != other.Width() || r.Height() != other.Height() {
		return false
	}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if r.Pixel(x, y) != other.Pixel(x, y) {
				return false
			}
		}
	}
	return true
}

// Luma returns the luminance value stored at (x, y).
func (l *LuminanceRaster) Luma(x, y int) uint8 {
	return l.Pixel(x, y).R
}

// Gray returns the raster as a single-channel 8-bit image.
func (l *LuminanceRaster) Gray() *image.Gray {
	w, h := l.Width(), l.Height()
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Pix[y*g.Stride+x] = l.Luma(x, y)
		}
	}
	return g
}
