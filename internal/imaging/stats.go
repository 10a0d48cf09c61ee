package imaging

import (
	"sync/atomic"

	"github.com/anthonynsimon/bild/parallel"
)

// Averages contains the mean luma and mean channel values of a raster.
type Averages struct {
	// Luminance is the floor of the mean per-pixel luma.
	Luminance LuminanceAverage `json:"luminance"`

	// Channels holds the floor of the mean of each RGB channel.
	Channels ChannelAverages `json:"channels"`

	// Color describes the mean channel values as a single color.
	Color ColorResult `json:"color"`

	// PixelCount is width*height, the divisor used for every mean.
	PixelCount int64 `json:"pixel_count"`
}

// ComputeAverages returns the mean luma and mean per-channel values of r.
//
// Parameters:
//   - r: The raster to average. It is only read, never modified.
//
// Returns:
//   - LuminanceAverage: floor(sum of per-pixel Luma / (width*height)).
//   - ChannelAverages: floor(sum of each channel / (width*height)).
//   - error: Non-nil if r has no pixels.
//
// Every mean is the 64-bit sum over all pixels divided by width*height with
// integer division, so fractional means are truncated rather than rounded.
// Luma is computed per pixel with Luma, the same function used by
// ToGrayscale. Rows are scanned in parallel bands.
//
// # Errors
//
//   - Returns *InvalidRasterError if r is nil or has zero width or height
func ComputeAverages(r *Raster) (LuminanceAverage, ChannelAverages, error) {
	if r.Empty() {
		return 0, ChannelAverages{}, &InvalidRasterError{Width: r.Width(), Height: r.Height()}
	}

	w, h := r.Width(), r.Height()
	var sumL, sumR, sumG, sumB uint64

	parallel.Line(h, func(start, end int) {
		var l, red, green, blue uint64
		for y := start; y < end; y++ {
			row := r.img.Pix[y*r.img.Stride : y*r.img.Stride+w*4]
			for i := 0; i < len(row); i += 4 {
				red += uint64(row[i])
				green += uint64(row[i+1])
				blue += uint64(row[i+2])
				l += uint64(Luma(row[i], row[i+1], row[i+2]))
			}
		}
		atomic.AddUint64(&sumL, l)
		atomic.AddUint64(&sumR, red)
		atomic.AddUint64(&sumG, green)
		atomic.AddUint64(&sumB, blue)
	})

	n := uint64(w) * uint64(h)
	return LuminanceAverage(sumL / n), ChannelAverages{
		Red:   uint8(sumR / n),
		Green: uint8(sumG / n),
		Blue:  uint8(sumB / n),
	}, nil
}

// Summarize computes the averages of r and describes the mean color.
func Summarize(r *Raster) (*Averages, error) {
	lum, ch, err := ComputeAverages(r)
	if err != nil {
		return nil, err
	}
	return &Averages{
		Luminance:  lum,
		Channels:   ch,
		Color:      NewColorResult(ch.Color()),
		PixelCount: int64(r.Width()) * int64(r.Height()),
	}, nil
}
