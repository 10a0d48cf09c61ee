package imaging

import (
	"image"
	"testing"
)

func TestToGrayscale_ChannelsEqual(t *testing.T) {
	r := createGradientRaster(t, 31, 17)

	g := ToGrayscale(r)

	if g.Width() != 31 || g.Height() != 17 {
		t.Fatalf("dimensions: got %dx%d, want 31x17", g.Width(), g.Height())
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := g.Pixel(x, y)
			if p.R != p.G || p.G != p.B {
				t.Fatalf("Pixel(%d,%d): channels differ: %v", x, y, p)
			}
		}
	}
}

func TestToGrayscale_AgreesWithStatistics(t *testing.T) {
	r := createGradientRaster(t, 40, 25)

	g := ToGrayscale(r)

	// Per pixel: the stored value is exactly the luma that ComputeAverages sums.
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			p := r.Pixel(x, y)
			if want := Luma(p.R, p.G, p.B); g.Luma(x, y) != want {
				t.Fatalf("Luma(%d,%d): got %d, want %d", x, y, g.Luma(x, y), want)
			}
		}
	}

	// In aggregate: averaging the grayscale view reproduces the source luminance.
	lum, _, err := ComputeAverages(r)
	if err != nil {
		t.Fatalf("ComputeAverages(source) failed: %v", err)
	}
	grayLum, grayCh, err := ComputeAverages(g.Raster)
	if err != nil {
		t.Fatalf("ComputeAverages(gray) failed: %v", err)
	}
	if grayLum != lum {
		t.Errorf("gray luminance: got %d, want %d", grayLum, lum)
	}
	want := ChannelAverages{Red: uint8(lum), Green: uint8(lum), Blue: uint8(lum)}
	if grayCh != want {
		t.Errorf("gray channels: got %+v, want %+v", grayCh, want)
	}
}

func TestToGrayscale_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		c    RGBColor
		want uint8
	}{
		{"red", RGBColor{255, 0, 0}, 76},
		{"green", RGBColor{0, 255, 0}, 150},
		{"blue", RGBColor{0, 0, 255}, 29},
		{"white", RGBColor{255, 255, 255}, 255},
		{"black", RGBColor{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ToGrayscale(NewUniformRaster(3, 3, tt.c))
			if got := g.Luma(1, 1); got != tt.want {
				t.Errorf("Luma: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToGrayscale_DoesNotModifyInput(t *testing.T) {
	r := createGradientRaster(t, 6, 4)
	before := createGradientRaster(t, 6, 4)

	_ = ToGrayscale(r)

	if !r.Equal(before) {
		t.Error("ToGrayscale modified its input")
	}
}

func TestToGrayscale_ZeroArea(t *testing.T) {
	g := ToGrayscale(NewUniformRaster(5, 0, RGBColor{}))
	if g.Width() != 5 || g.Height() != 0 {
		t.Errorf("dimensions: got %dx%d, want 5x0", g.Width(), g.Height())
	}
}

func TestLuminanceRaster_Gray(t *testing.T) {
	g := ToGrayscale(FromImage(createPatternImage(10, 10)))

	gray := g.Gray()

	if gray.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("Bounds: got %v, want (0,0)-(10,10)", gray.Bounds())
	}
	if got := gray.GrayAt(2, 2).Y; got != 76 {
		t.Errorf("red quadrant: got %d, want 76", got)
	}
	if got := gray.GrayAt(7, 7).Y; got != 255 {
		t.Errorf("white quadrant: got %d, want 255", got)
	}
}
