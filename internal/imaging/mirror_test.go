package imaging

import "testing"

func TestMirror_MapsPositions(t *testing.T) {
	r := createGradientRaster(t, 5, 3)

	m := Mirror(r)

	if m.Width() != 5 || m.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 5x3", m.Width(), m.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			want := r.Pixel(5-1-x, 3-1-y)
			if got := m.Pixel(x, y); got != want {
				t.Errorf("Pixel(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestMirror_Quadrants(t *testing.T) {
	m := Mirror(FromImage(createPatternImage(100, 100)))

	tests := []struct {
		name string
		x, y int
		want RGBColor
	}{
		{"top-left becomes white", 10, 10, RGBColor{255, 255, 255}},
		{"top-right becomes blue", 90, 10, RGBColor{0, 0, 255}},
		{"bottom-left becomes green", 10, 90, RGBColor{0, 255, 0}},
		{"bottom-right becomes red", 90, 90, RGBColor{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Pixel(tt.x, tt.y); got != tt.want {
				t.Errorf("Pixel(%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMirror_Involution(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {1, 9}, {9, 1}, {2, 2}, {7, 4}, {64, 33}}

	for _, sz := range sizes {
		r := createGradientRaster(t, sz.w, sz.h)
		if !Mirror(Mirror(r)).Equal(r) {
			t.Errorf("%dx%d: mirroring twice did not restore the raster", sz.w, sz.h)
		}
	}
}

func TestMirror_SinglePixel(t *testing.T) {
	r := NewUniformRaster(1, 1, RGBColor{12, 34, 56})

	m := Mirror(r)

	if !m.Equal(r) {
		t.Errorf("1x1 mirror: got %v, want %v", m.Pixel(0, 0), r.Pixel(0, 0))
	}
	if m == r {
		t.Error("Mirror should return a new raster")
	}
}

func TestMirror_DoesNotModifyInput(t *testing.T) {
	r := createGradientRaster(t, 6, 4)
	before := createGradientRaster(t, 6, 4)

	_ = Mirror(r)

	if !r.Equal(before) {
		t.Error("Mirror modified its input")
	}
}

func TestMirror_ZeroArea(t *testing.T) {
	m := Mirror(NewUniformRaster(0, 4, RGBColor{}))
	if m.Width() != 0 || m.Height() != 4 {
		t.Errorf("dimensions: got %dx%d, want 0x4", m.Width(), m.Height())
	}
}
