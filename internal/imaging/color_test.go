package imaging

import "testing"

func TestNewColorResult(t *testing.T) {
	tests := []struct {
		name    string
		c       RGBColor
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", RGBColor{255, 0, 0}, "#FF0000", HSLColor{0, 100, 50}},
		{"pure green", RGBColor{0, 255, 0}, "#00FF00", HSLColor{120, 100, 50}},
		{"pure blue", RGBColor{0, 0, 255}, "#0000FF", HSLColor{240, 100, 50}},
		{"white", RGBColor{255, 255, 255}, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", RGBColor{0, 0, 0}, "#000000", HSLColor{0, 0, 0}},
		{"orange", RGBColor{255, 128, 64}, "#FF8040", HSLColor{20, 100, 62}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewColorResult(tt.c)

			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.wantHex)
			}
			if got.RGB != tt.c {
				t.Errorf("RGB: got %v, want %v", got.RGB, tt.c)
			}
			if got.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", got.HSL, tt.wantHSL)
			}
		})
	}
}

func TestChannelAverages_Color(t *testing.T) {
	a := ChannelAverages{Red: 1, Green: 2, Blue: 3}
	if got := a.Color(); got != (RGBColor{1, 2, 3}) {
		t.Errorf("Color: got %v, want {1 2 3}", got)
	}
}
