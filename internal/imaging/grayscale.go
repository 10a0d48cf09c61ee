package imaging

import "github.com/anthonynsimon/bild/parallel"

// ToGrayscale converts r to a LuminanceRaster of the same dimensions.
//
// Each output pixel has all three channels set to Luma of the input pixel,
// so the values agree exactly with the per-pixel luma summed by
// ComputeAverages.
func ToGrayscale(r *Raster) *LuminanceRaster {
	w, h := r.Width(), r.Height()
	out := newRaster(w, h)
	if r.Empty() {
		return &LuminanceRaster{Raster: out}
	}

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			src := r.img.Pix[y*r.img.Stride : y*r.img.Stride+w*4]
			dst := out.img.Pix[y*out.img.Stride : y*out.img.Stride+w*4]
			for i := 0; i < len(src); i += 4 {
				v := Luma(src[i], src[i+1], src[i+2])
				dst[i], dst[i+1], dst[i+2], dst[i+3] = v, v, v, 0xff
			}
		}
	})

	return &LuminanceRaster{Raster: out}
}
