package imaging

import "github.com/disintegration/imaging"

// Mirror returns a copy of r reflected about both axes, which is the same
// as a 180 degree rotation:
//
//	out.Pixel(x, y) == r.Pixel(w-1-x, h-1-y)
//
// Pixel values are copied unchanged; only their positions move. The result
// has the same dimensions as r and r itself is not modified.
func Mirror(r *Raster) *Raster {
	if r.Empty() {
		return newRaster(r.Width(), r.Height())
	}
	return &Raster{img: imaging.Rotate180(r.img)}
}
