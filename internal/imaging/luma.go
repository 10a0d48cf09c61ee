package imaging

// Luma returns the ITU-R BT.601 luma of an 8-bit RGB triple:
//
//	round(0.299*R + 0.587*G + 0.114*B)
//
// The weights are applied in integer thousandths so the result is exact,
// with halves rounded up. Statistics and grayscale conversion both go
// through this function, so they agree on every pixel.
func Luma(r, g, b uint8) uint8 {
	v := (299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
