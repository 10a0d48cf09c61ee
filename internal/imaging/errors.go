package imaging

import "fmt"

// InvalidRasterError is returned when an operation that averages over pixels
// is given a raster with no pixels.
type InvalidRasterError struct {
	Width  int
	Height int
}

func (e *InvalidRasterError) Error() string {
	return fmt.Sprintf("invalid raster: %dx%d has no pixels to average", e.Width, e.Height)
}

// DecodeError is returned by the loader when an image file is missing,
// unreadable, or not in a supported format.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
