// Package imaging derives the views and statistics shown for a single image.
//
// A decoded image is converted once into a Raster, an immutable 8-bit RGB
// grid with its origin at (0,0). Three independent operations read it:
//
//   - ComputeAverages: mean luma and mean red, green and blue values
//   - Mirror: the "inverted" view, reflected about both axes
//   - ToGrayscale: a LuminanceRaster holding the luma of every pixel
//
// Process runs all three concurrently and collects the results into Views.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner.
// X increases rightward and Y increases downward.
//
// # Luma
//
// Luma uses the ITU-R BT.601 weights (0.299, 0.587, 0.114), rounded to the
// nearest integer with halves rounded up. The same function feeds both the
// average luminance and the grayscale view, so the two always agree.
//
// # Averages
//
// Sums are accumulated in 64 bits and divided by width*height with integer
// division. Means are therefore truncated, not rounded: a 2x2 image with
// one black and three white pixels averages to 191, not 191.25 or 192.
//
// # Thread Safety
//
// Rasters are never mutated after construction and every operation returns
// a new raster, so any number of goroutines may operate on the same Raster.
// The ImageCache type is safe for concurrent use.
//
// # Error Handling
//
//   - *InvalidRasterError: averaging a raster with zero width or height
//   - *DecodeError: the loader could not open or decode a file
package imaging
