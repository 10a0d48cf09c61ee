package imaging

import "sync"

// Views holds everything derived from one source raster: the three images
// shown side by side and the two statistics reported under the original.
type Views struct {
	Original  *Raster
	Inverted  *Raster
	Grayscale *LuminanceRaster
	Averages  *Averages
}

// Process derives all views of r.
//
// The statistics, mirror and grayscale conversion are independent and only
// read r, so they run concurrently. A zero-area raster is rejected with
// *InvalidRasterError before any work starts.
func Process(r *Raster) (*Views, error) {
	if r.Empty() {
		return nil, &InvalidRasterError{Width: r.Width(), Height: r.Height()}
	}

	var (
		wg       sync.WaitGroup
		averages *Averages
		statsErr error
		inverted *Raster
		gray     *LuminanceRaster
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		averages, statsErr = Summarize(r)
	}()
	go func() {
		defer wg.Done()
		inverted = Mirror(r)
	}()
	go func() {
		defer wg.Done()
		gray = ToGrayscale(r)
	}()
	wg.Wait()

	if statsErr != nil {
		return nil, statsErr
	}

	return &Views{
		Original:  r,
		Inverted:  inverted,
		Grayscale: gray,
		Averages:  averages,
	}, nil
}
