// Package batch runs the image views pipeline over every image under a
// directory tree, recording failures per file and carrying on.
package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/montanaflynn/stats"

	"github.com/ironsheep/image-views/internal/imaging"
	"github.com/ironsheep/image-views/internal/report"
)

// Options controls a batch run.
type Options struct {
	// OutputDir, when set, receives the inverted and grayscale views of
	// every successfully processed file.
	OutputDir string

	// Workers is the number of files processed at once. Values below 1
	// mean 1.
	Workers int
}

// FileResult is the outcome for one successfully processed file.
type FileResult struct {
	Path     string            `json:"path"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Averages *imaging.Averages `json:"averages"`
	Written  *report.Written   `json:"written,omitempty"`
}

// FileError records why a file could not be processed.
type FileError struct {
	Path    string `json:"path"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e FileError) Error() string {
	return fmt.Sprintf("Error processing %s: %v", e.Path, e.Err)
}

// LuminanceSummary describes the spread of per-file luminance averages.
type LuminanceSummary struct {
	Files  int     `json:"files"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Report is the outcome of a batch run. Results and Failures keep the
// order of the input paths.
type Report struct {
	Results  []FileResult      `json:"results"`
	Failures []FileError       `json:"failures"`
	Summary  *LuminanceSummary `json:"summary,omitempty"`
}

// FindImages walks root and returns every file with a supported image
// extension, sorted by path. Extension matching is case-insensitive.
func FindImages(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && imaging.IsSupportedExtension(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Run processes every path. A failure on one file is recorded in the report
// and does not stop the others. Each file is evicted from cache once done.
func Run(cache *imaging.ImageCache, paths []string, opts Options) *Report {
	workers := max(opts.Workers, 1)

	results := make([]*FileResult, len(paths))
	errs := make([]error, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = processFile(cache, paths[i], opts)
				cache.Evict(paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	rep := &Report{}
	for i, path := range paths {
		if errs[i] != nil {
			rep.Failures = append(rep.Failures, FileError{Path: path, Message: errs[i].Error(), Err: errs[i]})
			continue
		}
		rep.Results = append(rep.Results, *results[i])
	}
	rep.Summary = summarize(rep.Results)
	return rep
}

func processFile(cache *imaging.ImageCache, path string, opts Options) (*FileResult, error) {
	r, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	v, err := imaging.Process(r)
	if err != nil {
		return nil, err
	}

	res := &FileResult{
		Path:     path,
		Width:    r.Width(),
		Height:   r.Height(),
		Averages: v.Averages,
	}

	if opts.OutputDir != "" {
		res.Written, err = report.WriteViews(opts.OutputDir, report.BaseName(path), v)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

func summarize(results []FileResult) *LuminanceSummary {
	if len(results) == 0 {
		return nil
	}

	data := make(stats.Float64Data, len(results))
	for i, r := range results {
		data[i] = float64(r.Averages.Luminance)
	}

	// Errors only arise from empty input, ruled out above.
	mean, _ := data.Mean()
	median, _ := data.Median()
	sdev, _ := data.StandardDeviation()
	lo, _ := data.Min()
	hi, _ := data.Max()

	return &LuminanceSummary{
		Files:  len(results),
		Mean:   mean,
		Median: median,
		StdDev: sdev,
		Min:    lo,
		Max:    hi,
	}
}
