package main

import (
	"fmt"
	"io"
	"log"

	"github.com/ironsheep/image-views/internal/batch"
	"github.com/ironsheep/image-views/internal/imaging"
	"github.com/ironsheep/image-views/internal/report"
)

// show processes a single image and prints its statistic lines. When outDir
// is set the inverted and grayscale views are written there too.
func show(w io.Writer, path, outDir string) error {
	cache := imaging.NewImageCache()
	r, err := cache.Load(path)
	if err != nil {
		return err
	}

	v, err := imaging.Process(r)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", path, err)
	}

	for _, line := range report.Lines(v.Averages.Luminance, v.Averages.Channels) {
		fmt.Fprintln(w, line)
	}

	if outDir == "" {
		return nil
	}
	written, err := report.WriteViews(outDir, report.BaseName(path), v)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", written.Inverted)
	fmt.Fprintf(w, "Wrote %s\n", written.Grayscale)
	return nil
}

// runBatch processes every image under root. Failed files are reported and
// do not stop the run, but make it return an error once all files are done.
func runBatch(w io.Writer, root, outDir string, workers int, debug bool) error {
	paths, err := batch.FindImages(root)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no images found under %s", root)
	}
	if debug {
		log.Printf("Processing %d images with %d workers", len(paths), workers)
	}

	rep := batch.Run(imaging.NewImageCache(), paths, batch.Options{
		OutputDir: outDir,
		Workers:   workers,
	})

	for _, res := range rep.Results {
		fmt.Fprintf(w, "%s (%dx%d)\n", res.Path, res.Width, res.Height)
		for _, line := range report.Lines(res.Averages.Luminance, res.Averages.Channels) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	for _, fe := range rep.Failures {
		fmt.Fprintln(w, fe.Error())
	}

	if s := rep.Summary; s != nil {
		fmt.Fprintf(w, "Processed %d of %d images\n", s.Files, len(paths))
		fmt.Fprintf(w, "Luminance: mean=%.2f median=%.2f stddev=%.2f min=%.0f max=%.0f\n",
			s.Mean, s.Median, s.StdDev, s.Min, s.Max)
	}

	if n := len(rep.Failures); n > 0 {
		return fmt.Errorf("%d of %d images failed", n, len(paths))
	}
	return nil
}
