// Package report formats pipeline results for people and writes the derived
// views to disk.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	views "github.com/ironsheep/image-views/internal/imaging"
)

// LuminanceLine formats the mean luminance the way it is shown under the
// original image.
func LuminanceLine(lum views.LuminanceAverage) string {
	return fmt.Sprintf("Average Greyscale Pixel Value: %d", lum)
}

// ChannelsLine formats the per-channel means.
func ChannelsLine(ch views.ChannelAverages) string {
	return fmt.Sprintf("Average RGB Pixel Values: R=%d, G=%d, B=%d", ch.Red, ch.Green, ch.Blue)
}

// Lines returns both statistic lines, luminance first.
func Lines(lum views.LuminanceAverage, ch views.ChannelAverages) []string {
	return []string{LuminanceLine(lum), ChannelsLine(ch)}
}

// Written lists the files produced by WriteViews.
type Written struct {
	Inverted  string `json:"inverted"`
	Grayscale string `json:"grayscale"`
}

// WriteViews saves the inverted and grayscale views into dir as
// <base>_inverted.png and <base>_grayscale.png. The grayscale view is saved
// as a single-channel 8-bit image. dir is created if it does not exist.
func WriteViews(dir, base string, v *views.Views) (*Written, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	w := &Written{
		Inverted:  filepath.Join(dir, base+"_inverted.png"),
		Grayscale: filepath.Join(dir, base+"_grayscale.png"),
	}

	if err := imaging.Save(v.Inverted, w.Inverted); err != nil {
		return nil, fmt.Errorf("failed to save inverted view: %w", err)
	}
	if err := imaging.Save(v.Grayscale.Gray(), w.Grayscale); err != nil {
		return nil, fmt.Errorf("failed to save grayscale view: %w", err)
	}

	return w, nil
}

// BaseName returns the file name of path without its extension, for use as
// the base argument of WriteViews.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
