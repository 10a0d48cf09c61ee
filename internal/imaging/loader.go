package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// cachedImage is a decoded file together with what the decoder reported.
type cachedImage struct {
	raster   *Raster
	format   string
	hasAlpha bool
}

// ImageCache provides thread-safe caching of loaded rasters to avoid redundant
// disk reads and decodes.
//
// Rasters are keyed by the exact path string passed to Load. Since a Raster
// is never modified, the same cached value may be handed to any number of
// concurrent callers.
//
// # Memory Management
//
// Cached rasters remain in memory until explicitly removed via Evict() or
// Clear(). Batch runs over large directories should evict each file once it
// has been processed.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*cachedImage
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*cachedImage),
	}
}

// Load retrieves a raster from the cache or decodes it from disk.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP and WebP, detected from the file contents.
//
// Returns:
//   - *Raster: The decoded pixels, re-based to (0,0) with alpha discarded.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The raster is cached using the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) result in separate entries.
// Failed loads are not cached.
//
// # Errors
//
//   - Returns *DecodeError wrapping the os error if the file cannot be opened
//   - Returns *DecodeError wrapping image.ErrFormat or the decoder's error if
//     the contents are not a supported image
func (c *ImageCache) Load(path string) (*Raster, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.raster, nil
}

func (c *ImageCache) load(path string) (*cachedImage, error) {
	c.mu.RLock()
	if entry, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("failed to open image: %w", err)}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	entry := &cachedImage{
		raster:   FromImage(img),
		format:   format,
		hasAlpha: hasAlpha(img),
	}

	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Clear removes all rasters from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*cachedImage)
	c.mu.Unlock()
}

// Evict removes a specific raster from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached rasters.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the decoder: "png", "jpeg",
	// "gif", "bmp" or "webp".
	Format string `json:"format"`

	// Extension is the format implied by the file name, or "unknown".
	// It may differ from Format when a file is misnamed.
	Extension string `json:"extension"`

	// HasAlpha indicates whether the decoded image carried an alpha channel.
	// Alpha is discarded when the raster is built.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Metadata about the image.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
//
// # Format Detection
//
// Format comes from the decoder and Extension from the file name, so a
// misnamed file reports both. HasAlpha reflects the decoded color model
// before alpha is discarded.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         entry.raster.Width(),
		Height:        entry.raster.Height(),
		Format:        entry.format,
		Extension:     formatFromExtension(path),
		HasAlpha:      entry.hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	r, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{
		Width:  r.Width(),
		Height: r.Height(),
	}, nil
}

// IsSupportedExtension reports whether path names a file this package can
// decode, judging by its extension alone.
func IsSupportedExtension(path string) bool {
	return formatFromExtension(path) != "unknown"
}

func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".webp":
		return "webp"
	}
	return "unknown"
}

// hasAlpha reports whether img can carry transparency. Paletted images
// count only when some palette entry is not fully opaque.
func hasAlpha(img image.Image) bool {
	switch v := img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return true
	case *image.Paletted:
		for _, c := range v.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
