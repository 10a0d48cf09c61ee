package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EncodedImage contains an image encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG for embedding in a JSON response.
//
// Parameters:
//   - img: The image to encode. A *LuminanceRaster is written as an 8-bit
//     grayscale PNG; anything else is written in its own color model.
//
// Returns:
//   - *EncodedImage: The dimensions, base64 data and "image/png" MIME type.
//   - error: Non-nil if PNG encoding fails.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	switch v := img.(type) {
	case *LuminanceRaster:
		img = v.Gray()
	case *Raster:
		img = v.img
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &EncodedImage{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
