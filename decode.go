package blurview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/buckket/go-blurhash"
	"github.com/buckket/go-blurhash/base83"
)

// DecodeFunc turns a blurhash string into pixel data at the given resolution.
// It must be pure from the caller's perspective and safe to invoke from any
// goroutine. A nil return means the hash could not be decoded; a panic is
// treated as an unknown failure.
type DecodeFunc func(hash string, width, height int, punch float64) image.Image

// DefaultDecode is the DecodeFunc a new View starts with. It decodes via
// go-blurhash, rounding punch to the nearest whole factor (minimum 1, which
// is neutral).
func DefaultDecode(hash string, width, height int, punch float64) image.Image {
	p := int(math.Round(punch))
	if p < 1 {
		p = 1
	}
	img, err := blurhash.Decode(hash, width, height, p)
	if err != nil {
		return nil
	}
	return img
}

// Encode produces a blurhash string for the given image using the specified
// number of DCT components per axis (1–9 each; 4×3 is typical).
func Encode(img image.Image, xComponents, yComponents int) (string, error) {
	hash, err := blurhash.Encode(xComponents, yComponents, img)
	if err != nil {
		return "", fmt.Errorf("blurview: encode: %w", err)
	}
	return hash, nil
}

// AverageColor returns the average color of the image a blurhash encodes,
// read directly from the hash's DC component without a full decode.
func AverageColor(hash string) (color.RGBA, error) {
	if len(hash) < 6 {
		return color.RGBA{}, fmt.Errorf("blurview: hash too short for average color: %q", hash)
	}
	v, err := base83.Decode(hash[2:6])
	if err != nil {
		return color.RGBA{}, fmt.Errorf("blurview: average color: %w", err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
