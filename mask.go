package blurview

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maskBlend clips the destination to the source's alpha channel: drawing the
// rounded-rect mask over the offscreen buffer keeps only the pixels inside
// the rounded rectangle.
var maskBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorZero,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
	BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// roundedRectAlpha returns the coverage of the pixel at (px, py) for a w×h
// rounded rectangle with the given corner radius. Corner arc pixels get a
// one-pixel analytic falloff for smooth edges.
func roundedRectAlpha(px, py int, w, h, radius float64) uint8 {
	x := float64(px) + 0.5
	y := float64(py) + 0.5
	if x < 0 || y < 0 || x > w || y > h {
		return 0
	}

	// Locate the corner circle this pixel belongs to, if any. Pixels outside
	// the four corner squares are fully covered.
	var cx, cy float64
	switch {
	case x < radius && y < radius:
		cx, cy = radius, radius
	case x > w-radius && y < radius:
		cx, cy = w-radius, radius
	case x < radius && y > h-radius:
		cx, cy = radius, h-radius
	case x > w-radius && y > h-radius:
		cx, cy = w-radius, h-radius
	default:
		return 255
	}

	cov := radius + 0.5 - math.Hypot(x-cx, y-cy)
	if cov <= 0 {
		return 0
	}
	if cov >= 1 {
		return 255
	}
	return uint8(cov * 255)
}

// newRoundedMask builds a w×h white texture whose alpha channel is a rounded
// rectangle. The radius is clamped to half the smaller dimension.
func newRoundedMask(w, h int, radius float64) *ebiten.Image {
	r := math.Min(radius, math.Min(float64(w), float64(h))/2)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := roundedRectAlpha(x, y, float64(w), float64(h), r)
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: a})
		}
	}
	return ebiten.NewImageFromImage(img)
}
