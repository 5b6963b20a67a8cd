package blurview

import "math"

// fitRect computes how an iw×ih image maps into bounds under the given
// resize mode. src is the portion of the image to sample (image-local
// coordinates) and dst is where it lands (same space as bounds). Modes that
// overflow the bounds (cover, center) crop via src instead, so dst never
// extends outside bounds.
//
// An out-of-range mode value behaves as ResizeCover.
func fitRect(iw, ih float64, bounds Rect, mode ResizeMode) (src, dst Rect) {
	src = Rect{0, 0, iw, ih}
	switch mode {
	case ResizeStretch:
		return src, bounds
	case ResizeContain:
		s := math.Min(bounds.Width/iw, bounds.Height/ih)
		w, h := iw*s, ih*s
		return src, Rect{
			X:      bounds.X + (bounds.Width-w)/2,
			Y:      bounds.Y + (bounds.Height-h)/2,
			Width:  w,
			Height: h,
		}
	case ResizeCenter:
		w, h := math.Min(iw, bounds.Width), math.Min(ih, bounds.Height)
		src = Rect{(iw - w) / 2, (ih - h) / 2, w, h}
		return src, Rect{
			X:      bounds.X + (bounds.Width-w)/2,
			Y:      bounds.Y + (bounds.Height-h)/2,
			Width:  w,
			Height: h,
		}
	default: // cover
		s := math.Max(bounds.Width/iw, bounds.Height/ih)
		w, h := bounds.Width/s, bounds.Height/s
		src = Rect{(iw - w) / 2, (ih - h) / 2, w, h}
		return src, bounds
	}
}
