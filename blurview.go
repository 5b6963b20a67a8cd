package blurview

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ResizeMode controls how the decoded image is fitted into the view bounds.
type ResizeMode uint8

const (
	ResizeCover   ResizeMode = iota // scale to fill the bounds, cropping overflow (default)
	ResizeContain                   // scale to fit entirely inside the bounds, letterboxed
	ResizeStretch                   // scale each axis independently to fill the bounds
	ResizeCenter                    // natural size, centered, cropped to the bounds
)

// ParseResizeMode converts a resize-mode name to its ResizeMode value.
// Unrecognized names fall back to ResizeCover.
func ParseResizeMode(name string) ResizeMode {
	switch name {
	case "contain":
		return ResizeContain
	case "cover":
		return ResizeCover
	case "stretch":
		return ResizeStretch
	case "center":
		return ResizeCenter
	default:
		return ResizeCover
	}
}

// String returns the resize-mode name as accepted by ParseResizeMode.
func (m ResizeMode) String() string {
	switch m {
	case ResizeContain:
		return "contain"
	case ResizeStretch:
		return "stretch"
	case ResizeCenter:
		return "center"
	default:
		return "cover"
	}
}
