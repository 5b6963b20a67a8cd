package blurview

// Props is the configuration record the host passes to View.SetProps on each
// update cycle. Hash, DecodeWidth, DecodeHeight, and DecodePunch determine
// whether a new decode runs; ResizeMode and CornerRadius only affect display
// and are reconciled on every call.
//
// A zero Props is legal: an empty Hash reports a missing-hash error and zero
// dimensions are rejected by validation. Start from DefaultProps for the
// conventional defaults.
type Props struct {
	// Hash is the blurhash string to decode. Empty means no image requested.
	Hash string

	// DecodeWidth and DecodeHeight are the target decode resolution in
	// pixels. Blurhashes carry very little detail; small values (e.g. 32)
	// decode fast and upscale cleanly.
	DecodeWidth  int
	DecodeHeight int

	// DecodePunch amplifies contrast in the decoded image. 1 is neutral.
	DecodePunch float64

	// DecodeAsync moves decoding to a worker goroutine. The result is still
	// applied from the game loop, during View.Update.
	DecodeAsync bool

	// ResizeMode selects how the decoded image fits the view bounds.
	ResizeMode ResizeMode

	// CornerRadius rounds the view's corners. Values > 0 switch to a
	// rasterized render path: the fitted image is composited against a
	// rounded-rect alpha mask in an offscreen buffer.
	CornerRadius float64
}

// DefaultProps returns a Props with the conventional defaults: a 32×32
// decode at punch 1, synchronous, cover fit, square corners.
func DefaultProps() Props {
	return Props{
		DecodeWidth:  32,
		DecodeHeight: 32,
		DecodePunch:  1,
		ResizeMode:   ResizeCover,
	}
}

// params is the immutable snapshot of the decode-relevant inputs. It is a
// plain comparable value: two snapshots are equal iff all fields are equal.
type params struct {
	hash   string
	width  int
	height int
	punch  float64
}

// validatedParams is a params value that passed validation. hash is known to
// be non-empty and the numeric fields are known to be positive.
type validatedParams struct {
	hash   string
	width  int
	height int
	punch  float64
}
