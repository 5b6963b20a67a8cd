package blurview

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// View displays a blurhash placeholder inside a host-managed rectangle.
//
// The host drives a View from the game loop: SetProps on configuration
// changes (calling it every frame is fine), Update once per tick, Draw once
// per frame. All methods must be called from the game loop goroutine; the
// View owns no locks and mutates display state only there.
type View struct {
	// X, Y, Width, Height are the display bounds in destination coordinates.
	X, Y, Width, Height float64

	// OnLoadStart fires when a new decode cycle begins, before validation.
	// OnLoadEnd fires once the decoded image has been applied.
	// OnLoadError fires on any validation or decode failure, with a message
	// naming the violated constraint. All three are optional.
	OnLoadStart func()
	OnLoadEnd   func()
	OnLoadError func(message string)

	// Decode is the decode function used for new requests. Defaults to
	// DefaultDecode. Must not be set to nil.
	Decode DecodeFunc

	// DiscardStale drops results from decode requests that were superseded
	// by a newer SetProps before they completed. Off by default: every
	// completed request is applied in completion order, matching the
	// historical behavior of blurhash view components.
	DiscardStale bool

	// FadeDuration, when positive, fades a newly applied image in over this
	// many seconds instead of showing it immediately.
	FadeDuration float32

	// Display attributes, reconciled on every SetProps call.
	resizeMode   ResizeMode
	cornerRadius float64

	// Decode orchestration.
	gate       renderGate
	generation uint64
	results    chan decodeResult

	// Displayed image. pixels is the decoded source of truth; texture is
	// uploaded lazily in Draw.
	pixels       image.Image
	texture      *ebiten.Image
	textureDirty bool

	// Fade-in state.
	alpha float64
	fade  *gween.Tween

	// Offscreen compositing cache for the rounded-corner path.
	buffer       *ebiten.Image
	bufW, bufH   int
	mask         *ebiten.Image
	maskW, maskH int
	maskRadius   float64

	disposed bool
}

// NewView creates a View with the default decode function, cover fit, and
// zero bounds. Set X/Y/Width/Height before drawing.
func NewView() *View {
	return &View{
		Decode:     DefaultDecode,
		resizeMode: ResizeCover,
		alpha:      1,
		results:    make(chan decodeResult, resultQueueCap),
	}
}

// SetProps runs one update cycle with the given configuration.
//
// Display attributes (ResizeMode, CornerRadius) are applied unconditionally.
// The decode-relevant inputs (Hash, DecodeWidth, DecodeHeight, DecodePunch)
// are compared against the previous cycle; when unchanged, no decode runs
// and no events fire. When a re-decode is needed, OnLoadStart fires, the
// inputs are validated, and the decode is scheduled in the requested mode.
// Any failure clears the displayed image and fires OnLoadError.
func (v *View) SetProps(p Props) {
	if v.disposed {
		panic("blurview: SetProps on disposed view")
	}

	// Non-decode display attributes reconcile independently of decode state.
	v.resizeMode = p.ResizeMode
	v.cornerRadius = p.CornerRadius

	snap := params{
		hash:   p.Hash,
		width:  p.DecodeWidth,
		height: p.DecodeHeight,
		punch:  p.DecodePunch,
	}
	if !v.gate.shouldRender(snap) {
		return
	}

	v.generation++
	v.emitStart()

	vp, derr := validateParams(snap)
	if derr != nil {
		v.clearImage()
		v.emitError(derr.Error())
		return
	}
	v.scheduleDecode(vp, p.DecodeAsync)
}

// Update applies completed async decode results and advances the fade-in
// transition. Call once per game tick.
func (v *View) Update() {
drain:
	for {
		select {
		case res := <-v.results:
			v.deliver(res)
		default:
			break drain
		}
	}

	if v.fade != nil {
		dt := float32(1.0 / float64(ebiten.TPS()))
		val, done := v.fade.Update(dt)
		v.alpha = float64(val)
		if done {
			v.fade = nil
		}
	}
}

// deliver applies one terminal decode outcome on the game loop goroutine.
func (v *View) deliver(res decodeResult) {
	if v.disposed {
		return
	}
	if v.DiscardStale && res.gen != v.generation {
		logger().Debug("blurview: discarding stale decode result",
			"generation", res.gen, "current", v.generation)
		return
	}
	if res.err != nil {
		v.clearImage()
		v.emitError(res.err.Error())
		return
	}
	v.setImage(res.pixels)
	v.emitEnd()
}

func (v *View) setImage(pixels image.Image) {
	v.pixels = pixels
	v.textureDirty = true
	if v.FadeDuration > 0 {
		v.alpha = 0
		v.fade = gween.New(0, 1, v.FadeDuration, ease.Linear)
	} else {
		v.alpha = 1
		v.fade = nil
	}
}

func (v *View) clearImage() {
	v.pixels = nil
	v.textureDirty = false
	v.fade = nil
	v.alpha = 1
	if v.texture != nil {
		v.texture.Deallocate()
		v.texture = nil
	}
}

// Pixels returns the currently displayed decoded image, or nil when no image
// is shown (nothing decoded yet, or the last cycle failed).
func (v *View) Pixels() image.Image {
	return v.pixels
}

// Draw renders the view into dst. A view with no image or empty bounds
// draws nothing.
func (v *View) Draw(dst *ebiten.Image) {
	if v.disposed || v.pixels == nil {
		return
	}
	bounds := Rect{v.X, v.Y, v.Width, v.Height}
	if bounds.Empty() {
		return
	}

	if v.textureDirty {
		if v.texture != nil {
			v.texture.Deallocate()
		}
		v.texture = ebiten.NewImageFromImage(v.pixels)
		v.textureDirty = false
	}

	if v.cornerRadius > 0 {
		v.drawRounded(dst, bounds)
		return
	}
	v.drawFitted(dst, bounds, v.alpha)
}

// drawFitted draws the texture into bounds under the current resize mode.
func (v *View) drawFitted(dst *ebiten.Image, bounds Rect, alpha float64) {
	tb := v.texture.Bounds()
	iw, ih := float64(tb.Dx()), float64(tb.Dy())
	src, place := fitRect(iw, ih, bounds, v.resizeMode)

	// Snap the source crop to whole texels.
	sx0 := int(math.Floor(src.X))
	sy0 := int(math.Floor(src.Y))
	sx1 := int(math.Ceil(src.X + src.Width))
	sy1 := int(math.Ceil(src.Y + src.Height))
	sx0, sy0 = max(sx0, 0), max(sy0, 0)
	sx1, sy1 = min(sx1, tb.Dx()), min(sy1, tb.Dy())
	if sx1 <= sx0 || sy1 <= sy0 {
		return
	}

	sub := v.texture.SubImage(image.Rect(
		tb.Min.X+sx0, tb.Min.Y+sy0,
		tb.Min.X+sx1, tb.Min.Y+sy1,
	)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(place.Width/float64(sx1-sx0), place.Height/float64(sy1-sy0))
	op.GeoM.Translate(place.X, place.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(sub, &op)
}

// drawRounded renders through an offscreen buffer: fitted image first, then
// the rounded-rect mask with a destination-in blend, then the buffer onto
// dst. Buffer and mask are cached and rebuilt only when size or radius
// change.
func (v *View) drawRounded(dst *ebiten.Image, bounds Rect) {
	w := int(math.Ceil(bounds.Width))
	h := int(math.Ceil(bounds.Height))
	if w <= 0 || h <= 0 {
		return
	}

	if v.buffer == nil || v.bufW != w || v.bufH != h {
		if v.buffer != nil {
			v.buffer.Deallocate()
		}
		v.buffer = ebiten.NewImage(w, h)
		v.bufW, v.bufH = w, h
	}
	if v.mask == nil || v.maskW != w || v.maskH != h || v.maskRadius != v.cornerRadius {
		if v.mask != nil {
			v.mask.Deallocate()
		}
		v.mask = newRoundedMask(w, h, v.cornerRadius)
		v.maskW, v.maskH, v.maskRadius = w, h, v.cornerRadius
	}

	v.buffer.Clear()
	v.drawFitted(v.buffer, Rect{0, 0, bounds.Width, bounds.Height}, 1)

	var mop ebiten.DrawImageOptions
	mop.Blend = maskBlend
	v.buffer.DrawImage(v.mask, &mop)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(bounds.X, bounds.Y)
	op.ColorScale.ScaleAlpha(float32(v.alpha))
	dst.DrawImage(v.buffer, &op)
}

// Dispose releases the view's textures and callbacks. In-flight async
// decodes still complete; their results are discarded by later Update
// calls. Dispose is idempotent.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.disposed = true
	v.pixels = nil
	v.fade = nil
	if v.texture != nil {
		v.texture.Deallocate()
		v.texture = nil
	}
	if v.buffer != nil {
		v.buffer.Deallocate()
		v.buffer = nil
	}
	if v.mask != nil {
		v.mask.Deallocate()
		v.mask = nil
	}
	v.OnLoadStart = nil
	v.OnLoadEnd = nil
	v.OnLoadError = nil
}

// IsDisposed returns true if Dispose has been called.
func (v *View) IsDisposed() bool {
	return v.disposed
}
