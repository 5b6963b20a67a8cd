package blurview

import (
	"image"
	"testing"
	"time"
)

// eventRecorder captures lifecycle callbacks in order.
type eventRecorder struct {
	events []string
}

func (r *eventRecorder) attach(v *View) {
	v.OnLoadStart = func() { r.events = append(r.events, "start") }
	v.OnLoadEnd = func() { r.events = append(r.events, "end") }
	v.OnLoadError = func(msg string) { r.events = append(r.events, "error: "+msg) }
}

func (r *eventRecorder) expect(t *testing.T, want ...string) {
	t.Helper()
	if len(r.events) != len(want) {
		t.Fatalf("events = %q, want %q", r.events, want)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Fatalf("events = %q, want %q", r.events, want)
		}
	}
}

// fixedDecode returns a DecodeFunc that always produces a w×h image.
func fixedDecode(w, h int) DecodeFunc {
	return func(string, int, int, float64) image.Image {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
}

func waitFor(t *testing.T, desc string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", desc)
}

func propsWithHash(hash string) Props {
	p := DefaultProps()
	p.Hash = hash
	return p
}

// --- Update cycles, sync ---

func TestViewSyncSuccess(t *testing.T) {
	v := NewView()
	var rec eventRecorder
	rec.attach(v)

	v.SetProps(propsWithHash(testHash))

	rec.expect(t, "start", "end")
	if v.Pixels() == nil {
		t.Fatal("no image after successful decode")
	}
	b := v.Pixels().Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("decoded size = %dx%d, want 32x32", b.Dx(), b.Dy())
	}
}

func TestViewIdenticalPropsDecodeOnce(t *testing.T) {
	v := NewView()
	calls := 0
	v.Decode = func(hash string, w, h int, p float64) image.Image {
		calls++
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	var rec eventRecorder
	rec.attach(v)

	p := propsWithHash(testHash)
	v.SetProps(p)
	v.SetProps(p)

	if calls != 1 {
		t.Errorf("decode calls = %d, want 1", calls)
	}
	rec.expect(t, "start", "end")
}

func TestViewMissingHash(t *testing.T) {
	v := NewView()
	var rec eventRecorder
	rec.attach(v)

	v.SetProps(propsWithHash(""))

	rec.expect(t, "start", "error: The provided Blurhash string must not be null!")
	if v.Pixels() != nil {
		t.Error("image must be cleared on validation failure")
	}
}

func TestViewRepeatedMissingHashReemits(t *testing.T) {
	// An absent hash forces a render attempt on every cycle, so the error
	// fires again even though nothing changed.
	v := NewView()
	var rec eventRecorder
	rec.attach(v)

	v.SetProps(propsWithHash(""))
	v.SetProps(propsWithHash(""))

	rec.expect(t,
		"start", "error: The provided Blurhash string must not be null!",
		"start", "error: The provided Blurhash string must not be null!")
}

func TestViewValidationOrder(t *testing.T) {
	// Width is checked before punch: the width error is reported even though
	// punch is invalid too.
	v := NewView()
	var rec eventRecorder
	rec.attach(v)

	p := Props{Hash: testHash, DecodeWidth: 0, DecodeHeight: 32, DecodePunch: -1}
	v.SetProps(p)

	rec.expect(t, "start", "error: decodeWidth must be greater than 0! Actual: 0")
}

func TestViewDisplayAttrsReconcileWithoutDecode(t *testing.T) {
	v := NewView()
	calls := 0
	v.Decode = func(hash string, w, h int, p float64) image.Image {
		calls++
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	var rec eventRecorder
	rec.attach(v)

	p := propsWithHash(testHash)
	v.SetProps(p)

	p.ResizeMode = ResizeContain
	p.CornerRadius = 8
	v.SetProps(p)

	if calls != 1 {
		t.Errorf("decode calls = %d, want 1 (display attrs must not re-decode)", calls)
	}
	rec.expect(t, "start", "end")
	if v.resizeMode != ResizeContain {
		t.Errorf("resizeMode = %v, want contain", v.resizeMode)
	}
	if v.cornerRadius != 8 {
		t.Errorf("cornerRadius = %v, want 8", v.cornerRadius)
	}
}

func TestViewClearsImageOnFailure(t *testing.T) {
	v := NewView()
	v.Decode = func(hash string, w, h int, p float64) image.Image {
		if hash == "bad" {
			return nil
		}
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	var rec eventRecorder
	rec.attach(v)

	v.SetProps(propsWithHash("good"))
	if v.Pixels() == nil {
		t.Fatal("no image after successful decode")
	}

	v.SetProps(propsWithHash("bad"))
	if v.Pixels() != nil {
		t.Error("image must be cleared after a failed decode")
	}
	rec.expect(t, "start", "end", "start", "error: invalid blurhash string")
}

// --- Async mode ---

func TestViewAsyncDeliversOnUpdate(t *testing.T) {
	v := NewView()
	release := make(chan struct{})
	v.Decode = func(hash string, w, h int, p float64) image.Image {
		<-release
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	var rec eventRecorder
	rec.attach(v)

	p := propsWithHash(testHash)
	p.DecodeAsync = true
	v.SetProps(p)

	// Start fires immediately; the terminal event waits for Update.
	rec.expect(t, "start")

	close(release)
	waitFor(t, "worker result", func() bool { return len(v.results) == 1 })

	// Result is queued but not applied until Update runs on the game loop.
	rec.expect(t, "start")
	if v.Pixels() != nil {
		t.Fatal("image applied before Update")
	}

	v.Update()
	rec.expect(t, "start", "end")
	if v.Pixels() == nil {
		t.Fatal("no image after Update")
	}

	// Exactly one terminal outcome: further Updates deliver nothing new.
	v.Update()
	v.Update()
	rec.expect(t, "start", "end")
}

func TestViewAsyncDecodePanic(t *testing.T) {
	v := NewView()
	v.Decode = func(string, int, int, float64) image.Image { panic("boom") }
	var rec eventRecorder
	rec.attach(v)

	p := propsWithHash(testHash)
	p.DecodeAsync = true
	v.SetProps(p)

	waitFor(t, "worker result", func() bool { return len(v.results) == 1 })
	v.Update()

	rec.expect(t, "start", "error: An unknown error occurred while decoding the blurhash!")
	if v.Pixels() != nil {
		t.Error("image must be cleared after a panicking decode")
	}
}

func TestViewOverlappingRequestsCompletionOrder(t *testing.T) {
	// Without DiscardStale, overlapping requests apply in completion order:
	// the slower first request overwrites the faster second one.
	v := newOverlapView(t, false)
	if b := v.Pixels().Bounds(); b.Dx() != 16 {
		t.Errorf("final image width = %d, want 16 (slow result applied last)", b.Dx())
	}
}

func TestViewDiscardStale(t *testing.T) {
	// With DiscardStale, the superseded first request's result is dropped.
	v := newOverlapView(t, true)
	if b := v.Pixels().Bounds(); b.Dx() != 8 {
		t.Errorf("final image width = %d, want 8 (stale result discarded)", b.Dx())
	}
}

// newOverlapView issues a slow request immediately followed by a fast one,
// applies the fast result, then lets the slow result arrive.
func newOverlapView(t *testing.T, discardStale bool) *View {
	t.Helper()
	v := NewView()
	v.DiscardStale = discardStale
	slowGate := make(chan struct{})
	v.Decode = func(hash string, w, h int, p float64) image.Image {
		if hash == "slow" {
			<-slowGate
			return image.NewNRGBA(image.Rect(0, 0, 16, 16))
		}
		return image.NewNRGBA(image.Rect(0, 0, 8, 8))
	}

	p := propsWithHash("slow")
	p.DecodeAsync = true
	v.SetProps(p)

	p.Hash = "fast"
	v.SetProps(p)

	waitFor(t, "fast result", func() bool { return len(v.results) == 1 })
	v.Update()
	if v.Pixels() == nil || v.Pixels().Bounds().Dx() != 8 {
		t.Fatal("fast result not applied")
	}

	close(slowGate)
	waitFor(t, "slow result", func() bool { return len(v.results) == 1 })
	v.Update()
	return v
}

// --- Fade-in ---

func TestViewFadeIn(t *testing.T) {
	v := NewView()
	v.FadeDuration = 0.25
	v.Decode = fixedDecode(8, 8)

	v.SetProps(propsWithHash(testHash))
	if v.alpha != 0 {
		t.Fatalf("alpha after apply = %v, want 0", v.alpha)
	}

	// 0.25s at 60 TPS is 15 ticks; run plenty.
	for i := 0; i < 120; i++ {
		v.Update()
	}
	if v.alpha != 1 {
		t.Errorf("alpha after fade = %v, want 1", v.alpha)
	}
	if v.fade != nil {
		t.Error("fade tween should be released once finished")
	}
}

func TestViewNoFadeByDefault(t *testing.T) {
	v := NewView()
	v.Decode = fixedDecode(8, 8)
	v.SetProps(propsWithHash(testHash))
	if v.alpha != 1 {
		t.Errorf("alpha = %v, want 1 (no fade configured)", v.alpha)
	}
}

// --- Dispose ---

func TestViewDisposeDropsLateResults(t *testing.T) {
	v := NewView()
	release := make(chan struct{})
	v.Decode = func(hash string, w, h int, p float64) image.Image {
		<-release
		return image.NewNRGBA(image.Rect(0, 0, 8, 8))
	}

	p := propsWithHash(testHash)
	p.DecodeAsync = true
	v.SetProps(p)

	v.Dispose()
	close(release)
	waitFor(t, "late result", func() bool { return len(v.results) == 1 })

	v.Update()
	if len(v.results) != 0 {
		t.Error("Update on a disposed view must still drain the queue")
	}
	if v.Pixels() != nil {
		t.Error("disposed view must not hold an image")
	}
}

func TestViewSetPropsAfterDisposePanics(t *testing.T) {
	v := NewView()
	v.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic from SetProps on disposed view")
		}
	}()
	v.SetProps(DefaultProps())
}

func TestViewDisposeIdempotent(t *testing.T) {
	v := NewView()
	v.Dispose()
	v.Dispose()
	if !v.IsDisposed() {
		t.Error("IsDisposed() = false after Dispose")
	}
}

// --- Defaults ---

func TestNewViewDefaults(t *testing.T) {
	v := NewView()
	if v.Decode == nil {
		t.Error("Decode must default to DefaultDecode")
	}
	if v.resizeMode != ResizeCover {
		t.Errorf("resizeMode = %v, want cover", v.resizeMode)
	}
	if v.alpha != 1 {
		t.Errorf("alpha = %v, want 1", v.alpha)
	}
}

func TestDefaultProps(t *testing.T) {
	p := DefaultProps()
	if p.DecodeWidth != 32 || p.DecodeHeight != 32 {
		t.Errorf("decode size = %dx%d, want 32x32", p.DecodeWidth, p.DecodeHeight)
	}
	if p.DecodePunch != 1 {
		t.Errorf("punch = %v, want 1", p.DecodePunch)
	}
	if p.DecodeAsync {
		t.Error("async must default to false")
	}
	if p.ResizeMode != ResizeCover {
		t.Errorf("resize mode = %v, want cover", p.ResizeMode)
	}
	if p.CornerRadius != 0 {
		t.Errorf("corner radius = %v, want 0", p.CornerRadius)
	}
}
