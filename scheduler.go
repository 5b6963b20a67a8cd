package blurview

import (
	"image"
	"time"
)

// decodeResult is the single terminal outcome of one decode request.
// Exactly one of pixels/err is set.
type decodeResult struct {
	pixels image.Image
	err    *DecodeError
	gen    uint64
}

// resultQueueCap bounds in-flight async results between two Update calls.
// Workers block on a full queue rather than drop, preserving exactly-once
// delivery.
const resultQueueCap = 16

// runDecode invokes the decode function and translates its outcome: a nil
// image becomes ErrDecodeFailed, a panic becomes ErrUnknown. Safe to call
// from any goroutine.
func runDecode(fn DecodeFunc, vp validatedParams) (res decodeResult) {
	defer func() {
		if r := recover(); r != nil {
			logger().Warn("blurview: decode panicked", "recovered", r)
			res = decodeResult{err: &DecodeError{Kind: ErrUnknown}}
		}
	}()
	start := time.Now()
	img := fn(vp.hash, vp.width, vp.height, vp.punch)
	logger().Debug("blurview: decode finished",
		"width", vp.width, "height", vp.height, "duration", time.Since(start))
	if img == nil {
		return decodeResult{err: &DecodeError{Kind: ErrDecodeFailed, Message: "invalid blurhash string"}}
	}
	return decodeResult{pixels: img}
}

// scheduleDecode runs a validated request in the configured mode. Sync mode
// decodes inline and delivers immediately; async mode decodes on a fresh
// worker goroutine and queues the result for the next Update. Either way the
// request produces exactly one terminal outcome.
func (v *View) scheduleDecode(vp validatedParams, async bool) {
	if v.Decode == nil {
		panic("blurview: View.Decode is nil")
	}
	gen := v.generation
	if !async {
		res := runDecode(v.Decode, vp)
		res.gen = gen
		v.deliver(res)
		return
	}
	fn := v.Decode
	go func() {
		res := runDecode(fn, vp)
		res.gen = gen
		v.results <- res
	}()
}
