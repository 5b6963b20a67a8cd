// Package blurview is a blurhash placeholder widget for [Ebitengine].
//
// A [blurhash] is a short string encoding a low-resolution color/gradient
// approximation of an image. Blurview decodes such strings into textures and
// displays them inside a host-managed rectangle, with resize-mode fitting,
// rounded corners, an optional fade-in transition, and load lifecycle
// callbacks. Decoding can run inline or on a worker goroutine; results are
// always applied from the game loop, never from the worker.
//
// # Quick start
//
// Create a [View], give it bounds, and drive it from your [ebiten.Game]:
//
//	view := blurview.NewView()
//	view.X, view.Y = 20, 20
//	view.Width, view.Height = 300, 200
//	view.SetProps(blurview.Props{
//		Hash:         "LKO2?U%2Tw=^]~RBVZRi};RPxi^j",
//		DecodeWidth:  32,
//		DecodeHeight: 32,
//		DecodePunch:  1,
//		DecodeAsync:  true,
//	})
//
//	func (g *Game) Update() error        { g.view.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.view.Draw(s) }
//
// SetProps may be called every frame with the current configuration; the view
// only re-decodes when a decode-relevant input actually changed. Register
// [View.OnLoadStart], [View.OnLoadEnd], and [View.OnLoadError] to observe the
// load lifecycle.
//
// # Threading
//
// All View methods must be called from the game loop goroutine (Ebitengine's
// Update/Draw goroutine). That goroutine owns all visible state; worker
// goroutines only run the decode function and hand their result back through
// a channel drained by [View.Update].
//
// # Decoding
//
// The decode algorithm itself is pluggable via [DecodeFunc]. The default,
// [DefaultDecode], uses [go-blurhash]. Package-level helpers [Encode] and
// [AverageColor] round out the blurhash surface.
//
// [Ebitengine]: https://ebitengine.org
// [blurhash]: https://blurha.sh
// [go-blurhash]: https://github.com/buckket/go-blurhash
package blurview
