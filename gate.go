package blurview

// renderGate remembers the last snapshot it was queried with and decides
// whether a new snapshot requires a re-decode. One gate per View; it is only
// touched from the SetProps call path on the game loop, so no locking.
type renderGate struct {
	last    params
	hasLast bool
}

// shouldRender reports whether the given snapshot requires a new decode.
// The gate latches first, decides second: last is unconditionally replaced
// with the queried snapshot before the decision is computed, so every query
// updates the cache even when the caller ends up not decoding.
//
// A snapshot without a hash always answers true so that validation downstream
// surfaces the missing-hash error instead of it being silently skipped.
func (g *renderGate) shouldRender(next params) bool {
	prev, had := g.last, g.hasLast
	g.last, g.hasLast = next, true
	if !had {
		return true
	}
	if next.hash == "" {
		return true
	}
	return next != prev
}
