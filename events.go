package blurview

// Lifecycle event emission. Each emit is a no-op when the corresponding
// callback is unregistered; the package logger mirrors every event as a
// side channel. Emits only happen on the game loop goroutine: from SetProps
// (start, validation errors, sync results) or from Update (async results).

func (v *View) emitStart() {
	logger().Debug("blurview: load start")
	if v.OnLoadStart != nil {
		v.OnLoadStart()
	}
}

func (v *View) emitEnd() {
	logger().Debug("blurview: load end")
	if v.OnLoadEnd != nil {
		v.OnLoadEnd()
	}
}

func (v *View) emitError(message string) {
	logger().Warn("blurview: load error", "message", message)
	if v.OnLoadError != nil {
		v.OnLoadError(message)
	}
}
