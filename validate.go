package blurview

// validateParams checks a snapshot's fields in a fixed order and returns the
// first violated constraint: hash, then width, then height, then punch.
// Callers rely on this exact order for stable error reporting.
func validateParams(p params) (validatedParams, *DecodeError) {
	if p.hash == "" {
		return validatedParams{}, &DecodeError{Kind: ErrMissingHash}
	}
	if p.width <= 0 {
		return validatedParams{}, &DecodeError{Kind: ErrInvalidWidth, Value: float64(p.width)}
	}
	if p.height <= 0 {
		return validatedParams{}, &DecodeError{Kind: ErrInvalidHeight, Value: float64(p.height)}
	}
	if p.punch <= 0 {
		return validatedParams{}, &DecodeError{Kind: ErrInvalidPunch, Value: p.punch}
	}
	return validatedParams{
		hash:   p.hash,
		width:  p.width,
		height: p.height,
		punch:  p.punch,
	}, nil
}
