package minefield

// FindHit returns the first field, in configuration order, that the probe
// point trips. Overlapping fields never fire twice: scanning stops at the
// first match. Pure, no side effects.
func FindHit(r *Registry, x, y, z float64) (Field, bool) {
	if r == nil || !r.enabled {
		return Field{}, false
	}

	for _, f := range r.fields {
		if f.Contains(x, y, z) {
			return f, true
		}
	}
	return Field{}, false
}
