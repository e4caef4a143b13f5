package matcache

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking - the cell calls them
// synchronously on every operation. They exist for counters and tracing;
// correctness never depends on them.
type Hooks interface {
	// The cached inverse was served without recomputation. n is the matrix
	// order (0 for the empty state, which cannot actually hit).
	Hit(n int)

	// No valid cached inverse existed; the inversion primitive runs next.
	// Fires before the primitive, so it also counts attempts that fail.
	Miss(n int)

	// SetMatrix cleared the cached slot. hadInverse reports whether a
	// cached value was actually discarded.
	Invalidated(hadInverse bool)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit(int)          {}
func (NopHooks) Miss(int)         {}
func (NopHooks) Invalidated(bool) {}
