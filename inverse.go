package matcache

import (
	"gonum.org/v1/gonum/mat"

	"github.com/unkn0wn-root/matcache/invert"
)

// Inverse returns the inverse of the cell's matrix, serving the cached value
// when one is present. On the cached path it performs no further work - the
// matrix is not re-read or re-validated; the cell's invariant (any SetMatrix
// clears the slot) is what keeps the cached value honest.
//
// On a miss the configured Inverter is invoked with opts forwarded verbatim,
// and the result is stored back via SetInverse before returning. Inversion
// failures (non-square, singular, empty - see package invert) propagate
// unchanged and leave the slot absent, so a retry after a corrective
// SetMatrix works normally.
func Inverse(c *Cell, opts ...invert.Option) (*mat.Dense, error) {
	if inv := c.CachedInverse(); inv != nil {
		c.log.Debug("inverse served from cache", Fields{"dims": dims(inv)})
		c.hooks.Hit(dimOf(inv))
		return inv, nil
	}

	m := c.Matrix()
	c.hooks.Miss(dimOf(m))
	inv, err := c.inverter.Invert(m, opts...)
	if err != nil {
		return nil, err
	}
	c.SetInverse(inv)
	return inv, nil
}

// dimOf is the order n of an n-by-n matrix; 0 for the empty state.
func dimOf(m *mat.Dense) int {
	if m == nil {
		return 0
	}
	r, _ := m.Dims()
	return r
}
