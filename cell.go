package matcache

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/unkn0wn-root/matcache/invert"
)

// Cell is a mutable holder for one matrix and one cached inverse.
// The inverse slot is nil when absent. Cell does no shape validation:
// any matrix may be stored; squareness is enforced at inversion time
// by the Inverter. Not safe for concurrent use.
type Cell struct {
	matrix  *mat.Dense
	inverse *mat.Dense // nil => no valid cached inverse

	inverter invert.Inverter
	log      Logger
	hooks    Hooks
}

// SetMatrix replaces the stored matrix and unconditionally clears the cached
// inverse. This is the only way the slot goes from present back to absent.
func (c *Cell) SetMatrix(m *mat.Dense) {
	had := c.inverse != nil
	c.matrix = m
	c.inverse = nil
	c.hooks.Invalidated(had)
	c.log.Debug("matrix replaced, cached inverse cleared", Fields{
		"dims":      dims(m),
		"hadCached": had,
	})
}

// Matrix returns the currently stored matrix. The value is shared, not a
// defensive copy; mutating it through the returned pointer bypasses
// invalidation. nil means the cell is in the empty state.
func (c *Cell) Matrix() *mat.Dense { return c.matrix }

// SetInverse overwrites the cached-inverse slot. It trusts the caller
// completely - no check that inv is actually the inverse of the current
// matrix. By contract only Inverse should call it, right after computing
// a genuine inverse.
func (c *Cell) SetInverse(inv *mat.Dense) { c.inverse = inv }

// CachedInverse returns the cached-inverse slot; nil means absent.
func (c *Cell) CachedInverse() *mat.Dense { return c.inverse }

// dims renders matrix dimensions for log fields; "0x0" for the empty state.
func dims(m *mat.Dense) string {
	if m == nil {
		return "0x0"
	}
	r, cols := m.Dims()
	return fmt.Sprintf("%dx%d", r, cols)
}
