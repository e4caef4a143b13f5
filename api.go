package matcache

import (
	"gonum.org/v1/gonum/mat"

	"github.com/unkn0wn-root/matcache/invert"
)

// Options tune a Cell. Every field is optional; nil fields get defaults.
type Options struct {
	// Initial is the matrix the cell starts with. nil means the explicit
	// empty state: the cell holds no matrix until SetMatrix is called, and
	// Inverse on it fails with invert.ErrEmpty.
	Initial *mat.Dense

	// Inverter computes inverses on cache misses. nil => invert.Dense{}.
	Inverter invert.Inverter

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// New creates a Cell with Options defaults applied. The cached-inverse slot
// always starts absent, including when Initial is set.
func New(opts Options) *Cell {
	c := &Cell{
		matrix:   opts.Initial,
		inverter: opts.Inverter,
		log:      opts.Logger,
		hooks:    opts.Hooks,
	}
	if c.inverter == nil {
		c.inverter = invert.Dense{}
	}
	if c.log == nil {
		c.log = NopLogger{}
	}
	if c.hooks == nil {
		c.hooks = NopHooks{}
	}
	return c
}
