// Package matcache memoizes matrix inversion. A Cell holds one mutable square
// matrix and an optional cached inverse; Inverse serves the cached value when
// present and otherwise computes it once via a pluggable inversion primitive
// and stores it back. Any write to the matrix invalidates the cache.
//
// Components:
//   - Cell: mutable holder for the matrix and the cached-inverse slot.
//   - Inverse: orchestration - cache check, compute, store.
//   - invert.Inverter: the inversion primitive (gonum-backed by default).
//
// The cached slot has exactly two states: absent (nil) and present. SetMatrix
// moves present -> absent; a successful Inverse moves absent -> present.
// SetInverse trusts its caller completely and performs no verification that
// the stored value is a genuine inverse.
//
// A Cell is owned by a single logical caller. There is no locking: concurrent
// Inverse calls against one cell race between the cache check and the store
// (both would compute, last store wins). Guarding that is out of scope.
package matcache
