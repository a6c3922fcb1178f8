//go:build !moneyfloat

package money

// defaultBackend is used by [Default].
// Build with the moneyfloat tag to use [Approx] instead.
var defaultBackend = Exact
