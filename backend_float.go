//go:build moneyfloat

package money

// defaultBackend is used by [Default].
var defaultBackend = Approx
