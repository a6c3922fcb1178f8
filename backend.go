package money

import (
	"math"
	"strconv"

	"github.com/moneykit/money/fixed"
)

// Backend is an arithmetic strategy for monetary values.
// An [Env] uses a single backend for all of its amounts, the choice is never
// made per operation.
//
// Two backends are provided:
//   - [Exact] performs digit-by-digit decimal arithmetic without any loss of precision.
//   - [Approx] performs native binary floating-point arithmetic.
//
// The backends agree on ordinary values but may disagree near rounding
// boundaries. For example, 1.005 rounded to 2 digits is 1.01 with [Exact]
// and 1.00 with [Approx], because 1.005 has no exact float64 representation.
type Backend interface {
	// Add returns d + e.
	Add(d, e fixed.Decimal) (fixed.Decimal, error)
	// Sub returns d - e.
	Sub(d, e fixed.Decimal) (fixed.Decimal, error)
	// Mul returns d * e without rounding.
	Mul(d, e fixed.Decimal) (fixed.Decimal, error)
	// Quo returns d / e with the given number of digits after the decimal point.
	// Quo returns an error if e is zero.
	Quo(d, e fixed.Decimal, scale int) (fixed.Decimal, error)
	// Abs returns |d|.
	Abs(d fixed.Decimal) fixed.Decimal
	// Neg returns -d.
	Neg(d fixed.Decimal) fixed.Decimal
	// Round returns d rounded half away from zero to the given number of
	// digits after the decimal point.
	Round(d fixed.Decimal, scale int) fixed.Decimal
	// String returns the name of the backend.
	String() string
}

var (
	// Exact is the exact decimal backend.
	// Products have the sum of the scales of their factors,
	// quotients are truncated to the requested scale.
	Exact Backend = exact{}

	// Approx is the binary floating-point backend.
	// Results carry ordinary float64 representation error and quotients
	// are not truncated.
	Approx Backend = approx{}
)

type exact struct{}

func (exact) Add(d, e fixed.Decimal) (fixed.Decimal, error) {
	return d.Add(e), nil
}

func (exact) Sub(d, e fixed.Decimal) (fixed.Decimal, error) {
	return d.Sub(e), nil
}

func (exact) Mul(d, e fixed.Decimal) (fixed.Decimal, error) {
	return d.Mul(e), nil
}

func (exact) Quo(d, e fixed.Decimal, scale int) (fixed.Decimal, error) {
	if e.IsZero() {
		return fixed.Decimal{}, ErrDivisionByZero
	}
	return d.QuoTrunc(e, scale)
}

func (exact) Abs(d fixed.Decimal) fixed.Decimal {
	return d.Abs()
}

func (exact) Neg(d fixed.Decimal) fixed.Decimal {
	return d.Neg()
}

func (exact) Round(d fixed.Decimal, scale int) fixed.Decimal {
	return d.RoundHalfUp(scale)
}

func (exact) String() string {
	return "exact"
}

type approx struct{}

func (b approx) Add(d, e fixed.Decimal) (fixed.Decimal, error) {
	return b.apply(d, e, func(x, y float64) float64 { return x + y })
}

func (b approx) Sub(d, e fixed.Decimal) (fixed.Decimal, error) {
	return b.apply(d, e, func(x, y float64) float64 { return x - y })
}

func (b approx) Mul(d, e fixed.Decimal) (fixed.Decimal, error) {
	return b.apply(d, e, func(x, y float64) float64 { return x * y })
}

func (b approx) Quo(d, e fixed.Decimal, _ int) (fixed.Decimal, error) {
	if e.IsZero() {
		return fixed.Decimal{}, ErrDivisionByZero
	}
	return b.apply(d, e, func(x, y float64) float64 { return x / y })
}

func (approx) Abs(d fixed.Decimal) fixed.Decimal {
	return d.Abs()
}

func (approx) Neg(d fixed.Decimal) fixed.Decimal {
	return d.Neg()
}

func (approx) Round(d fixed.Decimal, scale int) fixed.Decimal {
	scale = min(max(scale, 0), fixed.MaxScale)
	x, ok := d.Float64()
	if !ok {
		return d.RoundHalfUp(scale)
	}
	p := math.Pow10(scale)
	r := math.Round(x*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		// Beyond the float64 range the digits are rounded directly.
		return d.RoundHalfUp(scale)
	}
	v, err := fixed.Parse(strconv.FormatFloat(r, 'f', scale, 64))
	if err != nil {
		return d.RoundHalfUp(scale)
	}
	return v
}

func (approx) String() string {
	return "approx"
}

func (approx) apply(d, e fixed.Decimal, op func(x, y float64) float64) (fixed.Decimal, error) {
	x, ok := d.Float64()
	if !ok {
		return fixed.Decimal{}, ErrAmountOverflow
	}
	y, ok := e.Float64()
	if !ok {
		return fixed.Decimal{}, ErrAmountOverflow
	}
	return fromFloat64(op(x, y))
}

// fromFloat64 converts a float to the shortest decimal that represents it.
func fromFloat64(f float64) (fixed.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fixed.Decimal{}, ErrAmountOverflow
	}
	return fixed.Parse(strconv.FormatFloat(f, 'f', -1, 64))
}
