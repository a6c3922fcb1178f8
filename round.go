package money

import (
	"github.com/moneykit/money/fixed"
)

// Round returns an amount rounded to the specified number of digits after
// the decimal point using [rounding half away from zero].
// Rounding is performed on the magnitude and the sign is reapplied,
// so USD -2.005 becomes USD -2.01.
// If the given scale is less than the scale of the currency, the result is
// zero-padded back to the scale of the currency.
// See also method [Amount.RoundToCurr].
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a Amount) Round(scale int) Amount {
	return a.derive(a.backend().Round(a.value, scale))
}

// RoundToCurr returns an amount rounded to the smallest cash unit of its currency.
// The amount is first rounded half away from zero to the scale of the currency.
// If the currency has a non-zero rounding increment, such as the Swiss franc
// with an increment of 5 minor units, the result is then rounded half away
// from zero to the nearest multiple of that increment:
//
//	CHF 10.02 -> CHF 10.00
//	CHF 10.03 -> CHF 10.05
//
// See also methods [Amount.Round], [Amount.TruncToCurr].
func (a Amount) RoundToCurr() Amount {
	env := a.Env()
	b, code := env.arith, a.Curr()
	fd := env.currs.FractionDigits(code)
	inc := env.currs.RoundingIncrement(code)

	d := b.Round(a.value, fd)
	if inc <= 0 || fd <= 0 {
		return a.derive(d)
	}
	r, err := roundToIncrement(b, d, fixed.MustNew(int64(inc), fd))
	if err != nil {
		// Only the approximate backend fails here, on values beyond float64.
		return a.derive(d)
	}
	return a.derive(b.Round(r, fd))
}

// roundToIncrement rounds d half away from zero to a multiple of inc.
func roundToIncrement(b Backend, d, inc fixed.Decimal) (fixed.Decimal, error) {
	// One digit of the quotient is enough to decide the rounding direction.
	q, err := b.Quo(d, inc, 1)
	if err != nil {
		return fixed.Decimal{}, err
	}
	q = b.Round(q, 0)
	return b.Mul(q, inc)
}

// Trunc returns an amount truncated to the specified number of digits after
// the decimal point using [rounding toward zero].
// See also method [Amount.TruncToCurr].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (a Amount) Trunc(scale int) Amount {
	return a.derive(a.value.Trunc(scale))
}

// TruncToCurr returns an amount truncated to the scale of its currency
// using [rounding toward zero].
// See also method [Amount.Trunc].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (a Amount) TruncToCurr() Amount {
	return a.Trunc(a.fractionDigits())
}

// Trim returns an amount with trailing zeros removed up to the given scale.
// If the given scale is less than the scale of the currency, the zeros will be
// removed up to the scale of the currency instead.
// See also method [Amount.TrimToCurr].
func (a Amount) Trim(scale int) Amount {
	scale = max(scale, a.fractionDigits())
	return a.derive(a.value.Trim(scale))
}

// TrimToCurr returns an amount with trailing zeros removed up the scale of its currency.
// See also method [Amount.Trim].
func (a Amount) TrimToCurr() Amount {
	return a.Trim(a.fractionDigits())
}

// SameScaleAsCurr returns true if the scale of the amount is equal to the scale of
// its currency.
// See also methods [Amount.Scale], [Amount.RoundToCurr].
func (a Amount) SameScaleAsCurr() bool {
	return a.Scale() == a.fractionDigits()
}
