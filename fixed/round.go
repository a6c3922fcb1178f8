package fixed

// one is the magnitude added to the last kept digit when rounding up.
var one = []byte{1}

// RoundHalfUp returns a decimal rounded to the specified number of digits
// after the decimal point using [rounding half away from zero].
// The magnitude is rounded and the sign is reapplied, so -2.005 becomes -2.01.
// A carry out of the most significant digit extends the integer part,
// for example 9.996 rounded to 2 digits is 10.00.
// If the given scale is greater than the scale of the decimal, then the
// result is zero-padded to the right, up to [MaxScale] digits.
// A negative scale is treated as 0.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (d Decimal) RoundHalfUp(scale int) Decimal {
	scale = max(scale, 0)
	if d.scale <= scale {
		return d.Pad(scale)
	}
	x := d.mag()
	drop := d.scale - scale
	if len(x) < drop {
		// All significant digits are below the rounding digit.
		return Decimal{scale: scale}
	}
	kept := x[:len(x)-drop]
	if x[len(x)-drop] >= 5 {
		kept = addMag(kept, one)
	}
	return newFromMag(d.neg, kept, scale)
}

// Trunc returns a decimal truncated to the specified number of digits
// after the decimal point using [rounding toward zero].
// A negative scale is treated as 0.
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (d Decimal) Trunc(scale int) Decimal {
	scale = max(scale, 0)
	if d.scale <= scale {
		return d
	}
	x := d.mag()
	drop := d.scale - scale
	if len(x) <= drop {
		return Decimal{scale: scale}
	}
	return newFromMag(d.neg, x[:len(x)-drop], scale)
}

// Pad returns a decimal zero-padded to the specified number of digits after
// the decimal point.
// If the given scale is less than the scale of d, then d is returned unchanged.
// The scale is limited to [MaxScale].
func (d Decimal) Pad(scale int) Decimal {
	scale = min(scale, MaxScale)
	if scale <= d.scale {
		return d
	}
	if d.coef != "" {
		d.coef += zeros(scale - d.scale)
	}
	d.scale = scale
	return d
}

// Trim returns a decimal with trailing zeros removed up to the given scale.
func (d Decimal) Trim(scale int) Decimal {
	scale = max(scale, 0)
	if d.coef == "" {
		d.scale = min(d.scale, scale)
		return d
	}
	for d.scale > scale && d.coef[len(d.coef)-1] == '0' {
		d.coef = d.coef[:len(d.coef)-1]
		d.scale--
	}
	return d
}

// Shift returns d * 10^n.
// The shift is exact: only the position of the decimal point changes.
func (d Decimal) Shift(n int) Decimal {
	switch {
	case n < 0:
		d.scale -= n
	case n <= d.scale:
		d.scale -= n
	default:
		if d.coef != "" {
			d.coef += zeros(n - d.scale)
		}
		d.scale = 0
	}
	return d
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
