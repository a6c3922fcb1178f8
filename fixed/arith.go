package fixed

import "fmt"

// Digit arithmetic on magnitudes.
// A magnitude is a slice of digit values 0-9, most significant digit first.
// Magnitudes passed to the same operation are aligned on their last digit.

// trimMag removes leading zeros.
func trimMag(x []byte) []byte {
	i := 0
	for i < len(x) && x[i] == 0 {
		i++
	}
	return x[i:]
}

// addMag returns x + y.
// It is the only place where carries are propagated, addition and
// rounding both rely on it.
func addMag(x, y []byte) []byte {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]byte, len(x)+1)
	var carry byte
	for i := 1; i <= len(x); i++ {
		s := x[len(x)-i] + carry
		if i <= len(y) {
			s += y[len(y)-i]
		}
		carry = s / 10
		z[len(z)-i] = s % 10
	}
	z[0] = carry
	return z
}

// subMag returns x - y.
// x must not be less than y.
func subMag(x, y []byte) []byte {
	z := make([]byte, len(x))
	borrow := 0
	for i := 1; i <= len(x); i++ {
		s := int(x[len(x)-i]) - borrow
		if i <= len(y) {
			s -= int(y[len(y)-i])
		}
		borrow = 0
		if s < 0 {
			s += 10
			borrow = 1
		}
		z[len(z)-i] = byte(s)
	}
	return z
}

// cmpMag returns -1, 0 or +1 depending on whether x is less than,
// equal to or greater than y.
func cmpMag(x, y []byte) int {
	x, y = trimMag(x), trimMag(y)
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// mulMag returns x * y using long multiplication.
func mulMag(x, y []byte) []byte {
	acc := make([]int, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] == 0 {
			continue
		}
		for j := len(y) - 1; j >= 0; j-- {
			acc[i+j+1] += int(x[i]) * int(y[j])
		}
	}
	z := make([]byte, len(acc))
	carry := 0
	for i := len(acc) - 1; i >= 0; i-- {
		s := acc[i] + carry
		z[i] = byte(s % 10)
		carry = s / 10
	}
	return z
}

// quoMag returns x / y truncated to an integer, using long division.
// y must not be zero.
func quoMag(x, y []byte) []byte {
	y = trimMag(y)
	q := make([]byte, len(x))
	var r []byte
	for i, v := range x {
		r = trimMag(append(r, v))
		var n byte
		for cmpMag(r, y) >= 0 {
			r = trimMag(subMag(r, y))
			n++
		}
		q[i] = n
	}
	return q
}

// Add returns the exact sum of decimals d and e.
// The scale of the result is the larger of the two scales.
func (d Decimal) Add(e Decimal) Decimal {
	scale := max(d.scale, e.scale)
	x, y := d.magAt(scale), e.magAt(scale)
	if d.neg == e.neg {
		return newFromMag(d.neg, addMag(x, y), scale)
	}
	switch cmpMag(x, y) {
	case 0:
		return Decimal{scale: scale}
	case 1:
		return newFromMag(d.neg, subMag(x, y), scale)
	default:
		return newFromMag(e.neg, subMag(y, x), scale)
	}
}

// Sub returns the exact difference between decimals d and e.
// The scale of the result is the larger of the two scales.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the exact product of decimals d and e.
// The scale of the result is the sum of the two scales.
func (d Decimal) Mul(e Decimal) Decimal {
	return newFromMag(d.neg != e.neg, mulMag(d.mag(), e.mag()), d.scale+e.scale)
}

// QuoTrunc returns the quotient of decimals d and e truncated toward zero
// to the given number of digits after the decimal point.
// No rounding takes place, digits beyond the scale are discarded.
//
// QuoTrunc returns an error if the divisor is zero or the scale is outside
// the range from 0 to [MaxScale].
func (d Decimal) QuoTrunc(e Decimal, scale int) (Decimal, error) {
	switch {
	case e.IsZero():
		return Decimal{}, errDivisionByZero
	case scale < 0:
		return Decimal{}, errNegativeScale
	case scale > MaxScale:
		return Decimal{}, fmt.Errorf("%w: %v", errScaleRange, scale)
	}
	// d / e = (D * 10^(e.scale + scale)) / (E * 10^d.scale) / 10^scale
	x := append(d.mag(), make([]byte, e.scale+scale)...)
	y := append(e.mag(), make([]byte, d.scale)...)
	return newFromMag(d.neg != e.neg, quoMag(x, y), scale), nil
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	switch ds, es := d.Sign(), e.Sign(); {
	case ds > es:
		return 1
	case ds < es:
		return -1
	case ds == 0:
		return 0
	}
	c := d.CmpAbs(e)
	if d.neg {
		return -c
	}
	return c
}

// CmpAbs compares absolute values of decimals and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| = |e|
//	+1 if |d| > |e|
func (d Decimal) CmpAbs(e Decimal) int {
	scale := max(d.scale, e.scale)
	return cmpMag(d.magAt(scale), e.magAt(scale))
}
