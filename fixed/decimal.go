/*
Package fixed implements exact fixed-point decimal numbers of arbitrary precision.

A [Decimal] is a sign, a sequence of decimal digits (the coefficient) and
a scale, the number of coefficient digits that follow the decimal point.
All arithmetic is performed digit by digit, so no value is ever converted
to a binary floating-point number.

Decimals are immutable and comparable: two decimals are == when they have
the same sign, coefficient and scale.
Numerically equal decimals with different scales, such as 1.0 and 1.00,
are not == but compare as equal with [Decimal.Cmp].
*/
package fixed

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxExponent limits the exponent accepted by [Parse].
const maxExponent = 4096

// MaxScale is the largest scale accepted by [New] and produced by
// [NewFromCoef] and [Decimal.Pad].
const MaxScale = maxExponent

var (
	errInvalidDecimal = errors.New("invalid decimal")
	errDivisionByZero = errors.New("division by zero")
	errNegativeScale  = errors.New("negative scale")
	errScaleRange     = errors.New("scale out of range")
)

// Decimal represents an exact decimal number equal to (-1)^neg * coef / 10^scale.
// Its zero value is 0.
type Decimal struct {
	neg   bool
	coef  string // digits without leading zeros, empty for 0
	scale int
}

// newFromMag returns a decimal with the given digit values and scale.
// Leading zeros are removed and a zero magnitude is never negative.
func newFromMag(neg bool, mag []byte, scale int) Decimal {
	mag = trimMag(mag)
	if len(mag) == 0 {
		return Decimal{scale: scale}
	}
	buf := make([]byte, len(mag))
	for i, v := range mag {
		buf[i] = v + '0'
	}
	return Decimal{neg: neg, coef: string(buf), scale: scale}
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if the scale is negative or greater than [MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	switch {
	case scale < 0:
		return Decimal{}, errNegativeScale
	case scale > MaxScale:
		return Decimal{}, fmt.Errorf("%w: %v", errScaleRange, scale)
	}
	neg := coef < 0
	u := uint64(coef)
	if neg {
		u = -u
	}
	return NewFromCoef(neg, u, scale), nil
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// NewFromCoef returns a decimal equal to -coef / 10^scale if neg is true and
// coef / 10^scale otherwise.
// A negative scale is treated as 0 and a scale above [MaxScale] as MaxScale.
func NewFromCoef(neg bool, coef uint64, scale int) Decimal {
	scale = min(max(scale, 0), MaxScale)
	if coef == 0 {
		return Decimal{scale: scale}
	}
	return Decimal{neg: neg, coef: strconv.FormatUint(coef, 10), scale: scale}
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//	1.83e5
//	0.22e-9
//
// Parse returns an error if the string does not represent a number.
func Parse(s string) (Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

func parse(s string) (Decimal, error) {
	pos := 0

	// Sign
	neg := false
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	// Coefficient
	var mag []byte
	scale := 0
	hasCoef, hasPoint := false, false
loop:
	for ; pos < len(s); pos++ {
		switch c := s[pos]; {
		case c >= '0' && c <= '9':
			mag = append(mag, c-'0')
			hasCoef = true
			if hasPoint {
				scale++
			}
		case c == '.' && !hasPoint:
			hasPoint = true
		default:
			break loop
		}
	}
	if !hasCoef {
		return Decimal{}, fmt.Errorf("%w: no digits", errInvalidDecimal)
	}

	// Exponent
	exp := 0
	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		eneg := false
		if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
			eneg = s[pos] == '-'
			pos++
		}
		hasExp := false
		for ; pos < len(s) && s[pos] >= '0' && s[pos] <= '9'; pos++ {
			exp = exp*10 + int(s[pos]-'0')
			if exp > maxExponent {
				return Decimal{}, fmt.Errorf("%w: exponent out of range", errInvalidDecimal)
			}
			hasExp = true
		}
		if !hasExp {
			return Decimal{}, fmt.Errorf("%w: no exponent digits", errInvalidDecimal)
		}
		if eneg {
			exp = -exp
		}
	}

	if pos != len(s) {
		return Decimal{}, fmt.Errorf("%w: unexpected character %q", errInvalidDecimal, s[pos])
	}

	scale -= exp
	if scale < 0 {
		mag = append(mag, make([]byte, -scale)...)
		scale = 0
	}
	return newFromMag(neg, mag, scale), nil
}

// mag returns the coefficient as digit values.
func (d Decimal) mag() []byte {
	m := make([]byte, len(d.coef))
	for i := 0; i < len(d.coef); i++ {
		m[i] = d.coef[i] - '0'
	}
	return m
}

// magAt returns the coefficient zero-padded to the given scale.
// The scale must not be less than the scale of d.
func (d Decimal) magAt(scale int) []byte {
	m := d.mag()
	return append(m, make([]byte, scale-d.scale)...)
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// Prec returns the number of digits in the coefficient.
// Prec returns 0 for zero.
func (d Decimal) Prec() int {
	return len(d.coef)
}

// Coef returns the digits of the coefficient.
// Coef returns "0" for zero.
func (d Decimal) Coef() string {
	if d.coef == "" {
		return "0"
	}
	return d.coef
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.coef == "":
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true if d = 0.
func (d Decimal) IsZero() bool {
	return d.coef == ""
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.coef != "" && !d.neg
}

// IsInt returns true if there are no significant digits after the decimal point.
func (d Decimal) IsInt() bool {
	return d.Trim(0).scale == 0
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	if d.coef != "" {
		d.neg = !d.neg
	}
	return d
}

// String implements the [fmt.Stringer] interface and returns the decimal
// in plain notation, without an exponent.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	coef := d.Coef()
	var b strings.Builder
	b.Grow(len(coef) + d.scale + 3)
	if d.neg {
		b.WriteByte('-')
	}
	if d.scale == 0 {
		b.WriteString(coef)
		return b.String()
	}
	if len(coef) <= d.scale {
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", d.scale-len(coef)))
		b.WriteString(coef)
		return b.String()
	}
	pos := len(coef) - d.scale
	b.WriteString(coef[:pos])
	b.WriteByte('.')
	b.WriteString(coef[pos:])
	return b.String()
}

// Float64 returns the nearest binary floating-point number.
// If the decimal is outside the range of float64, then false is returned.
func (d Decimal) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int64 returns the integer part of d, truncating the fractional digits.
// If the result cannot be represented as an int64, then false is returned.
func (d Decimal) Int64() (i int64, ok bool) {
	t := d.Trunc(0)
	i, err := strconv.ParseInt(t.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}
