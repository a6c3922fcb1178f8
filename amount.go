package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"github.com/moneykit/money/fixed"
)

var (
	// ErrInvalidAmount is returned when an amount is not a well-formed number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnsupportedCurrency is returned when a currency code is not known
	// to the currency provider.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrCurrencyMismatch is returned when an operation combines amounts
	// denominated in different currencies or created in different environments.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverAllocation is returned when split percentages sum to more than 100.
	ErrOverAllocation = errors.New("over allocation")
	// ErrAmountOverflow is returned by the [Approx] backend when a result
	// is outside the range of float64.
	ErrAmountOverflow = errors.New("amount overflow")
)

// unknownCurr is the currency of the zero Amount.
const unknownCurr = "XXX"

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0" in the [Default] environment,
// where [XXX] indicates an unknown currency.
// Amount is immutable and designed to be safe for concurrent use by multiple
// goroutines. Amounts created by the package-level constructors are comparable
// with ==, which is true only if both the currency and the representation,
// including the scale, are equal.
//
// [XXX]: https://en.wikipedia.org/wiki/ISO_4217#X_currencies
type Amount struct {
	env   *Env          // nil for Default()
	curr  string        // currency code, empty for XXX
	value fixed.Decimal // monetary value
}

// NewAmount returns an amount equal to coef / 10^scale in the [Default] environment.
// See [Env.NewAmount].
func NewAmount(curr string, coef int64, scale int) (Amount, error) {
	return Default().NewAmount(curr, coef, scale)
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr string, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// ParseAmount converts currency and decimal strings to an amount in the
// [Default] environment.
// See [Env.ParseAmount].
func ParseAmount(curr, amount string) (Amount, error) {
	return Default().ParseAmount(curr, amount)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// NewAmountFromMinorUnits converts minor units of currency to an amount in
// the [Default] environment.
// See [Env.NewAmountFromMinorUnits].
func NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	return Default().NewAmountFromMinorUnits(curr, units)
}

// NewAmountFromFloat64 converts a float to an amount in the [Default] environment.
// See [Env.NewAmountFromFloat64].
func NewAmountFromFloat64(curr string, amount float64) (Amount, error) {
	return Default().NewAmountFromFloat64(curr, amount)
}

// NewAmountFromDecimal returns an amount with the specified currency and value
// in the [Default] environment.
// See [Env.NewAmountFromDecimal].
func NewAmountFromDecimal(curr string, amount decimal.Decimal) (Amount, error) {
	return Default().NewAmountFromDecimal(curr, amount)
}

// Env returns the environment the amount was created in.
func (a Amount) Env() *Env {
	if a.env == nil {
		return Default()
	}
	return a.env
}

func (a Amount) backend() Backend {
	return a.Env().arith
}

// fractionDigits returns the scale of the currency of the amount.
func (a Amount) fractionDigits() int {
	return a.Env().currs.FractionDigits(a.Curr())
}

// derive returns an amount with the same environment and currency as a.
func (a Amount) derive(d fixed.Decimal) Amount {
	return a.Env().newAmountSafe(a.Curr(), d)
}

// MinorUnits returns a (possibly rounded) amount in minor units of currency
// (e.g. cents, pennies, fens).
// If the scale of the amount is greater than the scale of the currency, then
// the fractional part is rounded half away from zero.
// See also constructor [NewAmountFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) MinorUnits() (units int64, ok bool) {
	fd := a.fractionDigits()
	d := a.backend().Round(a.value, fd)
	return d.Shift(fd).Int64()
}

// Float64 returns the nearest binary floating-point number.
// See also constructor [NewAmountFromFloat64].
//
// This conversion may lose data, as float64 has a smaller precision
// than the decimal digits of the amount.
func (a Amount) Float64() (f float64, ok bool) {
	return a.value.Float64()
}

// Curr returns the currency code of the amount.
func (a Amount) Curr() string {
	if a.curr == "" {
		return unknownCurr
	}
	return a.curr
}

// Value returns the exact decimal value of the amount.
func (a Amount) Value() fixed.Decimal {
	return a.value
}

// Decimal returns the value of the amount as a [decimal.Decimal].
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the amount has more significant digits than
// [decimal.MaxPrec].
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(a.value.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	return d, nil
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return a.value.Scale()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return a.derive(a.backend().Abs(a.value))
}

// Neg returns an amount with the opposite sign.
// It is the additive inverse: a + a.Neg() = 0.
func (a Amount) Neg() Amount {
	return a.derive(a.backend().Neg(a.value))
}

// Zero returns an amount with a value of 0, having the same currency and scale
// as amount a.
// See also method [Amount.ULP].
func (a Amount) Zero() Amount {
	return a.derive(fixed.NewFromCoef(false, 0, a.Scale()))
}

// ULP (Unit in the Last Place) returns the smallest representable positive difference
// between two amounts with the same scale as amount a.
// See also method [Amount.Zero].
func (a Amount) ULP() Amount {
	return a.derive(fixed.NewFromCoef(false, 1, a.Scale()))
}

// SameCurr returns true if amounts are denominated in the same currency
// and belong to the same environment.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr() && a.Env() == b.Env()
}

// Add returns the sum of amounts a and b.
// The scale of the result is the larger of the two scales.
//
// Add returns an error if amounts are denominated in different currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	d, err := a.backend().Add(a.value, b.value)
	if err != nil {
		return Amount{}, err
	}
	return a.derive(d), nil
}

// Sub returns the difference between amounts a and b.
// The scale of the result is the larger of the two scales.
//
// Sub returns an error if amounts are denominated in different currencies.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

// SubAbs returns the absolute difference between amounts a and b.
//
// SubAbs returns an error if amounts are denominated in different currencies.
func (a Amount) SubAbs(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [abs(%v - %v)]: %w", a, b, err)
	}
	return c.Abs(), nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	d, err := a.backend().Sub(a.value, b.value)
	if err != nil {
		return Amount{}, err
	}
	return a.derive(d), nil
}

// Mul returns the product of amount a and factor e.
// No rounding is performed: with the [Exact] backend the scale of the result
// is the sum of the scales of a and e.
// See also method [Amount.RoundToCurr].
//
// Mul returns an error only if the [Approx] backend overflows.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	c, err := a.mul(toFixed(e))
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e fixed.Decimal) (Amount, error) {
	d, err := a.backend().Mul(a.value, e)
	if err != nil {
		return Amount{}, err
	}
	return a.derive(d), nil
}

// Quo returns the quotient of amount a and divisor e.
// With the [Exact] backend the quotient is truncated to the scale of the
// currency, no rounding is performed.
// See also methods [Amount.QuoRem], [Amount.Split] and [Amount.SplitEven].
//
// Quo returns an error if the divisor is 0.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	c, err := a.quo(toFixed(e))
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) quo(e fixed.Decimal) (Amount, error) {
	if e.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	d, err := a.backend().Quo(a.value, e, a.fractionDigits())
	if err != nil {
		return Amount{}, err
	}
	return a.derive(d), nil
}

// QuoRem returns the quotient q and remainder r of amount a and divisor e
// such that a = e * q + r, where q has scale equal to the scale of its currency
// and the sign of the remainder r is the same as the sign of the dividend a.
// See also methods [Amount.Quo] and [Amount.SplitEven].
//
// QuoRem returns an error if the divisor is 0.
func (a Amount) QuoRem(e decimal.Decimal) (q, r Amount, err error) {
	q, r, err = a.quoRem(toFixed(e))
	if err != nil {
		return Amount{}, Amount{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", a, e, a, e, err)
	}
	return q, r, nil
}

func (a Amount) quoRem(e fixed.Decimal) (q, r Amount, err error) {
	// Quotient
	q, err = a.quo(e)
	if err != nil {
		return Amount{}, Amount{}, err
	}

	// T-Division
	q = q.TruncToCurr()

	// Remainder
	r, err = q.mul(e)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	r, err = a.sub(r)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	return q, r, nil
}

// hundred is the divisor of percentages.
var hundred = fixed.MustNew(100, 0)

// Percentage returns p percent of amount a, that is a * p / 100.
// No rounding is performed, trailing zeros are removed up to the scale
// of the currency.
// See also method [Amount.Split].
//
// Percentage returns an error only if the [Approx] backend overflows.
func (a Amount) Percentage(p decimal.Decimal) (Amount, error) {
	c, err := a.percentage(toFixed(p))
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v%% of %v]: %w", p, a, err)
	}
	return c, nil
}

func (a Amount) percentage(p fixed.Decimal) (Amount, error) {
	b := a.backend()
	d, err := b.Mul(a.value, p)
	if err != nil {
		return Amount{}, err
	}
	// Dividing by 100 never needs more than two extra digits.
	d, err = b.Quo(d, hundred, d.Scale()+2)
	if err != nil {
		return Amount{}, err
	}
	return a.derive(d.Trim(a.fractionDigits())), nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, for example "USD 1.00".
// See also methods [Amount.Format] and [Amount.Display].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr() + " " + a.value.String()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// See also method [Amount.CmpAbs].
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// CmpAbs compares absolute values of amounts and returns:
//
//	-1 if |a| < |b|
//	 0 if |a| = |b|
//	+1 if |a| > |b|
//
// See also method [Amount.Cmp].
//
// CmpAbs returns an error if amounts are denominated in different currencies.
func (a Amount) CmpAbs(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [abs(%v)] and [abs(%v)]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.CmpAbs(b.value), nil
}

// Min returns the smaller amount.
// If the amounts are numerically equal, a is returned.
//
// Min returns an error if amounts are denominated in different currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
// If the amounts are numerically equal, a is returned.
//
// Max returns an error if amounts are denominated in different currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.678   | Currency and amount        |
//	| %q     | "USD 5.678" | Quoted currency and amount |
//	| %f     | 5.678       | Amount                     |
//	| %d     | 568         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the actual scale of the amount.
// Digits beyond the precision are rounded half away from zero.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//gocyclo:ignore
func (a Amount) Format(state fmt.State, verb rune) {
	curr, d := a.Curr(), a.value

	// Rescaling
	if verb == 'f' || verb == 'F' || verb == 'd' || verb == 'D' {
		fd := a.fractionDigits()
		scale := 0
		switch p, ok := state.Precision(); {
		case verb == 'd' || verb == 'D':
			scale = fd
		case ok:
			scale = p
		case verb == 'f' || verb == 'F':
			scale = d.Scale()
		}
		scale = max(scale, fd)
		d = d.RoundHalfUp(scale)
	}

	// Digits
	digits := ""
	switch verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		digits = d.Abs().Shift(d.Scale()).String()
	default:
		digits = d.Abs().String()
	}

	// Arithmetic sign
	rsign := ""
	if verb != 'c' && verb != 'C' {
		switch {
		case d.IsNeg():
			rsign = "-"
		case state.Flag('+'):
			rsign = "+"
		case state.Flag(' '):
			rsign = " "
		}
	}

	// Currency code and delimiter
	code, currdel := "", ""
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		code = curr
	default:
		code = curr
		currdel = " "
	}

	// Opening and closing quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Calculating padding
	width := 2*len(quote) + len(code) + len(currdel) + len(rsign) + len(digits)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(code)
	buf.WriteString(currdel)
	buf.WriteString(rsign)
	buf.WriteString(strings.Repeat("0", lzeros))
	buf.WriteString(digits)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(buf.String()))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Amount="))
		state.Write([]byte(buf.String()))
		state.Write([]byte(")"))
	}
}
