package money

import (
	"strings"

	"github.com/moneykit/money/fixed"
	"golang.org/x/text/language"
)

// shorthandUnits are the magnitude suffixes used by [Amount.Shorthand],
// one for every power of a thousand.
var shorthandUnits = [...]string{"", "k", "m", "bn", "tn"}

// Shorthand returns a compact representation of the amount consisting of
// the currency symbol, the sign, an integer rounded half away from zero
// and a magnitude suffix:
//
//	USD 3321.12       -> $3k
//	USD -45500000.00  -> $-46m
//	USD 999.60        -> $1k
//	USD 2000000000000 -> $2tn
//
// The magnitude is the largest power of a thousand, up to a trillion, that
// does not exceed the amount rounded to an integer.
// If rounding the scaled amount reaches 1000, the next suffix is used instead,
// so USD 999500.00 is $1m rather than $1000k.
// The symbol is chosen for the given locale, see [currency.Table.Symbol].
func (a Amount) Shorthand(locale language.Tag) string {
	env := a.Env()
	b := env.arith

	// Magnitude
	power := shorthandPower(b.Round(a.value.Abs(), 0))
	scaled := b.Round(a.value.Shift(-power), 0)
	if scaled.Abs().Prec() > 3 && power/3 < len(shorthandUnits)-1 {
		power += 3
		scaled = b.Round(a.value.Shift(-power), 0)
	}

	var buf strings.Builder
	buf.WriteString(env.currs.Symbol(a.Curr(), locale))
	if scaled.IsNeg() {
		buf.WriteByte('-')
	}
	buf.WriteString(scaled.Abs().String())
	buf.WriteString(shorthandUnits[power/3])
	return buf.String()
}

// shorthandPower returns the exponent of the largest power of a thousand
// not exceeding the integer d.
// The exponent is derived from the number of digits, so no logarithm
// is involved and decade boundaries are exact.
func shorthandPower(d fixed.Decimal) int {
	if d.IsZero() {
		return 0
	}
	power := d.Prec() - 1
	power -= power % 3
	return min(power, 3*(len(shorthandUnits)-1))
}

// Display returns the amount rounded with [Amount.RoundToCurr] and formatted
// with the currency symbol and digit grouping:
//
//	USD 1234.5  -> $1,234.50
//	USD -1234.5 -> -$1,234.50
//	CHF 10.03   -> CHF10.05
//
// The symbol is chosen for the given locale, so USD is displayed as US$
// outside of the United States.
// See also methods [Amount.DisplayWithSign] and [Amount.Accounting].
func (a Amount) Display(locale language.Tag) string {
	r := a.RoundToCurr()
	var buf strings.Builder
	if r.IsNeg() {
		buf.WriteByte('-')
	}
	buf.WriteString(a.Env().currs.Symbol(a.Curr(), locale))
	buf.WriteString(r.grouped())
	return buf.String()
}

// DisplayWithSign is like [Amount.Display] but positive amounts are
// prefixed with a plus sign:
//
//	USD 1234.5 -> +$1,234.50
//	USD 0      -> $0.00
func (a Amount) DisplayWithSign(locale language.Tag) string {
	s := a.Display(locale)
	if !a.RoundToCurr().IsPos() {
		return s
	}
	return "+" + s
}

// Accounting returns the amount rounded with [Amount.RoundToCurr] and
// formatted with digit grouping but without the currency symbol.
// Negative amounts are enclosed in parentheses:
//
//	USD 1234.5  -> 1,234.50
//	USD -1234.5 -> (1,234.50)
func (a Amount) Accounting() string {
	r := a.RoundToCurr()
	s := r.grouped()
	if r.IsNeg() {
		return "(" + s + ")"
	}
	return s
}

// grouped returns the absolute value of the amount with the integer digits
// grouped in thousands, using the separators of the currency.
func (a Amount) grouped() string {
	dec, thou := a.Env().separators(a.Curr())
	s := a.value.Abs().String()
	intpart, frac, _ := strings.Cut(s, ".")

	var buf strings.Builder
	for i := 0; i < len(intpart); i++ {
		if i > 0 && (len(intpart)-i)%3 == 0 {
			buf.WriteString(thou)
		}
		buf.WriteByte(intpart[i])
	}
	if frac != "" {
		buf.WriteString(dec)
		buf.WriteString(frac)
	}
	return buf.String()
}
