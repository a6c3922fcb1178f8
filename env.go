package money

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/govalues/decimal"
	"github.com/moneykit/money/currency"
	"github.com/moneykit/money/fixed"
	"golang.org/x/text/language"
)

// Provider supplies read-only currency metadata to an [Env].
// Implementations must be safe for concurrent use by multiple goroutines.
// [currency.Table] is the standard implementation.
type Provider interface {
	// FractionDigits returns the number of digits after the decimal point
	// conventionally used by the currency.
	FractionDigits(code string) int
	// RoundingIncrement returns the smallest cash unit of the currency in
	// minor units, or 0 if the currency is rounded to its fraction digits only.
	RoundingIncrement(code string) int
	// Symbol returns the display symbol of the currency in the given locale.
	Symbol(code string, locale language.Tag) string
	// IsSupported reports whether the currency code is known.
	IsSupported(code string) bool
}

// separatorProvider is implemented by providers that know the digit
// separators of a currency, such as [currency.Table].
type separatorProvider interface {
	Separators(code string) (dec, thou string)
}

// Env binds an arithmetic [Backend] to a currency metadata [Provider].
// Amounts remember the environment they were created in and all results
// derived from them share it.
// Env is immutable and safe for concurrent use by multiple goroutines.
type Env struct {
	arith Backend
	currs Provider
}

var errInvalidEnv = errors.New("invalid environment")

// NewEnv returns an environment with the given backend and currency provider.
//
// NewEnv returns an error if either argument is nil or the provider does not
// support the unknown currency [XXX], which is the currency of zero amounts.
//
// [XXX]: https://en.wikipedia.org/wiki/ISO_4217#X_currencies
func NewEnv(b Backend, p Provider) (*Env, error) {
	switch {
	case b == nil:
		return nil, fmt.Errorf("creating environment: %w: nil backend", errInvalidEnv)
	case p == nil:
		return nil, fmt.Errorf("creating environment: %w: nil provider", errInvalidEnv)
	case !p.IsSupported(unknownCurr):
		return nil, fmt.Errorf("creating environment: %w: %q is not supported", errInvalidEnv, unknownCurr)
	}
	return &Env{arith: b, currs: p}, nil
}

// MustNewEnv is like [NewEnv] but panics if the environment cannot be created.
func MustNewEnv(b Backend, p Provider) *Env {
	e, err := NewEnv(b, p)
	if err != nil {
		panic(fmt.Sprintf("NewEnv(%v, %T) failed: %v", b, p, err))
	}
	return e
}

var (
	defaultOnce sync.Once
	defaultEnv  *Env
)

// Default returns the process-wide environment used by the package-level
// constructors.
// It combines the ISO 4217 table from [currency.ISO] with the [Exact] backend,
// or with the [Approx] backend when the module is built with the moneyfloat tag.
func Default() *Env {
	defaultOnce.Do(func() {
		defaultEnv = MustNewEnv(defaultBackend, currency.ISO())
	})
	return defaultEnv
}

// Backend returns the arithmetic backend of the environment.
func (e *Env) Backend() Backend {
	return e.arith
}

// Currencies returns the currency metadata provider of the environment.
func (e *Env) Currencies() Provider {
	return e.currs
}

// separators returns the decimal and thousand separators of the currency.
func (e *Env) separators(code string) (dec, thou string) {
	if sp, ok := e.currs.(separatorProvider); ok {
		return sp.Separators(code)
	}
	return ".", ","
}

// parseCurr normalizes the currency code and checks that it is supported.
func (e *Env) parseCurr(curr string) (string, error) {
	code := strings.ToUpper(curr)
	if !e.currs.IsSupported(code) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, curr)
	}
	return code, nil
}

// newAmountSafe creates a new amount zero-padded to the scale of its currency.
func (e *Env) newAmountSafe(code string, d fixed.Decimal) Amount {
	d = d.Pad(e.currs.FractionDigits(code))
	return e.newAmountUnsafe(code, d)
}

// newAmountUnsafe creates a new amount without padding.
// The default environment and the unknown currency are stored as zero values
// so that the zero Amount equals "XXX 0".
func (e *Env) newAmountUnsafe(code string, d fixed.Decimal) Amount {
	a := Amount{env: e, curr: code, value: d}
	if e == Default() {
		a.env = nil
	}
	if code == unknownCurr {
		a.curr = ""
	}
	return a
}

// NewAmount returns an amount equal to coef / 10^scale.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
//
// NewAmount returns an error if:
//   - the currency code is not supported by the environment;
//   - the scale is negative.
func (e *Env) NewAmount(curr string, coef int64, scale int) (Amount, error) {
	// Currency
	c, err := e.parseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := fixed.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w: %w", ErrInvalidAmount, err)
	}
	return e.newAmountSafe(c, d), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// The decimal string may use exponential notation, such as "1.5e3".
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
//
// ParseAmount returns an error if:
//   - the currency code is not supported by the environment;
//   - the amount is not a well-formed decimal number.
func (e *Env) ParseAmount(curr, amount string) (Amount, error) {
	// Currency
	c, err := e.parseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := fixed.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w: %w", ErrInvalidAmount, err)
	}
	return e.newAmountSafe(c, d), nil
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if the currency code is not
// supported by the environment.
func (e *Env) NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	// Currency
	c, err := e.parseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d := fixed.MustNew(units, e.currs.FractionDigits(c))
	return e.newAmountSafe(c, d), nil
}

// NewAmountFromFloat64 converts a float to an amount.
// The shortest decimal that converts back to the same float is used,
// so 0.1 becomes exactly 0.1.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the currency code is not supported by the environment;
//   - the float is a special value (NaN or Inf).
func (e *Env) NewAmountFromFloat64(curr string, amount float64) (Amount, error) {
	// Currency
	c, err := e.parseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := fromFloat64(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w: %w", ErrInvalidAmount, err)
	}
	return e.newAmountSafe(c, d), nil
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right. See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the currency code is not supported
// by the environment.
func (e *Env) NewAmountFromDecimal(curr string, amount decimal.Decimal) (Amount, error) {
	c, err := e.parseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return e.newAmountSafe(c, toFixed(amount)), nil
}

// toFixed converts a scalar operand to the digit representation.
func toFixed(d decimal.Decimal) fixed.Decimal {
	return fixed.MustParse(d.String())
}
