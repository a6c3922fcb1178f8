/*
Package money implements monetary amounts in various currencies with
a choice of arithmetic backend.

# Features

  - Immutable monetary values, safe for concurrent use by multiple goroutines
  - Exact decimal arithmetic that never loses a digit
  - An optional binary floating-point backend for compatibility with float-based systems
  - Rounding half away from zero and cash rounding to a currency increment, such as the Swiss 5 rappen
  - Allocation of an amount by percentages with the remainder going to the last share
  - Symbol, accounting and shorthand formatting

# Representation

An [Amount] consists of a currency code, a decimal value and the [Env]
it was created in.
An environment binds a [Backend] to a [Provider] of currency metadata
and never changes afterwards.
Amounts created by the package-level constructors, such as [ParseAmount],
belong to the [Default] environment, which uses the ISO 4217 table from
package [currency].

# Backends

The [Exact] backend stores every digit of a value and performs addition,
subtraction and multiplication without rounding.
Quotients are truncated to the scale of the currency.
Rounding carries into higher digits, so USD 9.995 rounded to cents is USD 10.00.

The [Approx] backend converts operands to float64, so 0.1 + 0.2 is
0.30000000000000004 and USD 1.005 rounds to USD 1.00.
Results outside the range of float64 are reported with [ErrAmountOverflow].

The backend of the [Default] environment is [Exact], or [Approx] when the
module is built with the moneyfloat build tag.
Other combinations are available through [NewEnv].

# Rounding

[Amount.Round] and [Amount.RoundToCurr] round half away from zero.
[Amount.RoundToCurr] also honors the rounding increment of the currency:

	CHF 10.02 -> CHF 10.00
	CHF 10.03 -> CHF 10.05

# Errors

Constructors return [ErrInvalidAmount] for malformed values and
[ErrUnsupportedCurrency] for unknown currency codes.
Operations on two amounts return [ErrCurrencyMismatch] unless both have
the same currency and environment.
Division returns [ErrDivisionByZero] and [Amount.Split] returns
[ErrOverAllocation] when the percentages add up to more than 100.
All errors are wrapped with the operands involved and can be tested
with [errors.Is].
*/
package money
