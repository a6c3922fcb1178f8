package money

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/moneykit/money/currency"
	"github.com/moneykit/money/fixed"
	"golang.org/x/text/language"
)

var (
	exactEnv  = MustNewEnv(Exact, currency.ISO())
	approxEnv = MustNewEnv(Approx, currency.ISO())
)

func mustParseIn(env *Env, curr, amount string) Amount {
	a, err := env.ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

func TestBackend_String(t *testing.T) {
	tests := []struct {
		b    Backend
		want string
	}{
		{Exact, "exact"},
		{Approx, "approx"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("%T.String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestBackend_Arith(t *testing.T) {
	tests := []struct {
		op                    string
		d, e                  string
		wantExact, wantApprox string
	}{
		// Both backends agree
		{"add", "1.5", "2.25", "3.75", "3.75"},
		{"sub", "1.5", "2.25", "-0.75", "-0.75"},
		{"mul", "1.5", "4", "6.0", "6"},
		{"quo", "1", "4", "0.25", "0.25"},

		// Float representation error
		{"add", "0.1", "0.2", "0.3", "0.30000000000000004"},
		{"mul", "1.1", "1.1", "1.21", "1.2100000000000002"},
		{"quo", "1", "3", "0.33", "0.3333333333333333"},
		{"quo", "2", "3", "0.66", "0.6666666666666666"},
	}
	for _, tt := range tests {
		d, e := fixed.MustParse(tt.d), fixed.MustParse(tt.e)
		for _, b := range []Backend{Exact, Approx} {
			var (
				got fixed.Decimal
				err error
			)
			switch tt.op {
			case "add":
				got, err = b.Add(d, e)
			case "sub":
				got, err = b.Sub(d, e)
			case "mul":
				got, err = b.Mul(d, e)
			case "quo":
				got, err = b.Quo(d, e, 2)
			}
			if err != nil {
				t.Errorf("%v: %v(%v, %v) failed: %v", b, tt.op, d, e, err)
				continue
			}
			want := tt.wantExact
			if b == Approx {
				want = tt.wantApprox
			}
			if got.String() != want {
				t.Errorf("%v: %v(%v, %v) = %v, want %v", b, tt.op, d, e, got, want)
			}
		}
	}
}

func TestBackend_Round(t *testing.T) {
	tests := []struct {
		d                     string
		scale                 int
		wantExact, wantApprox string
	}{
		{"2.5", 0, "3", "3"},
		{"-2.5", 0, "-3", "-3"},
		{"9.996", 2, "10.00", "10.00"},
		{"1.2345", 2, "1.23", "1.23"},
		{"0.004", 2, "0.00", "0.00"},
		{"-0.004", 2, "0.00", "0.00"},
		{"1.5", 3, "1.500", "1.500"},

		// Halves with no exact float64 representation
		{"1.005", 2, "1.01", "1.00"},
		{"9.995", 2, "10.00", "9.99"},

		// Beyond the float64 range
		{"1e400", 0, "1" + strings.Repeat("0", 400), "1" + strings.Repeat("0", 400)},
	}
	for _, tt := range tests {
		d := fixed.MustParse(tt.d)
		if got := Exact.Round(d, tt.scale); got.String() != tt.wantExact {
			t.Errorf("exact: Round(%v, %v) = %v, want %v", d, tt.scale, got, tt.wantExact)
		}
		if got := Approx.Round(d, tt.scale); got.String() != tt.wantApprox {
			t.Errorf("approx: Round(%v, %v) = %v, want %v", d, tt.scale, got, tt.wantApprox)
		}
	}
}

func TestBackend_Errors(t *testing.T) {
	t.Run("division by zero", func(t *testing.T) {
		for _, b := range []Backend{Exact, Approx} {
			_, err := b.Quo(fixed.MustParse("1"), fixed.MustParse("0.00"), 2)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%v: Quo(1, 0) = %v, want %v", b, err, ErrDivisionByZero)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := map[string]struct {
			op   string
			d, e string
		}{
			"mul 1": {"mul", "1e300", "1e300"},
			"add 1": {"add", "1e400", "1"},
			"quo 1": {"quo", "1e300", "1e-300"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d, e := fixed.MustParse(tt.d), fixed.MustParse(tt.e)
				var err error
				switch tt.op {
				case "add":
					_, err = Approx.Add(d, e)
				case "mul":
					_, err = Approx.Mul(d, e)
				case "quo":
					_, err = Approx.Quo(d, e, 2)
				}
				if !errors.Is(err, ErrAmountOverflow) {
					t.Errorf("approx: %v(%v, %v) = %v, want %v", tt.op, d, e, err, ErrAmountOverflow)
				}
			})
		}
	})
}

func TestBackend_Amount(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		a := mustParseIn(exactEnv, "USD", "0.1")
		b := mustParseIn(exactEnv, "USD", "0.2")
		got, err := a.Add(b)
		if err != nil {
			t.Fatalf("%q.Add(%q) failed: %v", a, b, err)
		}
		want := mustParseIn(exactEnv, "USD", "0.3")
		if got != want {
			t.Errorf("%q.Add(%q) = %q, want %q", a, b, got, want)
		}
	})

	t.Run("approx", func(t *testing.T) {
		a := mustParseIn(approxEnv, "USD", "0.1")
		b := mustParseIn(approxEnv, "USD", "0.2")
		got, err := a.Add(b)
		if err != nil {
			t.Fatalf("%q.Add(%q) failed: %v", a, b, err)
		}
		if got.String() != "USD 0.30000000000000004" {
			t.Errorf("%q.Add(%q) = %q, want %q", a, b, got, "USD 0.30000000000000004")
		}
		want := mustParseIn(approxEnv, "USD", "0.3")
		if got.RoundToCurr() != want {
			t.Errorf("%q.RoundToCurr() = %q, want %q", got, got.RoundToCurr(), want)
		}
	})

	t.Run("swiss", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"10.02", "10.00"},
			{"10.03", "10.05"},
			{"-10.03", "-10.05"},
			{"9.975", "10.00"},
		}
		for _, env := range []*Env{exactEnv, approxEnv} {
			for _, tt := range tests {
				a := mustParseIn(env, "CHF", tt.d)
				got := a.RoundToCurr()
				want := mustParseIn(env, "CHF", tt.want)
				if got != want {
					t.Errorf("%v: %q.RoundToCurr() = %q, want %q", env.Backend(), a, got, want)
				}
			}
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		for _, env := range []*Env{exactEnv, approxEnv} {
			a := mustParseIn(env, "USD", "1")
			_, err := a.quo(fixed.Decimal{})
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%v: %q.Quo(0) = %v, want %v", env.Backend(), a, err, ErrDivisionByZero)
			}
		}
	})
}

func TestBackend_Shorthand(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"3321.12", "$3k"},
		{"999.49", "$999"},
		{"999.5", "$1k"},
		{"1000.00", "$1k"},
		{"-1500", "$-2k"},
		{"999500", "$1m"},
		{"45500000", "$46m"},
	}
	for _, env := range []*Env{exactEnv, approxEnv} {
		for _, tt := range tests {
			a := mustParseIn(env, "USD", tt.d)
			got := a.Shorthand(language.AmericanEnglish)
			if got != tt.want {
				t.Errorf("%v: %q.Shorthand(en-US) = %q, want %q", env.Backend(), a, got, tt.want)
			}
		}
	}
}
