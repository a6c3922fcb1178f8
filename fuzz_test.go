package money

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func FuzzParseAmount(f *testing.F) {
	f.Add("USD", "1.005")
	f.Add("usd", "-0.00")
	f.Add("JPY", "1e3")
	f.Add("CHF", "10.03")
	f.Add("XXX", "0")
	f.Add("ZZZ", "1")
	f.Add("USD", "1..0")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, curr, amount string) {
		for _, env := range []*Env{exactEnv, approxEnv} {
			a, err := env.ParseAmount(curr, amount)
			if err != nil {
				if !errors.Is(err, ErrInvalidAmount) && !errors.Is(err, ErrUnsupportedCurrency) {
					t.Errorf("ParseAmount(%q, %q) = %v, want %v or %v", curr, amount, err, ErrInvalidAmount, ErrUnsupportedCurrency)
				}
				continue
			}
			if a.Curr() != strings.ToUpper(curr) {
				t.Errorf("ParseAmount(%q, %q).Curr() = %q, want %q", curr, amount, a.Curr(), strings.ToUpper(curr))
			}
			if a.Scale() < env.currs.FractionDigits(a.Curr()) {
				t.Errorf("ParseAmount(%q, %q).Scale() = %v, want at least %v", curr, amount, a.Scale(), env.currs.FractionDigits(a.Curr()))
			}
			b, err := env.ParseAmount(a.Curr(), a.Value().String())
			if err != nil {
				t.Errorf("ParseAmount(%q, %q) failed: %v", a.Curr(), a.Value(), err)
				continue
			}
			if a != b {
				t.Errorf("ParseAmount(%q, %q) = %q, want %q", a.Curr(), a.Value(), b, a)
			}
		}
	})
}

func FuzzNewAmountFromFloat64(f *testing.F) {
	f.Add(0.1)
	f.Add(-1.005)
	f.Add(1e300)
	f.Add(5e-324)
	f.Add(math.Inf(1))
	f.Add(math.NaN())

	f.Fuzz(func(t *testing.T, x float64) {
		a, err := exactEnv.NewAmountFromFloat64("USD", x)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("NewAmountFromFloat64(%v) = %v, want %v", x, err, ErrInvalidAmount)
			}
			return
		}
		if err != nil {
			t.Errorf("NewAmountFromFloat64(%v) failed: %v", x, err)
			return
		}
		got, ok := a.Float64()
		if !ok || got != x {
			t.Errorf("NewAmountFromFloat64(%v).Float64() = %v, %v, want %v, true", x, got, ok, x)
		}
	})
}
