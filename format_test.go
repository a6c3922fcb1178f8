//go:build !moneyfloat

package money

import (
	"testing"

	"github.com/moneykit/money/currency"
	"golang.org/x/text/language"
)

// displayTable has symbols and separators that do not depend on the
// bundled ISO data.
var displayTable = currency.MustNewTable([]currency.Metadata{
	{Code: "XXX"},
	{Code: "CHF", Scale: 2, Increment: 5, Symbol: "CHF", Thousand: "'"},
	{Code: "EUR", Scale: 2, Symbol: "€", Decimal: ",", Thousand: "."},
	{Code: "JPY", Scale: 0, Symbol: "¥"},
	{Code: "USD", Scale: 2, Symbol: "$"},
	{Code: "CAD", Scale: 2, Symbol: "$"},
})

func TestAmount_Shorthand(t *testing.T) {
	tests := []struct {
		m, d, want string
	}{
		{"USD", "3321.12", "$3k"},
		{"USD", "0", "$0"},
		{"USD", "0.4", "$0"},
		{"USD", "-0.4", "$0"},
		{"USD", "0.5", "$1"},
		{"USD", "999.49", "$999"},
		{"USD", "999.5", "$1k"},
		{"USD", "1000", "$1k"},
		{"USD", "1000.00", "$1k"},
		{"USD", "1499.99", "$1k"},
		{"USD", "1500", "$2k"},
		{"USD", "-1500", "$-2k"},
		{"USD", "45500000", "$46m"},
		{"USD", "-45500000", "$-46m"},
		{"USD", "999499", "$999k"},
		{"USD", "999500", "$1m"},
		{"USD", "2500000000", "$3bn"},
		{"USD", "2000000000000", "$2tn"},
		{"USD", "5000000000000000", "$5000tn"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := a.Shorthand(language.AmericanEnglish)
		if got != tt.want {
			t.Errorf("%q.Shorthand(en-US) = %q, want %q", a, got, tt.want)
		}
	}
}

func TestAmount_Shorthand_Locale(t *testing.T) {
	env := MustNewEnv(Exact, displayTable)
	tests := []struct {
		m, d   string
		locale language.Tag
		want   string
	}{
		{"USD", "3321.12", language.AmericanEnglish, "$3k"},
		{"USD", "3321.12", language.MustParse("en-CA"), "US$3k"},
		{"CAD", "3321.12", language.MustParse("en-CA"), "$3k"},
		{"CAD", "3321.12", language.AmericanEnglish, "CA$3k"},
		{"EUR", "-7250000", language.German, "€-7m"},
		{"JPY", "123456789", language.Japanese, "¥123m"},
	}
	for _, tt := range tests {
		a := mustParseIn(env, tt.m, tt.d)
		got := a.Shorthand(tt.locale)
		if got != tt.want {
			t.Errorf("%q.Shorthand(%v) = %q, want %q", a, tt.locale, got, tt.want)
		}
	}
}

func TestAmount_Display(t *testing.T) {
	t.Run("iso", func(t *testing.T) {
		tests := []struct {
			m, d, want string
		}{
			{"USD", "1234.5", "$1,234.50"},
			{"USD", "-1234.5", "-$1,234.50"},
			{"USD", "0", "$0.00"},
			{"USD", "1", "$1.00"},
			{"USD", "999.995", "$1,000.00"},
			{"USD", "1234567.891", "$1,234,567.89"},
			{"USD", "-0.004", "$0.00"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.d)
			got := a.Display(language.AmericanEnglish)
			if got != tt.want {
				t.Errorf("%q.Display(en-US) = %q, want %q", a, got, tt.want)
			}
		}
	})

	t.Run("table", func(t *testing.T) {
		env := MustNewEnv(Exact, displayTable)
		tests := []struct {
			m, d   string
			locale language.Tag
			want   string
		}{
			{"USD", "1", language.AmericanEnglish, "$1.00"},
			{"USD", "1", language.MustParse("en-CA"), "US$1.00"},
			{"USD", "-1", language.MustParse("en-CA"), "-US$1.00"},
			{"CAD", "1", language.AmericanEnglish, "CA$1.00"},
			{"CHF", "1234.03", language.AmericanEnglish, "CHF1'234.05"},
			{"CHF", "-10.02", language.AmericanEnglish, "-CHF10.00"},
			{"EUR", "1234.5", language.German, "€1.234,50"},
			{"JPY", "1234567", language.Japanese, "¥1,234,567"},
			{"JPY", "0.5", language.Japanese, "¥1"},
		}
		for _, tt := range tests {
			a := mustParseIn(env, tt.m, tt.d)
			got := a.Display(tt.locale)
			if got != tt.want {
				t.Errorf("%q.Display(%v) = %q, want %q", a, tt.locale, got, tt.want)
			}
		}
	})
}

func TestAmount_DisplayWithSign(t *testing.T) {
	tests := []struct {
		m, d, want string
	}{
		{"USD", "1234.5", "+$1,234.50"},
		{"USD", "-1", "-$1.00"},
		{"USD", "0", "$0.00"},
		{"USD", "0.001", "$0.00"},
		{"USD", "0.004", "$0.00"},
		{"USD", "-0.004", "$0.00"},
		{"USD", "0.005", "+$0.01"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := a.DisplayWithSign(language.AmericanEnglish)
		if got != tt.want {
			t.Errorf("%q.DisplayWithSign(en-US) = %q, want %q", a, got, tt.want)
		}
	}
}

func TestAmount_Accounting(t *testing.T) {
	t.Run("iso", func(t *testing.T) {
		tests := []struct {
			m, d, want string
		}{
			{"USD", "1234.5", "1,234.50"},
			{"USD", "-1234.5", "(1,234.50)"},
			{"USD", "0", "0.00"},
			{"USD", "-0.001", "0.00"},
			{"USD", "-1000000", "(1,000,000.00)"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.d)
			got := a.Accounting()
			if got != tt.want {
				t.Errorf("%q.Accounting() = %q, want %q", a, got, tt.want)
			}
		}
	})

	t.Run("table", func(t *testing.T) {
		env := MustNewEnv(Exact, displayTable)
		tests := []struct {
			m, d, want string
		}{
			{"CHF", "-10.03", "(10.05)"},
			{"EUR", "-1234.5", "(1.234,50)"},
			{"JPY", "999", "999"},
		}
		for _, tt := range tests {
			a := mustParseIn(env, tt.m, tt.d)
			got := a.Accounting()
			if got != tt.want {
				t.Errorf("%q.Accounting() = %q, want %q", a, got, tt.want)
			}
		}
	})
}
