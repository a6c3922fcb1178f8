/*
Package currency provides read-only reference data about currencies:
the number of fraction digits, the rounding increment and the display symbol.

A [Table] is built once and never modified afterwards, which makes it safe
for concurrent lookups by multiple goroutines.
[ISO] returns the process-wide table of [ISO 4217] currencies.

[ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
*/
package currency

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:generate go run ../scripts/currency/codegen.go

var errInvalidMetadata = errors.New("invalid currency metadata")

// Metadata describes a single currency.
type Metadata struct {
	Code string // 3-letter alphabetic code
	Num  string // 3-digit numeric code
	Name string

	// Scale is the number of fraction digits conventionally used by the
	// currency, for example 2 for US Dollars and 0 for Japanese Yen.
	Scale int

	// Increment is the rounding increment in minor units.
	// 0 means amounts are only rounded to Scale digits, 5 with a Scale of 2
	// means amounts are rounded to the nearest 0.05.
	Increment int

	Symbol   string // empty means the code is used
	Decimal  string // decimal separator, "." if empty
	Thousand string // grouping separator, "," if empty
}

// Table is a read-only set of currencies indexed by code.
// The zero value is an empty table.
type Table struct {
	byCode map[string]Metadata
	codes  []string
	shared map[string]int // number of currencies using a symbol
}

// NewTable returns a table holding the given currencies.
//
// NewTable returns an error if:
//   - a code is not made of 3 upper-case letters;
//   - a code appears more than once;
//   - a scale or rounding increment is negative.
func NewTable(recs []Metadata) (*Table, error) {
	t := &Table{
		byCode: make(map[string]Metadata, len(recs)),
		codes:  make([]string, 0, len(recs)),
		shared: make(map[string]int),
	}
	for _, m := range recs {
		switch {
		case !validCode(m.Code):
			return nil, fmt.Errorf("%w: code %q", errInvalidMetadata, m.Code)
		case m.Scale < 0:
			return nil, fmt.Errorf("%w: %v has negative scale %v", errInvalidMetadata, m.Code, m.Scale)
		case m.Increment < 0:
			return nil, fmt.Errorf("%w: %v has negative rounding increment %v", errInvalidMetadata, m.Code, m.Increment)
		}
		if _, ok := t.byCode[m.Code]; ok {
			return nil, fmt.Errorf("%w: duplicate code %v", errInvalidMetadata, m.Code)
		}
		if m.Symbol == "" {
			m.Symbol = m.Code
		}
		if m.Decimal == "" {
			m.Decimal = "."
		}
		if m.Thousand == "" {
			m.Thousand = ","
		}
		t.byCode[m.Code] = m
		t.codes = append(t.codes, m.Code)
		t.shared[m.Symbol]++
	}
	sort.Strings(t.codes)
	return t, nil
}

// MustNewTable is like [NewTable] but panics if the table cannot be built.
func MustNewTable(recs []Metadata) *Table {
	t, err := NewTable(recs)
	if err != nil {
		panic(fmt.Sprintf("NewTable() failed: %v", err))
	}
	return t
}

func validCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// Lookup returns the metadata of a currency.
// The code is case-insensitive.
func (t *Table) Lookup(code string) (Metadata, bool) {
	m, ok := t.byCode[strings.ToUpper(code)]
	return m, ok
}

// IsSupported returns true if the table contains the currency.
func (t *Table) IsSupported(code string) bool {
	_, ok := t.Lookup(code)
	return ok
}

// FractionDigits returns the number of fraction digits of the currency.
// It returns 0 for unknown currencies.
func (t *Table) FractionDigits(code string) int {
	m, _ := t.Lookup(code)
	return m.Scale
}

// RoundingIncrement returns the rounding increment of the currency in minor units.
// It returns 0 for unknown currencies.
func (t *Table) RoundingIncrement(code string) int {
	m, _ := t.Lookup(code)
	return m.Increment
}

// Separators returns the decimal and grouping separators of the currency.
func (t *Table) Separators(code string) (decimal, thousand string) {
	m, ok := t.Lookup(code)
	if !ok {
		return ".", ","
	}
	return m.Decimal, m.Thousand
}

// Symbol returns the symbol used to display the currency in the given locale.
// A symbol shared by several currencies, such as "$", is prefixed with the
// issuing country when the locale belongs to another region:
// the Canadian Dollar is "$" in en-CA and "CA$" in en-US.
// Unknown currencies are displayed by their code.
func (t *Table) Symbol(code string, locale language.Tag) string {
	m, ok := t.Lookup(code)
	if !ok {
		return strings.ToUpper(code)
	}
	if t.shared[m.Symbol] < 2 || m.Symbol == m.Code {
		return m.Symbol
	}
	region, conf := locale.Region()
	if conf == language.No || strings.HasPrefix(m.Code, region.String()) {
		return m.Symbol
	}
	return m.Code[:2] + m.Symbol
}

// Codes returns the codes of all currencies in the table in ascending order.
func (t *Table) Codes() []string {
	codes := make([]string, len(t.codes))
	copy(codes, t.codes)
	return codes
}
