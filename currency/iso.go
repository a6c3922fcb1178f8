package currency

import (
	"sync"

	gomoney "github.com/Rhymond/go-money"
)

var (
	isoOnce  sync.Once
	isoTable *Table
)

// ISO returns the table of ISO 4217 currencies.
// The table is built on first use and shared by the whole process.
// Symbols and separators come from the [go-money] currency list.
//
// [go-money]: https://github.com/Rhymond/go-money
func ISO() *Table {
	isoOnce.Do(func() {
		recs := make([]Metadata, len(isoRecords))
		for i, m := range isoRecords {
			if c := gomoney.GetCurrency(m.Code); c != nil {
				m.Symbol = c.Grapheme
				m.Decimal = c.Decimal
				m.Thousand = c.Thousand
			}
			recs[i] = m
		}
		isoTable = MustNewTable(recs)
	})
	return isoTable
}
