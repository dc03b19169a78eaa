package crossref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrStructure is returned when the page does not look like expected: a
// missing table, row or cell, or a number that does not parse.
var ErrStructure = errors.New("unexpected page structure")

// Cell is a snapshot of a table cell.
type Cell struct {
	Text   string // text content
	Price  string // text content of the price-marked sub-element
	Priced bool   // true if the cell has a price-marked sub-element
}

// TextCell returns a plain cell.
func TextCell(text string) Cell { return Cell{Text: text} }

// PriceCell returns a cell whose price-marked sub-element reads price.
func PriceCell(price string) Cell { return Cell{Text: price, Price: price, Priced: true} }

// Row is a snapshot of a table body row, taken before any mutation of the
// page.
type Row struct {
	cells  []Cell
	symbol string
	marked bool
}

// NewRow returns a data row for symbol.
func NewRow(symbol string, cells ...Cell) Row {
	return Row{cells: cells, symbol: symbol, marked: true}
}

// NewPlaceholderRow returns a row without symbol, like the "no entries"
// line of an empty table, or a total line.
func NewPlaceholderRow(cells ...Cell) Row {
	return Row{cells: cells}
}

// Symbol returns the text of the row's symbol-marked element, or false if
// the row has none. Such rows are not data rows and must be skipped.
func (r Row) Symbol() (string, bool) {
	if !r.marked {
		return "", false
	}
	return strings.TrimSpace(r.symbol), true
}

func (r Row) cell(i int) (Cell, error) {
	if i < 0 || i >= len(r.cells) {
		return Cell{}, fmt.Errorf("%w: no cell %d in a row of %d", ErrStructure, i, len(r.cells))
	}
	return r.cells[i], nil
}

// Text returns the trimmed text of cell i.
func (r Row) Text(i int) (string, error) {
	c, err := r.cell(i)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(c.Text), nil
}

// Quantity parses cell i as a base 10 integer.
func (r Row) Quantity(i int) (Quantity, error) {
	txt, err := r.Text(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(txt, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cell %d: %q is not a quantity", ErrStructure, i, txt)
	}
	return Quantity(v), nil
}

// Price parses the price-marked sub-element of cell i.
func (r Row) Price(i int, currency string) (Money, error) {
	c, err := r.cell(i)
	if err != nil {
		return Money{}, err
	}
	if !c.Priced {
		return Money{}, fmt.Errorf("%w: cell %d has no price", ErrStructure, i)
	}
	m, err := ParseMoney(c.Price, currency)
	if err != nil {
		return Money{}, fmt.Errorf("%w: cell %d: %v", ErrStructure, i, err)
	}
	return m, nil
}
