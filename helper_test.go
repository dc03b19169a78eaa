package crossref

import (
	"maps"
	"slices"
)

// mapStore is a Store for tests.
type mapStore map[string]string

func (s mapStore) Get(key string) (string, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func (s mapStore) Set(key, value string) error {
	s[key] = value
	return nil
}

func (s mapStore) Delete(key string) error {
	delete(s, key)
	return nil
}

func (s mapStore) Keys() ([]string, error) { return slices.Sorted(maps.Keys(s)), nil }

// holdingRow is a helper for test to create a row of the long or short
// table: symbol, quantity, average cost.
func holdingRow(symbol, qty, cost string) Row {
	return NewRow(symbol, TextCell(symbol), TextCell(qty), PriceCell(cost), PriceCell("$0.50"))
}

// orderRow is a helper for test to create a row of the active orders table:
// symbol, side, quantity, price.
func orderRow(symbol, side, qty string) Row {
	return NewRow(symbol, TextCell(symbol), TextCell(side), TextCell(qty), PriceCell("$0.40"))
}

// watchRow is a helper for test to create a row of the watch list.
func watchRow(symbol string) Row {
	return NewRow(symbol, TextCell(symbol), PriceCell("$0.40"))
}

// NZD is a helper for test to create money from const.
func NZD(v float64) Money { return M(v, "NZD") }
