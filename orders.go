package crossref

// Orders maps a symbol to its net quantity of active orders of one kind.
// Sell orders are negative. An absent symbol means no order.
type Orders map[string]Quantity

// Get returns the net order quantity of symbol.
func (o Orders) Get(symbol string) NullQuantity {
	q, ok := o[symbol]
	if !ok {
		return None
	}
	return Some(q)
}

// add accumulates q into symbol.
func (o Orders) add(symbol string, q Quantity) { o[symbol] += q }

// AggregateOrders sums the active orders table into buy and sell demand per
// symbol. A row whose side reads sellMarker is a sell order, any other is a
// buy order. Empty orders are not recorded.
//
// Only the orders visible on the page are known: if the site paginates the
// table the totals are partial.
func AggregateOrders(rows []Row, cols OrderColumns, sellMarker string) (buy, sell Orders, err error) {
	buy, sell = make(Orders), make(Orders)
	for _, row := range rows {
		symbol, ok := row.Symbol()
		if !ok {
			continue
		}
		side, err := row.Text(cols.Side)
		if err != nil {
			return nil, nil, err
		}
		qty, err := row.Quantity(cols.Quantity)
		if err != nil {
			return nil, nil, err
		}
		if qty.IsZero() {
			continue
		}
		if side == sellMarker {
			sell.add(symbol, qty.Neg())
		} else {
			buy.add(symbol, qty)
		}
	}
	return buy, sell, nil
}

// orderSign returns -1 for a sell order row, 1 otherwise.
func orderSign(side, sellMarker string) Quantity {
	if side == sellMarker {
		return -1
	}
	return 1
}
