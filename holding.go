package crossref

// Holding is a current position in a stock.
type Holding struct {
	Symbol      string
	Quantity    Quantity // signed: negative for a short position
	AverageCost Money
}

// Holdings maps a symbol to its holding in one table.
type Holdings map[string]Holding

// NewHoldings reads the body rows of a holdings table. Rows without symbol
// are skipped; if a symbol appears twice the later row wins.
func NewHoldings(rows []Row, cols HoldingColumns, currency string) (Holdings, error) {
	h := make(Holdings)
	for _, row := range rows {
		symbol, ok := row.Symbol()
		if !ok {
			continue
		}
		qty, err := row.Quantity(cols.Quantity)
		if err != nil {
			return nil, err
		}
		cost, err := row.Price(cols.AverageCost, currency)
		if err != nil {
			return nil, err
		}
		h[symbol] = Holding{Symbol: symbol, Quantity: qty, AverageCost: cost}
	}
	return h, nil
}

// Side selects the long or short half of the portfolio.
type Side int

const (
	Long Side = iota
	Short
)

func (s Side) String() string {
	if s == Short {
		return "Short"
	}
	return "Long"
}

// matches reports whether q is on side s.
func (s Side) matches(q Quantity) bool {
	if s == Short {
		return q.IsNegative()
	}
	return q.IsPositive()
}

// Positions gathers the long and short holdings. The two tables are kept
// apart; where both know a symbol the long one takes precedence.
type Positions struct {
	Long  Holdings
	Short Holdings
}

// lookup returns the holdings of symbol, long first.
func (p Positions) lookup(symbol string) []Holding {
	var found []Holding
	if h, ok := p.Long[symbol]; ok {
		found = append(found, h)
	}
	if h, ok := p.Short[symbol]; ok {
		found = append(found, h)
	}
	return found
}

// Held returns the quantity currently held for symbol.
func (p Positions) Held(symbol string) NullQuantity {
	found := p.lookup(symbol)
	if len(found) == 0 {
		return None
	}
	return Some(found[0].Quantity)
}

// Side returns the quantity held for symbol on side s only.
func (p Positions) Side(symbol string, s Side) NullQuantity {
	for _, h := range p.lookup(symbol) {
		if s.matches(h.Quantity) {
			return Some(h.Quantity)
		}
	}
	return None
}

// AverageCost returns the average cost of the holding of symbol.
func (p Positions) AverageCost(symbol string) (Money, bool) {
	found := p.lookup(symbol)
	if len(found) == 0 {
		return Money{}, false
	}
	return found[0].AverageCost, true
}
