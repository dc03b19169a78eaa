package crossref

import (
	"errors"
	"testing"
)

func TestAggregateOrders(t *testing.T) {
	rows := []Row{
		orderRow("ABC", "Sell", "40"),
		orderRow("QRS", "Buy", "20"),
		orderRow("ABC", "Sell", "10"),
		orderRow("QRS", "Buy", "5"),
		orderRow("ABC", "Buy", "7"),
		NewPlaceholderRow(TextCell("There are more orders")),
	}
	buy, sell, err := AggregateOrders(rows, DefaultLayout().Orders, "Sell")
	if err != nil {
		t.Fatalf("AggregateOrders() error = %v", err)
	}
	wantBuy := Orders{"QRS": 25, "ABC": 7}
	wantSell := Orders{"ABC": -50}
	if !equalOrders(buy, wantBuy) {
		t.Errorf("buy = %v, want %v", buy, wantBuy)
	}
	if !equalOrders(sell, wantSell) {
		t.Errorf("sell = %v, want %v", sell, wantSell)
	}
	if got := sell.Get("QRS"); got.Valid {
		t.Errorf("sell.Get(QRS) = %v, want absent", got)
	}
}

func TestAggregateOrders_Commutative(t *testing.T) {
	rows := []Row{
		orderRow("ABC", "Buy", "3"),
		orderRow("ABC", "Buy", "11"),
		orderRow("ABC", "Buy", "29"),
		orderRow("ABC", "Sell", "5"),
	}
	for _, perm := range permutations(len(rows)) {
		shuffled := make([]Row, len(rows))
		for i, j := range perm {
			shuffled[i] = rows[j]
		}
		buy, sell, err := AggregateOrders(shuffled, DefaultLayout().Orders, "Sell")
		if err != nil {
			t.Fatalf("AggregateOrders(%v) error = %v", perm, err)
		}
		if buy["ABC"] != 43 || sell["ABC"] != -5 {
			t.Errorf("AggregateOrders(%v) = %v %v, want 43 -5", perm, buy["ABC"], sell["ABC"])
		}
	}
}

func TestAggregateOrders_NoZeroEntry(t *testing.T) {
	buy, _, err := AggregateOrders([]Row{orderRow("ABC", "Buy", "0")}, DefaultLayout().Orders, "Sell")
	if err != nil {
		t.Fatalf("AggregateOrders() error = %v", err)
	}
	if _, ok := buy["ABC"]; ok {
		t.Errorf("buy has an explicit zero entry for ABC")
	}
}

func TestAggregateOrders_Malformed(t *testing.T) {
	_, _, err := AggregateOrders([]Row{orderRow("ABC", "Buy", "ten")}, DefaultLayout().Orders, "Sell")
	if !errors.Is(err, ErrStructure) {
		t.Errorf("AggregateOrders() error = %v, want ErrStructure", err)
	}
}

func equalOrders(a, b Orders) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// permutations returns all the orderings of 0..n-1.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var all [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := make([]int, 0, n)
			q = append(q, p[:i]...)
			q = append(q, n-1)
			q = append(q, p[i:]...)
			all = append(all, q)
		}
	}
	return all
}
