package crossref

import "strconv"

// Quantity is a signed number of shares: positive is long (or buy),
// negative is short (or sell).
type Quantity int64

func (q Quantity) IsPositive() bool { return q > 0 }
func (q Quantity) IsNegative() bool { return q < 0 }
func (q Quantity) IsZero() bool     { return q == 0 }
func (q Quantity) Neg() Quantity    { return -q }
func (q Quantity) String() string   { return strconv.FormatInt(int64(q), 10) }

// Abs returns the magnitude of q.
func (q Quantity) Abs() Quantity {
	if q < 0 {
		return -q
	}
	return q
}

// SameSign reports whether q and p are both positive or both negative.
func (q Quantity) SameSign(p Quantity) bool {
	return (q > 0 && p > 0) || (q < 0 && p < 0)
}

// NullQuantity is a Quantity that may be absent, the same way sql.NullInt64
// is. A zero Quantity is a legitimate value distinct from no quantity.
type NullQuantity struct {
	Quantity Quantity
	Valid    bool
}

// Some returns a valid NullQuantity.
func Some(q Quantity) NullQuantity { return NullQuantity{Quantity: q, Valid: true} }

// None is the absent quantity.
var None = NullQuantity{}
