package crossref

// Emphasis flags how an order relates to the position it would change.
type Emphasis int

const (
	// EmphasisNone: the order closes the held position exactly.
	EmphasisNone Emphasis = iota
	// EmphasisIncreasesPortfolio: there is no position, or the order goes
	// the same direction as it.
	EmphasisIncreasesPortfolio
	// EmphasisNeedsReview: the order reduces the position but by a
	// different quantity, it probably needs editing.
	EmphasisNeedsReview
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisIncreasesPortfolio:
		return "increases-portfolio"
	case EmphasisNeedsReview:
		return "needs-review"
	default:
		return "none"
	}
}

// Tag returns the style tag of e, or "" for EmphasisNone.
func (e Emphasis) Tag() string {
	switch e {
	case EmphasisIncreasesPortfolio:
		return TagIncreasesPortfolio
	case EmphasisNeedsReview:
		return TagNeedsReview
	default:
		return ""
	}
}

// Classify compares an order to the position held in the same stock.
// A zero held quantity counts as no position.
func Classify(order Quantity, held NullQuantity) Emphasis {
	if !held.Valid || held.Quantity.IsZero() || held.Quantity.SameSign(order) {
		return EmphasisIncreasesPortfolio
	}
	if held.Quantity.Abs() != order.Abs() {
		return EmphasisNeedsReview
	}
	return EmphasisNone
}
