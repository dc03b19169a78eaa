package crossref

// Style tags put on cells. They are CSS class names of the page, the
// site's own for signs and alignment, ours for the rest.
const (
	TagPositive           = "positive"
	TagNegative           = "negative"
	TagIncreasesPortfolio = "custom-orders-increase-portfolio"
	TagNeedsReview        = "custom-orders-highlighted"
	TagHoldingPrice       = "custom-holdings-price"
	TagNotes              = "custom-notes"

	AlignRight  = "align-right"
	AlignCenter = "align-center"
	AlignLeft   = "align-left"
)

// Derived is the content of a synthesized cell. An absent value is an
// empty Value and no Tags.
type Derived struct {
	Value string
	Align string
	Tags  []string
	Note  *Note // set on notes cells only
}

// IsEmpty reports whether the cell shows nothing.
func (d Derived) IsEmpty() bool { return d.Value == "" && d.Note == nil }

// Classes returns the class names of the cell, alignment first.
func (d Derived) Classes() []string {
	classes := make([]string, 0, len(d.Tags)+1)
	if d.Align != "" {
		classes = append(classes, d.Align)
	}
	return append(classes, d.Tags...)
}

// SignTag returns the tag of a signed quantity, strictly by sign.
func SignTag(q Quantity) string {
	switch {
	case q.IsPositive():
		return TagPositive
	case q.IsNegative():
		return TagNegative
	default:
		return ""
	}
}

// nonEmpty drops the empty tags.
func nonEmpty(all []string) []string {
	var t []string
	for _, s := range all {
		if s != "" {
			t = append(t, s)
		}
	}
	return t
}

// OrderColumn derives the Buy or Sell cell of symbol from the matching
// aggregate.
func OrderColumn(symbol string, orders Orders, positions Positions) Derived {
	d := Derived{Align: AlignRight}
	q := orders.Get(symbol)
	if !q.Valid {
		return d
	}
	d.Value = q.Quantity.String()
	d.Tags = nonEmpty([]string{SignTag(q.Quantity), Classify(q.Quantity, positions.Held(symbol)).Tag()})
	return d
}

// HoldingColumn derives the Long or Short cell of symbol. The quantity is
// shown only on the column of its side.
func HoldingColumn(symbol string, positions Positions, side Side) Derived {
	d := Derived{Align: AlignRight}
	q := positions.Side(symbol, side)
	if !q.Valid {
		return d
	}
	d.Value = q.Quantity.String()
	d.Tags = nonEmpty([]string{SignTag(q.Quantity)})
	return d
}

// AverageCostColumn derives the Avg. Cost cell of symbol.
func AverageCostColumn(symbol string, positions Positions) Derived {
	d := Derived{Align: AlignCenter}
	cost, ok := positions.AverageCost(symbol)
	if !ok {
		return d
	}
	d.Value = cost.Exact()
	d.Tags = []string{TagHoldingPrice}
	return d
}

// NoteColumn derives the Notes cell of key.
func NoteColumn(key NoteKey, text string) Derived {
	return Derived{
		Align: AlignLeft,
		Tags:  []string{TagNotes},
		Note:  &Note{Key: key, Text: text, Teaser: Teaser(text)},
	}
}
