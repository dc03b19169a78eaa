package renderer

import (
	"slices"

	"github.com/etnz/crossref"
)

// Summary is the content of a plan, as a report.
type Summary struct {
	Title  string
	Tables []SummaryTable
	// Stale lists the stored note keys of rows no longer on the page.
	Stale []string
}

// SummaryTable is one table of the page with its derived columns.
type SummaryTable struct {
	Title   string
	Columns []Column
	Rows    []SummaryRow
}

// Column is a table column header.
type Column struct {
	Name string
	Rule string // markdown alignment rule
}

// SummaryRow is one data row.
type SummaryRow struct {
	Symbol string
	Cells  []string
}

var tableTitles = map[crossref.TableID]string{
	crossref.TableOrders: "Active Orders",
	crossref.TableLong:   "Stock I Own",
	crossref.TableShort:  "Shorted Stock",
	crossref.TableWatch:  "Watchlist",
}

var rules = map[string]string{
	crossref.AlignRight:  "---:",
	crossref.AlignCenter: ":---:",
	crossref.AlignLeft:   ":---",
}

// NewSummary builds the report of plan. Prices are formatted in currency.
//
// Orders increasing the portfolio are in bold, orders to review in
// italic. The active orders table gets an extra column with the emphasis
// of the order itself.
func NewSummary(title string, plan *crossref.Plan, currency string, stale []string) *Summary {
	s := &Summary{Title: title, Stale: stale}
	for _, tp := range plan.Tables {
		st := SummaryTable{Title: tableTitles[tp.Table]}
		for _, h := range tp.Headers {
			st.Columns = append(st.Columns, Column{Name: h.Text, Rule: rules[h.Align]})
		}
		orders := tp.Table == crossref.TableOrders
		if orders {
			st.Columns = append(st.Columns, Column{Name: "Order", Rule: rules[crossref.AlignLeft]})
		}
		for _, rp := range tp.Rows {
			row := SummaryRow{Symbol: escapeCell(rp.Symbol)}
			for _, ins := range rp.Insertions {
				row.Cells = append(row.Cells, cellText(ins.Cell, currency))
			}
			if orders {
				row.Cells = append(row.Cells, orderEmphasis(rp))
			}
			st.Rows = append(st.Rows, row)
		}
		s.Tables = append(s.Tables, st)
	}
	return s
}

// cellText formats a derived cell for markdown.
func cellText(d crossref.Derived, currency string) string {
	if d.Note != nil {
		if d.Note.Text == "" {
			return ""
		}
		return escapeCell(d.Note.Teaser)
	}
	v := d.Value
	if v == "" {
		return ""
	}
	if slices.Contains(d.Tags, crossref.TagHoldingPrice) {
		if m, err := crossref.ParseMoney(v, currency); err == nil {
			v = m.String()
		}
	}
	switch {
	case slices.Contains(d.Tags, crossref.TagIncreasesPortfolio):
		return "**" + v + "**"
	case slices.Contains(d.Tags, crossref.TagNeedsReview):
		return "_" + v + "_"
	}
	return v
}

// orderEmphasis describes the emphasis of an order row.
func orderEmphasis(rp crossref.RowPlan) string {
	for _, d := range rp.Decorations {
		switch {
		case slices.Contains(d.Tags, crossref.TagIncreasesPortfolio):
			return crossref.EmphasisIncreasesPortfolio.String()
		case slices.Contains(d.Tags, crossref.TagNeedsReview):
			return crossref.EmphasisNeedsReview.String()
		}
	}
	return ""
}
