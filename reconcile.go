package crossref

import (
	"errors"
	"fmt"
)

// TableID identifies a table of the portfolio page, by the id of the
// heading above it.
type TableID string

const (
	TableOrders TableID = "active-orders"
	TableLong   TableID = "long-stock"
	TableShort  TableID = "short-stock"
	TableWatch  TableID = "watch-list"
)

// TableIDs lists every table of the page.
var TableIDs = []TableID{TableOrders, TableLong, TableShort, TableWatch}

// Page holds the body rows of the four tables, as snapshots.
type Page struct {
	Orders []Row
	Long   []Row
	Short  []Row
	Watch  []Row
}

// Header is a column header to insert.
type Header struct {
	Index int
	Text  string
	Align string
	Span  int // colspan, 0 for the default
}

// Decoration adds tags to a cell already on the page.
type Decoration struct {
	Index int
	Tags  []string
}

// Insertion inserts a cell before the cell currently at Index, or at the
// end of the row if there is none.
type Insertion struct {
	Index int
	Cell  Derived
}

// RowPlan is the change to one body row. Decorations use the original cell
// indices and are applied first; insertions are applied in order.
type RowPlan struct {
	Row         int // index in the table body rows
	Symbol      string
	Key         NoteKey
	Decorations []Decoration
	Insertions  []Insertion
}

// TablePlan is the change to one table.
type TablePlan struct {
	Table   TableID
	Context Context
	Headers []Header
	Rows    []RowPlan
}

// Plan describes every change to apply to the page.
type Plan struct {
	Tables []TablePlan
	// Present is the set of note keys shown on the page.
	Present map[NoteKey]bool
}

// Table returns the plan of id, nil if there is none.
func (p *Plan) Table(id TableID) *TablePlan {
	for i := range p.Tables {
		if p.Tables[i].Table == id {
			return &p.Tables[i]
		}
	}
	return nil
}

// Failure is the single error Reconcile returns.
type Failure struct {
	Stage string
	Err   error
}

func (f *Failure) Error() string { return fmt.Sprintf("%s: %v", f.Stage, f.Err) }
func (f *Failure) Unwrap() error { return f.Err }

// reconciler carries the state of one pass.
type reconciler struct {
	layout    Layout
	keys      KeyPrefix
	notes     Store
	positions Positions
	buy, sell Orders
	present   map[NoteKey]bool
	stage     string
}

// Reconcile reads the page tables and plans the derived columns of every
// row. It reads the notes of the rows from notes but never writes them, see
// Sweep.
//
// Any failure aborts the whole pass: the result is either a complete plan
// or a *Failure.
func Reconcile(page Page, layout Layout, notes Store) (plan *Plan, err error) {
	r := &reconciler{
		layout:  layout,
		keys:    KeyPrefix(layout.KeyPrefix),
		notes:   notes,
		present: make(map[NoteKey]bool),
		stage:   "layout",
	}
	defer func() {
		if v := recover(); v != nil {
			plan, err = nil, &Failure{Stage: r.stage, Err: fmt.Errorf("%w: %v", ErrStructure, v)}
		}
	}()
	plan, err = r.run(page)
	if err != nil {
		var f *Failure
		if !errors.As(err, &f) {
			err = &Failure{Stage: r.stage, Err: err}
		}
		return nil, err
	}
	return plan, nil
}

func (r *reconciler) run(page Page) (*Plan, error) {
	if err := r.layout.Validate(); err != nil {
		return nil, err
	}

	var err error
	r.stage = string(TableLong)
	if r.positions.Long, err = NewHoldings(page.Long, r.layout.Holdings, r.layout.Currency); err != nil {
		return nil, err
	}
	r.stage = string(TableShort)
	if r.positions.Short, err = NewHoldings(page.Short, r.layout.Holdings, r.layout.Currency); err != nil {
		return nil, err
	}
	r.stage = string(TableOrders)
	if r.buy, r.sell, err = AggregateOrders(page.Orders, r.layout.Orders, r.layout.SellMarker); err != nil {
		return nil, err
	}

	plan := &Plan{Present: r.present}
	for _, t := range []struct {
		id    TableID
		ctx   Context
		rows  []Row
		build func(Row, string, *RowPlan) error
	}{
		{TableLong, ContextLong, page.Long, r.holdingRow},
		{TableShort, ContextShort, page.Short, r.holdingRow},
		{TableOrders, ContextOrders, page.Orders, r.orderRow},
		{TableWatch, ContextWatch, page.Watch, r.watchRow},
	} {
		r.stage = string(t.id)
		tp, err := r.table(t.id, t.ctx, t.rows, t.build)
		if err != nil {
			return nil, err
		}
		plan.Tables = append(plan.Tables, tp)
	}
	return plan, nil
}

// table plans every data row of a table, then appends its notes column.
func (r *reconciler) table(id TableID, ctx Context, rows []Row, build func(Row, string, *RowPlan) error) (TablePlan, error) {
	tp := TablePlan{Table: id, Context: ctx, Headers: r.headers(ctx)}
	for i, row := range rows {
		symbol, ok := row.Symbol()
		if !ok {
			continue
		}
		rp := RowPlan{Row: i, Symbol: symbol, Key: r.keys.Key(symbol, ctx)}
		r.present[rp.Key] = true
		if err := build(row, symbol, &rp); err != nil {
			return TablePlan{}, fmt.Errorf("row %d (%s): %w", i, symbol, err)
		}
		text, err := ReadNote(r.notes, rp.Key)
		if err != nil {
			return TablePlan{}, err
		}
		rp.insert(r.layout.noteColumn(ctx), NoteColumn(rp.Key, text))
		tp.Rows = append(tp.Rows, rp)
	}
	return tp, nil
}

func (rp *RowPlan) decorate(index int, tags ...string) {
	tags = nonEmpty(tags)
	if len(tags) == 0 {
		return
	}
	rp.Decorations = append(rp.Decorations, Decoration{Index: index, Tags: tags})
}

func (rp *RowPlan) insert(index int, cell Derived) {
	rp.Insertions = append(rp.Insertions, Insertion{Index: index, Cell: cell})
}

// headers returns the column headers inserted in the table of ctx.
func (r *reconciler) headers(ctx Context) []Header {
	notes := Header{Index: r.layout.noteColumn(ctx), Text: "Notes", Align: AlignLeft, Span: 2}
	switch ctx {
	case ContextOrders:
		return []Header{
			{Index: 1, Text: "Long", Align: AlignRight},
			{Index: 2, Text: "Short", Align: AlignRight},
			{Index: 3, Text: "Avg. Cost", Align: AlignCenter},
			notes,
		}
	case ContextWatch:
		return []Header{
			{Index: 1, Text: "Long", Align: AlignRight},
			{Index: 2, Text: "Short", Align: AlignRight},
			{Index: 3, Text: "Avg. Cost", Align: AlignCenter},
			{Index: 4, Text: "Buy", Align: AlignRight},
			{Index: 5, Text: "Sell", Align: AlignRight},
			notes,
		}
	default:
		return []Header{
			{Index: 1, Text: "Buy", Align: AlignRight},
			{Index: 2, Text: "Sell", Align: AlignRight},
			notes,
		}
	}
}

// holdingRow colors the quantity and adds the pending orders.
func (r *reconciler) holdingRow(row Row, symbol string, rp *RowPlan) error {
	qty, err := row.Quantity(r.layout.Holdings.Quantity)
	if err != nil {
		return err
	}
	rp.decorate(r.layout.Holdings.Quantity, SignTag(qty))
	rp.insert(1, OrderColumn(symbol, r.buy, r.positions))
	rp.insert(2, OrderColumn(symbol, r.sell, r.positions))
	return nil
}

// orderRow colors the side and quantity of the order, flags it against the
// held position and adds the holding.
func (r *reconciler) orderRow(row Row, symbol string, rp *RowPlan) error {
	cols := r.layout.Orders
	side, err := row.Text(cols.Side)
	if err != nil {
		return err
	}
	qty, err := row.Quantity(cols.Quantity)
	if err != nil {
		return err
	}
	sign := orderSign(side, r.layout.SellMarker)
	rp.decorate(cols.Side, SignTag(sign))
	var emphasis string
	if order := sign * qty; !order.IsZero() {
		emphasis = Classify(order, r.positions.Held(symbol)).Tag()
	}
	rp.decorate(cols.Quantity, SignTag(sign), emphasis)

	rp.insert(1, HoldingColumn(symbol, r.positions, Long))
	rp.insert(2, HoldingColumn(symbol, r.positions, Short))
	rp.insert(3, AverageCostColumn(symbol, r.positions))
	return nil
}

// watchRow adds the holding and the pending orders.
func (r *reconciler) watchRow(_ Row, symbol string, rp *RowPlan) error {
	rp.insert(1, HoldingColumn(symbol, r.positions, Long))
	rp.insert(2, HoldingColumn(symbol, r.positions, Short))
	rp.insert(3, AverageCostColumn(symbol, r.positions))
	rp.insert(4, OrderColumn(symbol, r.buy, r.positions))
	rp.insert(5, OrderColumn(symbol, r.sell, r.positions))
	return nil
}
