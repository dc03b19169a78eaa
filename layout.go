package crossref

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// Layout describes where things are in the page tables. Cell indices are
// zero-based positions of the td elements of a body row, before any column
// is inserted.
type Layout struct {
	Holdings   HoldingColumns `toml:"holdings"`
	Orders     OrderColumns   `toml:"orders"`
	Notes      NoteColumns    `toml:"notes"`
	SellMarker string         `toml:"sell_marker" default:"Sell" validate:"required"`
	Currency   string         `toml:"currency" default:"NZD" validate:"required,len=3"`
	KeyPrefix  string         `toml:"key_prefix" default:"portfolioCustomization" validate:"required,excludesall=:"`
}

// HoldingColumns locates the cells of the long and short tables.
type HoldingColumns struct {
	Quantity    int `toml:"quantity" default:"1" validate:"gte=0"`
	AverageCost int `toml:"average_cost" default:"2" validate:"gte=0"`
}

// OrderColumns locates the cells of the active orders table.
type OrderColumns struct {
	Side     int `toml:"side" default:"1" validate:"gte=0"`
	Quantity int `toml:"quantity" default:"2" validate:"gte=0,nefield=Side"`
}

// NoteColumns is where the notes column is inserted in each table, counted
// after the derived columns have been inserted.
type NoteColumns struct {
	Long   int `toml:"long" default:"10" validate:"gte=0"`
	Short  int `toml:"short" default:"10" validate:"gte=0"`
	Orders int `toml:"orders" default:"11" validate:"gte=0"`
	Watch  int `toml:"watch" default:"10" validate:"gte=0"`
}

// DefaultLayout returns the layout of the site's portfolio page.
func DefaultLayout() Layout {
	var l Layout
	if err := defaults.Set(&l); err != nil {
		panic(err) // tags are static
	}
	return l
}

var validate = validator.New()

// Validate checks that every index and marker is usable.
func (l Layout) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	return nil
}

// noteColumn returns the notes column of the table showing ctx.
func (l Layout) noteColumn(ctx Context) int {
	switch ctx {
	case ContextLong:
		return l.Notes.Long
	case ContextShort:
		return l.Notes.Short
	case ContextOrders:
		return l.Notes.Orders
	default:
		return l.Notes.Watch
	}
}
