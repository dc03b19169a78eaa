package crossref

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	tests := []struct {
		name      string
		got, want int
	}{
		{"holdings quantity", l.Holdings.Quantity, 1},
		{"holdings average cost", l.Holdings.AverageCost, 2},
		{"orders side", l.Orders.Side, 1},
		{"orders quantity", l.Orders.Quantity, 2},
		{"long notes", l.Notes.Long, 10},
		{"short notes", l.Notes.Short, 10},
		{"orders notes", l.Notes.Orders, 11},
		{"watch notes", l.Notes.Watch, 10},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if l.SellMarker != "Sell" || l.Currency != "NZD" || l.KeyPrefix != DefaultKeyPrefix {
		t.Errorf("DefaultLayout() = %+v", l)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("DefaultLayout().Validate() = %v", err)
	}
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Layout)
	}{
		{"no sell marker", func(l *Layout) { l.SellMarker = "" }},
		{"bad currency", func(l *Layout) { l.Currency = "dollars" }},
		{"prefix with colon", func(l *Layout) { l.KeyPrefix = "a:b" }},
		{"negative index", func(l *Layout) { l.Holdings.Quantity = -1 }},
		{"same order cells", func(l *Layout) { l.Orders.Quantity = l.Orders.Side }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.modify(&l)
			err := l.Validate()
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Errorf("Validate() = %v, want validation errors", err)
			}
		})
	}
}

func TestLayout_NoteColumn(t *testing.T) {
	l := DefaultLayout()
	l.Notes.Watch = 7
	for ctx, want := range map[Context]int{ContextLong: 10, ContextShort: 10, ContextOrders: 11, ContextWatch: 7} {
		if got := l.noteColumn(ctx); got != want {
			t.Errorf("noteColumn(%s) = %d, want %d", ctx, got, want)
		}
	}
}
