package crossref

import (
	"errors"
	"slices"
	"testing"
)

func TestMakeKey(t *testing.T) {
	if got, want := MakeKey("ABC", ContextLong), NoteKey("portfolioCustomization:ABC:long"); got != want {
		t.Errorf("MakeKey() = %q, want %q", got, want)
	}
}

func TestMakeKey_Injective(t *testing.T) {
	symbols := []string{"ABC", "ABC.X", "A:B", "A", "", "ABC:long", "long"}
	seen := make(map[NoteKey][2]string)
	for _, s := range symbols {
		for _, c := range Contexts {
			k := MakeKey(s, c)
			if prev, ok := seen[k]; ok {
				t.Errorf("MakeKey(%q, %q) = MakeKey(%q, %q) = %q", s, c, prev[0], prev[1], k)
			}
			seen[k] = [2]string{s, string(c)}

			symbol, ctx, ok := ParseKey(k)
			if !ok || symbol != s || ctx != c {
				t.Errorf("ParseKey(%q) = %q, %q, %v, want %q, %q", k, symbol, ctx, ok, s, c)
			}
		}
	}
}

func TestParseKey_Foreign(t *testing.T) {
	for _, k := range []NoteKey{"other:ABC:long", "portfolioCustomization:ABC:mine", "portfolioCustomization", "theme"} {
		if _, _, ok := ParseKey(k); ok {
			t.Errorf("ParseKey(%q) ok, want not ok", k)
		}
	}
}

func TestParseContext(t *testing.T) {
	for _, c := range Contexts {
		got, err := ParseContext(string(c))
		if err != nil || got != c {
			t.Errorf("ParseContext(%q) = %q, %v", c, got, err)
		}
	}
	if _, err := ParseContext("list"); err == nil {
		t.Errorf("ParseContext(list) expected error")
	}
}

func TestTeaser(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"Hello\nWorld", "Hello"},
		{"", TeaserPlaceholder},
		{"   \n  ", TeaserPlaceholder},
		{"  indented", "indented"},
		{"a rather long note about this stock", "a rather long n"},
		{"windows\r\nline", "windows"},
		{"\nsecond line", "second line"},
	}
	for _, tt := range tests {
		if got := Teaser(tt.text); got != tt.want {
			t.Errorf("Teaser(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestCommitNote(t *testing.T) {
	store := mapStore{}
	key := MakeKey("ABC", ContextOrders)
	if err := CommitNote(store, key, "sell at 0.60"); err != nil {
		t.Fatalf("CommitNote() error = %v", err)
	}
	if got, _ := ReadNote(store, key); got != "sell at 0.60" {
		t.Errorf("ReadNote() = %q, want %q", got, "sell at 0.60")
	}
	if err := CommitNote(store, key, ""); err != nil {
		t.Fatalf("CommitNote(empty) error = %v", err)
	}
	if _, ok := store[string(key)]; ok {
		t.Errorf("empty note was not deleted")
	}
	if got, _ := ReadNote(store, key); got != "" {
		t.Errorf("ReadNote() = %q, want empty", got)
	}
}

func TestSweep(t *testing.T) {
	store := mapStore{"A": "a", "B": "b", "C": "c", "D": "d"}
	deleted, err := Sweep(store, map[NoteKey]bool{"A": true, "B": true})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	keys, _ := store.Keys()
	if !slices.Equal(keys, []string{"A", "B"}) {
		t.Errorf("after Sweep() store = %v, want [A B]", keys)
	}
	if !slices.Equal(deleted, []NoteKey{"C", "D"}) {
		t.Errorf("Sweep() deleted = %v, want [C D]", deleted)
	}
}

func TestStale(t *testing.T) {
	store := mapStore{"A": "a", "B": "b", "C": "c", "D": "d"}
	stale, err := Stale(store, map[NoteKey]bool{"A": true, "B": true})
	if err != nil {
		t.Fatalf("Stale() error = %v", err)
	}
	if !slices.Equal(stale, []NoteKey{"C", "D"}) {
		t.Errorf("Stale() = %v, want [C D]", stale)
	}
	if len(store) != 4 {
		t.Errorf("Stale() modified the store: %v", store)
	}

	if _, err := Stale(failingStore{}, nil); !errors.Is(err, errStore) {
		t.Errorf("Stale() error = %v, want %v", err, errStore)
	}
}

// indexStore enumerates keys by position, like the browser storage: deleting
// shifts the following keys.
type indexStore struct {
	keys   []string
	values map[string]string
}

func (s *indexStore) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *indexStore) Set(key, value string) error {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
	return nil
}

func (s *indexStore) Delete(key string) error {
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	delete(s.values, key)
	return nil
}

func (s *indexStore) Keys() ([]string, error) { return s.keys, nil }

func TestSweep_ShiftingEnumeration(t *testing.T) {
	s := &indexStore{values: map[string]string{}}
	for _, k := range []string{"C", "A", "D", "E", "B"} {
		s.Set(k, k)
	}
	if _, err := Sweep(s, map[NoteKey]bool{"A": true, "B": true}); err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if !slices.Equal(s.keys, []string{"A", "B"}) {
		t.Errorf("after Sweep() store = %v, want [A B]", s.keys)
	}
}
