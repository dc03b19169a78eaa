package crossref

import (
	"fmt"
	"regexp"
	"strings"
)

// Context is the table a row belongs to. A stock can carry a different note
// in each table.
type Context string

const (
	ContextLong   Context = "long"
	ContextShort  Context = "short"
	ContextOrders Context = "orders"
	ContextWatch  Context = "watch"
)

// Contexts lists all contexts in page order.
var Contexts = []Context{ContextLong, ContextShort, ContextOrders, ContextWatch}

// ParseContext returns the context named s.
func ParseContext(s string) (Context, error) {
	for _, c := range Contexts {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown context %q, want one of %v", s, Contexts)
}

// NoteKey identifies a note in the store.
type NoteKey string

// DefaultKeyPrefix is the prefix of every note key.
const DefaultKeyPrefix = "portfolioCustomization"

// KeyPrefix builds and parses note keys "<prefix>:<symbol>:<context>".
// Contexts contain no ':', so the context is whatever follows the last ':'
// and the composition is injective even for symbols containing ':'.
type KeyPrefix string

// Key returns the note key of symbol in ctx.
func (p KeyPrefix) Key(symbol string, ctx Context) NoteKey {
	return NoteKey(string(p) + ":" + symbol + ":" + string(ctx))
}

// Parse splits a key made by Key. It returns false for keys of another
// prefix or an unknown context.
func (p KeyPrefix) Parse(key NoteKey) (symbol string, ctx Context, ok bool) {
	rest, found := strings.CutPrefix(string(key), string(p)+":")
	if !found {
		return "", "", false
	}
	i := strings.LastIndexByte(rest, ':')
	if i < 0 {
		return "", "", false
	}
	ctx, err := ParseContext(rest[i+1:])
	if err != nil {
		return "", "", false
	}
	return rest[:i], ctx, true
}

// MakeKey returns the note key of symbol in ctx with the default prefix.
func MakeKey(symbol string, ctx Context) NoteKey {
	return KeyPrefix(DefaultKeyPrefix).Key(symbol, ctx)
}

// ParseKey splits a key made by MakeKey.
func ParseKey(key NoteKey) (symbol string, ctx Context, ok bool) {
	return KeyPrefix(DefaultKeyPrefix).Parse(key)
}

// Store is a persistent string key-value store, scoped to the site.
type Store interface {
	// Get returns the value of key, false if there is none.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	// Keys enumerates all keys.
	Keys() ([]string, error)
}

// Note is the content of a notes cell.
type Note struct {
	Key    NoteKey
	Text   string
	Teaser string
}

// TeaserPlaceholder is shown instead of an empty note.
const TeaserPlaceholder = ">"

// TeaserOpen is shown while a note is being edited.
const TeaserOpen = "<"

var teaserRegexp = regexp.MustCompile(`^\s*([^\r\n]{0,15})`)

// Teaser returns the first few characters of the note, at most 15 and
// stopping at the end of the first line.
func Teaser(text string) string {
	teaser := teaserRegexp.FindStringSubmatch(text)[1]
	if teaser == "" {
		return TeaserPlaceholder
	}
	return teaser
}

// ReadNote returns the note text of key, "" if there is none.
func ReadNote(store Store, key NoteKey) (string, error) {
	text, _, err := store.Get(string(key))
	if err != nil {
		return "", fmt.Errorf("cannot read note %q: %w", key, err)
	}
	return text, nil
}

// CommitNote saves the note text of key. An empty text deletes the note.
func CommitNote(store Store, key NoteKey, text string) error {
	var err error
	if text == "" {
		err = store.Delete(string(key))
	} else {
		err = store.Set(string(key), text)
	}
	if err != nil {
		return fmt.Errorf("cannot save note %q: %w", key, err)
	}
	return nil
}

// Stale returns the stored keys that are not in present, in the store's
// order.
func Stale(store Store, present map[NoteKey]bool) ([]NoteKey, error) {
	keys, err := store.Keys()
	if err != nil {
		return nil, fmt.Errorf("cannot list notes: %w", err)
	}
	var stale []NoteKey
	for _, k := range keys {
		if !present[NoteKey(k)] {
			stale = append(stale, NoteKey(k))
		}
	}
	return stale, nil
}

// Sweep deletes every stored note whose key is not in present and returns
// the deleted keys. Keys are all enumerated before the first deletion:
// deleting may change the enumeration.
func Sweep(store Store, present map[NoteKey]bool) ([]NoteKey, error) {
	stale, err := Stale(store, present)
	if err != nil {
		return nil, err
	}
	for _, k := range stale {
		if err := store.Delete(string(k)); err != nil {
			return nil, fmt.Errorf("cannot delete stale note %q: %w", k, err)
		}
	}
	return stale, nil
}
