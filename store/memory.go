package store

import (
	"maps"
	"slices"
)

// Memory is a store that lives as long as the process.
type Memory struct {
	notes map[string]string
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{notes: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.notes[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.notes[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.notes, key)
	return nil
}

// Keys returns the keys in lexical order.
func (m *Memory) Keys() ([]string, error) {
	return slices.Sorted(maps.Keys(m.notes)), nil
}

func (m *Memory) Close() error { return nil }
