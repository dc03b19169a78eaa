// Package store keeps the notes between runs.
//
// All backends implement crossref.Store. None of them is safe for
// concurrent use.
package store

import (
	"fmt"

	"github.com/etnz/crossref"
)

// Backend names a store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Backends lists the known backends.
var Backends = []Backend{BackendMemory, BackendFile, BackendSQLite}

// Closer is a store holding resources.
type Closer interface {
	crossref.Store
	Close() error
}

// Open opens the store of backend at path. The memory backend ignores the
// path.
func Open(backend Backend, path string) (Closer, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown notes backend %q, want one of %v", backend, Backends)
	}
}
