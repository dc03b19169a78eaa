package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a store persisted as a single JSON object of key to text. It is
// meant to stay human readable and diff friendly: keys are sorted and the
// file is indented.
//
// Every change rewrites the whole file through a temporary file renamed
// in place, so an interrupted write leaves the previous content.
type File struct {
	Memory
	path string
}

// OpenFile loads the notes of path. A missing file is an empty store.
func OpenFile(path string) (*File, error) {
	f := &File{Memory: *NewMemory(), path: path}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read notes %q: %w", path, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(content, &f.notes); err != nil {
		return nil, fmt.Errorf("format error %q: %w", path, err)
	}
	if f.notes == nil {
		// the file holds "null"
		f.notes = make(map[string]string)
	}
	return f, nil
}

func (f *File) Set(key, value string) error {
	f.Memory.Set(key, value)
	return f.persist()
}

func (f *File) Delete(key string) error {
	if _, ok := f.notes[key]; !ok {
		return nil
	}
	f.Memory.Delete(key)
	return f.persist()
}

// persist rewrites the whole file.
func (f *File) persist() error {
	// encoding/json sorts map keys.
	content, err := json.MarshalIndent(f.notes, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create notes directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("cannot write notes: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(content, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write notes: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write notes: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("cannot replace notes %q: %w", f.path, err)
	}
	return nil
}
