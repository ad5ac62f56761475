// Core store type and lifecycle.
//
// Store keeps every row in memory as an ordered map: keys records
// iteration order and rows maps a key to its cells. The header is tracked
// explicitly by key and is always at iteration position 0. Reads never
// touch the file; every mutation ends with a full save.
package coldb

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Store is an ordered key to row mapping persisted to one file.
type Store struct {
	path    string              // Backing file
	config  Config              // Configuration with defaults applied
	keys    []string            // Iteration order, header first
	rows    map[string][]string // Cells by key
	head    string              // Header key, valid when hasHead
	hasHead bool                // Whether a header row exists
	sum     string              // Checksum of the last loaded or saved content
}

// Open loads the store at path. A missing file is not an error: the store
// starts empty and the file is created on the first mutation.
func Open(path string, config Config) (*Store, error) {
	config = config.withDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	s := &Store{
		path:   path,
		config: config,
		rows:   make(map[string][]string),
	}

	if err := s.load(); err != nil {
		if !errors.Is(err, ErrNoFile) {
			return nil, err
		}
		s.config.Logger.Debug("coldb: starting empty store", "path", path)
	}
	return s, nil
}

// Reload discards in-memory state and reads the file again. Returns
// ErrNoFile, leaving the store empty, if the file does not exist.
func (s *Store) Reload() error {
	return s.load()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of rows, header included.
func (s *Store) Len() int {
	return len(s.keys)
}

// Keys returns row keys in iteration order.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// Row returns a copy of the cells stored under key.
func (s *Store) Row(key string) ([]string, bool) {
	cells, ok := s.rows[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(cells), true
}

// HeaderKey returns the key of the header row.
func (s *Store) HeaderKey() (string, bool) {
	return s.head, s.hasHead
}

// Header returns a copy of the header row, or nil if the store is empty.
func (s *Store) Header() []string {
	return slices.Clone(s.header())
}

// Columns returns the addressable column names: "key" followed by the
// header cells.
func (s *Store) Columns() []string {
	return append([]string{KeyColumn}, s.header()...)
}

// All yields every row in iteration order. Cells are copies.
func (s *Store) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, k := range s.keys {
			if !yield(k, slices.Clone(s.rows[k])) {
				return
			}
		}
	}
}

// header returns the live header row without copying.
func (s *Store) header() []string {
	if !s.hasHead {
		return nil
	}
	return s.rows[s.head]
}

// reset empties the store.
func (s *Store) reset() {
	s.keys = nil
	s.rows = make(map[string][]string)
	s.head, s.hasHead = "", false
}

// put inserts or replaces a row. A new key goes to the end; an existing
// key keeps its position. The first row of an empty store becomes the
// header.
func (s *Store) put(key string, cells []string) {
	if _, ok := s.rows[key]; !ok {
		s.keys = append(s.keys, key)
		if !s.hasHead {
			s.head, s.hasHead = key, true
		}
	}
	s.rows[key] = cells
}

// remove deletes a row. If it was the header, the next row takes over.
func (s *Store) remove(key string) bool {
	if _, ok := s.rows[key]; !ok {
		return false
	}
	delete(s.rows, key)
	if i := slices.Index(s.keys, key); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
	if s.hasHead && s.head == key {
		s.head, s.hasHead = "", false
		if len(s.keys) > 0 {
			s.head, s.hasHead = s.keys[0], true
		}
	}
	return true
}

// validKey rejects keys that cannot round-trip through the file format.
// The empty key is refused in every format. JSONL escapes everything else;
// the text format cannot hold ':' or line breaks in a key.
func (s *Store) validKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if s.config.Format == FormatText && strings.ContainsAny(key, ":\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
