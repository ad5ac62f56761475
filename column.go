// Column addressing and structural column edits.
//
// A column has a logical position: 0 is the row's own key and header cell
// i is position i+1. Cells are stored without the key, so the cell for
// position p lives at index p-1. resolve and cellIndex are the only places
// that know this; every operation that touches a cell by name goes through
// them.
package coldb

import (
	"fmt"
	"slices"
)

// KeyColumn is the reserved column name that addresses a row's key.
const KeyColumn = "key"

// resolve returns the logical position of column against header.
func resolve(column string, header []string) (int, bool) {
	if column == KeyColumn {
		return 0, true
	}
	i := slices.Index(header, column)
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}

// cellIndex converts a logical position to an index into a row's cells.
// The key column yields -1, which no row can satisfy.
func cellIndex(pos int) int {
	return pos - 1
}

// AddColumn appends a column named name. Every data row gains def as its
// last cell and the header row gains name, so each row grows by one.
// Returns ErrInvalidHeader if the store has no header and
// ErrDuplicateColumn if the header already has name.
func (s *Store) AddColumn(name, def string) error {
	if !s.hasHead {
		return fmt.Errorf("add column %q: %w: store has no header", name, ErrInvalidHeader)
	}
	if _, ok := resolve(name, s.header()); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}

	for _, k := range s.keys {
		cell := def
		if k == s.head {
			cell = name
		}
		s.rows[k] = append(s.rows[k], cell)
	}

	if err := s.save(); err != nil {
		return fmt.Errorf("add column: save: %w", err)
	}
	return nil
}
