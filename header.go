// Header management.
//
// The header is an ordinary row whose cells name the columns. The store
// records which key holds it and keeps that row at iteration position 0,
// so it is also the first line of the file.
package coldb

import (
	"fmt"
	"slices"
)

// SetHeader makes (key, columns) the header row. Any existing row under
// key is replaced; every other row keeps its relative order after it.
// Returns ErrInvalidHeader if columns is empty.
func (s *Store) SetHeader(key string, columns []string) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: expected non-empty columns, found empty list", ErrInvalidHeader)
	}
	if err := s.validKey(key); err != nil {
		return err
	}

	if i := slices.Index(s.keys, key); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
	s.keys = slices.Insert(s.keys, 0, key)
	s.rows[key] = slices.Clone(columns)
	s.head, s.hasHead = key, true

	if err := s.save(); err != nil {
		return fmt.Errorf("set header: save: %w", err)
	}
	return nil
}
