// Whole-row operations.
package coldb

import (
	"fmt"
	"slices"
)

// AddRow stores cells under key verbatim, replacing any existing row in
// place. Cells are not checked against the header width.
func (s *Store) AddRow(key string, cells []string) error {
	if err := s.validKey(key); err != nil {
		return err
	}
	s.put(key, slices.Clone(cells))

	if err := s.save(); err != nil {
		return fmt.Errorf("add row: save: %w", err)
	}
	return nil
}

// DeleteRow removes the row under key. Deleting the header promotes the
// next row. Returns ErrCoordinatesNotFound if key is absent.
func (s *Store) DeleteRow(key string) error {
	if !s.remove(key) {
		s.config.Logger.Debug("coldb: key not found", "key", key)
		return fmt.Errorf("delete %q: %w", key, ErrCoordinatesNotFound)
	}

	if err := s.save(); err != nil {
		return fmt.Errorf("delete: save: %w", err)
	}
	return nil
}
