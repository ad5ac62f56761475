// Single-cell reads and writes by key and column name.
package coldb

import "fmt"

// Insert writes value into the cell at (key, column). A missing key gets
// a new row of empty cells as wide as the header, appended at the end.
// Returns ErrCoordinatesNotFound if column does not resolve or the cell
// lies beyond the row, which happens for rows shorter than the header.
// On failure no row is created.
func (s *Store) Insert(key, column, value string) error {
	if err := s.validKey(key); err != nil {
		return err
	}
	header := s.header()
	pos, ok := resolve(column, header)
	if !ok {
		s.config.Logger.Debug("coldb: column not in header", "column", column)
		return fmt.Errorf("insert %q/%q: %w", key, column, ErrCoordinatesNotFound)
	}

	row, exists := s.rows[key]
	if !exists {
		row = make([]string, len(header))
	}
	i := cellIndex(pos)
	if i < 0 || i >= len(row) {
		s.config.Logger.Debug("coldb: cell out of bounds", "key", key, "column", column, "cells", len(row))
		return fmt.Errorf("insert %q/%q: %w", key, column, ErrCoordinatesNotFound)
	}

	row[i] = value
	if !exists {
		s.put(key, row)
	}

	if err := s.save(); err != nil {
		return fmt.Errorf("insert: save: %w", err)
	}
	return nil
}

// Get returns the cell at (key, column). The key column yields key
// itself. A column missing from the header yields "" and a nil error, so
// "" does not distinguish an unknown column from an empty cell. Returns
// ErrCoordinatesNotFound if key is absent or the row is too short.
func (s *Store) Get(key, column string) (string, error) {
	pos, ok := resolve(column, s.header())
	if !ok {
		s.config.Logger.Debug("coldb: column not in header", "column", column)
		return "", nil
	}

	row, exists := s.rows[key]
	if !exists {
		s.config.Logger.Debug("coldb: key not found", "key", key)
		return "", fmt.Errorf("get %q: %w", key, ErrCoordinatesNotFound)
	}
	if pos == 0 {
		return key, nil
	}

	i := cellIndex(pos)
	if i >= len(row) {
		return "", fmt.Errorf("get %q/%q: %w", key, column, ErrCoordinatesNotFound)
	}
	return row[i], nil
}
