// Row key renaming.
//
// Rename swaps a row's key in place: the row keeps its position, so
// renaming the header key leaves it the header.
package coldb

import "fmt"

// Rename changes a row's key. Returns ErrCoordinatesNotFound if old does
// not exist, or ErrExists if new already exists.
func (s *Store) Rename(old, new string) error {
	if err := s.validKey(new); err != nil {
		return err
	}
	if old == new {
		if _, ok := s.rows[old]; !ok {
			return fmt.Errorf("rename %q: %w", old, ErrCoordinatesNotFound)
		}
		return nil
	}

	cells, ok := s.rows[old]
	if !ok {
		return fmt.Errorf("rename %q: %w", old, ErrCoordinatesNotFound)
	}
	if _, ok := s.rows[new]; ok {
		return fmt.Errorf("rename to %q: %w", new, ErrExists)
	}

	for i, k := range s.keys {
		if k == old {
			s.keys[i] = new
			break
		}
	}
	delete(s.rows, old)
	s.rows[new] = cells
	if s.hasHead && s.head == old {
		s.head = new
	}

	if err := s.save(); err != nil {
		return fmt.Errorf("rename: save: %w", err)
	}
	return nil
}
