// Projection and slicing.
//
// Select copies a window of rows and a subset of columns into a new Store.
// The result shares the source's path and config but nothing else: it is
// never saved by Select, and saving it overwrites the source file, so
// callers that want to keep it should write it elsewhere (see SaveAs).
package coldb

import "fmt"

// Range is a half-open range [Start, End) over row iteration order.
type Range struct {
	Start int
	End   int
}

// Select returns a new store holding the rows in rows and the cells of
// columns. A nil rows selects every row; nil columns selects every header
// column. The key column may be named but adds no cell, since keys carry
// over as the new store's keys. Any column that does not resolve, or a
// range outside [0, Len()], fails the whole call with a *SelectionError.
func (s *Store) Select(rows *Range, columns []string) (*Store, error) {
	header := s.header()

	var positions []int
	if columns == nil {
		for i := range header {
			positions = append(positions, i+1)
		}
	} else {
		var missing []string
		for _, c := range columns {
			pos, ok := resolve(c, header)
			if !ok {
				missing = append(missing, c)
				continue
			}
			positions = append(positions, pos)
		}
		if len(missing) > 0 {
			return nil, columnError(header, missing)
		}
	}

	indices := make([]int, 0, len(positions))
	for _, pos := range positions {
		if i := cellIndex(pos); i >= 0 {
			indices = append(indices, i)
		}
	}

	r := Range{Start: 0, End: len(s.keys)}
	if rows != nil {
		r = *rows
	}
	if r.Start < 0 || r.End > len(s.keys) || r.Start > r.End {
		return nil, rangeError(len(s.keys), r)
	}

	out := &Store{
		path:   s.path,
		config: s.config,
		rows:   make(map[string][]string, r.End-r.Start),
	}
	for _, k := range s.keys[r.Start:r.End] {
		row := s.rows[k]
		cells := make([]string, 0, len(indices))
		for _, i := range indices {
			if i < len(row) {
				cells = append(cells, row[i])
			}
		}
		out.put(k, cells)
	}
	return out, nil
}

// SaveAs points the store at path and writes it there. Later mutations
// persist to the new path.
func (s *Store) SaveAs(path string) error {
	s.path = path
	s.sum = ""
	if err := s.save(); err != nil {
		return fmt.Errorf("save as %s: %w", path, err)
	}
	return nil
}
