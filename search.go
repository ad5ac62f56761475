// Search over cell content.
//
// Literal patterns (no regex metacharacters) take a fast path through
// strings.Contains; anything else is compiled once with regexp. Matching
// is case-insensitive unless CaseSensitive is set. The header row is
// skipped since its cells are column names, not data.
//
// Results are yielded lazily in row order, then column order within a
// row. Break from the range loop to stop early.
package coldb

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// SearchOptions configures Search behaviour.
type SearchOptions struct {
	CaseSensitive bool
	Column        string // restrict matching to one column; "" means all
}

// Match is a single search hit.
type Match struct {
	Key    string
	Column string
	Value  string
}

// Search matches pattern against data cells. Returns ErrInvalidPattern
// for a bad regex and ErrCoordinatesNotFound for an unknown Column.
func (s *Store) Search(pattern string, opts SearchOptions) iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		match, err := matcher(pattern, opts.CaseSensitive)
		if err != nil {
			yield(Match{}, err)
			return
		}

		header := s.header()
		byKey := opts.Column == KeyColumn
		only := -1
		if opts.Column != "" && !byKey {
			pos, ok := resolve(opts.Column, header)
			if !ok {
				yield(Match{}, fmt.Errorf("search column %q: %w", opts.Column, ErrCoordinatesNotFound))
				return
			}
			only = cellIndex(pos)
		}

		for _, k := range s.keys {
			if s.hasHead && k == s.head {
				continue
			}
			if byKey {
				if match(k) && !yield(Match{Key: k, Column: KeyColumn, Value: k}, nil) {
					return
				}
				continue
			}
			for i, cell := range s.rows[k] {
				if only >= 0 && i != only {
					continue
				}
				if !match(cell) {
					continue
				}
				if !yield(Match{Key: k, Column: columnName(header, i), Value: cell}, nil) {
					return
				}
			}
		}
	}
}

// matcher builds the predicate for pattern.
func matcher(pattern string, caseSensitive bool) (func(string) bool, error) {
	if regexp.QuoteMeta(pattern) == pattern {
		if caseSensitive {
			return func(v string) bool { return strings.Contains(v, pattern) }, nil
		}
		needle := strings.ToLower(pattern)
		return func(v string) bool { return strings.Contains(strings.ToLower(v), needle) }, nil
	}

	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re.MatchString, nil
}

// columnName names cell index i, falling back to its position for cells
// past the end of the header.
func columnName(header []string, i int) string {
	if i < len(header) {
		return header[i]
	}
	return fmt.Sprintf("#%d", i+1)
}
