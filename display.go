// Human-readable dump for debugging.
package coldb

import (
	"fmt"
	"io"
	"strings"
)

// Display writes every row as "key || cell | cell | " followed by a dashed
// rule of the same width. Empty cells print as "empty".
func (s *Store) Display(w io.Writer) error {
	var b strings.Builder
	for _, k := range s.keys {
		b.Reset()
		b.WriteString(k)
		b.WriteString(" || ")
		for _, cell := range s.rows[k] {
			if cell == "" {
				cell = "empty"
			}
			b.WriteString(cell)
			b.WriteString(" | ")
		}
		n := b.Len()
		if _, err := fmt.Fprintf(w, "%s\n%s\n", b.String(), strings.Repeat("-", n)); err != nil {
			return err
		}
	}
	return nil
}
