// Line codecs for the backing file.
//
// FormatText is the native layout: one row per line as key:cell,cell,...
// The key ends at the first ':' and cells are split on ','. Nothing is
// escaped, so a ',' or ':' inside a cell, or a ':' inside a key, does not
// survive a round trip. Lines without a ':' are skipped on load.
//
// FormatJSONL stores each row as a JSON object {"k":key,"v":[cells]} and
// round-trips any text. A line that fails to parse is reported as
// ErrCorruptLine rather than skipped, because JSON lines are never written
// partially by this package.
package coldb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// File format constants.
const (
	FormatText  = 1 // key:cell,cell
	FormatJSONL = 2 // {"k":"key","v":["cell","cell"]}
)

// line is the JSONL representation of one row.
type line struct {
	Key   string   `json:"k"`
	Cells []string `json:"v"`
}

// encode writes every row in iteration order.
func encode(w io.Writer, format int, keys []string, rows map[string][]string) error {
	bw := bufio.NewWriter(w)
	for _, k := range keys {
		switch format {
		case FormatJSONL:
			cells := rows[k]
			if cells == nil {
				cells = []string{}
			}
			data, err := json.Marshal(line{Key: k, Cells: cells})
			if err != nil {
				return fmt.Errorf("encode %q: %w", k, err)
			}
			bw.Write(data)
		default:
			bw.WriteString(k)
			bw.WriteByte(':')
			bw.WriteString(strings.Join(rows[k], ","))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// decode parses data and calls fn for each row in file order.
func decode(data []byte, format, maxLine int, fn func(key string, cells []string)) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, min(maxLine, 64*1024)), maxLine)

	n := 0
	for scanner.Scan() {
		n++
		ln := bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})

		switch format {
		case FormatJSONL:
			if len(bytes.TrimSpace(ln)) == 0 {
				continue
			}
			var l line
			if err := json.Unmarshal(ln, &l); err != nil {
				return fmt.Errorf("%w: line %d: %w", ErrCorruptLine, n, err)
			}
			if l.Cells == nil {
				l.Cells = []string{}
			}
			fn(l.Key, l.Cells)
		default:
			key, cells, ok := strings.Cut(string(ln), ":")
			if !ok {
				continue
			}
			fn(key, strings.Split(cells, ","))
		}
	}
	return scanner.Err()
}
