// Compressed snapshots.
//
// A snapshot is a single Zstd stream holding a marker line that records
// the Format, followed by the store's encoded file content. It is a
// portable backup: Restore on any store with the same Format brings the
// rows back and persists them. The encoder favours speed over ratio since
// snapshots are usually taken on the write path.
package coldb

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/compress/zstd"
)

// snapshotMagic prefixes the first line of a decompressed snapshot.
const snapshotMagic = "coldb-snapshot:"

// Snapshot writes a Zstd-compressed copy of the store to w.
func (s *Store) Snapshot(w io.Writer) error {
	data, err := s.encoded()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithZeroFrames(true), // an empty store still yields a decodable frame
	)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	marker := snapshotMagic + strconv.Itoa(s.config.Format) + "\n"
	if _, err := io.WriteString(enc, marker); err != nil {
		enc.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Restore replaces every row with the content of a snapshot read from r
// and saves. The store is unchanged if the snapshot cannot be decoded or
// was taken from a store with a different Format; both cases return
// ErrCorruptSnapshot.
func (s *Store) Restore(r io.Reader) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return fmt.Errorf("%w: zstd: %w", ErrCorruptSnapshot, err)
	}

	marker, body, ok := bytes.Cut(data, []byte("\n"))
	if !ok || !bytes.HasPrefix(marker, []byte(snapshotMagic)) {
		return fmt.Errorf("%w: missing format marker", ErrCorruptSnapshot)
	}
	format, err := strconv.Atoi(string(marker[len(snapshotMagic):]))
	if err != nil {
		return fmt.Errorf("%w: format marker %q", ErrCorruptSnapshot, marker)
	}
	if format != s.config.Format {
		return fmt.Errorf("%w: snapshot format %d, store format %d",
			ErrCorruptSnapshot, format, s.config.Format)
	}

	tmp := &Store{rows: make(map[string][]string)}
	if err := decode(body, s.config.Format, s.config.MaxLineSize, tmp.put); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	s.keys, s.rows = tmp.keys, tmp.rows
	s.head, s.hasHead = tmp.head, tmp.hasHead

	if err := s.save(); err != nil {
		return fmt.Errorf("restore: save: %w", err)
	}
	return nil
}
