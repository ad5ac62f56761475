// Write-through persistence.
//
// save encodes every row into a buffer, then rewrites the file in place
// under an exclusive lock: truncate, write from offset zero, optional
// fsync. The handle is closed before save returns. Callers receive any
// failure so a mutation is never reported durable when it was not.
package coldb

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// save rewrites the backing file with the current rows.
func (s *Store) save() (err error) {
	data, err := s.encoded()
	if err != nil {
		return err
	}

	if s.config.CheckExternal {
		if changed, cerr := s.Modified(); cerr == nil && changed {
			s.config.Logger.Warn("coldb: file changed since last load, overwriting", "path", s.path)
		}
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open for writing: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	lock, err := acquire(f, LockExclusive)
	if err != nil {
		return fmt.Errorf("lock: %w", err)
	}
	defer lock.Release()

	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	if _, err := f.WriteAt(data, 0); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if s.config.SyncWrites {
		if err := f.Sync(); err != nil {
			return fmt.Errorf("sync: %w", err)
		}
	}

	s.sum = checksum(data, s.config.Checksum)
	return nil
}

// encoded returns the file content for the current rows.
func (s *Store) encoded() ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, s.config.Format, s.keys, s.rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Checksum returns the digest of the content a save would write now. It
// equals the digest of the file right after a successful save.
func (s *Store) Checksum() (string, error) {
	data, err := s.encoded()
	if err != nil {
		return "", err
	}
	return checksum(data, s.config.Checksum), nil
}

// Modified reports whether the file on disk differs from what this store
// last loaded or saved, which means another writer touched it.
func (s *Store) Modified() (bool, error) {
	data, err := readLocked(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.sum != "", nil
	}
	if err != nil {
		return false, fmt.Errorf("modified: %w", err)
	}
	return checksum(data, s.config.Checksum) != s.sum, nil
}
