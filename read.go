// Loading the backing file into memory.
//
// The whole file is read under a shared lock and then decoded, so a
// concurrent save from another process is never observed half-written.
// Rows keep file order; a key repeated later in the file replaces the
// earlier cells but keeps the earlier position. The first row is the
// header.
package coldb

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// load replaces in-memory state with the file content.
func (s *Store) load() error {
	s.reset()

	data, err := readLocked(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.sum = ""
			return ErrNoFile
		}
		return fmt.Errorf("load: %w", err)
	}

	err = decode(data, s.config.Format, s.config.MaxLineSize, s.put)
	if err != nil {
		s.reset()
		return fmt.Errorf("load %s: %w", s.path, err)
	}

	s.sum = checksum(data, s.config.Checksum)
	s.config.Logger.Debug("coldb: loaded", "path", s.path, "rows", len(s.keys))
	return nil
}

// readLocked reads the whole file while holding a shared lock.
func readLocked(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lock, err := acquire(f, LockShared)
	if err != nil {
		return nil, fmt.Errorf("lock: %w", err)
	}
	defer lock.Release()

	return io.ReadAll(f)
}
