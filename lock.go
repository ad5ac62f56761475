// Advisory file locking around each load and save.
//
// The store holds no file handle between calls, so the lock lives only as
// long as one read or one rewrite. Saves take an exclusive lock and loads
// a shared one, which stops a reader in another process from seeing a
// half-written file. It does not make concurrent writers safe: the last
// save still wins.
package coldb

import (
	"os"
)

// LockMode selects shared (read) or exclusive (write) locking.
type LockMode int

const (
	LockShared LockMode = iota
	LockExclusive
)

// fileLock is an flock held on an open file.
type fileLock struct {
	f *os.File
}

// acquire blocks until the lock is granted.
func acquire(f *os.File, mode LockMode) (*fileLock, error) {
	l := &fileLock{f: f}
	if err := l.lock(mode); err != nil {
		return nil, err
	}
	return l, nil
}

// Release drops the lock. The file itself stays open.
func (l *fileLock) Release() error {
	return l.unlock()
}
