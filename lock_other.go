//go:build !unix && !windows

package coldb

// Platforms without flock get no cross-process protection.
func (l *fileLock) lock(LockMode) error { return nil }

func (l *fileLock) unlock() error { return nil }
