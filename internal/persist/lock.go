package persist

import (
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// lockTimeout bounds how long Save/Load wait for the snapshot lock before
// giving up; a REPL process that died holding the lock should not wedge
// every future Save/Load forever.
const (
	lockTimeout = 2 * time.Second
	lockPerms   = 0o644
	dirPerms    = 0o755
)

// fileLock holds an exclusive advisory lock on a snapshot's ".lock"
// sidecar file, taken out for the duration of a Save or Load so two
// processes (or a REPL racing its own SIGTERM-triggered SAVE) never
// read a file while another writes it.
type fileLock struct {
	file *os.File
}

func (l *fileLock) unlock() error {
	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	return l.file.Close()
}

// lockPath puts the lock sidecar next to the snapshot file rather than
// flocking the snapshot file itself, so a concurrent atomic.WriteFile
// (which replaces the inode) can never drop a lock out from under it.
func lockPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	return filepath.Join(dir, "."+base+".lock")
}

func acquireLock(path string) (*fileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(lockPath(path), os.O_CREATE|os.O_RDWR, lockPerms)
	if err != nil {
		return nil, err
	}

	fd := int(file.Fd())
	done := make(chan error, 1)

	go func() {
		done <- unix.Flock(fd, unix.LOCK_EX)
	}()

	select {
	case err := <-done:
		if err != nil {
			file.Close()
			return nil, err
		}

		return &fileLock{file: file}, nil

	case <-time.After(lockTimeout):
		file.Close()
		return nil, os.ErrDeadlineExceeded
	}
}
