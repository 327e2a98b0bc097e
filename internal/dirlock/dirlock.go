package dirlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another process already holds the lock.
var ErrLocked = errors.New("directory is being organized by another process")

// Lock is a held directory lock.
type Lock struct {
	root string
	path string
	lock *flock.Flock
}

// Path returns the lock file location.
func (l *Lock) Path() string { return l.path }

// Root returns the absolute directory the lock guards.
func (l *Lock) Root() string { return l.root }

// Acquire takes a non-blocking lock for root with its lock file in lockDir.
func Acquire(lockDir, root string) (*Lock, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}

	path := filepath.Join(lockDir, lockName(abs))
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, abs)
	}
	return &Lock{root: abs, path: path, lock: fl}, nil
}

// Release drops the lock. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

func lockName(abs string) string {
	sum := sha256.Sum256([]byte(abs))
	return hex.EncodeToString(sum[:8]) + ".lock"
}
