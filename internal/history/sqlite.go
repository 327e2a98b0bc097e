package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// connPragmas run on every pooled connection, not just the first one.
var connPragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"journal_mode(WAL)",
}

func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	query := url.Values{"_pragma": connPragmas}
	db, err := sql.Open("sqlite", path+"?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// sql.Open is lazy; surface a bad path or pragma here.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect history db %s: %w", path, err)
	}
	return db, nil
}

const (
	busyAttempts   = 5
	busyBackoff    = 10 * time.Millisecond
	busyBackoffMax = 200 * time.Millisecond
)

// busy reports whether err is SQLITE_BUSY or one of its extended codes.
func busy(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code()&0xff == sqlite3.SQLITE_BUSY
}

// withBusyRetry reruns op while another writer holds the database, backing
// off exponentially. Any other error is returned immediately.
func withBusyRetry(ctx context.Context, op func() error) error {
	wait := busyBackoff
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || !busy(err) || attempt == busyAttempts {
			return err
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		wait = min(wait*2, busyBackoffMax)
	}
}
