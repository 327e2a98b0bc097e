package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestWithBusyRetryReturnsOtherErrorsImmediately(t *testing.T) {
	sentinel := errors.New("constraint failed")
	calls := 0
	err := withBusyRetry(context.Background(), func() error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one attempt, got %d", calls)
	}
}

func TestOpenAppliesPragmasPerConnection(t *testing.T) {
	db, err := openDB(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(2)

	ctx := context.Background()
	conns := make([]interface{ Close() error }, 0, 2)
	for range 2 {
		conn, err := db.Conn(ctx)
		if err != nil {
			t.Fatalf("conn: %v", err)
		}
		conns = append(conns, conn)

		var fk int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk); err != nil {
			t.Fatalf("read foreign_keys: %v", err)
		}
		if fk != 1 {
			t.Fatalf("expected foreign_keys on every connection, got %d", fk)
		}
		var mode string
		if err := conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
			t.Fatalf("read journal_mode: %v", err)
		}
		if mode != "wal" {
			t.Fatalf("expected wal journal mode, got %q", mode)
		}
	}
	for _, conn := range conns {
		_ = conn.Close()
	}
}
