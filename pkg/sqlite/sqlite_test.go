package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenAppliesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "nutri.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"settings", "profiles"} {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	// Reopening must be idempotent.
	db2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	db2.Close()
}

func TestOpenMemory(t *testing.T) {
	db, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("INSERT INTO settings (client_id, key, value) VALUES ('c', 'k', 'v')"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var v string
	if err := db.QueryRow("SELECT value FROM settings WHERE client_id='c' AND key='k'").Scan(&v); err != nil || v != "v" {
		t.Errorf("got %q, %v", v, err)
	}
}
