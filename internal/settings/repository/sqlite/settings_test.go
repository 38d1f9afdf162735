package sqlite

import (
	"context"
	"testing"

	"nutricoach/pkg/log"
	pkgSqlite "nutricoach/pkg/sqlite"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), pkgSqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()).(*implRepository)
}

func TestUpsertAndList(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	empty, err := r.ListSettings(ctx, "client-a")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty settings, got %v, %v", empty, err)
	}

	if err := r.UpsertSettings(ctx, "client-a", map[string]string{"provider": "openai", "openai_api_key": "sk-1"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := r.UpsertSettings(ctx, "client-a", map[string]string{"provider": "usda"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := r.UpsertSettings(ctx, "client-b", map[string]string{"provider": "hf"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := r.ListSettings(ctx, "client-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got["provider"] != "usda" {
		t.Errorf("provider = %q, want usda", got["provider"])
	}
	if got["openai_api_key"] != "sk-1" {
		t.Errorf("switching provider must keep other credentials, got %q", got["openai_api_key"])
	}
	if len(got) != 2 {
		t.Errorf("client isolation broken: %v", got)
	}
}
