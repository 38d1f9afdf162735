package sqlite

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"nutricoach/internal/model"
	repo "nutricoach/internal/profile/repository"
	"nutricoach/pkg/log"
	pkgSqlite "nutricoach/pkg/sqlite"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), pkgSqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop())
}

func TestGetProfile_NotFound(t *testing.T) {
	_, err := newTestRepo(t).GetProfile(context.Background(), "nobody")
	if !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveProfile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	want := model.UserProfile{
		Conditions: []string{"diabetes"},
		Allergies:  []string{"peanuts", "shellfish"},
		Custom:     []string{"low iron", "low iron"},
	}
	if err := r.SaveProfile(ctx, "c1", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := r.GetProfile(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	want.Conditions = []string{"hypertension"}
	if err := r.SaveProfile(ctx, "c1", want); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = r.GetProfile(ctx, "c1")
	if !reflect.DeepEqual(got.Conditions, []string{"hypertension"}) {
		t.Errorf("conditions after overwrite = %v", got.Conditions)
	}

	if _, err := r.GetProfile(ctx, "c2"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("profiles leaked across clients: %v", err)
	}
}
