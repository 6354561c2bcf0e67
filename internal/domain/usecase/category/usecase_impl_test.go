package category

import (
	"context"
	"errors"
	"testing"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	gormdb "todo-api/internal/infra/database/gorm"
)

func newUseCase(t *testing.T) UseCase {
	t.Helper()

	database, err := gormdb.Open(gormdb.Config{Driver: "sqlite", URL: t.TempDir(), Name: "categories"})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { gormdb.Close(database) })

	return NewCategoryUseCase(db.NewGormCategoryGateway(database))
}

func TestSeedIsIdempotent(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	if err := uc.Seed(ctx, []string{"General", " Work ", "", "General"}); err != nil {
		t.Fatal(err)
	}
	if err := uc.Seed(ctx, []string{"Work", "Home"}); err != nil {
		t.Fatal(err)
	}

	categories, err := uc.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, category := range categories {
		names = append(names, category.Name)
	}
	want := []string{"General", "Home", "Work"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("got %v, want %v", names, want)
		}
	}
}

func TestFindByID(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	if err := uc.Seed(ctx, []string{"General"}); err != nil {
		t.Fatal(err)
	}
	categories, err := uc.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}

	found, err := uc.FindByID(ctx, categories[0].ID)
	if err != nil || found.Name != "General" {
		t.Fatalf("got %+v, %v", found, err)
	}

	if _, err := uc.FindByID(ctx, "0b7e5b2c-1f3e-4c1e-9c55-9f1c8f7c2a11"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("unknown id: expected ErrNotFound, got %v", err)
	}
	if _, err := uc.FindByID(ctx, "not-an-id"); !errors.Is(err, model.ErrInvalidID) {
		t.Errorf("malformed id: expected ErrInvalidID, got %v", err)
	}
}
