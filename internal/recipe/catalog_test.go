package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

func testLog() *logger.Logger {
	return logger.New(logger.LevelOff, nil)
}

func TestCatalogGet(t *testing.T) {
	cat := NewCatalog(testLog())
	ctx := context.Background()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"classic-pancakes", nil},
		{"vegetable-stir-fry", nil},
		{"nonexistent", domain.ErrRecipeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := cat.Get(ctx, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID != tt.id {
				t.Fatalf("expected ID %s, got %s", tt.id, r.ID)
			}
			if len(r.Instructions) == 0 {
				t.Fatal("recipe has no instructions")
			}
			if len(r.Parsed) != len(r.Ingredients) {
				t.Fatalf("parsed %d of %d ingredient lines", len(r.Parsed), len(r.Ingredients))
			}
		})
	}
}

func TestCatalogFindByName(t *testing.T) {
	cat := NewCatalog(testLog())
	ctx := context.Background()

	r, err := cat.FindByName(ctx, "classic pancakes")
	if err != nil {
		t.Fatalf("exact name: %v", err)
	}
	if r.ID != "classic-pancakes" {
		t.Fatalf("expected classic-pancakes, got %s", r.ID)
	}

	r, err = cat.FindBySubstring(ctx, "pancake")
	if err != nil {
		t.Fatalf("substring: %v", err)
	}
	if r.ID != "classic-pancakes" {
		t.Fatalf("expected classic-pancakes, got %s", r.ID)
	}

	if _, err := cat.FindByName(ctx, "no such dish"); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestCatalogIndexesParsedNames(t *testing.T) {
	cat := NewCatalogFrom(testLog(), []*domain.Recipe{
		{
			Name:         "Toast",
			Ingredients:  []string{"2 slices bread", "1 tablespoon butter"},
			Instructions: []string{"Toast the bread.", "Spread the butter."},
		},
	})

	_, index := cat.snapshot()
	if _, ok := index["bread"]; !ok {
		t.Errorf("index missing %q, keys: %v", "bread", index)
	}
	if _, ok := index["butter"]; !ok {
		t.Errorf("index missing %q, keys: %v", "butter", index)
	}

	r, err := cat.Get(context.Background(), "toast")
	if err != nil {
		t.Fatalf("slugified ID lookup: %v", err)
	}
	if r.Name != "Toast" {
		t.Fatalf("expected Toast, got %s", r.Name)
	}
}
