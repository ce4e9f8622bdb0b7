package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

func TestMemoryStoreCRUD(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	session := domain.NewSession("test-session-1")
	session.AddIngredients([]string{"eggs", "flour"})

	// Save.
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Load.
	loaded, err := store.Load(ctx, "test-session-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ID != session.ID {
		t.Fatalf("expected ID %s, got %s", session.ID, loaded.ID)
	}
	if len(loaded.AvailableIngredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(loaded.AvailableIngredients))
	}

	// Load nonexistent.
	if _, err := store.Load(ctx, "nonexistent"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	// ListActive.
	all, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 session, got %d", len(all))
	}

	// Delete.
	if err := store.Delete(ctx, "test-session-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, "test-session-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}

	// Delete nonexistent.
	if err := store.Delete(ctx, "nonexistent"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
