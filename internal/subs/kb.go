// Package subs holds the ingredient-substitution knowledge base: a ranked
// candidate table per ingredient plus a category index used for fallback
// suggestions.
package subs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

// Compile-time interface check.
var _ domain.SubstitutionSource = (*KnowledgeBase)(nil)

const (
	substitutionsFile = "substitutions.json"
	categoriesFile    = "categories.json"
)

// KnowledgeBase maps ingredients to ranked substitution candidates and
// groups ingredients into categories. Loaded once at startup; Add is the
// only mutation and exists so learned substitutions can be persisted.
type KnowledgeBase struct {
	mu            sync.RWMutex
	substitutions map[string][]domain.SubstitutionEntry
	categories    map[string][]string // category -> members
	log           *logger.Logger
}

// New creates a knowledge base seeded with the built-in tables.
func New(log *logger.Logger) *KnowledgeBase {
	return &KnowledgeBase{
		substitutions: seedSubstitutions(),
		categories:    seedCategories(),
		log:           log,
	}
}

// Lookup returns the ranked candidates for an ingredient, resolving the key
// exactly first, then by substring overlap. Returns nil when nothing is
// known.
func (kb *KnowledgeBase) Lookup(ingredient string) []domain.SubstitutionEntry {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	key := domain.NormalizeIngredient(ingredient)
	if entries, ok := kb.substitutions[key]; ok {
		return entries
	}
	for known, entries := range kb.substitutions {
		if domain.IngredientsOverlap(known, key) {
			return entries
		}
	}
	return nil
}

// Category returns the category an ingredient belongs to, or "".
func (kb *KnowledgeBase) Category(ingredient string) string {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	key := domain.NormalizeIngredient(ingredient)
	for category, members := range kb.categories {
		for _, member := range members {
			if member == key || domain.IngredientsOverlap(member, key) {
				return category
			}
		}
	}
	return ""
}

// CategoryMembers returns the ingredients in a category.
func (kb *KnowledgeBase) CategoryMembers(category string) []string {
	kb.mu.RLock()
	defer kb.mu.RUnlock()
	return kb.categories[strings.ToLower(category)]
}

// Add appends a substitution candidate for an ingredient at runtime.
func (kb *KnowledgeBase) Add(ingredient string, entry domain.SubstitutionEntry) error {
	key := domain.NormalizeIngredient(ingredient)
	if key == "" || entry.Substitute == "" {
		return fmt.Errorf("adding substitution: empty ingredient or substitute")
	}
	if entry.Ratio <= 0 {
		entry.Ratio = 1.0
	}

	kb.mu.Lock()
	defer kb.mu.Unlock()
	for _, existing := range kb.substitutions[key] {
		if existing.Substitute == entry.Substitute {
			return domain.ErrAlreadyExists
		}
	}
	kb.substitutions[key] = append(kb.substitutions[key], entry)
	kb.log.Info("learned substitution: %s -> %s", key, entry.Substitute)
	return nil
}

// Save persists the tables as JSON under dir.
func (kb *KnowledgeBase) Save(dir string) error {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := writeJSON(filepath.Join(dir, substitutionsFile), kb.substitutions); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, categoriesFile), kb.categories); err != nil {
		return err
	}
	kb.log.Debug("knowledge base saved to %s", dir)
	return nil
}

// Load replaces the tables from JSON files under dir. Missing files leave
// the seeded tables in place.
func (kb *KnowledgeBase) Load(dir string) error {
	var subs map[string][]domain.SubstitutionEntry
	if err := readJSON(filepath.Join(dir, substitutionsFile), &subs); err != nil {
		return err
	}
	var cats map[string][]string
	if err := readJSON(filepath.Join(dir, categoriesFile), &cats); err != nil {
		return err
	}

	kb.mu.Lock()
	defer kb.mu.Unlock()
	if subs != nil {
		kb.substitutions = subs
	}
	if cats != nil {
		kb.categories = cats
	}
	kb.log.Info("knowledge base loaded from %s (%d ingredients)", dir, len(kb.substitutions))
	return nil
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
