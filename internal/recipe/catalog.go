// Package recipe provides the recipe corpus, the inverted ingredient index
// and the retrieval engine that ranks recipes against what the user has.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*Catalog)(nil)

// Catalog holds the recipe corpus in memory together with an ingredient
// inverted index. The corpus is loaded once and read-only afterward; the
// lock only guards against a reload racing concurrent readers.
type Catalog struct {
	mu      sync.RWMutex
	recipes []*domain.Recipe
	byID    map[string]int
	index   map[string][]int // normalized ingredient name -> recipe indices
	log     *logger.Logger
}

// NewCatalog creates a catalog preloaded with the built-in recipes.
func NewCatalog(log *logger.Logger) *Catalog {
	c := &Catalog{
		byID:  make(map[string]int),
		index: make(map[string][]int),
		log:   log,
	}
	c.replace(seedRecipes())
	return c
}

// NewCatalogFrom creates a catalog over the given recipes. Used by tests
// and by callers that load the corpus themselves.
func NewCatalogFrom(log *logger.Logger, recipes []*domain.Recipe) *Catalog {
	c := &Catalog{
		byID:  make(map[string]int),
		index: make(map[string][]int),
		log:   log,
	}
	c.replace(recipes)
	return c
}

// LoadFile replaces the corpus with recipes from a JSON file (an array of
// recipe records). The built-in seed stays when the file cannot be read.
func (c *Catalog) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading corpus %s: %w", path, err)
	}
	var recipes []*domain.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		return fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	c.replace(recipes)
	c.log.Info("loaded %d recipes from %s", len(recipes), path)
	return nil
}

// replace swaps in a new corpus and rebuilds the inverted index. Each
// ingredient line is parsed once here; queries never re-parse the corpus.
func (c *Catalog) replace(recipes []*domain.Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recipes = recipes
	c.byID = make(map[string]int, len(recipes))
	c.index = make(map[string][]int)

	for i, r := range recipes {
		if r.ID == "" {
			r.ID = slugify(r.Name)
		}
		c.byID[r.ID] = i
		if r.Parsed == nil {
			r.Parsed = parseIngredients(r.Ingredients)
		}
		for _, ing := range r.Parsed {
			name := domain.NormalizeIngredient(ing.Name)
			if name == "" {
				continue
			}
			postings := c.index[name]
			if len(postings) > 0 && postings[len(postings)-1] == i {
				continue
			}
			c.index[name] = append(postings, i)
		}
	}
	c.log.Debug("indexed %d recipes, %d distinct ingredients", len(recipes), len(c.index))
}

func parseIngredients(lines []string) []domain.Ingredient {
	parsed := make([]domain.Ingredient, 0, len(lines))
	for _, line := range lines {
		name, quantity := ParseQuantity(line)
		parsed = append(parsed, domain.Ingredient{Name: name, Quantity: quantity, Original: line})
	}
	return parsed
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// List returns every recipe in corpus order.
func (c *Catalog) List(ctx context.Context) ([]*domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out, nil
}

// Get returns a recipe by ID.
func (c *Catalog) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		c.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrRecipeNotFound
	}
	return c.recipes[i], nil
}

// FindByName returns the recipe whose name matches exactly,
// case-insensitively.
func (c *Catalog) FindByName(ctx context.Context, name string) (*domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	want := strings.ToLower(strings.TrimSpace(name))
	for _, r := range c.recipes {
		if strings.ToLower(r.Name) == want {
			return r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

// FindBySubstring returns the first recipe whose name contains the
// fragment, case-insensitively.
func (c *Catalog) FindBySubstring(ctx context.Context, fragment string) (*domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	want := strings.ToLower(strings.TrimSpace(fragment))
	if want == "" {
		return nil, domain.ErrRecipeNotFound
	}
	for _, r := range c.recipes {
		if strings.Contains(strings.ToLower(r.Name), want) {
			return r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

// FormattedIngredients returns the recipe's ingredient lines decomposed
// into name, quantity and original text.
func (c *Catalog) FormattedIngredients(r *domain.Recipe) []domain.Ingredient {
	if r.Parsed != nil {
		return r.Parsed
	}
	return parseIngredients(r.Ingredients)
}

// snapshot returns the current corpus and index for one retrieval pass.
func (c *Catalog) snapshot() ([]*domain.Recipe, map[string][]int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recipes, c.index
}
