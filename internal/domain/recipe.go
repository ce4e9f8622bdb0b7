// Package domain defines the core types and interfaces for the recipe
// assistant. All other packages depend on domain; domain depends on nothing.
package domain

// Recipe represents a recipe as loaded from the corpus. Source recipes are
// immutable after load; adaptation produces a modified copy and records what
// changed in Substitutions and DietaryModifications.
type Recipe struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Ingredients  []string  `json:"ingredients"`  // raw ingredient lines, ordered
	Instructions []string  `json:"instructions"` // ordered
	Minutes      int       `json:"minutes,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Nutrition    []float64 `json:"nutrition,omitempty"`
	Parsed       []Ingredient

	// Set only on adapted copies.
	Substitutions        []Substitution
	DietaryModifications []string
}

// Clone returns a deep copy safe to mutate independently of the original.
func (r *Recipe) Clone() *Recipe {
	cp := *r
	cp.Ingredients = append([]string(nil), r.Ingredients...)
	cp.Instructions = append([]string(nil), r.Instructions...)
	cp.Tags = append([]string(nil), r.Tags...)
	cp.Nutrition = append([]float64(nil), r.Nutrition...)
	cp.Parsed = append([]Ingredient(nil), r.Parsed...)
	cp.Substitutions = append([]Substitution(nil), r.Substitutions...)
	cp.DietaryModifications = append([]string(nil), r.DietaryModifications...)
	return &cp
}

// Ingredient is a single ingredient line decomposed into a name and an
// optional quantity. Original preserves the raw line.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"` // "", "2", "1 1/2 cups", ...
	Original string `json:"original"`
}

// Substitution records one ingredient swap applied to a recipe.
type Substitution struct {
	Original   string  `json:"original"`
	Substitute string  `json:"substitute"`
	Ratio      float64 `json:"ratio"` // substitute amount per 1 unit of original
	Notes      string  `json:"notes,omitempty"`
}

// SubstitutionEntry is a knowledge-base candidate for replacing an
// ingredient. Entries for one ingredient form a ranked list.
type SubstitutionEntry struct {
	Substitute string  `json:"substitute"`
	Ratio      float64 `json:"ratio"`
	Notes      string  `json:"notes,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// ScoredRecipe is one retrieval result: a recipe with its match score and
// the partition of its ingredient names into matched and missing.
type ScoredRecipe struct {
	Recipe  *Recipe
	Score   float64
	Matched []string
	Missing []string
}
