package domain

import "context"

// ScoreMode selects how retrieval candidates are scored.
type ScoreMode int

const (
	// ScoreCoverage ranks by matched / total ingredients in the recipe.
	ScoreCoverage ScoreMode = iota
	// ScoreCount ranks by the raw matched-ingredient count.
	ScoreCount
	// ScoreSemantic blends embedding similarity with coverage. Falls back
	// to ScoreCoverage when no embedding backend is configured.
	ScoreSemantic
)

// SearchOptions tune one retrieval call. Zero values mean the defaults
// (MaxResults 5, MinMatched 1, ScoreCoverage).
type SearchOptions struct {
	MaxResults int
	MinMatched int
	Mode       ScoreMode
}

// RecipeSource provides read access to the recipe corpus. Implementations
// can be in-memory (seeded), file-backed, or API-backed. The corpus is
// loaded once and read-only afterward.
type RecipeSource interface {
	List(ctx context.Context) ([]*Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	FindByName(ctx context.Context, name string) (*Recipe, error)
	FindBySubstring(ctx context.Context, fragment string) (*Recipe, error)
}

// RecipeFinder scores and ranks recipes against available ingredients.
type RecipeFinder interface {
	Find(ctx context.Context, available []string, opts SearchOptions) ([]ScoredRecipe, error)
	Enhancements(ctx context.Context, r *Recipe, available []string) ([]string, error)
}

// SubstitutionSource is the ingredient-substitution knowledge base.
// Lookup resolves exact-then-substring; Category supports the same-category
// fallback in the adapter.
type SubstitutionSource interface {
	Lookup(ingredient string) []SubstitutionEntry
	Category(ingredient string) string
	CategoryMembers(category string) []string
	Add(ingredient string, entry SubstitutionEntry) error
}

// IntentParser converts raw user input into a classified intent with
// extracted entities. Implementations can be pattern-based or
// embedding-backed.
type IntentParser interface {
	Parse(ctx context.Context, input string, session *Session) (*Intent, error)
}

// SessionStore keeps conversation sessions. Implementations can be
// in-memory or any other backend.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*Session, error)
}

// Embedder produces sentence embeddings for semantic scoring. Any error is
// treated as "backend unavailable" by callers, never surfaced to the user.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}
