package recipe

import (
	"context"
	"sort"
	"strings"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeFinder = (*Retriever)(nil)

const (
	defaultMaxResults = 5
	defaultMinMatched = 1
)

// Retriever scores and ranks catalog recipes against a set of available
// ingredients.
type Retriever struct {
	catalog *Catalog
	embed   domain.Embedder // nil disables semantic mode
	log     *logger.Logger
}

// RetrieverOption customizes a Retriever.
type RetrieverOption func(*Retriever)

// WithEmbedder enables the semantic scoring mode backed by the given
// embedder.
func WithEmbedder(e domain.Embedder) RetrieverOption {
	return func(r *Retriever) { r.embed = e }
}

// NewRetriever creates a retriever over the given catalog.
func NewRetriever(catalog *Catalog, log *logger.Logger, opts ...RetrieverOption) *Retriever {
	r := &Retriever{catalog: catalog, log: log}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Find returns recipes ranked against the available ingredients. Available
// ingredients are normalized through the quantity parser first, so "2 eggs"
// and "eggs" query the same thing. Candidates come from the inverted index;
// each candidate's ingredients are partitioned into matched and missing by
// case-insensitive substring overlap in either direction.
func (r *Retriever) Find(ctx context.Context, available []string, opts domain.SearchOptions) ([]domain.ScoredRecipe, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = defaultMaxResults
	}
	if opts.MinMatched <= 0 {
		opts.MinMatched = defaultMinMatched
	}

	query := normalizeQuery(available)
	if len(query) == 0 {
		return nil, domain.ErrNoIngredients
	}

	recipes, index := r.catalog.snapshot()
	candidates := candidateSet(index, query)
	r.log.Debug("retrieval: %d query ingredients, %d candidates", len(query), len(candidates))

	results := make([]domain.ScoredRecipe, 0, len(candidates))
	for _, idx := range candidates {
		rec := recipes[idx]
		matched, missing := partitionIngredients(rec, query)
		if len(matched) < opts.MinMatched {
			continue
		}
		results = append(results, domain.ScoredRecipe{
			Recipe:  rec,
			Score:   score(opts.Mode, rec, len(matched)),
			Matched: matched,
			Missing: missing,
		})
	}

	if opts.Mode == domain.ScoreSemantic && r.embed != nil {
		if err := r.applySemanticScores(ctx, query, results); err != nil {
			// Backend trouble downgrades the search, never the turn.
			r.log.Warn("semantic scoring unavailable, using coverage: %v", err)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results, nil
}

// normalizeQuery strips quantities the user typed and drops empties.
func normalizeQuery(available []string) []string {
	out := make([]string, 0, len(available))
	for _, a := range available {
		name, _ := ParseQuantity(a)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// candidateSet unions the index postings of every query ingredient. Index
// keys are matched by the same substring-overlap rule as scoring, so a
// query for "egg" still reaches recipes indexed under "eggs".
func candidateSet(index map[string][]int, query []string) []int {
	seen := make(map[int]bool)
	var out []int
	for key, postings := range index {
		for _, q := range query {
			if !domain.IngredientsOverlap(key, q) {
				continue
			}
			for _, idx := range postings {
				if !seen[idx] {
					seen[idx] = true
					out = append(out, idx)
				}
			}
			break
		}
	}
	sort.Ints(out)
	return out
}

// partitionIngredients splits a recipe's ingredient names into those the
// user has and those missing.
func partitionIngredients(rec *domain.Recipe, query []string) (matched, missing []string) {
	for _, ing := range rec.Parsed {
		name := domain.NormalizeIngredient(ing.Name)
		if name == "" {
			continue
		}
		found := false
		for _, q := range query {
			if domain.IngredientsOverlap(name, q) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}
	return matched, missing
}

func score(mode domain.ScoreMode, rec *domain.Recipe, matched int) float64 {
	switch mode {
	case domain.ScoreCount:
		return float64(matched)
	default:
		// ScoreSemantic starts from coverage too; the semantic pass
		// blends on top when the backend is reachable.
		total := len(rec.Parsed)
		if total == 0 {
			return 0
		}
		return float64(matched) / float64(total)
	}
}

// ingredientText joins a recipe's parsed ingredient names for embedding.
func ingredientText(rec *domain.Recipe) string {
	names := make([]string, 0, len(rec.Parsed))
	for _, ing := range rec.Parsed {
		names = append(names, ing.Name)
	}
	return strings.Join(names, " ")
}
