package recipe

import (
	"context"
	"sort"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
)

// similarityThreshold is the minimum Jaccard ingredient overlap for two
// recipes to count as similar for enhancement suggestions.
const similarityThreshold = 0.5

const maxEnhancements = 5

// Enhancements suggests ingredients the user already has that would fit the
// given recipe: it looks at recipes with strongly overlapping ingredient
// sets, collects their ingredients absent from this recipe and keeps the
// ones the user actually has.
func (r *Retriever) Enhancements(ctx context.Context, rec *domain.Recipe, available []string) ([]string, error) {
	if rec == nil {
		return nil, domain.ErrNoRecipeSelected
	}

	recipes, _ := r.catalog.snapshot()
	base := nameSet(rec)

	candidateExtras := make(map[string]bool)
	for _, other := range recipes {
		if other.ID == rec.ID {
			continue
		}
		otherSet := nameSet(other)
		if jaccard(base, otherSet) <= similarityThreshold {
			continue
		}
		for name := range otherSet {
			if !base[name] {
				candidateExtras[name] = true
			}
		}
	}

	query := normalizeQuery(available)
	var suggestions []string
	for extra := range candidateExtras {
		for _, have := range query {
			if domain.IngredientsOverlap(extra, have) {
				suggestions = append(suggestions, extra)
				break
			}
		}
	}
	sort.Strings(suggestions)
	if len(suggestions) > maxEnhancements {
		suggestions = suggestions[:maxEnhancements]
	}
	r.log.Debug("enhancement: %d similar-recipe extras, %d the user has", len(candidateExtras), len(suggestions))
	return suggestions, nil
}

func nameSet(rec *domain.Recipe) map[string]bool {
	set := make(map[string]bool, len(rec.Parsed))
	for _, ing := range rec.Parsed {
		if name := domain.NormalizeIngredient(ing.Name); name != "" {
			set[name] = true
		}
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for name := range a {
		if b[name] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
