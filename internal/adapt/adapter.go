// Package adapt rewrites recipes around what the user is missing:
// ingredient substitutions, dietary-restriction adjustments and
// flavor-profile suggestions.
package adapt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
	"github.com/hammamikhairi/foodrescuer/internal/recipe"
)

// Adapter produces modified recipe copies. The source recipe is never
// mutated.
type Adapter struct {
	kb  domain.SubstitutionSource
	log *logger.Logger
}

// New creates an adapter over the given knowledge base.
func New(kb domain.SubstitutionSource, log *logger.Logger) *Adapter {
	return &Adapter{kb: kb, log: log}
}

// AdaptRecipe returns a copy of r with every resolvable missing ingredient
// replaced by the best substitution the user can make. Missing ingredients
// with no usable substitute are left untouched; the caller can tell from
// the returned Substitutions list what was actually swapped.
func (a *Adapter) AdaptRecipe(r *domain.Recipe, missing, available []string) *domain.Recipe {
	adapted := r.Clone()
	for _, miss := range missing {
		entry, err := a.FindBestSubstitution(miss, available)
		if err != nil {
			a.log.Debug("no substitution for %s: %v", miss, err)
			continue
		}
		sub := domain.Substitution{
			Original:   domain.NormalizeIngredient(miss),
			Substitute: entry.Substitute,
			Ratio:      entry.Ratio,
			Notes:      entry.Notes,
		}
		a.applySubstitution(adapted, sub)
		adapted.Substitutions = append(adapted.Substitutions, sub)
	}
	return adapted
}

// FindBestSubstitution resolves the best substitute for an ingredient given
// what the user has. Policy: exact candidate match beats substring-fuzzy
// match beats same-category fallback; within a tier higher confidence wins.
func (a *Adapter) FindBestSubstitution(ingredient string, available []string) (*domain.SubstitutionEntry, error) {
	norm := domain.NormalizeIngredient(ingredient)
	have := make([]string, 0, len(available))
	for _, av := range available {
		have = append(have, domain.NormalizeIngredient(av))
	}

	candidates := a.kb.Lookup(norm)

	// Exact: the user has the substitute under the same name.
	if best := bestWhere(candidates, func(e domain.SubstitutionEntry) bool {
		sub := domain.NormalizeIngredient(e.Substitute)
		for _, h := range have {
			if h == sub {
				return true
			}
		}
		return false
	}); best != nil {
		return best, nil
	}

	// Fuzzy: substring overlap between substitute and something the user has.
	if best := bestWhere(candidates, func(e domain.SubstitutionEntry) bool {
		sub := domain.NormalizeIngredient(e.Substitute)
		for _, h := range have {
			if domain.IngredientsOverlap(h, sub) {
				return true
			}
		}
		return false
	}); best != nil {
		return best, nil
	}

	// Category fallback: anything the user has from the same category.
	if category := a.kb.Category(norm); category != "" {
		for _, member := range a.kb.CategoryMembers(category) {
			if member == norm {
				continue
			}
			for _, h := range have {
				if domain.IngredientsOverlap(h, member) {
					return &domain.SubstitutionEntry{
						Substitute: member,
						Ratio:      1.0,
						Notes:      fmt.Sprintf("Same category (%s), adjust to taste", category),
						Confidence: 0.3,
					}, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("substituting %s: %w", norm, domain.ErrNoSubstitution)
}

func bestWhere(entries []domain.SubstitutionEntry, keep func(domain.SubstitutionEntry) bool) *domain.SubstitutionEntry {
	var best *domain.SubstitutionEntry
	for i := range entries {
		if !keep(entries[i]) {
			continue
		}
		if best == nil || entries[i].Confidence > best.Confidence {
			best = &entries[i]
		}
	}
	return best
}

// applySubstitution rewrites the matching ingredient line and every
// instruction mentioning the original. The substitution note lands on the
// first affected instruction only.
func (a *Adapter) applySubstitution(r *domain.Recipe, sub domain.Substitution) {
	for i, ing := range r.Parsed {
		if !domain.IngredientsOverlap(domain.NormalizeIngredient(ing.Name), sub.Original) {
			continue
		}
		r.Parsed[i] = rewriteIngredient(ing, sub)
		r.Ingredients[i] = r.Parsed[i].Original
		break
	}

	pattern, err := wordPattern(sub.Original)
	if err != nil {
		return
	}
	noted := false
	for i, inst := range r.Instructions {
		if !pattern.MatchString(inst) {
			continue
		}
		replaced := pattern.ReplaceAllString(inst, sub.Substitute)
		if !noted && sub.Notes != "" {
			replaced = fmt.Sprintf("%s (Note: %s)", replaced, sub.Notes)
			noted = true
		}
		r.Instructions[i] = replaced
	}
}

// rewriteIngredient builds the replacement line, rescaling a parseable
// leading quantity by the substitution ratio and falling back to a plain
// textual swap when parsing fails.
func rewriteIngredient(ing domain.Ingredient, sub domain.Substitution) domain.Ingredient {
	quantity := ing.Quantity
	if quantity != "" && sub.Ratio > 0 {
		if scaled, ok := recipe.ScaleQuantity(quantity, sub.Ratio); ok {
			quantity = scaled
		}
	}
	line := sub.Substitute
	if quantity != "" {
		line = quantity + " " + sub.Substitute
	}
	return domain.Ingredient{Name: sub.Substitute, Quantity: quantity, Original: line}
}

// wordPattern compiles a whole-word, case-insensitive matcher for an
// ingredient name.
func wordPattern(name string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(name)) + `\b`)
}
