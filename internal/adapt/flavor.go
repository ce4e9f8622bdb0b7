package adapt

import "github.com/hammamikhairi/foodrescuer/internal/domain"

// flavorProfiles are fixed keyword sets used to heuristically classify a
// recipe's cuisine style. profileOrder keeps classification deterministic
// on ties.
var profileOrder = []string{"italian", "mexican", "asian", "mediterranean", "indian"}

var flavorProfiles = map[string][]string{
	"italian":       {"basil", "oregano", "tomatoes", "garlic", "olive oil", "parmesan cheese", "pasta", "mozzarella"},
	"mexican":       {"cumin", "cilantro", "lime", "tortillas", "black beans", "avocado", "jalapeno", "salsa"},
	"asian":         {"soy sauce", "ginger", "sesame oil", "rice", "garlic", "green onion", "tofu"},
	"mediterranean": {"olive oil", "lemon juice", "feta cheese", "olives", "cucumber", "oregano", "chickpeas"},
	"indian":        {"curry powder", "turmeric", "cumin", "ginger", "coconut milk", "rice", "lentils"},
}

// ClassifyFlavor returns the profile whose keyword set overlaps the
// recipe's ingredients the most, or "" when nothing overlaps.
func ClassifyFlavor(r *domain.Recipe) string {
	best, bestCount := "", 0
	for _, profile := range profileOrder {
		count := 0
		for _, keyword := range flavorProfiles[profile] {
			if ingredientListed(r, keyword) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = profile, count
		}
	}
	return best
}

// SuggestComplementary suggests ingredients the user has that belong to the
// recipe's flavor profile but are not already in it.
func (a *Adapter) SuggestComplementary(r *domain.Recipe, available []string) (profile string, suggestions []string) {
	profile = ClassifyFlavor(r)
	if profile == "" {
		return "", nil
	}
	for _, keyword := range flavorProfiles[profile] {
		if ingredientListed(r, keyword) {
			continue
		}
		for _, have := range available {
			if domain.IngredientsOverlap(domain.NormalizeIngredient(have), keyword) {
				suggestions = append(suggestions, keyword)
				break
			}
		}
	}
	return profile, suggestions
}

func ingredientListed(r *domain.Recipe, keyword string) bool {
	for _, ing := range r.Parsed {
		if domain.IngredientsOverlap(domain.NormalizeIngredient(ing.Name), keyword) {
			return true
		}
	}
	return false
}
