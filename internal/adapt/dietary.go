package adapt

import (
	"fmt"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
)

// dietaryRule pairs a denylist of offending terms with the replacement to
// use for each.
type dietaryRule struct {
	denylist      []string
	substitutions map[string]string
}

var dietaryRules = map[string]dietaryRule{
	"vegetarian": {
		denylist: []string{"chicken", "beef", "pork", "bacon", "ham", "turkey", "lamb", "fish", "salmon", "tuna", "shrimp", "gelatin"},
		substitutions: map[string]string{
			"chicken": "tofu",
			"beef":    "lentils",
			"pork":    "jackfruit",
			"bacon":   "smoked paprika",
			"ham":     "smoked tofu",
			"turkey":  "tofu",
			"lamb":    "mushrooms",
			"fish":    "tofu",
			"salmon":  "tofu",
			"tuna":    "chickpeas",
			"shrimp":  "mushrooms",
			"gelatin": "agar-agar",
		},
	},
	"vegan": {
		denylist: []string{"chicken", "beef", "pork", "bacon", "fish", "milk", "butter", "cheese", "cream", "yogurt", "eggs", "egg", "honey", "gelatin"},
		substitutions: map[string]string{
			"chicken": "tofu",
			"beef":    "lentils",
			"pork":    "jackfruit",
			"bacon":   "smoked paprika",
			"fish":    "tofu",
			"milk":    "almond milk",
			"butter":  "olive oil",
			"cheese":  "nutritional yeast",
			"cream":   "coconut cream",
			"yogurt":  "coconut yogurt",
			"eggs":    "flax eggs",
			"egg":     "flax egg",
			"honey":   "maple syrup",
			"gelatin": "agar-agar",
		},
	},
	"gluten-free": {
		denylist: []string{"flour", "pasta", "bread", "soy sauce", "couscous", "barley"},
		substitutions: map[string]string{
			"flour":     "gluten-free flour blend",
			"pasta":     "gluten-free pasta",
			"bread":     "gluten-free bread",
			"soy sauce": "tamari",
			"couscous":  "quinoa",
			"barley":    "rice",
		},
	},
	"dairy-free": {
		denylist: []string{"milk", "butter", "cheese", "cream", "yogurt"},
		substitutions: map[string]string{
			"milk":   "almond milk",
			"butter": "olive oil",
			"cheese": "nutritional yeast",
			"cream":  "coconut cream",
			"yogurt": "coconut yogurt",
		},
	},
	"nut-free": {
		denylist: []string{"peanut butter", "almond milk", "almonds", "cashews", "cashew cream", "walnuts", "pecans"},
		substitutions: map[string]string{
			"peanut butter": "sunflower seed butter",
			"almond milk":   "oat milk",
			"almonds":       "sunflower seeds",
			"cashews":       "sunflower seeds",
			"cashew cream":  "coconut cream",
			"walnuts":       "pumpkin seeds",
			"pecans":        "pumpkin seeds",
		},
	},
}

// KnownRestriction reports whether a restriction has an adaptation rule.
func KnownRestriction(restriction string) bool {
	_, ok := dietaryRules[domain.NormalizeIngredient(restriction)]
	return ok
}

// ForDietaryRestrictions returns a copy of r adjusted for the given
// restrictions. An empty Substitutions list on the result means nothing in
// the recipe needed changing; deciding whether that reads as "already
// compatible" is up to the caller.
func (a *Adapter) ForDietaryRestrictions(r *domain.Recipe, restrictions []string) *domain.Recipe {
	adapted := r.Clone()
	for _, restriction := range restrictions {
		norm := domain.NormalizeIngredient(restriction)
		rule, ok := dietaryRules[norm]
		if !ok {
			a.log.Debug("no dietary rule for %q", restriction)
			continue
		}
		changed := false
		for _, term := range rule.denylist {
			if !a.recipeMentions(adapted, term) {
				continue
			}
			sub := domain.Substitution{
				Original:   term,
				Substitute: rule.substitutions[term],
				Ratio:      1.0,
				Notes:      fmt.Sprintf("Swapped for a %s version", norm),
			}
			a.applySubstitution(adapted, sub)
			adapted.Substitutions = append(adapted.Substitutions, sub)
			changed = true
		}
		if changed {
			adapted.DietaryModifications = append(adapted.DietaryModifications, norm)
		}
	}
	return adapted
}

func (a *Adapter) recipeMentions(r *domain.Recipe, term string) bool {
	pattern, err := wordPattern(term)
	if err != nil {
		return false
	}
	for _, line := range r.Ingredients {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
