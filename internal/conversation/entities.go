package conversation

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/recipe"
)

// declarationPhrases introduce ingredients the user has.
var declarationPhrases = []string{
	"i have ", "i've got ", "i got ", "there is ", "there are ",
	"in my kitchen i have ", "available ingredients are ",
}

// searchPhrases introduce ingredients inside a search request.
var searchPhrases = []string{
	"what can i make with ", "what can i cook with ", "recipes with ",
	"find recipes with ", "find a recipe with ", "search for recipes with ",
	"suggest something with ", "recommend something with ",
}

// missingPhrases introduce ingredients the user lacks.
var missingPhrases = []string{
	"i don't have ", "i do not have ", "don't have ", "i'm out of ",
	"i am out of ", "ran out of ", "i'm missing ", "i am missing ",
	"substitute for ", "substitution for ", "instead of ", "replace ",
	"without ",
}

// commonIngredients is the lexicon used when no introducing phrase is
// present.
var commonIngredients = []string{
	"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp", "tofu",
	"eggs", "egg", "milk", "butter", "cheese", "cream", "yogurt",
	"flour", "sugar", "salt", "pepper", "rice", "pasta", "bread",
	"potato", "potatoes", "onion", "garlic", "tomato", "tomatoes",
	"carrot", "carrots", "broccoli", "spinach", "lettuce", "cucumber",
	"bell pepper", "mushrooms", "beans", "black beans", "chickpeas",
	"lentils", "avocado", "lime", "lemon", "apple", "banana", "orange",
	"olive oil", "vegetable oil", "coconut oil", "sesame oil", "soy sauce",
	"vinegar", "honey", "maple syrup", "basil", "oregano", "cilantro",
	"parsley", "cumin", "curry powder", "turmeric", "ginger", "cinnamon",
	"tortillas", "feta cheese", "parmesan cheese", "coconut milk",
	"heavy cream", "baking powder", "baking soda", "cornstarch",
}

var ordinals = map[string]string{
	"first":  "1",
	"second": "2",
	"third":  "3",
	"fourth": "4",
	"fifth":  "5",
	"last":   "last",
}

var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bnumber\s+(\d+)\b`),
	regexp.MustCompile(`\brecipe\s+(\d+)\b`),
	regexp.MustCompile(`\boption\s+(\d+)\b`),
	regexp.MustCompile(`\b(\d+)(?:st|nd|rd|th)?\b`),
}

var restrictionTerms = []string{
	"vegetarian", "vegan", "gluten-free", "gluten free", "dairy-free",
	"dairy free", "nut-free", "nut free", "lactose-free", "lactose free",
	"low-carb", "low carb", "keto", "paleo", "pescatarian", "kosher", "halal",
}

// Extract pulls every entity kind out of one utterance.
func Extract(text string) domain.Entities {
	lower := strings.ToLower(strings.TrimSpace(text))
	entities := domain.Entities{
		DietaryRestrictions: extractRestrictions(lower),
		MissingIngredients:  extractMissing(lower),
	}
	entities.Ingredients = extractIngredients(lower)
	entities.RecipeNumber = extractSelectionNumber(lower)
	entities.RecipeName = extractSelectionName(lower)
	return entities
}

// extractIngredients finds ingredients after a declaration or search
// phrase, or by lexicon scan when no phrase is present.
func extractIngredients(lower string) []string {
	for _, phrase := range append(append([]string{}, declarationPhrases...), searchPhrases...) {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}
		rest := trimClause(lower[idx+len(phrase):])
		return splitIngredientList(rest)
	}

	// No phrase: keep list items that are known ingredients.
	var out []string
	for _, item := range splitIngredientList(lower) {
		if inLexicon(item) {
			out = append(out, item)
		}
	}
	return out
}

// extractMissing finds ingredients after a missing phrase, plus bare
// "no <known ingredient>" mentions.
func extractMissing(lower string) []string {
	var out []string
	for _, phrase := range missingPhrases {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}
		rest := trimClause(lower[idx+len(phrase):])
		for _, item := range splitIngredientList(rest) {
			out = appendUnique(out, item)
		}
	}
	for _, m := range regexp.MustCompile(`\bno\s+([a-z ]+)`).FindAllStringSubmatch(lower, -1) {
		candidate := strings.TrimSpace(m[1])
		if inLexicon(candidate) {
			out = appendUnique(out, candidate)
		}
	}
	return out
}

func extractRestrictions(lower string) []string {
	var out []string
	for _, term := range restrictionTerms {
		if !regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`).MatchString(lower) {
			continue
		}
		normalized := term
		if strings.HasSuffix(term, " free") {
			normalized = strings.TrimSuffix(term, " free") + "-free"
		}
		out = appendUnique(out, normalized)
	}
	return out
}

func extractSelectionNumber(lower string) string {
	for _, p := range numberPatterns[:3] {
		if m := p.FindStringSubmatch(lower); m != nil {
			return m[1]
		}
	}
	for ordinal, number := range ordinals {
		if strings.Contains(lower, "the "+ordinal) ||
			strings.Contains(lower, ordinal+" one") ||
			strings.Contains(lower, ordinal+" recipe") {
			return number
		}
	}
	if m := numberPatterns[3].FindStringSubmatch(lower); m != nil {
		return m[1]
	}
	return ""
}

func extractSelectionName(lower string) string {
	for _, verb := range []string{"select ", "pick ", "choose ", "make ", "let's make "} {
		idx := strings.Index(lower, verb)
		if idx < 0 {
			continue
		}
		rest := trimClause(lower[idx+len(verb):])
		rest = strings.TrimPrefix(rest, "the ")
		if rest == "" || isDigits(rest) {
			continue
		}
		return rest
	}
	return ""
}

// splitIngredientList splits "eggs, flour and milk" style lists, stripping
// any quantities the user typed.
func splitIngredientList(text string) []string {
	replaced := strings.NewReplacer(" and ", ",", " & ", ",", ";", ",").Replace(text)
	var out []string
	for _, part := range strings.Split(replaced, ",") {
		name, _ := recipe.ParseQuantity(part)
		name = strings.TrimSpace(name)
		name = strings.TrimPrefix(name, "some ")
		name = strings.TrimPrefix(name, "the ")
		if name != "" {
			out = appendUnique(out, name)
		}
	}
	return out
}

// trimClause cuts the text at the first sentence-level boundary.
func trimClause(text string) string {
	for _, stop := range []string{".", "?", "!", " but ", " so ", " because "} {
		if idx := strings.Index(text, stop); idx >= 0 {
			text = text[:idx]
		}
	}
	return strings.TrimSpace(text)
}

func inLexicon(candidate string) bool {
	for _, known := range commonIngredients {
		if candidate == known {
			return true
		}
	}
	return false
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
