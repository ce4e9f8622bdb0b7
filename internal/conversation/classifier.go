// Package conversation turns free text into classified intents with
// extracted entities: ingredients, recipe selections and dietary
// restrictions.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordClassifier)(nil)

// KeywordClassifier matches user input to intents using ordered keyword
// patterns; first match wins. Swap this out for an embedding-backed
// classifier when one is available.
type KeywordClassifier struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordClassifier creates a pattern-based intent classifier.
func NewKeywordClassifier(log *logger.Logger) *KeywordClassifier {
	c := &KeywordClassifier{log: log}
	c.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(quit|exit|bye|goodbye)\b`), domain.IntentQuit},
		{regexp.MustCompile(`(?i)\b(start over|begin again|new conversation|restart)\b|^reset\b`), domain.IntentReset},
		{regexp.MustCompile(`(?i)^(help|what can you do|how does this work)\b`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(hi|hello|hey|good morning|good afternoon|good evening)\b`), domain.IntentGreeting},
		{regexp.MustCompile(`(?i)^(yes|yeah|yep|sure|ok|okay|sounds good|please do|y)[.!]?$`), domain.IntentAffirm},
		{regexp.MustCompile(`(?i)^(no|nope|nah|not really|no thanks|n)[.!]?$`), domain.IntentDeny},
		{regexp.MustCompile(`(?i)\b(how much|how many)\b`), domain.IntentIngredientQuantity},
		// Substitution wording must win over plain declaration: "i don't
		// have butter" also contains "have".
		{regexp.MustCompile(`(?i)\b(substitut|instead of|replace|swap|alternative|don'?t have|do not have|ran out of|i'?m out of|i'?m missing)`), domain.IntentRequestSubstitution},
		{regexp.MustCompile(`(?i)\b(vegetarian|vegan|gluten[- ]?free|dairy[- ]?free|nut[- ]?free|lactose|keto|paleo|pescatarian|kosher|halal)\b`), domain.IntentDietaryRestriction},
		{regexp.MustCompile(`(?i)\b(enhance|improve|make it better|upgrade|elevate|take it up)\b`), domain.IntentEnhanceRecipe},
		{regexp.MustCompile(`(?i)\b(more recipes|show more|other recipes|other options|something else|different recipe)\b`), domain.IntentShowMoreRecipes},
		{regexp.MustCompile(`(?i)\b(next step|what'?s next|keep going|then what|proceed)\b|^(next|done|continue)[.!]?$`), domain.IntentNextStep},
		{regexp.MustCompile(`(?i)\b(previous step|go back|back up|repeat that|last step again)\b|^(previous|back)[.!]?$`), domain.IntentPreviousStep},
		{regexp.MustCompile(`(?i)\b(full recipe|whole recipe|recipe details|show me the recipe|see the recipe|how do i make)\b|^details[.!]?$`), domain.IntentRecipeDetails},
		{regexp.MustCompile(`(?i)\b(what can i (make|cook)|find (me )?(a )?recipes?|search for|suggest|recommend)\b`), domain.IntentSearchByIngredients},
		{regexp.MustCompile(`(?i)\b(i have|i'?ve got|i got|there (is|are))\b`), domain.IntentDeclareIngredients},
		{regexp.MustCompile(`(?i)\b(select|pick|choose)\b|\b(first|second|third|fourth|fifth|last) (one|recipe|option)\b|\b(recipe|option|number) \d+\b`), domain.IntentSelectRecipe},
	}
	return c
}

// Parse classifies input and attaches extracted entities. Classification
// never fails; unmatched input comes back as IntentUnknown so the engine
// can try contextual inference.
func (c *KeywordClassifier) Parse(ctx context.Context, input string, session *domain.Session) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	c.log.Debug("classifying input: %q", trimmed)
	entities := Extract(trimmed)

	// Bare numbers select a suggestion.
	if isDigits(trimmed) {
		entities.RecipeNumber = trimmed
		return &domain.Intent{Type: domain.IntentSelectRecipe, Confidence: 0.95, Entities: entities}, nil
	}

	for _, rule := range c.patterns {
		if rule.regex.MatchString(trimmed) {
			c.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent, Confidence: 0.9, Entities: entities}, nil
		}
	}

	// A plain ingredient list ("eggs, flour and milk") counts as a
	// declaration.
	if len(entities.Ingredients) > 0 {
		return &domain.Intent{Type: domain.IntentDeclareIngredients, Confidence: 0.6, Entities: entities}, nil
	}

	c.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Confidence: 0.2, Entities: entities}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
