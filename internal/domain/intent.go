package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentGreeting
	IntentDeclareIngredients
	IntentSearchByIngredients
	IntentSelectRecipe
	IntentRecipeDetails
	IntentShowMoreRecipes
	IntentNextStep
	IntentPreviousStep
	IntentRequestSubstitution
	IntentDietaryRestriction
	IntentEnhanceRecipe
	IntentIngredientQuantity
	IntentAffirm
	IntentDeny
	IntentHelp
	IntentReset
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentDeclareIngredients:
		return "declare_ingredients"
	case IntentSearchByIngredients:
		return "search_by_ingredients"
	case IntentSelectRecipe:
		return "select_recipe"
	case IntentRecipeDetails:
		return "get_recipe_details"
	case IntentShowMoreRecipes:
		return "show_more_recipes"
	case IntentNextStep:
		return "next_step"
	case IntentPreviousStep:
		return "previous_step"
	case IntentRequestSubstitution:
		return "request_substitution"
	case IntentDietaryRestriction:
		return "dietary_restriction"
	case IntentEnhanceRecipe:
		return "enhance_recipe"
	case IntentIngredientQuantity:
		return "ingredient_quantity"
	case IntentAffirm:
		return "affirm"
	case IntentDeny:
		return "deny"
	case IntentHelp:
		return "request_help"
	case IntentReset:
		return "reset"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Entities holds everything extracted from one utterance alongside the
// intent. Absent fields stay zero-valued.
type Entities struct {
	Ingredients         []string
	MissingIngredients  []string
	DietaryRestrictions []string
	RecipeNumber        string // "3", "last"
	RecipeName          string
}

// Intent represents a classified user utterance.
type Intent struct {
	Type       IntentType
	Confidence float64
	Entities   Entities
}

// intentNames maps snake_case names to IntentType values.
var intentNames = map[string]IntentType{
	"greeting":              IntentGreeting,
	"declare_ingredients":   IntentDeclareIngredients,
	"search_by_ingredients": IntentSearchByIngredients,
	"select_recipe":         IntentSelectRecipe,
	"get_recipe_details":    IntentRecipeDetails,
	"show_more_recipes":     IntentShowMoreRecipes,
	"next_step":             IntentNextStep,
	"previous_step":         IntentPreviousStep,
	"request_substitution":  IntentRequestSubstitution,
	"dietary_restriction":   IntentDietaryRestriction,
	"enhance_recipe":        IntentEnhanceRecipe,
	"ingredient_quantity":   IntentIngredientQuantity,
	"affirm":                IntentAffirm,
	"deny":                  IntentDeny,
	"request_help":          IntentHelp,
	"reset":                 IntentReset,
	"quit":                  IntentQuit,
	"unknown":               IntentUnknown,
}

// IntentFromString converts a snake_case intent name to an IntentType.
// Returns IntentUnknown for unrecognized names.
func IntentFromString(name string) IntentType {
	if t, ok := intentNames[name]; ok {
		return t
	}
	return IntentUnknown
}
