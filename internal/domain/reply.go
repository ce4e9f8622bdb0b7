package domain

// ReplyKind tags the kind of response a turn produced. The renderer owns
// the wording; the engine only picks the kind and supplies the data.
type ReplyKind string

const (
	ReplyGreeting                 ReplyKind = "greeting"
	ReplyHelp                     ReplyKind = "help"
	ReplyGoodbye                  ReplyKind = "goodbye"
	ReplyAskForIngredients        ReplyKind = "ask_for_ingredients"
	ReplyIngredientsAdded         ReplyKind = "ingredients_added"
	ReplyIngredientsSuggestSearch ReplyKind = "ingredients_added_suggest_search"
	ReplyRecipesFound             ReplyKind = "multiple_recipes_found"
	ReplyNoRecipesFound           ReplyKind = "no_recipes_found"
	ReplyMoreRecipes              ReplyKind = "more_recipes"
	ReplyNoMoreRecipes            ReplyKind = "no_more_recipes"
	ReplyRecipeSelected           ReplyKind = "recipe_selected"
	ReplyInvalidSelection         ReplyKind = "invalid_recipe_selection"
	ReplySelectionUnclear         ReplyKind = "recipe_selection_unclear"
	ReplyRecipeDetails            ReplyKind = "recipe_details"
	ReplyNoCurrentRecipe          ReplyKind = "no_current_recipe"
	ReplyFirstStep                ReplyKind = "first_step"
	ReplyNextStep                 ReplyKind = "next_step"
	ReplyPreviousStep             ReplyKind = "previous_step"
	ReplyRecipeCompleted          ReplyKind = "recipe_completed"
	ReplySubstitutionFound        ReplyKind = "substitution_found"
	ReplySubstitutionOptions      ReplyKind = "substitution_options"
	ReplyNoSubstitutionFound      ReplyKind = "no_substitution_found"
	ReplyAskWhichIngredient       ReplyKind = "ask_what_ingredient_missing"
	ReplyIngredientQuantity       ReplyKind = "ingredient_quantity"
	ReplyIngredientQuantities     ReplyKind = "ingredient_quantities"
	ReplyIngredientNotInRecipe    ReplyKind = "ingredient_not_in_recipe"
	ReplyNoQuantities             ReplyKind = "no_quantities_available"
	ReplyDietaryNoted             ReplyKind = "dietary_restriction_noted"
	ReplyDietaryAdapted           ReplyKind = "recipe_adapted_for_diet"
	ReplyDietaryUnclear           ReplyKind = "dietary_restriction_unclear"
	ReplyEnhancement              ReplyKind = "recipe_enhancement"
	ReplyNoEnhancement            ReplyKind = "no_enhancement_needed"
	ReplyAcknowledged             ReplyKind = "acknowledged"
	ReplyAcknowledgedNegative     ReplyKind = "acknowledged_negative"
	ReplyResetComplete            ReplyKind = "reset_complete"
	ReplyResetKeptIngredients     ReplyKind = "reset_with_ingredients"
	ReplyUnknownInitial           ReplyKind = "unknown_initial"
	ReplyUnknownWithIngredients   ReplyKind = "unknown_with_ingredients"
	ReplyUnknownWithRecipe        ReplyKind = "unknown_with_recipe"
)

// Reply is the response descriptor for one turn: a kind plus the data the
// renderer needs to fill a template.
type Reply struct {
	Kind ReplyKind
	Data map[string]any
}

// NewReply builds a reply with an initialized data map.
func NewReply(kind ReplyKind) *Reply {
	return &Reply{Kind: kind, Data: make(map[string]any)}
}

// With sets one data field and returns the reply for chaining.
func (r *Reply) With(key string, value any) *Reply {
	r.Data[key] = value
	return r
}
