package respond

import "github.com/hammamikhairi/foodrescuer/internal/domain"

// templateCatalog maps each reply kind to its phrasing variants. Tokens in
// braces are filled from the reply data.
func templateCatalog() map[domain.ReplyKind][]string {
	return map[domain.ReplyKind][]string{
		domain.ReplyGreeting: {
			"Hi there! Tell me what ingredients you have and I'll find something you can cook.",
			"Hello! What's in your kitchen today?",
			"Hey! List some ingredients and I'll suggest recipes that use them.",
		},
		domain.ReplyHelp: {
			"I can help you cook with what you have. Try things like:\n" +
				"  - 'I have eggs, flour and milk'\n" +
				"  - 'What can I make?'\n" +
				"  - '1' or 'the first one' to pick a recipe\n" +
				"  - 'next' and 'back' to walk through the steps\n" +
				"  - 'I don't have butter' for substitutions\n" +
				"  - 'I'm vegan' to adapt a recipe\n" +
				"  - 'start over' to reset",
		},
		domain.ReplyGoodbye: {
			"Happy cooking! Come back when you're hungry.",
			"Bye! Enjoy your meal.",
		},
		domain.ReplyAskForIngredients: {
			"Tell me what ingredients you have first, for example 'I have eggs, flour and milk'.",
			"I need to know what's in your kitchen. What ingredients do you have?",
		},
		domain.ReplyIngredientsAdded: {
			"Got it, you have {ingredients}. Add more, or ask me what you can make.",
			"Noted: {ingredients}. Anything else, or shall I look for recipes?",
		},
		domain.ReplyIngredientsSuggestSearch: {
			"Nice, that's {total} ingredients: {ingredients}. Want me to find recipes?",
			"You have {ingredients}. That's enough to work with. Shall I search for recipes?",
		},
		domain.ReplyRecipesFound: {
			"Here's what you can make:{results}\nPick one by number or name.",
			"I found {count} recipes for you:{results}\nWhich one sounds good?",
		},
		domain.ReplyNoRecipesFound: {
			"I couldn't find anything that uses {ingredients}. Try adding a few more ingredients.",
			"Nothing matches those ingredients yet. What else do you have?",
		},
		domain.ReplyMoreRecipes: {
			"Here are a few more:{results}",
		},
		domain.ReplyNoMoreRecipes: {
			"That's everything I have for those ingredients. You could add more ingredients or pick one of the current suggestions.",
		},
		domain.ReplyRecipeSelected: {
			"Great choice, {recipe_name}! You have {match_percentage}% of the ingredients. Say 'details' for the full recipe or 'next' to start cooking.",
			"{recipe_name} it is. You have {match_percentage}% of what it needs. Want the details, or shall we start?",
		},
		domain.ReplyInvalidSelection: {
			"Please pick a number between 1 and {total}.",
			"That's not one of the options. Choose between 1 and {total}.",
		},
		domain.ReplySelectionUnclear: {
			"Which one do you mean? Pick a number between 1 and {total}, or say the recipe name.",
		},
		domain.ReplyRecipeDetails: {
			"Here's the full recipe:\n{recipe}\nSay 'next' when you're ready to start.",
		},
		domain.ReplyNoCurrentRecipe: {
			"We haven't picked a recipe yet. Tell me your ingredients and I'll suggest some.",
			"There's no recipe selected. Want me to search with your ingredients?",
		},
		domain.ReplyFirstStep: {
			"Let's cook! Step {step_number} of {total_steps}: {instruction}",
		},
		domain.ReplyNextStep: {
			"Step {step_number} of {total_steps}: {instruction}",
			"Next up, step {step_number} of {total_steps}: {instruction}",
		},
		domain.ReplyPreviousStep: {
			"Back to step {step_number} of {total_steps}: {instruction}",
		},
		domain.ReplyRecipeCompleted: {
			"That was the last step. Your {recipe_name} is done, enjoy!",
			"All done! The {recipe_name} is ready. Bon appetit!",
		},
		domain.ReplySubstitutionFound: {
			"You can use {substitute} instead of {ingredient} ({ratio}). {notes}",
			"No {ingredient}? Use {substitute}, {ratio}. {notes}",
		},
		domain.ReplySubstitutionOptions: {
			"You don't seem to have a direct replacement on hand, but {ingredient} can be swapped for:{options}",
		},
		domain.ReplyNoSubstitutionFound: {
			"I don't know a good substitute for {ingredient}, sorry. You might want to pick a different recipe.",
		},
		domain.ReplyAskWhichIngredient: {
			"Which ingredient are you missing?",
			"Sure, what ingredient do you need a substitute for?",
		},
		domain.ReplyIngredientQuantity: {
			"You'll need {quantity}.",
			"The recipe calls for {quantity}.",
		},
		domain.ReplyIngredientQuantities: {
			"For {recipe_name} you'll need:{ingredients}",
		},
		domain.ReplyIngredientNotInRecipe: {
			"{recipe_name} doesn't use any {ingredient}.",
		},
		domain.ReplyNoQuantities: {
			"The recipe just says '{ingredient}' without an amount. Use it to taste.",
		},
		domain.ReplyDietaryNoted: {
			"Noted, I'll keep {restrictions} in mind for future suggestions.",
			"Got it, {restrictions} it is. I'll factor that into recipes.",
		},
		domain.ReplyDietaryAdapted: {
			"I've adapted {recipe_name} for {restrictions}:{substitutions}",
		},
		domain.ReplyDietaryUnclear: {
			"Which dietary restriction should I apply? I know vegetarian, vegan, gluten-free, dairy-free and nut-free.",
		},
		domain.ReplyEnhancement: {
			"You could take {recipe_name} up a notch with {suggestions} - you already have them!",
			"Since you have {suggestions}, try adding them to the {recipe_name}.",
		},
		domain.ReplyNoEnhancement: {
			"{recipe_name} looks good as it is. Nothing in your kitchen jumps out as an upgrade.",
		},
		domain.ReplyAcknowledged: {
			"Alright!",
			"Okay!",
		},
		domain.ReplyAcknowledgedNegative: {
			"No problem. Let me know what you'd like to do instead.",
			"Okay, just say the word when you need something.",
		},
		domain.ReplyResetComplete: {
			"Fresh start! Tell me what ingredients you have.",
			"Everything's cleared. What's in your kitchen?",
		},
		domain.ReplyResetKeptIngredients: {
			"Starting over, but I kept your ingredients: {ingredients}. What would you like to cook?",
		},
		domain.ReplyUnknownInitial: {
			"I didn't catch that. Tell me what ingredients you have and we'll go from there.",
			"Hmm, not sure what you mean. Try 'I have eggs and flour', or say 'help'.",
		},
		domain.ReplyUnknownWithIngredients: {
			"I didn't catch that. You have {count} ingredients so far - want me to find recipes?",
		},
		domain.ReplyUnknownWithRecipe: {
			"I didn't catch that. We're cooking {recipe_name} - say 'next' for the next step or 'help' for options.",
		},
	}
}
