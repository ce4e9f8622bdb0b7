package engine

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
)

// suggestSearchThreshold is the ingredient count at which a declaration
// reply starts nudging toward a search.
const suggestSearchThreshold = 3

// lastAction markers used for cross-turn disambiguation.
const (
	actionDetails = "details"
	actionStep    = "step"
	actionSearch  = "search"
)

func (e *Engine) handleDeclare(s *domain.Session, ents domain.Entities) *domain.Reply {
	added := s.AddIngredients(ents.Ingredients)
	if len(ents.Ingredients) == 0 {
		return domain.NewReply(domain.ReplyAskForIngredients)
	}

	kind := domain.ReplyIngredientsAdded
	if len(s.AvailableIngredients) >= suggestSearchThreshold {
		kind = domain.ReplyIngredientsSuggestSearch
	}
	return domain.NewReply(kind).
		With("added", added).
		With("ingredients", s.AvailableIngredients).
		With("total", len(s.AvailableIngredients))
}

func (e *Engine) handleSearch(ctx context.Context, s *domain.Session, ents domain.Entities) *domain.Reply {
	// A search utterance can carry ingredients too ("what can i make
	// with eggs and rice").
	s.AddIngredients(ents.Ingredients)
	if len(s.AvailableIngredients) == 0 {
		return domain.NewReply(domain.ReplyAskForIngredients)
	}

	results, err := e.finder.Find(ctx, s.AvailableIngredients, e.searchOpts)
	if err != nil {
		e.log.Warn("recipe search failed: %v", err)
		return domain.NewReply(domain.ReplyNoRecipesFound).
			With("ingredients", s.AvailableIngredients)
	}
	if len(results) == 0 {
		return domain.NewReply(domain.ReplyNoRecipesFound).
			With("ingredients", s.AvailableIngredients)
	}

	s.SetSuggestions(results)
	s.LastAction = actionSearch
	return domain.NewReply(domain.ReplyRecipesFound).
		With("results", results).
		With("count", len(results))
}

func (e *Engine) handleShowMore(ctx context.Context, s *domain.Session) *domain.Reply {
	if len(s.SuggestedRecipes) == 0 {
		return e.handleSearch(ctx, s, domain.Entities{})
	}

	opts := e.searchOpts
	opts.MaxResults = len(s.SuggestedRecipes) + e.pageSize
	results, err := e.finder.Find(ctx, s.AvailableIngredients, opts)
	if err != nil || len(results) <= len(s.SuggestedRecipes) {
		return domain.NewReply(domain.ReplyNoMoreRecipes)
	}

	fresh := results[len(s.SuggestedRecipes):]
	// The prefix is unchanged, so an existing selection keeps its index.
	s.SuggestedRecipes = results
	return domain.NewReply(domain.ReplyMoreRecipes).
		With("results", fresh).
		With("offset", len(results)-len(fresh)).
		With("count", len(results))
}

var errSelectionUnclear = errors.New("selection unclear")

func (e *Engine) handleSelect(ctx context.Context, s *domain.Session, ents domain.Entities, lower string) *domain.Reply {
	if len(s.SuggestedRecipes) == 0 {
		// No pending suggestions: a named dish can still be pulled
		// straight from the catalog.
		if ents.RecipeName != "" {
			if rec, err := e.source.FindBySubstring(ctx, ents.RecipeName); err == nil {
				s.SetSuggestions([]domain.ScoredRecipe{scoreAgainst(rec, s)})
				return e.selectIndex(s, 0)
			}
		}
		return domain.NewReply(domain.ReplyNoCurrentRecipe)
	}

	idx, err := e.resolveSelection(s, ents, lower)
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		return domain.NewReply(domain.ReplyInvalidSelection).
			With("total", len(s.SuggestedRecipes))
	case err != nil:
		return domain.NewReply(domain.ReplySelectionUnclear).
			With("total", len(s.SuggestedRecipes))
	}
	return e.selectIndex(s, idx)
}

// resolveSelection maps extracted entities (or, failing that, raw text)
// onto an index into the suggestion list.
func (e *Engine) resolveSelection(s *domain.Session, ents domain.Entities, lower string) (int, error) {
	n := len(s.SuggestedRecipes)

	if ents.RecipeNumber != "" {
		if ents.RecipeNumber == "last" {
			return n - 1, nil
		}
		num, err := strconv.Atoi(ents.RecipeNumber)
		if err != nil {
			return 0, errSelectionUnclear
		}
		if num < 1 || num > n {
			return 0, domain.ErrInvalidSelection
		}
		return num - 1, nil
	}

	if ents.RecipeName != "" {
		if idx := e.matchSuggestionName(s, ents.RecipeName); idx >= 0 {
			return idx, nil
		}
	}
	if idx := e.matchSuggestionName(s, lower); idx >= 0 {
		return idx, nil
	}
	return 0, errSelectionUnclear
}

// matchSuggestionName finds a suggestion whose name overlaps the text.
func (e *Engine) matchSuggestionName(s *domain.Session, text string) int {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return -1
	}
	for i, sr := range s.SuggestedRecipes {
		name := strings.ToLower(sr.Recipe.Name)
		if strings.Contains(text, name) || strings.Contains(name, text) {
			return i
		}
	}
	return -1
}

func (e *Engine) selectIndex(s *domain.Session, idx int) *domain.Reply {
	scored := s.SuggestedRecipes[idx]
	s.SetCurrentRecipe(scored.Recipe)
	s.SelectedIndex = idx
	s.LastAction = ""

	total := len(scored.Recipe.Parsed)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(100 * float64(len(scored.Matched)) / float64(total)))
	}
	e.log.Debug("session %s selected recipe %s", s.ID, scored.Recipe.ID)
	return domain.NewReply(domain.ReplyRecipeSelected).
		With("recipe", scored.Recipe).
		With("recipe_name", scored.Recipe.Name).
		With("matched", scored.Matched).
		With("missing", s.MissingIngredients).
		With("match_percentage", percentage)
}

// scoreAgainst builds a ScoredRecipe for a recipe chosen by name rather
// than retrieval.
func scoreAgainst(rec *domain.Recipe, s *domain.Session) domain.ScoredRecipe {
	var matched, missing []string
	for _, ing := range rec.Parsed {
		name := domain.NormalizeIngredient(ing.Name)
		if s.HasIngredient(name) {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}
	score := 0.0
	if len(rec.Parsed) > 0 {
		score = float64(len(matched)) / float64(len(rec.Parsed))
	}
	return domain.ScoredRecipe{Recipe: rec, Score: score, Matched: matched, Missing: missing}
}

func (e *Engine) handleDetails(s *domain.Session) *domain.Reply {
	if s.CurrentRecipe == nil {
		return domain.NewReply(domain.ReplyNoCurrentRecipe)
	}
	s.DetailsRequested = true
	s.LastAction = actionDetails
	return domain.NewReply(domain.ReplyRecipeDetails).
		With("recipe", s.CurrentRecipe).
		With("missing", s.MissingIngredients)
}

func (e *Engine) handleNextStep(s *domain.Session) *domain.Reply {
	if s.CurrentRecipe == nil {
		return domain.NewReply(domain.ReplyNoCurrentRecipe)
	}

	// The first "next" shows the step under the cursor instead of
	// skipping it.
	if s.LastAction != actionStep {
		instruction, err := s.CurrentStep()
		if err != nil {
			return domain.NewReply(domain.ReplyNoCurrentRecipe)
		}
		s.LastAction = actionStep
		kind := domain.ReplyNextStep
		if s.StepIndex == 0 {
			kind = domain.ReplyFirstStep
		}
		return stepReply(kind, s, instruction)
	}

	instruction, err := s.NextStep()
	if errors.Is(err, domain.ErrNoMoreSteps) {
		return domain.NewReply(domain.ReplyRecipeCompleted).
			With("recipe_name", s.CurrentRecipe.Name)
	}
	if err != nil {
		return domain.NewReply(domain.ReplyNoCurrentRecipe)
	}
	return stepReply(domain.ReplyNextStep, s, instruction)
}

func (e *Engine) handlePreviousStep(s *domain.Session) *domain.Reply {
	if s.CurrentRecipe == nil {
		return domain.NewReply(domain.ReplyNoCurrentRecipe)
	}
	instruction, err := s.PreviousStep()
	if err != nil {
		return domain.NewReply(domain.ReplyNoCurrentRecipe)
	}
	s.LastAction = actionStep
	return stepReply(domain.ReplyPreviousStep, s, instruction)
}

func stepReply(kind domain.ReplyKind, s *domain.Session, instruction string) *domain.Reply {
	return domain.NewReply(kind).
		With("recipe_name", s.CurrentRecipe.Name).
		With("step_number", s.StepIndex+1).
		With("total_steps", len(s.CurrentRecipe.Instructions)).
		With("instruction", instruction)
}

func (e *Engine) handleSubstitution(s *domain.Session, ents domain.Entities, lower string) *domain.Reply {
	target := e.resolveSubstitutionTarget(s, ents, lower)
	if target == "" {
		return domain.NewReply(domain.ReplyAskWhichIngredient)
	}

	s.AddMissingIngredient(target)

	entry, err := e.adapter.FindBestSubstitution(target, s.AvailableIngredients)
	if err == nil {
		s.AddSubstitution(target, entry.Substitute)
		return domain.NewReply(domain.ReplySubstitutionFound).
			With("ingredient", target).
			With("substitute", entry.Substitute).
			With("ratio", entry.Ratio).
			With("notes", entry.Notes)
	}

	if options := e.kb.Lookup(target); len(options) > 0 {
		return domain.NewReply(domain.ReplySubstitutionOptions).
			With("ingredient", target).
			With("options", options)
	}
	return domain.NewReply(domain.ReplyNoSubstitutionFound).
		With("ingredient", target)
}

// resolveSubstitutionTarget picks the ingredient the user wants replaced:
// extracted entities first, then the utterance matched against the current
// recipe, then the known missing list.
func (e *Engine) resolveSubstitutionTarget(s *domain.Session, ents domain.Entities, lower string) string {
	if len(ents.MissingIngredients) > 0 {
		return ents.MissingIngredients[0]
	}
	if s.CurrentRecipe != nil {
		for _, ing := range s.CurrentRecipe.Parsed {
			name := domain.NormalizeIngredient(ing.Name)
			if name != "" && strings.Contains(lower, name) {
				return name
			}
		}
	}
	if len(s.MissingIngredients) > 0 {
		return s.MissingIngredients[0]
	}
	return ""
}

func (e *Engine) handleDietary(s *domain.Session, ents domain.Entities) *domain.Reply {
	if len(ents.DietaryRestrictions) == 0 {
		return domain.NewReply(domain.ReplyDietaryUnclear)
	}
	s.AddDietaryRestrictions(ents.DietaryRestrictions)

	if s.CurrentRecipe == nil {
		return domain.NewReply(domain.ReplyDietaryNoted).
			With("restrictions", s.DietaryRestrictions)
	}

	adapted := e.adapter.ForDietaryRestrictions(s.CurrentRecipe, s.DietaryRestrictions)
	if len(adapted.Substitutions) == 0 {
		return domain.NewReply(domain.ReplyDietaryNoted).
			With("restrictions", s.DietaryRestrictions).
			With("recipe_name", s.CurrentRecipe.Name)
	}

	// Swap in the adapted copy without losing the user's place in the
	// steps.
	step := s.StepIndex
	action := s.LastAction
	s.SetCurrentRecipe(adapted)
	s.StepIndex = step
	s.LastAction = action
	for _, sub := range adapted.Substitutions {
		s.AddSubstitution(sub.Original, sub.Substitute)
	}
	return domain.NewReply(domain.ReplyDietaryAdapted).
		With("recipe_name", adapted.Name).
		With("restrictions", adapted.DietaryModifications).
		With("substitutions", adapted.Substitutions)
}

func (e *Engine) handleEnhance(ctx context.Context, s *domain.Session) *domain.Reply {
	if s.CurrentRecipe == nil {
		return domain.NewReply(domain.ReplyNoCurrentRecipe)
	}
	suggestions, err := e.finder.Enhancements(ctx, s.CurrentRecipe, s.AvailableIngredients)
	if err != nil || len(suggestions) == 0 {
		// Fall back to flavor-profile pairing when no similar recipe
		// points at an extra ingredient.
		_, suggestions = e.adapter.SuggestComplementary(s.CurrentRecipe, s.AvailableIngredients)
	}
	if len(suggestions) == 0 {
		return domain.NewReply(domain.ReplyNoEnhancement).
			With("recipe_name", s.CurrentRecipe.Name)
	}
	return domain.NewReply(domain.ReplyEnhancement).
		With("recipe_name", s.CurrentRecipe.Name).
		With("suggestions", suggestions)
}

func (e *Engine) handleQuantity(s *domain.Session, ents domain.Entities, lower string) *domain.Reply {
	if s.CurrentRecipe == nil {
		return domain.NewReply(domain.ReplyNoCurrentRecipe)
	}

	for _, ing := range s.CurrentRecipe.Parsed {
		name := domain.NormalizeIngredient(ing.Name)
		if name == "" || !strings.Contains(lower, name) {
			continue
		}
		if ing.Quantity == "" {
			return domain.NewReply(domain.ReplyNoQuantities).
				With("recipe_name", s.CurrentRecipe.Name).
				With("ingredient", name)
		}
		return domain.NewReply(domain.ReplyIngredientQuantity).
			With("recipe_name", s.CurrentRecipe.Name).
			With("ingredient", name).
			With("quantity", ing.Quantity+" "+name)
	}

	if len(ents.Ingredients) > 0 {
		return domain.NewReply(domain.ReplyIngredientNotInRecipe).
			With("recipe_name", s.CurrentRecipe.Name).
			With("ingredient", ents.Ingredients[0])
	}

	return domain.NewReply(domain.ReplyIngredientQuantities).
		With("recipe_name", s.CurrentRecipe.Name).
		With("ingredients", s.CurrentRecipe.Parsed)
}

func (e *Engine) handleAffirm(ctx context.Context, s *domain.Session, lower string) *domain.Reply {
	// "Yes" with pending suggestions picks the first one.
	if len(s.SuggestedRecipes) > 0 && s.SelectedIndex < 0 {
		return e.selectIndex(s, 0)
	}
	if s.CurrentRecipe != nil && !s.DetailsRequested {
		return e.handleDetails(s)
	}
	if s.CurrentRecipe != nil && s.LastAction == actionDetails {
		return e.handleNextStep(s)
	}
	if s.CurrentRecipe == nil && len(s.AvailableIngredients) > 0 {
		// Affirming a "shall I search?" nudge.
		return e.handleSearch(ctx, s, domain.Entities{})
	}
	return domain.NewReply(domain.ReplyAcknowledged)
}

func (e *Engine) handleDeny(s *domain.Session) *domain.Reply {
	return domain.NewReply(domain.ReplyAcknowledgedNegative)
}

func (e *Engine) handleReset(s *domain.Session, lower string) *domain.Reply {
	keep := containsAny(lower, keepPhrases)
	s.Reset(keep)
	e.log.Info("session %s reset (keep ingredients: %v)", s.ID, keep)
	if keep && len(s.AvailableIngredients) > 0 {
		return domain.NewReply(domain.ReplyResetKeptIngredients).
			With("ingredients", s.AvailableIngredients)
	}
	return domain.NewReply(domain.ReplyResetComplete)
}

var digitPattern = regexp.MustCompile(`\b(\d+)\b`)

func (e *Engine) handleUnknown(ctx context.Context, s *domain.Session, lower string) *domain.Reply {
	// With suggestions on the table, an unclassified utterance may still
	// be a selection ("the pancake one maybe?").
	if len(s.SuggestedRecipes) > 0 && s.SelectedIndex < 0 {
		if m := digitPattern.FindStringSubmatch(lower); m != nil {
			num, _ := strconv.Atoi(m[1])
			if num >= 1 && num <= len(s.SuggestedRecipes) {
				return e.selectIndex(s, num-1)
			}
			return domain.NewReply(domain.ReplyInvalidSelection).
				With("total", len(s.SuggestedRecipes))
		}
		if idx := e.matchSuggestionName(s, lower); idx >= 0 {
			return e.selectIndex(s, idx)
		}
	}

	switch {
	case s.CurrentRecipe != nil:
		return domain.NewReply(domain.ReplyUnknownWithRecipe).
			With("recipe_name", s.CurrentRecipe.Name)
	case len(s.AvailableIngredients) > 0:
		return domain.NewReply(domain.ReplyUnknownWithIngredients).
			With("count", len(s.AvailableIngredients))
	default:
		return domain.NewReply(domain.ReplyUnknownInitial)
	}
}
