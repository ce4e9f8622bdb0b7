package engine

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/hammamikhairi/foodrescuer/internal/adapt"
	"github.com/hammamikhairi/foodrescuer/internal/conversation"
	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
	"github.com/hammamikhairi/foodrescuer/internal/recipe"
	"github.com/hammamikhairi/foodrescuer/internal/storage"
	"github.com/hammamikhairi/foodrescuer/internal/subs"
)

func setupEngine(t *testing.T) (*Engine, *domain.Session) {
	t.Helper()

	log := logger.New(logger.LevelOff, io.Discard)
	catalog := recipe.NewCatalog(log)
	retriever := recipe.NewRetriever(catalog, log)
	kb := subs.New(log)
	adapter := adapt.New(kb, log)
	parser := conversation.NewKeywordClassifier(log)
	store := storage.NewMemoryStore(log)

	eng := New(catalog, retriever, kb, adapter, parser, store, log)
	session, err := eng.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	return eng, session
}

func say(t *testing.T, e *Engine, s *domain.Session, text string) *domain.Reply {
	t.Helper()
	reply, err := e.Process(context.Background(), s.ID, text)
	if err != nil {
		t.Fatalf("Process(%q) error = %v", text, err)
	}
	return reply
}

func TestProcessGreeting(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "hello")
	if reply.Kind != domain.ReplyGreeting {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyGreeting)
	}
}

func TestDeclareIngredientsIdempotent(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour and eggs")
	say(t, eng, session, "i have flour and eggs")

	if got := len(session.AvailableIngredients); got != 2 {
		t.Fatalf("AvailableIngredients = %v, want 2 entries", session.AvailableIngredients)
	}
}

func TestDeclareSuggestsSearchAtThreshold(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "i have flour and eggs")
	if reply.Kind != domain.ReplyIngredientsAdded {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyIngredientsAdded)
	}

	reply = say(t, eng, session, "i have milk")
	if reply.Kind != domain.ReplyIngredientsSuggestSearch {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyIngredientsSuggestSearch)
	}
	if total, ok := reply.Data["total"].(int); !ok || total != 3 {
		t.Errorf("reply total = %v, want 3", reply.Data["total"])
	}
}

func TestSearchWithoutIngredientsAsks(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "what can i make")
	if reply.Kind != domain.ReplyAskForIngredients {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyAskForIngredients)
	}
}

func TestSearchReturnsRankedResults(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs, milk and butter")
	reply := say(t, eng, session, "what can i make")
	if reply.Kind != domain.ReplyRecipesFound {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyRecipesFound)
	}

	results, ok := reply.Data["results"].([]domain.ScoredRecipe)
	if !ok || len(results) == 0 {
		t.Fatalf("reply results = %v, want non-empty scored list", reply.Data["results"])
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted: score[%d]=%v > score[%d]=%v",
				i, results[i].Score, i-1, results[i-1].Score)
		}
	}
	if len(session.SuggestedRecipes) != len(results) {
		t.Errorf("session holds %d suggestions, want %d", len(session.SuggestedRecipes), len(results))
	}
}

func TestInvalidSelectionCitesRange(t *testing.T) {
	eng, session := setupEngine(t)

	session.SetSuggestions([]domain.ScoredRecipe{
		{Recipe: &domain.Recipe{ID: "a", Name: "Pancakes"}},
		{Recipe: &domain.Recipe{ID: "b", Name: "Omelette"}},
		{Recipe: &domain.Recipe{ID: "c", Name: "Curry"}},
	})

	reply := say(t, eng, session, "5")
	if reply.Kind != domain.ReplyInvalidSelection {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyInvalidSelection)
	}
	if total, ok := reply.Data["total"].(int); !ok || total != 3 {
		t.Errorf("reply total = %v, want 3", reply.Data["total"])
	}
	if session.CurrentRecipe != nil {
		t.Error("invalid selection must not set a current recipe")
	}
}

func TestSelectByNumberAndByName(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs and milk")
	say(t, eng, session, "what can i make")

	reply := say(t, eng, session, "1")
	if reply.Kind != domain.ReplyRecipeSelected {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyRecipeSelected)
	}
	if session.CurrentRecipe == nil {
		t.Fatal("selection did not set a current recipe")
	}
	first := session.CurrentRecipe.Name

	say(t, eng, session, "start over but keep ingredients")
	say(t, eng, session, "what can i make")
	reply = say(t, eng, session, "let's make "+strings.ToLower(first))
	if reply.Kind != domain.ReplyRecipeSelected {
		t.Fatalf("select by name: reply kind = %q, want %q", reply.Kind, domain.ReplyRecipeSelected)
	}
	if session.CurrentRecipe.Name != first {
		t.Errorf("selected %q, want %q", session.CurrentRecipe.Name, first)
	}
}

func TestSelectWithoutSuggestions(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "pick number 2")
	if reply.Kind != domain.ReplyNoCurrentRecipe {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyNoCurrentRecipe)
	}
}

func TestStepNavigationBounds(t *testing.T) {
	eng, session := setupEngine(t)

	rec := &domain.Recipe{
		ID:           "toast",
		Name:         "Toast",
		Instructions: []string{"Slice the bread", "Toast it", "Butter it"},
	}
	session.SetSuggestions([]domain.ScoredRecipe{{Recipe: rec}})
	say(t, eng, session, "1")

	reply := say(t, eng, session, "next step")
	if reply.Kind != domain.ReplyFirstStep {
		t.Fatalf("first advance: kind = %q, want %q", reply.Kind, domain.ReplyFirstStep)
	}
	if got := reply.Data["step_number"]; got != 1 {
		t.Errorf("step_number = %v, want 1", got)
	}

	say(t, eng, session, "next")
	say(t, eng, session, "next")
	reply = say(t, eng, session, "next")
	if reply.Kind != domain.ReplyRecipeCompleted {
		t.Fatalf("past last step: kind = %q, want %q", reply.Kind, domain.ReplyRecipeCompleted)
	}
	if session.StepIndex != 2 {
		t.Errorf("StepIndex = %d, want 2 (clamped at last step)", session.StepIndex)
	}

	reply = say(t, eng, session, "go back")
	if reply.Kind != domain.ReplyPreviousStep {
		t.Fatalf("go back: kind = %q, want %q", reply.Kind, domain.ReplyPreviousStep)
	}
	if session.StepIndex != 1 {
		t.Errorf("StepIndex = %d, want 1", session.StepIndex)
	}

	say(t, eng, session, "previous step")
	reply = say(t, eng, session, "previous step")
	if session.StepIndex != 0 {
		t.Errorf("StepIndex = %d, want 0 (floor)", session.StepIndex)
	}
	if reply.Kind != domain.ReplyPreviousStep {
		t.Errorf("at floor: kind = %q, want %q", reply.Kind, domain.ReplyPreviousStep)
	}
}

func TestStepWithoutRecipe(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "next step")
	if reply.Kind != domain.ReplyNoCurrentRecipe {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyNoCurrentRecipe)
	}
}

func TestSubstitutionFromStockedIngredient(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs, milk and olive oil")
	say(t, eng, session, "what can i make")
	say(t, eng, session, "1")

	reply := say(t, eng, session, "i don't have butter")
	if reply.Kind != domain.ReplySubstitutionFound {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplySubstitutionFound)
	}
	if got := reply.Data["ingredient"]; got != "butter" {
		t.Errorf("ingredient = %v, want butter", got)
	}
	if got := reply.Data["substitute"]; got != "olive oil" {
		t.Errorf("substitute = %v, want olive oil", got)
	}
	if got := reply.Data["ratio"]; got != 0.75 {
		t.Errorf("ratio = %v, want 0.75", got)
	}
	if _, ok := session.SubstitutionsMade["butter"]; !ok {
		t.Error("substitution was not recorded on the session")
	}
	for _, ing := range session.AvailableIngredients {
		if ing == "butter" {
			t.Error("a declared-missing ingredient must leave the available list")
		}
	}
}

func TestSubstitutionOptionsWhenNoneStocked(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "i don't have butter")
	if reply.Kind != domain.ReplySubstitutionOptions {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplySubstitutionOptions)
	}
	options, ok := reply.Data["options"].([]domain.SubstitutionEntry)
	if !ok || len(options) == 0 {
		t.Fatalf("options = %v, want the known butter substitutes", reply.Data["options"])
	}
}

func TestSubstitutionUnknownIngredient(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "what can i use instead of unobtainium")
	if reply.Kind != domain.ReplyNoSubstitutionFound {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyNoSubstitutionFound)
	}
}

func TestSubstitutionWithoutTargetAsks(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "i need a substitution")
	if reply.Kind != domain.ReplyAskWhichIngredient {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyAskWhichIngredient)
	}
}

func TestDietaryAdaptsCurrentRecipe(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs, milk and butter")
	say(t, eng, session, "what can i make")
	say(t, eng, session, "1")

	stepBefore := session.StepIndex
	reply := say(t, eng, session, "i'm vegan")
	if reply.Kind != domain.ReplyDietaryAdapted {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyDietaryAdapted)
	}
	if len(session.CurrentRecipe.Substitutions) == 0 {
		t.Error("adapted recipe carries no substitutions")
	}
	if session.StepIndex != stepBefore {
		t.Errorf("StepIndex changed from %d to %d during adaptation", stepBefore, session.StepIndex)
	}
	if len(session.DietaryRestrictions) != 1 || session.DietaryRestrictions[0] != "vegan" {
		t.Errorf("DietaryRestrictions = %v, want [vegan]", session.DietaryRestrictions)
	}
}

func TestDietaryNotedWithoutRecipe(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "i'm vegetarian")
	if reply.Kind != domain.ReplyDietaryNoted {
		t.Errorf("reply kind = %q, want %q", reply.Kind, domain.ReplyDietaryNoted)
	}
}

func TestResetKeepsIngredientsOnRequest(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs and milk")
	say(t, eng, session, "what can i make")
	say(t, eng, session, "1")

	reply := say(t, eng, session, "start over but keep my ingredients")
	if reply.Kind != domain.ReplyResetKeptIngredients {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyResetKeptIngredients)
	}
	if len(session.AvailableIngredients) != 3 {
		t.Errorf("AvailableIngredients = %v, want the 3 declared entries", session.AvailableIngredients)
	}
	if session.CurrentRecipe != nil || len(session.SuggestedRecipes) != 0 {
		t.Error("reset left recipe state behind")
	}
}

func TestResetDropsEverything(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour and eggs")
	reply := say(t, eng, session, "reset")
	if reply.Kind != domain.ReplyResetComplete {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyResetComplete)
	}
	if len(session.AvailableIngredients) != 0 {
		t.Errorf("AvailableIngredients = %v, want empty", session.AvailableIngredients)
	}
}

func TestAffirmSelectsFirstSuggestion(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs and milk")
	say(t, eng, session, "what can i make")

	reply := say(t, eng, session, "yes")
	if reply.Kind != domain.ReplyRecipeSelected {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyRecipeSelected)
	}
	if session.SelectedIndex != 0 {
		t.Errorf("SelectedIndex = %d, want 0", session.SelectedIndex)
	}
}

func TestAffirmAfterSelectionShowsDetails(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs and milk")
	say(t, eng, session, "what can i make")
	say(t, eng, session, "1")

	reply := say(t, eng, session, "yes")
	if reply.Kind != domain.ReplyRecipeDetails {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyRecipeDetails)
	}

	reply = say(t, eng, session, "yes")
	if reply.Kind != domain.ReplyFirstStep {
		t.Errorf("affirm after details: kind = %q, want %q", reply.Kind, domain.ReplyFirstStep)
	}
}

func TestUnknownInfersSelection(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs and milk")
	say(t, eng, session, "what can i make")
	name := strings.ToLower(session.SuggestedRecipes[0].Recipe.Name)

	reply := say(t, eng, session, "hmm, the "+name+" sounds nice")
	if reply.Kind != domain.ReplyRecipeSelected {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyRecipeSelected)
	}
}

func TestUnknownRepliesByContext(t *testing.T) {
	eng, session := setupEngine(t)

	reply := say(t, eng, session, "the weather is nice")
	if reply.Kind != domain.ReplyUnknownInitial {
		t.Errorf("empty session: kind = %q, want %q", reply.Kind, domain.ReplyUnknownInitial)
	}

	say(t, eng, session, "i have flour and eggs")
	reply = say(t, eng, session, "the weather is nice")
	if reply.Kind != domain.ReplyUnknownWithIngredients {
		t.Errorf("with ingredients: kind = %q, want %q", reply.Kind, domain.ReplyUnknownWithIngredients)
	}
}

func TestQuantityLookup(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs and milk")
	say(t, eng, session, "what can i make")
	say(t, eng, session, "1")

	reply := say(t, eng, session, "how much flour do i need")
	if reply.Kind != domain.ReplyIngredientQuantity {
		t.Fatalf("reply kind = %q, want %q", reply.Kind, domain.ReplyIngredientQuantity)
	}
	if got := reply.Data["ingredient"]; got != "flour" {
		t.Errorf("ingredient = %v, want flour", got)
	}
	quantity, ok := reply.Data["quantity"].(string)
	if !ok || !strings.Contains(quantity, "flour") {
		t.Errorf("quantity = %v, want an amount naming flour", reply.Data["quantity"])
	}
}

func TestEnhancementSuggestsUnusedIngredient(t *testing.T) {
	eng, session := setupEngine(t)

	say(t, eng, session, "i have flour, eggs, milk and honey")
	say(t, eng, session, "what can i make")
	say(t, eng, session, "1")

	reply := say(t, eng, session, "how can i improve this recipe")
	switch reply.Kind {
	case domain.ReplyEnhancement:
		suggestions, ok := reply.Data["suggestions"].([]string)
		if !ok || len(suggestions) == 0 {
			t.Errorf("suggestions = %v, want non-empty list", reply.Data["suggestions"])
		}
	case domain.ReplyNoEnhancement:
		// Acceptable when nothing the user holds appears in a similar
		// recipe.
	default:
		t.Errorf("reply kind = %q, want enhancement or no-enhancement", reply.Kind)
	}
}

func TestProcessUnknownSession(t *testing.T) {
	eng, _ := setupEngine(t)

	_, err := eng.Process(context.Background(), "no-such-session", "hello")
	if err == nil {
		t.Fatal("Process() with unknown session returned nil error")
	}
}
