package adapt

import (
	"errors"
	"strings"
	"testing"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
	"github.com/hammamikhairi/foodrescuer/internal/recipe"
	"github.com/hammamikhairi/foodrescuer/internal/subs"
)

func setupAdapter(t *testing.T) *Adapter {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	return New(subs.New(log), log)
}

func testRecipe(lines, instructions []string) *domain.Recipe {
	r := &domain.Recipe{Name: "Test Dish", Ingredients: lines, Instructions: instructions}
	for _, line := range lines {
		name, quantity := recipe.ParseQuantity(line)
		r.Parsed = append(r.Parsed, domain.Ingredient{Name: name, Quantity: quantity, Original: line})
	}
	return r
}

func TestFindBestSubstitutionExact(t *testing.T) {
	a := setupAdapter(t)

	entry, err := a.FindBestSubstitution("butter", []string{"olive oil", "flour"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Substitute != "olive oil" {
		t.Fatalf("expected olive oil, got %s", entry.Substitute)
	}
	if entry.Ratio != 0.75 {
		t.Fatalf("expected ratio 0.75, got %v", entry.Ratio)
	}
}

func TestFindBestSubstitutionFuzzy(t *testing.T) {
	a := setupAdapter(t)

	// "extra virgin olive oil" is not an exact candidate name but overlaps.
	entry, err := a.FindBestSubstitution("butter", []string{"extra virgin olive oil"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Substitute != "olive oil" {
		t.Fatalf("expected olive oil via fuzzy match, got %s", entry.Substitute)
	}
}

func TestFindBestSubstitutionCategoryFallback(t *testing.T) {
	a := setupAdapter(t)

	// No candidate for sesame oil in the table; the user has another fat.
	entry, err := a.FindBestSubstitution("sesame oil", []string{"vegetable oil"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Substitute != "vegetable oil" {
		t.Fatalf("expected vegetable oil via category fallback, got %s", entry.Substitute)
	}
	if !strings.Contains(entry.Notes, "fats") {
		t.Fatalf("expected category note, got %q", entry.Notes)
	}
}

func TestFindBestSubstitutionNone(t *testing.T) {
	a := setupAdapter(t)

	_, err := a.FindBestSubstitution("unobtainium", []string{"water"})
	if !errors.Is(err, domain.ErrNoSubstitution) {
		t.Fatalf("expected ErrNoSubstitution, got %v", err)
	}
}

func TestAdaptRecipe(t *testing.T) {
	a := setupAdapter(t)
	r := testRecipe(
		[]string{"2 tablespoons butter", "1 cup flour"},
		[]string{"Melt the butter in a pan.", "Stir the butter into the flour."},
	)

	adapted := a.AdaptRecipe(r, []string{"butter"}, []string{"olive oil", "flour"})

	if len(adapted.Substitutions) != 1 {
		t.Fatalf("expected 1 substitution, got %d", len(adapted.Substitutions))
	}
	sub := adapted.Substitutions[0]
	if sub.Original != "butter" || sub.Substitute != "olive oil" {
		t.Fatalf("recorded %s -> %s, want butter -> olive oil", sub.Original, sub.Substitute)
	}

	for _, line := range adapted.Ingredients {
		if strings.Contains(strings.ToLower(line), "butter") {
			t.Fatalf("ingredient line still mentions butter: %q", line)
		}
	}
	// 2 tablespoons scaled by 0.75.
	if adapted.Ingredients[0] != "1 1/2 tablespoons olive oil" {
		t.Fatalf("rescaled line = %q", adapted.Ingredients[0])
	}

	if !strings.Contains(adapted.Instructions[0], "olive oil") {
		t.Fatalf("instruction not rewritten: %q", adapted.Instructions[0])
	}
	if !strings.Contains(adapted.Instructions[0], "Note:") {
		t.Fatalf("note missing from first affected instruction: %q", adapted.Instructions[0])
	}
	if strings.Contains(adapted.Instructions[1], "Note:") {
		t.Fatalf("note duplicated on later instruction: %q", adapted.Instructions[1])
	}

	// Original untouched.
	if r.Ingredients[0] != "2 tablespoons butter" {
		t.Fatalf("source recipe was mutated: %q", r.Ingredients[0])
	}
}

func TestAdaptRecipeUnresolvableLeftAlone(t *testing.T) {
	a := setupAdapter(t)
	r := testRecipe([]string{"unobtainium"}, []string{"Add the unobtainium."})

	adapted := a.AdaptRecipe(r, []string{"unobtainium"}, []string{"water"})
	if len(adapted.Substitutions) != 0 {
		t.Fatalf("expected no substitutions, got %v", adapted.Substitutions)
	}
	if adapted.Ingredients[0] != "unobtainium" {
		t.Fatalf("line should be untouched, got %q", adapted.Ingredients[0])
	}
}
