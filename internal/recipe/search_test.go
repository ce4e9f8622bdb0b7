package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
)

func setupRetriever(t *testing.T, recipes []*domain.Recipe) *Retriever {
	t.Helper()
	return NewRetriever(NewCatalogFrom(testLog(), recipes), testLog())
}

func pancakeCorpus() []*domain.Recipe {
	return []*domain.Recipe{
		{
			Name:         "Pancakes",
			Ingredients:  []string{"1 cup flour", "1 egg", "1 cup milk"},
			Instructions: []string{"Mix.", "Fry."},
		},
		{
			Name:         "Omelette",
			Ingredients:  []string{"3 eggs", "1 tablespoon butter"},
			Instructions: []string{"Beat.", "Cook."},
		},
		{
			Name:         "Fruit Salad",
			Ingredients:  []string{"1 apple", "1 banana", "1 orange"},
			Instructions: []string{"Chop.", "Toss."},
		},
	}
}

func TestFindCoverage(t *testing.T) {
	r := setupRetriever(t, pancakeCorpus())

	results, err := r.Find(context.Background(), []string{"flour", "egg"}, domain.SearchOptions{})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results")
	}

	top := results[0]
	if top.Recipe.Name != "Pancakes" {
		t.Fatalf("expected Pancakes first, got %s", top.Recipe.Name)
	}
	if want := 2.0 / 3.0; top.Score != want {
		t.Errorf("score = %v, want %v", top.Score, want)
	}
	if len(top.Matched) != 2 || top.Matched[0] != "flour" || top.Matched[1] != "egg" {
		t.Errorf("matched = %v, want [flour egg]", top.Matched)
	}
	if len(top.Missing) != 1 || top.Missing[0] != "milk" {
		t.Errorf("missing = %v, want [milk]", top.Missing)
	}

	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted: %v > %v at %d", results[i].Score, results[i-1].Score, i)
		}
	}
	for _, res := range results {
		if res.Recipe.Name == "Fruit Salad" {
			t.Fatal("zero-overlap recipe should not be a candidate")
		}
	}
}

func TestFindMinMatched(t *testing.T) {
	r := setupRetriever(t, pancakeCorpus())

	results, err := r.Find(context.Background(), []string{"egg"}, domain.SearchOptions{MinMatched: 2})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	for _, res := range results {
		if len(res.Matched) < 2 {
			t.Fatalf("%s matched only %d ingredients", res.Recipe.Name, len(res.Matched))
		}
	}
}

func TestFindCountMode(t *testing.T) {
	r := setupRetriever(t, pancakeCorpus())

	results, err := r.Find(context.Background(), []string{"flour", "egg", "milk"}, domain.SearchOptions{Mode: domain.ScoreCount})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if results[0].Recipe.Name != "Pancakes" || results[0].Score != 3 {
		t.Fatalf("expected Pancakes with count 3, got %s with %v", results[0].Recipe.Name, results[0].Score)
	}
}

func TestFindStripsUserQuantities(t *testing.T) {
	r := setupRetriever(t, pancakeCorpus())

	results, err := r.Find(context.Background(), []string{"2 eggs", "1 cup flour"}, domain.SearchOptions{})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(results) == 0 || results[0].Recipe.Name != "Pancakes" {
		t.Fatal("quantity-prefixed query ingredients should still match")
	}
}

func TestFindNoIngredients(t *testing.T) {
	r := setupRetriever(t, pancakeCorpus())

	if _, err := r.Find(context.Background(), nil, domain.SearchOptions{}); !errors.Is(err, domain.ErrNoIngredients) {
		t.Fatalf("expected ErrNoIngredients, got %v", err)
	}
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	return nil, errors.New("backend down")
}

func TestFindSemanticFallsBack(t *testing.T) {
	cat := NewCatalogFrom(testLog(), pancakeCorpus())
	r := NewRetriever(cat, testLog(), WithEmbedder(failingEmbedder{}))

	results, err := r.Find(context.Background(), []string{"flour", "egg"}, domain.SearchOptions{Mode: domain.ScoreSemantic})
	if err != nil {
		t.Fatalf("semantic mode with broken backend must not fail the search: %v", err)
	}
	if want := 2.0 / 3.0; results[0].Score != want {
		t.Errorf("expected coverage score %v after fallback, got %v", want, results[0].Score)
	}
}

func TestEnhancements(t *testing.T) {
	corpus := []*domain.Recipe{
		{
			Name:         "Plain Tomato Pasta",
			Ingredients:  []string{"250 grams pasta", "4 tomatoes", "3 cloves garlic", "2 tablespoons olive oil"},
			Instructions: []string{"Cook."},
		},
		{
			Name:         "Tomato Basil Pasta",
			Ingredients:  []string{"250 grams pasta", "4 tomatoes", "3 cloves garlic", "2 tablespoons olive oil", "basil"},
			Instructions: []string{"Cook."},
		},
	}
	r := setupRetriever(t, corpus)

	base, err := r.catalog.Get(context.Background(), "plain-tomato-pasta")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	suggestions, err := r.Enhancements(context.Background(), base, []string{"basil", "cheddar"})
	if err != nil {
		t.Fatalf("enhancements: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0] != "basil" {
		t.Fatalf("expected [basil], got %v", suggestions)
	}
}
