package conversation

import (
	"reflect"
	"testing"
)

func TestExtractIngredients(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"i have eggs and flour", []string{"eggs", "flour"}},
		{"i have 2 eggs, 1 cup flour and milk", []string{"eggs", "flour", "milk"}},
		{"what can i make with chicken and rice", []string{"chicken", "rice"}},
		{"i've got butter, sugar & vanilla", []string{"butter", "sugar", "vanilla"}},
		{"eggs, flour and milk", []string{"eggs", "flour", "milk"}},
		{"i am bored", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Extract(tt.input).Ingredients
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ingredients = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractMissing(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"i don't have butter", []string{"butter"}},
		{"i ran out of sugar", []string{"sugar"}},
		{"what can i use instead of milk", []string{"milk"}},
		{"no eggs", []string{"eggs"}},
		{"i have plenty of everything", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Extract(tt.input).MissingIngredients
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("missing = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractRestrictions(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"i'm vegetarian", []string{"vegetarian"}},
		{"make it gluten free", []string{"gluten-free"}},
		{"i'm vegan and nut-free", []string{"vegan", "nut-free"}},
		{"no restrictions here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Extract(tt.input).DietaryRestrictions
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("restrictions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractSelection(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"recipe 2", "2"},
		{"number 3 please", "3"},
		{"option 1", "1"},
		{"the first one", "1"},
		{"i'll take the third recipe", "3"},
		{"the last one", "last"},
		{"none of these", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Extract(tt.input).RecipeNumber
			if got != tt.want {
				t.Errorf("recipe number = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSelectionName(t *testing.T) {
	got := Extract("let's make the tomato basil pasta").RecipeName
	if got != "tomato basil pasta" {
		t.Errorf("recipe name = %q", got)
	}
}
