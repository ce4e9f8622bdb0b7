package domain

import (
	"strings"
	"time"
)

// Session is the conversation state for one user. It is owned by exactly one
// engine instance per turn; the turn loop is synchronous, so the methods do
// no locking.
type Session struct {
	ID                   string
	AvailableIngredients []string // insertion order, case-insensitive unique
	CurrentRecipe        *Recipe
	StepIndex            int
	SuggestedRecipes     []ScoredRecipe
	SelectedIndex        int // index into SuggestedRecipes, -1 before selection
	MissingIngredients   []string
	SubstitutionsMade    map[string]string // original -> substitute
	DietaryRestrictions  []string

	// Turn context.
	LastIntent       IntentType
	LastUtterance    string
	DetailsRequested bool
	LastAction       string

	StartedAt time.Time
	UpdatedAt time.Time
}

// NewSession returns an empty session ready for its first turn.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:                id,
		SelectedIndex:     -1,
		SubstitutionsMade: make(map[string]string),
		StartedAt:         now,
		UpdatedAt:         now,
	}
}

// NormalizeIngredient lowercases and trims an ingredient name.
func NormalizeIngredient(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IngredientsOverlap reports whether two normalized ingredient names refer to
// the same ingredient. The check is substring containment in either
// direction, which tolerates variation like "eggs" vs "egg whites" at the
// cost of occasional false positives.
func IngredientsOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// AddIngredients merges new ingredients into the available set, preserving
// insertion order and case-insensitive uniqueness. Returns the ones that
// were actually new.
func (s *Session) AddIngredients(names []string) []string {
	seen := make(map[string]bool, len(s.AvailableIngredients))
	for _, have := range s.AvailableIngredients {
		seen[NormalizeIngredient(have)] = true
	}
	var added []string
	for _, name := range names {
		norm := NormalizeIngredient(name)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		s.AvailableIngredients = append(s.AvailableIngredients, norm)
		added = append(added, norm)
	}
	return added
}

// HasIngredient reports whether the user has an ingredient that overlaps
// the given name.
func (s *Session) HasIngredient(name string) bool {
	norm := NormalizeIngredient(name)
	for _, have := range s.AvailableIngredients {
		if IngredientsOverlap(have, norm) {
			return true
		}
	}
	return false
}

// SetCurrentRecipe switches the recipe under discussion, recomputes the
// missing-ingredient list from scratch and resets the step cursor. The
// recompute here is the source of truth; AddMissingIngredient only adds
// advisory entries between recipe changes.
func (s *Session) SetCurrentRecipe(r *Recipe) {
	s.CurrentRecipe = r
	s.StepIndex = 0
	s.DetailsRequested = false
	s.MissingIngredients = nil
	if r == nil {
		return
	}
	for _, ing := range r.Parsed {
		if !s.HasIngredient(ing.Name) {
			s.MissingIngredients = append(s.MissingIngredients, NormalizeIngredient(ing.Name))
		}
	}
}

// SetSuggestions replaces the pending suggestion list. The recipe under
// discussion is cleared so a stale selection cannot outlive a new search.
func (s *Session) SetSuggestions(results []ScoredRecipe) {
	s.SuggestedRecipes = results
	s.SelectedIndex = -1
	s.CurrentRecipe = nil
	s.MissingIngredients = nil
	s.StepIndex = 0
}

// NextStep advances the step cursor and returns the new instruction.
// Advancing past the last instruction returns ErrNoMoreSteps and leaves the
// cursor on the last step.
func (s *Session) NextStep() (string, error) {
	if s.CurrentRecipe == nil {
		return "", ErrNoRecipeSelected
	}
	n := len(s.CurrentRecipe.Instructions)
	if n == 0 {
		return "", ErrNoInstructions
	}
	if s.StepIndex >= n-1 {
		return "", ErrNoMoreSteps
	}
	s.StepIndex++
	return s.CurrentRecipe.Instructions[s.StepIndex], nil
}

// PreviousStep moves the step cursor back and returns the instruction.
// The cursor never goes below zero.
func (s *Session) PreviousStep() (string, error) {
	if s.CurrentRecipe == nil {
		return "", ErrNoRecipeSelected
	}
	if len(s.CurrentRecipe.Instructions) == 0 {
		return "", ErrNoInstructions
	}
	if s.StepIndex > 0 {
		s.StepIndex--
	}
	return s.CurrentRecipe.Instructions[s.StepIndex], nil
}

// CurrentStep returns the instruction under the cursor.
func (s *Session) CurrentStep() (string, error) {
	if s.CurrentRecipe == nil {
		return "", ErrNoRecipeSelected
	}
	if len(s.CurrentRecipe.Instructions) == 0 {
		return "", ErrNoInstructions
	}
	return s.CurrentRecipe.Instructions[s.StepIndex], nil
}

// AddSubstitution records an applied swap for the rest of the session.
func (s *Session) AddSubstitution(original, substitute string) {
	if s.SubstitutionsMade == nil {
		s.SubstitutionsMade = make(map[string]string)
	}
	s.SubstitutionsMade[NormalizeIngredient(original)] = NormalizeIngredient(substitute)
}

// AddMissingIngredient marks an ingredient as missing and drops it from the
// available set if it was there.
func (s *Session) AddMissingIngredient(name string) {
	norm := NormalizeIngredient(name)
	if norm == "" {
		return
	}
	for _, m := range s.MissingIngredients {
		if m == norm {
			return
		}
	}
	s.MissingIngredients = append(s.MissingIngredients, norm)
	for i, have := range s.AvailableIngredients {
		if have == norm {
			s.AvailableIngredients = append(s.AvailableIngredients[:i], s.AvailableIngredients[i+1:]...)
			break
		}
	}
}

// MarkAvailable is the inverse of AddMissingIngredient, used when the user
// corrects us ("actually I do have butter").
func (s *Session) MarkAvailable(name string) {
	norm := NormalizeIngredient(name)
	for i, m := range s.MissingIngredients {
		if m == norm {
			s.MissingIngredients = append(s.MissingIngredients[:i], s.MissingIngredients[i+1:]...)
			break
		}
	}
	s.AddIngredients([]string{norm})
}

// AddDietaryRestrictions accumulates restriction tags. Restrictions are
// never auto-removed for the life of the session.
func (s *Session) AddDietaryRestrictions(restrictions []string) []string {
	seen := make(map[string]bool, len(s.DietaryRestrictions))
	for _, r := range s.DietaryRestrictions {
		seen[r] = true
	}
	var added []string
	for _, r := range restrictions {
		norm := NormalizeIngredient(r)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		s.DietaryRestrictions = append(s.DietaryRestrictions, norm)
		added = append(added, norm)
	}
	return added
}

// Reset reinitializes the session in place. With keepIngredients the
// available set survives; everything else is cleared.
func (s *Session) Reset(keepIngredients bool) {
	kept := s.AvailableIngredients
	*s = *NewSession(s.ID)
	if keepIngredients {
		s.AvailableIngredients = kept
	}
}
