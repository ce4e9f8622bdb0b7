package domain

import "errors"

// Sentinel errors used across layers. None of these are fatal to a turn;
// the engine maps each one to a clarification reply.
var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoRecipeSelected = errors.New("no recipe selected")
	ErrNoSuggestions    = errors.New("no suggested recipes")
	ErrInvalidSelection = errors.New("selection out of range")
	ErrNoMoreSteps      = errors.New("no more steps in recipe")
	ErrNoInstructions   = errors.New("recipe has no instructions")
	ErrNoIngredients    = errors.New("no ingredients declared")
	ErrNoSubstitution   = errors.New("no substitution found")
	ErrAlreadyExists    = errors.New("already exists")
)
