// Package engine implements the conversation manager: it receives one
// utterance per turn, classifies it, mutates the session state and produces
// a reply descriptor for rendering.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hammamikhairi/foodrescuer/internal/adapt"
	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

// Engine orchestrates one conversation turn at a time. A turn is
// synchronous: text in, state mutation, reply descriptor out. Nothing a
// user types is fatal; every failure path maps to a clarification reply.
type Engine struct {
	source  domain.RecipeSource
	finder  domain.RecipeFinder
	kb      domain.SubstitutionSource
	adapter *adapt.Adapter
	parser  domain.IntentParser
	store   domain.SessionStore
	log     *logger.Logger

	searchOpts domain.SearchOptions
	pageSize   int
}

// Option configures the engine.
type Option func(*Engine)

// WithSearchOptions overrides the default retrieval tuning.
func WithSearchOptions(opts domain.SearchOptions) Option {
	return func(e *Engine) { e.searchOpts = opts }
}

// WithPageSize sets how many extra suggestions "show more" fetches.
func WithPageSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.pageSize = n
		}
	}
}

// New creates a conversation engine.
func New(
	source domain.RecipeSource,
	finder domain.RecipeFinder,
	kb domain.SubstitutionSource,
	adapter *adapt.Adapter,
	parser domain.IntentParser,
	store domain.SessionStore,
	log *logger.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		source:   source,
		finder:   finder,
		kb:       kb,
		adapter:  adapter,
		parser:   parser,
		store:    store,
		log:      log,
		pageSize: 5,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartSession creates and persists a fresh session.
func (e *Engine) StartSession(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(uuid.NewString())
	if err := e.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	e.log.Info("session started: %s", session.ID)
	return session, nil
}

// resetPhrases short-circuit classification so a reset works even inside a
// longer sentence.
var resetPhrases = []string{"start over", "reset", "begin again", "new conversation", "restart"}

// keepPhrases mark a reset that should carry the ingredient list across.
var keepPhrases = []string{"keep ingredients", "keep my ingredients", "same ingredients", "keep the ingredients"}

// Process handles one utterance for a session and returns the reply
// descriptor. The session is loaded, mutated and saved inside the call.
func (e *Engine) Process(ctx context.Context, sessionID, text string) (*domain.Reply, error) {
	session, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}

	reply := e.processTurn(ctx, session, text)

	session.LastUtterance = text
	if err := e.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session %s: %w", sessionID, err)
	}
	return reply, nil
}

func (e *Engine) processTurn(ctx context.Context, s *domain.Session, text string) *domain.Reply {
	lower := strings.ToLower(strings.TrimSpace(text))

	if containsAny(lower, resetPhrases) {
		return e.handleReset(s, lower)
	}

	intent, err := e.parser.Parse(ctx, text, s)
	if err != nil {
		// A broken classifier degrades to the unknown path.
		e.log.Warn("intent classification failed: %v", err)
		intent = &domain.Intent{Type: domain.IntentUnknown}
	}
	e.log.Debug("session %s: intent=%s confidence=%.2f", s.ID, intent.Type, intent.Confidence)

	reply := e.dispatch(ctx, s, intent, lower)
	s.LastIntent = intent.Type
	return reply
}

// dispatch routes one classified intent to its handler. One handler per
// variant; contextual disambiguation lives inside the handlers.
func (e *Engine) dispatch(ctx context.Context, s *domain.Session, intent *domain.Intent, lower string) *domain.Reply {
	switch intent.Type {
	case domain.IntentGreeting:
		return domain.NewReply(domain.ReplyGreeting)
	case domain.IntentHelp:
		return domain.NewReply(domain.ReplyHelp)
	case domain.IntentQuit:
		return domain.NewReply(domain.ReplyGoodbye)
	case domain.IntentReset:
		return e.handleReset(s, lower)
	case domain.IntentDeclareIngredients:
		return e.handleDeclare(s, intent.Entities)
	case domain.IntentSearchByIngredients:
		return e.handleSearch(ctx, s, intent.Entities)
	case domain.IntentSelectRecipe:
		return e.handleSelect(ctx, s, intent.Entities, lower)
	case domain.IntentRecipeDetails:
		return e.handleDetails(s)
	case domain.IntentShowMoreRecipes:
		return e.handleShowMore(ctx, s)
	case domain.IntentNextStep:
		return e.handleNextStep(s)
	case domain.IntentPreviousStep:
		return e.handlePreviousStep(s)
	case domain.IntentRequestSubstitution:
		return e.handleSubstitution(s, intent.Entities, lower)
	case domain.IntentDietaryRestriction:
		return e.handleDietary(s, intent.Entities)
	case domain.IntentEnhanceRecipe:
		return e.handleEnhance(ctx, s)
	case domain.IntentIngredientQuantity:
		return e.handleQuantity(s, intent.Entities, lower)
	case domain.IntentAffirm:
		return e.handleAffirm(ctx, s, lower)
	case domain.IntentDeny:
		return e.handleDeny(s)
	default:
		return e.handleUnknown(ctx, s, lower)
	}
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
