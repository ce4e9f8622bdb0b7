// Package server exposes the conversation engine over HTTP so the
// assistant can back a web or mobile client as well as the TUI.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/engine"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
	"github.com/hammamikhairi/foodrescuer/internal/respond"
)

// Server wraps the engine with a JSON API. One server handles many
// concurrent sessions; clients hold on to the session_id they get back.
type Server struct {
	engine   *engine.Engine
	renderer *respond.Renderer
	store    domain.SessionStore
	log      *logger.Logger
	router   *gin.Engine
}

// New creates the API server and its routes.
func New(eng *engine.Engine, renderer *respond.Renderer, store domain.SessionStore, log *logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:   eng,
		renderer: renderer,
		store:    store,
		log:      log,
		router:   gin.New(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(requestid.New())
	s.router.Use(cors.Default())

	api := s.router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/chat", s.handleChat)
		api.GET("/sessions/:id", s.handleGetSession)
	}
	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves the API on addr. Blocks until the listener fails or the
// context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.log.Info("API listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

type chatResponse struct {
	SessionID string         `json:"session_id"`
	Reply     string         `json:"reply"`
	Intent    string         `json:"intent"`
	Data      map[string]any `json:"data,omitempty"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		session, err := s.engine.StartSession(c.Request.Context())
		if err != nil {
			s.log.Error("starting session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
			return
		}
		sessionID = session.ID
	}

	reply, err := s.engine.Process(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session_id"})
			return
		}
		s.log.Error("processing message (request %s): %v", requestid.Get(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process message"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		SessionID: sessionID,
		Reply:     s.renderer.Render(reply),
		Intent:    string(reply.Kind),
		Data:      reply.Data,
	})
}

type sessionResponse struct {
	ID                  string   `json:"id"`
	Ingredients         []string `json:"ingredients"`
	MissingIngredients  []string `json:"missing_ingredients,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	CurrentRecipe       string   `json:"current_recipe,omitempty"`
	Step                int      `json:"step,omitempty"`
	TotalSteps          int      `json:"total_steps,omitempty"`
	Suggestions         []string `json:"suggestions,omitempty"`
}

func (s *Server) handleGetSession(c *gin.Context) {
	session, err := s.store.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	resp := sessionResponse{
		ID:                  session.ID,
		Ingredients:         session.AvailableIngredients,
		MissingIngredients:  session.MissingIngredients,
		DietaryRestrictions: session.DietaryRestrictions,
	}
	if session.CurrentRecipe != nil {
		resp.CurrentRecipe = session.CurrentRecipe.Name
		resp.Step = session.StepIndex + 1
		resp.TotalSteps = len(session.CurrentRecipe.Instructions)
	}
	for _, sr := range session.SuggestedRecipes {
		resp.Suggestions = append(resp.Suggestions, sr.Recipe.Name)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
