// FoodRescuer — a conversational assistant that finds recipes for the
// ingredients you already have.
//
// Usage:
//
//	foodrescuer [-verbose] [-quiet] [-serve] [-addr :8080]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/foodrescuer/internal/adapt"
	"github.com/hammamikhairi/foodrescuer/internal/config"
	"github.com/hammamikhairi/foodrescuer/internal/conversation"
	"github.com/hammamikhairi/foodrescuer/internal/display"
	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/embed"
	"github.com/hammamikhairi/foodrescuer/internal/engine"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
	"github.com/hammamikhairi/foodrescuer/internal/recipe"
	"github.com/hammamikhairi/foodrescuer/internal/respond"
	"github.com/hammamikhairi/foodrescuer/internal/server"
	"github.com/hammamikhairi/foodrescuer/internal/storage"
	"github.com/hammamikhairi/foodrescuer/internal/subs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", cfg.Log.File, "file to write logs to (use \"stderr\" to log to console)")
	serve := flag.Bool("serve", false, "run the HTTP API instead of the terminal UI")
	addr := flag.String("addr", cfg.HTTP.Addr, "listen address for -serve")
	recipesFile := flag.String("recipes", cfg.Data.Recipes, "JSON file with recipes (empty uses the built-in corpus)")
	subsDir := flag.String("subs-dir", cfg.Data.Substitutions, "directory with substitution tables (empty uses the built-ins)")
	semantic := flag.Bool("semantic", cfg.Search.Semantic, "blend embedding similarity into recipe ranking")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelFromString(cfg.Log.Level)
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the chat stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by some third-party libs)
	// to the same output so it doesn't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	catalog := recipe.NewCatalog(log)
	if *recipesFile != "" {
		if err := catalog.LoadFile(*recipesFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: loading recipes from %s: %v\n", *recipesFile, err)
			os.Exit(1)
		}
	}

	var retrieverOpts []recipe.RetrieverOption
	searchOpts := domain.SearchOptions{
		MaxResults: cfg.Search.MaxResults,
		MinMatched: cfg.Search.MinMatched,
	}
	if *semantic && cfg.Embed.BaseURL != "" {
		embedder := embed.NewClient(cfg.Embed.BaseURL, cfg.Embed.APIKey, log,
			embed.WithModel(cfg.Embed.Model),
		)
		retrieverOpts = append(retrieverOpts, recipe.WithEmbedder(embedder))
		searchOpts.Mode = domain.ScoreSemantic
		log.Info("semantic ranking enabled (backend=%s, model=%s)", cfg.Embed.BaseURL, cfg.Embed.Model)
	} else if *semantic {
		log.Info("semantic ranking disabled: set FOODRESCUER_EMBED_BASE_URL to enable")
	}

	retriever := recipe.NewRetriever(catalog, log, retrieverOpts...)
	kb := subs.New(log)
	if *subsDir != "" {
		if err := kb.Load(*subsDir); err != nil {
			log.Warn("loading substitution tables from %s: %v", *subsDir, err)
		}
	}
	adapter := adapt.New(kb, log)
	parser := conversation.NewKeywordClassifier(log)
	store := storage.NewMemoryStore(log)
	renderer := respond.New()

	eng := engine.New(catalog, retriever, kb, adapter, parser, store, log,
		engine.WithSearchOptions(searchOpts),
	)

	if *serve {
		srv := server.New(eng, renderer, store, log)
		if err := srv.Run(ctx, *addr); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Terminal UI mode.
	ui := display.NewUI(store)

	session, err := eng.StartSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := &chatApp{
		engine:    eng,
		renderer:  renderer,
		ui:        ui,
		log:       log,
		sessionID: session.ID,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Tell me what ingredients you have. Type 'help' for examples, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

type chatApp struct {
	engine    *engine.Engine
	renderer  *respond.Renderer
	ui        *display.UI
	log       *logger.Logger
	sessionID string
}

func (a *chatApp) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-a.ui.InputChan():
			if !ok {
				return
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}

			reply, err := a.engine.Process(ctx, a.sessionID, input)
			if err != nil {
				a.log.Error("processing input: %v", err)
				a.ui.PrintUrgent("Something went wrong, please try again.")
				continue
			}

			a.ui.PrintChat(a.renderer.Render(reply))
			a.ui.Println("")

			if reply.Kind == domain.ReplyGoodbye {
				return
			}
		}
	}
}
