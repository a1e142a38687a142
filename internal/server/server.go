// Package server wires handlers, middleware and routes, and owns the HTTP
// listener lifecycle. main.go stays minimal; everything route-shaped lives
// here.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/readme-studio/internal/auth"
	"github.com/sakif/readme-studio/internal/github"
	"github.com/sakif/readme-studio/internal/handler"
	"github.com/sakif/readme-studio/internal/middleware"
	"github.com/sakif/readme-studio/internal/repository"
	"github.com/sakif/readme-studio/internal/repository/memory"
	sqliteRepo "github.com/sakif/readme-studio/internal/repository/sqlite"
	"github.com/sakif/readme-studio/internal/service"
)

// Config holds server configuration, loaded from the environment in main.
type Config struct {
	Port int

	// DBPath selects the sqlite backend when set. Empty means templates live
	// in memory and vanish on restart.
	DBPath string

	// JWTSecret enables session auth. When empty the OAuth and /api/me
	// routes are not registered and every caller is anonymous.
	JWTSecret          string
	GitHubClientID     string
	GitHubClientSecret string
	GitHubCallbackURL  string

	// GitHubToken authenticates server-side prefill calls, lifting the
	// anonymous rate limit. Optional.
	GitHubToken string
}

// Server bundles the router with the resources it owns. The sqlite handle is
// nil when the memory backend is selected.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New assembles the full dependency chain: storage, services, handlers,
// routes. Each layer receives only the interfaces it needs.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
	}

	var repo repository.TemplateRepository
	if cfg.DBPath != "" {
		db, err := sqliteRepo.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		s.db = db
		repo = db
	} else {
		repo = memory.New()
	}

	templateService := service.NewTemplateService(repo, logger)
	if err := templateService.Seed(context.Background()); err != nil {
		s.Close()
		return nil, fmt.Errorf("seeding templates: %w", err)
	}

	s.setupRoutes(templateService)
	return s, nil
}

func (s *Server) setupRoutes(templateService *service.TemplateService) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Compress(5))
	s.router.Use(middleware.Logger(s.logger))

	readmeHandler := handler.NewReadmeHandler(service.NewReadmeService(s.logger), s.logger)
	templateHandler := handler.NewTemplateHandler(templateService, s.logger)
	githubHandler := handler.NewGitHubHandler(github.NewClient(s.config.GitHubToken), s.logger)
	catalogHandler := handler.NewCatalogHandler()

	var tokens *auth.TokenService
	if s.config.JWTSecret != "" {
		var err error
		tokens, err = auth.NewTokenService(s.config.JWTSecret)
		if err != nil {
			s.logger.Warn("invalid JWT secret, authentication disabled", slog.String("error", err.Error()))
			tokens = nil
		}
	}

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s.router.Route("/api", func(r chi.Router) {
		// Identity is optional on the template routes: anonymous callers can
		// read and create, ownership checks kick in on modification.
		if tokens != nil {
			r.Use(auth.OptionalAuth(tokens))
		}

		r.Post("/readme", readmeHandler.HandleGenerate)
		r.Get("/github/{username}", githubHandler.HandlePrefill)
		r.Get("/catalog", catalogHandler.HandleCatalog)

		r.Get("/templates", templateHandler.HandleList)
		r.Get("/templates/search", templateHandler.HandleSearch)
		r.Get("/templates/share/{shareableId}", templateHandler.HandleGetByShareableID)
		r.Get("/templates/{id}", templateHandler.HandleGetByID)
		r.Post("/templates", templateHandler.HandleCreate)
		r.Put("/templates/{id}", templateHandler.HandleUpdate)
		r.Delete("/templates/{id}", templateHandler.HandleDelete)
		r.Post("/templates/{id}/like", templateHandler.HandleLike)
	})

	if tokens != nil && s.config.GitHubClientID != "" && s.config.GitHubClientSecret != "" {
		provider := auth.NewGitHubProvider(
			s.config.GitHubClientID,
			s.config.GitHubClientSecret,
			s.config.GitHubCallbackURL,
		)
		authHandler := handler.NewAuthHandler(provider, tokens, s.logger)

		s.router.Get("/auth/github/login", authHandler.HandleGitHubLogin)
		s.router.Get("/auth/github/callback", authHandler.HandleGitHubCallback)
		s.router.Post("/auth/logout", authHandler.HandleLogout)
		s.router.With(auth.RequireAuth(tokens)).Get("/api/me", authHandler.HandleMe)
	} else {
		s.logger.Info("GitHub OAuth not configured, login routes disabled")
	}
}

// Close releases the resources the server owns.
func (s *Server) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Start runs the listener until SIGINT/SIGTERM, then shuts down gracefully,
// giving in-flight requests 30 seconds to finish.
func (s *Server) Start() error {
	defer s.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("storage", storageName(s.config.DBPath)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func storageName(dbPath string) string {
	if dbPath == "" {
		return "memory"
	}
	return dbPath
}
