// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"microblog/internal/app"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	accounts *app.AccountService
	tweets   *app.TweetService
	sessions *app.SessionManager
	log      *slog.Logger
	tmpl     *template.Template
}

// New creates a Server wired to the given application services.
func New(accounts *app.AccountService, tweets *app.TweetService, sessions *app.SessionManager, log *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{
		accounts: accounts,
		tweets:   tweets,
		sessions: sessions,
		log:      log,
		tmpl:     tmpl,
	}, nil
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.loggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/login", s.handleLogin)
	r.Get("/register", s.handleRegister)
	r.Post("/accounts/new", s.handleAccountNew)
	r.Post("/accounts/session", s.handleSessionNew)

	r.Group(func(r chi.Router) {
		r.Use(s.requireUser)
		r.Get("/", s.handleHome)
		r.Post("/tweets/new", s.handleTweetNew)
		r.Post("/tweets/{id}/delete", s.handleTweetDelete)
	})

	return r
}
