// Package server implements the browser-facing shell: a form for generation
// settings, plan rendering, per-recipe image generation and narration, and a
// session image gallery. All state lives in per-session objects; the server
// itself is just wiring around the planner.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/plateful/plateful/internal/session"
	"github.com/plateful/plateful/pkg/planner"
	"github.com/plateful/plateful/pkg/render"
)

const sessionCookie = "plateful_session"

// Config holds server settings.
type Config struct {
	ListenAddr  string
	FrameHeight int
	// Models offered in the form's model selector.
	Models []string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddr:  ":8080",
		FrameHeight: 1200,
		Models: []string{
			"gpt-4o-mini",
			"gpt-3.5-turbo",
			"claude-3-5-haiku-latest",
		},
	}
}

// Server wires HTTP requests to the planner.
type Server struct {
	cfg      Config
	planner  *planner.Planner
	renderer *render.Renderer
	sessions *session.Manager
}

// New creates a Server.
func New(cfg Config, p *planner.Planner) *Server {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultConfig().ListenAddr
	}
	if cfg.FrameHeight == 0 {
		cfg.FrameHeight = DefaultConfig().FrameHeight
	}
	if len(cfg.Models) == 0 {
		cfg.Models = DefaultConfig().Models
	}
	return &Server{
		cfg:      cfg,
		planner:  p,
		renderer: render.New(render.Options{FrameHeight: cfg.FrameHeight}),
		sessions: session.NewManager(0),
	}
}

// Router returns the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/plan", s.handlePlan)
	r.Post("/image", s.handleGenerateImage)
	r.Get("/image/{title}", s.handleServeImage)
	r.Post("/narrate", s.handleNarrate)
	r.Get("/gallery", s.handleGallery)

	return r
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// sessionFor resolves the request's session, issuing a cookie for new
// visitors. Sessions are logically isolated from each other; the cookie is
// the only linkage.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session.State {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return s.sessions.GetOrCreate(c.Value)
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.sessions.GetOrCreate(id)
}
