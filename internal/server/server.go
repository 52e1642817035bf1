package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hongminglow/userauth-be/internal/auth"
	"github.com/hongminglow/userauth-be/internal/config"
	"github.com/hongminglow/userauth-be/internal/http/handlers"
	"github.com/hongminglow/userauth-be/internal/middleware"
	"github.com/hongminglow/userauth-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.UserStore, authn auth.Authenticator, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(store, authn, logger).Register(mux)
	handlers.NewUserHandler(store, authn, logger).Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
