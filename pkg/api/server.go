package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Michel-2503/Kopfrechnen/pkg/api/handlers"
	"github.com/Michel-2503/Kopfrechnen/pkg/api/middleware"
	authproviders "github.com/Michel-2503/Kopfrechnen/pkg/auth/providers"
	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/network"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	TLS          *TLSConfig
	AllowOrigin  string
	AuthProvider authproviders.AuthProvider
	Sessions     handlers.SessionService
	Stream       *network.StreamServer
}

// NewRouter routes the session API. Everything under /sessions requires
// authentication when an auth provider is set.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", handlers.HandleHealth()).Methods(http.MethodGet)

	sessions := router.PathPrefix("/sessions").Subrouter()
	sessions.Use(middleware.NewAuthMiddleware(opts.AuthProvider))
	sessions.HandleFunc("", handlers.HandleStartSession(opts.Sessions)).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionID}", handlers.HandleGetSession(opts.Sessions)).Methods(http.MethodGet)
	sessions.HandleFunc("/{sessionID}/answer", handlers.HandleSubmitAnswer(opts.Sessions)).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionID}/advance", handlers.HandleAdvance(opts.Sessions)).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionID}/next-level", handlers.HandleStartNextLevel(opts.Sessions)).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionID}/restart", handlers.HandleRestart(opts.Sessions)).Methods(http.MethodPost)
	if opts.Stream != nil {
		sessions.HandleFunc("/{sessionID}/events", handlers.HandleSessionEvents(opts.Sessions, opts.Stream)).Methods(http.MethodGet)
	}

	allowOrigin := opts.AllowOrigin
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return middleware.NewLoggingMiddleware()(middleware.NewCORSMiddleware(allowOrigin)(router))
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer and blocks until it is stopped
func (s *APIServer) Start() error {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("API server error: %v", err)
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
