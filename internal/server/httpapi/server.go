// Package httpapi exposes the account and authentication operations as a
// JSON HTTP API on a chi router.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/logging"
	"github.com/dmitrijs2005/exactauth/internal/server/auth"
	"github.com/dmitrijs2005/exactauth/internal/server/metrics"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/dmitrijs2005/exactauth/internal/server/services"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type AccountCreator interface {
	CreateAccount(ctx context.Context, identifier, secret string, extra services.Flags) (*models.Account, error)
}

type Authenticator interface {
	Login(ctx context.Context, identifier, secret string) (*models.Account, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	AccountFromSubject(ctx context.Context, sub auth.Subject) (*models.Account, error)
	ParseAccessToken(token string) (auth.Subject, error)
}

type Options struct {
	TLSCertFile        string
	TLSKeyFile         string
	CORSAllowedOrigins []string
}

type Server struct {
	address  string
	accounts AccountCreator
	auth     Authenticator
	metrics  *metrics.Metrics
	logger   logging.Logger
	opts     Options
}

func NewServer(a string, l logging.Logger, as AccountCreator, au Authenticator, mt *metrics.Metrics, opts Options) *Server {
	return &Server{
		address:  a,
		logger:   l.With("module", "http_server"),
		accounts: as,
		auth:     au,
		metrics:  mt,
		opts:     opts,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.requestLogger)
	if len(s.opts.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/accounts", s.createAccount)
		r.Post("/auth/login", s.login)
		r.Post("/auth/refresh", s.refresh)
		r.With(s.requireToken).Get("/auth/me", s.me)
	})
	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	var err error
	if s.opts.TLSCertFile != "" || s.opts.TLSKeyFile != "" {
		err = srv.ServeTLS(lis, s.opts.TLSCertFile, s.opts.TLSKeyFile)
	} else {
		err = srv.Serve(lis)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
