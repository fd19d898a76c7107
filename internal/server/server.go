// Package server wires the example HTTP API: routing, middleware and the
// listener lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/cstortz/developer-artifacts/internal/config"
	"github.com/cstortz/developer-artifacts/internal/metrics"
	"github.com/cstortz/developer-artifacts/internal/session"
	"github.com/cstortz/developer-artifacts/internal/token"
	"github.com/cstortz/developer-artifacts/internal/user"
	"github.com/cstortz/developer-artifacts/pkg/logger"
)

type Server struct {
	cfg      *config.Config
	users    user.Store
	sessions session.Store
	tokens   *token.Manager
	metrics  *metrics.Metrics
	limiter  *rateLimiter
	validate *validator.Validate
	log      *logger.Module
	version  string
}

func New(
	cfg *config.Config,
	users user.Store,
	sessions session.Store,
	tokens *token.Manager,
	m *metrics.Metrics,
	version string,
) *Server {
	s := &Server{
		cfg:      cfg,
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		metrics:  m,
		validate: validator.New(),
		log:      logger.Named("http"),
		version:  version,
	}
	if cfg.RATE.Enabled {
		s.limiter = newRateLimiter(cfg.RATE.RequestsPerMinute, cfg.RATE.Burst)
	}
	return s
}

// Router builds the full handler chain. Order matters: request IDs are
// assigned first so the access log and error paths can reference them.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)

	api := r.PathPrefix(s.cfg.APP.APIPrefix).Subrouter()
	api.HandleFunc("/auth/signup", s.handleSignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", s.handleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)
	api.HandleFunc("/users/me", s.handleProfile).Methods(http.MethodGet)

	r.Use(s.requestIDMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.rateLimitMiddleware)

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.cfg.SERVER.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", requestIDHeader}),
	)

	return cors(handlers.CompressHandler(r))
}

// Run serves the API and, when enabled, the metrics listener until ctx is
// cancelled, then shuts both down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	apiSrv := &http.Server{
		Addr:         s.cfg.SERVER.Address,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.SERVER.ReadTimeout.Std(),
		WriteTimeout: s.cfg.SERVER.WriteTimeout.Std(),
	}

	var metricsSrv *http.Server
	if s.cfg.METRICS.Enabled && s.metrics != nil {
		mr := http.NewServeMux()
		mr.Handle(s.cfg.METRICS.Path, s.metrics.Handler())
		metricsSrv = &http.Server{
			Addr:    s.cfg.METRICS.Address,
			Handler: mr,
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("listening on %s", apiSrv.Addr)
		if err := apiSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if metricsSrv != nil {
		g.Go(func() error {
			s.log.Info("metrics on %s%s", metricsSrv.Addr, s.cfg.METRICS.Path)
			if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.SERVER.ShutdownTimeout.Std())
		defer cancel()

		s.log.Info("shutting down")
		err := apiSrv.Shutdown(shutdownCtx)
		if metricsSrv != nil {
			if merr := metricsSrv.Shutdown(shutdownCtx); err == nil {
				err = merr
			}
		}
		return err
	})

	return g.Wait()
}
