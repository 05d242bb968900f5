// Package server exposes the problem engine over HTTP: a JSON API for
// listing problem types, generating and grading problems and rendering
// diagrams, plus a WebSocket quiz loop.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/problem"
)

// Options configures a Server.
type Options struct {
	Logger *logging.Logger
	// Rand is shared by all requests; it is wrapped in a lock.
	Rand problem.Rand
	// DefaultPool is used by the quiz when the client sends no pool.
	DefaultPool string
}

// Server routes API and WebSocket requests.
type Server struct {
	router      *mux.Router
	logger      *logging.Logger
	rng         problem.Rand
	defaultPool string
}

// New builds a Server with all routes registered.
func New(opts Options) *Server {
	s := &Server{
		router:      mux.NewRouter(),
		logger:      opts.Logger,
		rng:         opts.Rand,
		defaultPool: opts.DefaultPool,
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}
	if s.rng == nil {
		s.rng = problem.DefaultRand()
	} else {
		s.rng = &lockedRand{r: s.rng}
	}

	s.router.Use(s.accessLog)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/problems", s.handleListProblems).Methods(http.MethodGet)
	api.HandleFunc("/pool", s.handlePool).Methods(http.MethodGet)
	api.HandleFunc("/problems/{id}/new", s.handleNewProblem).Methods(http.MethodGet)
	api.HandleFunc("/problems/{id}/answer", s.handleAnswer).Methods(http.MethodPost)
	api.HandleFunc("/problems/{id}/diagram", s.handleDiagram).Methods(http.MethodPost)
	api.HandleFunc("/choices/{direction}.svg", s.handleChoiceIcon).Methods(http.MethodGet)

	s.router.HandleFunc("/ws/quiz", s.handleQuiz)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info(ctx, "shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// accessLog tags each request with a correlation ID and logs it when done.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.WithCorrelationID(r.Context(), r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Request-ID", logging.CorrelationID(ctx))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		s.logger.Info(ctx, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets WebSocket upgrades pass through the recorder.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// lockedRand serializes access to a Rand that is not safe for concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  problem.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
