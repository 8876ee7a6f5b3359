// Package server exposes timetable layouts over HTTP as JSON and as a
// self-contained HTML page.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// Source fetches timetables; *timetable.Client satisfies it
type Source interface {
	FetchWeek(ctx context.Context, req timetable.Request) (*timetable.Result, error)
	FetchExams(ctx context.Context, req timetable.Request) (*timetable.ExamResult, error)
}

// Config holds server defaults
type Config struct {
	Draft     string
	ExamDraft string
	// Department and Year are used when a request leaves them out
	Department string
	Year       int
	// MaxRequests per client IP per minute; zero disables the limit
	MaxRequests int
	Location    *time.Location
}

// Server serves layouts built from a Source
type Server struct {
	source Source
	engine *layout.Engine
	cfg    Config
	log    *zap.Logger
	now    func() time.Time
}

// New creates a server. A nil engine uses the built-in palette and a nil
// logger discards logs.
func New(source Source, engine *layout.Engine, cfg Config, log *zap.Logger) *Server {
	if engine == nil {
		engine = layout.NewEngine(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Server{
		source: source,
		engine: engine,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// Router wires middleware and routes
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(s.requestLogger)

	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	if s.cfg.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(s.cfg.MaxRequests, time.Minute))
	}

	router.Get("/", s.handlePage)
	router.Get("/healthz", s.handleHealth)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/timetable", s.handleTimetable)
		r.Get("/exams", s.handleExams)
		r.Get("/departments", s.handleDepartments)
	})

	return router
}

// ListenAndServe runs until ctx is cancelled, then drains in-flight requests
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("waiting for pending requests before shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
