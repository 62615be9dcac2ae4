package httpserver

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/M07maaad/Study-Smart-Project/internal/config"
	"github.com/M07maaad/Study-Smart-Project/internal/logger"
	"github.com/M07maaad/Study-Smart-Project/internal/service"
)

type Server struct {
	quiz    *service.QuizService
	catalog *service.CatalogService
	auth    *service.AuthService
	cfg     config.ServerConfig
	secret  string
	log     *logger.Logger
}

func New(cfg config.Config, quiz *service.QuizService, catalog *service.CatalogService, auth *service.AuthService, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		quiz:    quiz,
		catalog: catalog,
		auth:    auth,
		cfg:     cfg.Server,
		secret:  cfg.Supabase.JWTSecret,
		log:     log.With("component", "http"),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(requestLogger(s.log))
	r.Use(cors(s.cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handleWelcome)
		r.Post("/auth/signup", s.handleSignUp)
		r.Post("/auth/signin", s.handleSignIn)
		r.Get("/courses", s.handleCourses)
		r.Get("/materials/{courseId}", s.handleMaterials)
		r.With(requireUser(s.secret)).Post("/generate-quiz", s.handleGenerateQuiz)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		})
	})

	s.mountStatic(r)
	return r
}

func (s *Server) mountStatic(r chi.Router) {
	dir := s.cfg.StaticDir
	if fi, err := os.Stat(dir); dir == "" || err != nil || !fi.IsDir() {
		s.log.Warn("static dir not found, serving api only", "static_dir", dir)
		r.Get("/", handleWelcome)
		return
	}
	r.Handle("/*", http.FileServer(http.Dir(dir)))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
