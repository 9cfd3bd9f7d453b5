package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "mindgym.dev/mindgym/internal/adapters/http"
	"mindgym.dev/mindgym/internal/config"
	"mindgym.dev/mindgym/internal/crossword"
	"mindgym.dev/mindgym/internal/hint"
	"mindgym.dev/mindgym/internal/infrastructure/storage"
	"mindgym.dev/mindgym/internal/memory"
	"mindgym.dev/mindgym/internal/oracle"
	"mindgym.dev/mindgym/internal/ports"
	"mindgym.dev/mindgym/internal/sudoku"
	"mindgym.dev/mindgym/internal/usecase"
	"mindgym.dev/mindgym/internal/validator"
	"mindgym.dev/mindgym/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	var store ports.Storage
	switch cfg.Storage {
	case "sqlite":
		db, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			logger.Error("open sqlite storage", "path", cfg.DBPath, "err", err)
			os.Exit(1)
		}
		defer db.Close()
		store = db
	default:
		if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
			logger.Error("create persist dir", "path", cfg.PersistPath, "err", err)
			os.Exit(1)
		}
		store = storage.NewFS(cfg.PersistPath)
	}

	// The generative oracle is optional; without a key every crossword
	// comes from the built-in word list.
	var gen ports.Oracle
	if cfg.OpenAIAPIKey != "" {
		gen = oracle.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set; crosswords use the built-in word list")
	}

	// Wire generators → use cases → HTTP adapter.
	uc := usecase.NewService(
		sudoku.New(),
		crossword.New(),
		memory.New(),
		validator.New(),
		hint.New(),
		gen,
		oracle.NewStatic(),
		store,
		logger,
	)
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "storage", cfg.Storage)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
