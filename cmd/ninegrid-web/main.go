package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	httpadapter "ninegrid.dev/engine/internal/adapters/http"
	"ninegrid.dev/engine/internal/generator"
	"ninegrid.dev/engine/internal/hint"
	"ninegrid.dev/engine/internal/ports"
	"ninegrid.dev/engine/internal/solver"
	"ninegrid.dev/engine/internal/usecase"
	"ninegrid.dev/engine/internal/validator"
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

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

// envDefault lets a .env file or the environment override built-in defaults;
// flags still win over both.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	addr := flag.String("addr", envDefault("NINEGRID_ADDR", ":8080"), "listen address")
	levelStr := flag.String("log-level", envDefault("NINEGRID_LOG_LEVEL", "info"), "debug|info|warn|error")
	solverKind := flag.String("solver", envDefault("NINEGRID_SOLVER", "backtrack"), "solver to use: backtrack|dlx")
	flag.Parse()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(strings.ToLower(*levelStr)); err == nil {
		log.SetLevel(lvl)
	}

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "dlx":
		s = solver.NewDLXSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}

	// Wire providers -> use cases -> HTTP adapter
	g := generator.New(s)
	v := validator.New()
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(log, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{"addr": *addr, "solver": *solverKind}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Error("server error")
		os.Exit(1)
	}
}
