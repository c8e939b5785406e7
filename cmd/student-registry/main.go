// main is the entry point of the student registry service.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file, env-var overrides)
//  2. Initialise the logger
//  3. Create the in-memory store, seeded with the default roster
//  4. Register all HTTP routes and wrap them in the middleware chain
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/student-registry
//
// or with an explicit config file:
//
//	go run ./cmd/student-registry --config=config/local.yaml
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campushq/student-registry/internal/config"
	"github.com/campushq/student-registry/internal/http/handlers/health"
	"github.com/campushq/student-registry/internal/http/handlers/student"
	"github.com/campushq/student-registry/internal/http/middleware"
	"github.com/campushq/student-registry/internal/storage/memory"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad falls back to defaults (0.0.0.0:8000, dev) when no config
	// file is given. If this returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Set as the process default so package-level slog calls in the
	// handlers pick up the env-appropriate handler too.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-registry",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// The store is held as the storage.Storage interface by the handler
	// factories, never as *memory.Store — swapping the backend later
	// only requires changing this one line.
	//
	// NewSeeded preloads the two-record roster the collection boots
	// with. The collection lives and dies with the process.
	store := memory.NewSeeded()

	log.Info("storage initialised", slog.String("backend", "memory"))

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	// The student handlers are factories — they receive `store` once at
	// startup and return the actual handler (closure / dependency
	// injection pattern).
	//
	// Route table:
	//   GET    /               → welcome message
	//   GET    /health         → liveness probe
	//   GET    /metrics        → Prometheus metrics
	//   POST   /students       → create a new student
	//   GET    /students       → list all students
	//   GET    /students/{id}  → get one student by id
	//   PUT    /students/{id}  → merge-update a student
	//   DELETE /students/{id}  → delete a student
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", health.Welcome)
	router.HandleFunc("GET /health", health.Check)
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("POST /students", student.New(store))
	router.HandleFunc("GET /students", student.GetList(store))
	router.HandleFunc("GET /students/{id}", student.GetByID(store))
	router.HandleFunc("PUT /students/{id}", student.Update(store))
	router.HandleFunc("DELETE /students/{id}", student.Delete(store))

	// Outermost first: every request gets a correlation id before it is
	// logged, measured, and shielded against panics.
	handler := middleware.Chain(router,
		middleware.RequestID,
		middleware.Logging(log),
		middleware.Metrics,
		middleware.Recovery(log),
	)

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr, // default "0.0.0.0:8000"
		Handler: handler,

		// Timeouts guard against slow-client connections holding
		// resources forever.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks, so it runs in its own goroutine; the main
	// goroutine stays free to wait for the shutdown signal below.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ErrServerClosed is the expected result of Shutdown, not a
		// failure.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered channel so the signal is not missed if main is briefly
	// busy. os.Interrupt = Ctrl+C; SIGTERM = kill / orchestrators.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	// Stop accepting new connections and give in-flight requests five
	// seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
