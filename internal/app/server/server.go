package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"evalx/internal/domain/auth"
	"evalx/internal/domain/employee"
	"evalx/internal/domain/manager"
	"evalx/internal/domain/reports"
	"evalx/internal/platform/config"
	"evalx/internal/platform/db"
	"evalx/internal/platform/metrics"
	"evalx/internal/transport/http/api"
	authhandler "evalx/internal/transport/http/handlers/auth"
	employeeshandler "evalx/internal/transport/http/handlers/employees"
	managershandler "evalx/internal/transport/http/handlers/managers"
	reportshandler "evalx/internal/transport/http/handlers/reports"
	"evalx/internal/transport/http/middleware"
)

type App struct {
	Router chi.Router
	pool   *pgxpool.Pool
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// New wires the database pool, domain services, and HTTP routes into a
// ready-to-serve application.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	authStore := auth.NewStore(pool)
	employeeService := employee.NewService(employee.NewStore(pool))
	managerService := manager.NewService(manager.NewStore(pool))
	reportService := reports.NewService(reports.NewStore(pool))

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "Resource not found")
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, map[string]string{"status": "ok"})
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			api.Fail(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		api.Success(w, map[string]string{"status": "ready"})
	})
	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, collector.Snapshot())
	})

	authhandler.NewHandler(authStore, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		employeeshandler.NewHandler(employeeService).RegisterRoutes(r)
		managershandler.NewHandler(managerService).RegisterRoutes(r)
		reportshandler.NewHandler(reportService).RegisterRoutes(r)
	})

	return &App{Router: router, pool: pool}, nil
}

// Run loads configuration, starts the HTTP server, and blocks until an
// interrupt or a server failure.
func Run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.EnsureJWTSecret(); err != nil {
		return fmt.Errorf("generate jwt secret: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
