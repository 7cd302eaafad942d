package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Chit-ai/ChittaFlow/internal/api/handlers"
	mw "github.com/Chit-ai/ChittaFlow/internal/api/middleware"
	"github.com/Chit-ai/ChittaFlow/internal/buildconfig"
	"github.com/Chit-ai/ChittaFlow/internal/config"
	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/Chit-ai/ChittaFlow/internal/service"
	"github.com/Chit-ai/ChittaFlow/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App holds the router and request metrics.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	userStore := store.NewUserStore(db)
	agentStore := store.NewAgentStore(db)
	templateStore := store.NewTemplateStore(db)
	executionStore := store.NewExecutionStore(db)

	// Services
	agentSvc := service.NewAgentService(agentStore, templateStore, userStore)
	executionSvc := service.NewExecutionService(executionStore, agentStore)
	catalogSvc := service.NewCatalogService(templateStore)

	// Handlers
	userHandler := handlers.NewUserHandler(userStore)
	agentHandler := handlers.NewAgentHandler(agentSvc, executionSvc)
	templateHandler := handlers.NewTemplateHandler(catalogSvc, agentSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	// Metrics collector for middleware
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Principal(config.DefaultUserID()))
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		// User bootstrap — stands in for a real identity provider
		r.Post("/users", userHandler.Create)

		r.Route("/agents", func(r chi.Router) {
			r.Get("/", agentHandler.List)
			r.Post("/", agentHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", agentHandler.GetByID)
				r.Put("/", agentHandler.Update)
				r.Delete("/", agentHandler.Delete)
				r.Post("/execute", agentHandler.Execute)
				r.Get("/executions", agentHandler.ListExecutions)
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templateHandler.List)
			r.Post("/{id}/create-agent", templateHandler.CreateAgent)
		})

		r.Post("/seed-templates", templateHandler.Seed)
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"version":        buildconfig.Version(),
			"commit":         buildconfig.Commit(),
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy the domain interfaces at compile time.
var (
	_ domain.UserStore      = (*store.UserStore)(nil)
	_ domain.AgentStore     = (*store.AgentStore)(nil)
	_ domain.TemplateStore  = (*store.TemplateStore)(nil)
	_ domain.ExecutionStore = (*store.ExecutionStore)(nil)
)
