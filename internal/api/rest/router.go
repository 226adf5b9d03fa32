package rest

import (
	"net/http"
	"slices"

	"github.com/davidmoltin/command-center/internal/api/rest/handlers"
	customMiddleware "github.com/davidmoltin/command-center/internal/api/rest/middleware"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the router's middleware
type Options struct {
	AllowedOrigins []string
	MaxRequestSize int64
	CSP            string

	// Limiter is optional; nil disables rate limiting
	Limiter *customMiddleware.RateLimiter

	// MetricsHandler serves /metrics; nil uses the default registry
	MetricsHandler http.Handler
}

// Router holds the HTTP router and dependencies
type Router struct {
	router    *chi.Mux
	logger    *logger.Logger
	handlers  *handlers.Handlers
	websocket http.HandlerFunc
	metrics   *metrics.Metrics
	opts      Options
}

// NewRouter creates a new HTTP router. ws may be nil to disable the event stream.
func NewRouter(log *logger.Logger, h *handlers.Handlers, ws http.HandlerFunc, m *metrics.Metrics, opts Options) *Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// Metrics middleware
	r.Use(customMiddleware.Metrics(m))

	// Security middleware
	r.Use(customMiddleware.SecurityHeaders(opts.CSP))
	if opts.MaxRequestSize > 0 {
		r.Use(customMiddleware.RequestSizeLimit(opts.MaxRequestSize))
	}

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"} // Default for development
	}

	// Security: Never allow "*" with credentials enabled
	allowCredentials := true
	if slices.Contains(allowedOrigins, "*") {
		log.Warn("CORS: Wildcard origin '*' detected with credentials enabled. Disabling credentials for security.")
		allowCredentials = false
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Session-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           300,
	}))

	return &Router{
		router:    r,
		logger:    log,
		handlers:  h,
		websocket: ws,
		metrics:   m,
		opts:      opts,
	}
}

// SetupRoutes configures all API routes
func (r *Router) SetupRoutes() {
	metricsHandler := r.opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.router.Handle("/metrics", metricsHandler)

	// Health endpoints
	r.router.Get("/health", r.handlers.Health.Health)
	r.router.Get("/ready", r.handlers.Health.Ready)

	// The websocket upgrade must not go through Compress or the rate limiter
	if r.websocket != nil {
		r.router.Get("/ws", r.websocket)
	}

	// API v1
	r.router.Route("/api/v1", func(router chi.Router) {
		router.Use(middleware.Compress(5))
		if r.opts.Limiter != nil {
			router.Use(r.opts.Limiter.Middleware())
		}

		// Stateless dashboard derivations
		router.Get("/options", r.handlers.Dashboard.Options)
		router.Get("/dashboard", r.handlers.Dashboard.Dashboard)
		router.Get("/dashboard/export", r.handlers.Dashboard.Export)
		router.Get("/alerts/{id}", r.handlers.Dashboard.GetAlert)

		// Household pantry
		router.Route("/grocery", func(router chi.Router) {
			router.Get("/inventory", r.handlers.Grocery.Inventory)
			router.Get("/suggestions", r.handlers.Grocery.Suggestions)
		})

		// Sessions
		router.Route("/sessions", func(router chi.Router) {
			router.Post("/", r.handlers.Session.Create)

			router.Route("/{id}", func(router chi.Router) {
				router.Get("/", r.handlers.Session.Get)
				router.Delete("/", r.handlers.Session.Delete)
				router.Put("/filters", r.handlers.Session.SetFilter)
				router.Get("/dashboard", r.handlers.Session.Dashboard)

				// Root-cause analysis
				router.Post("/alerts/{alertID}/rca", r.handlers.Session.StartRCA)
				router.Get("/alerts/{alertID}/rca", r.handlers.Session.GetRCA)

				// Workflows
				router.Route("/workflows", func(router chi.Router) {
					router.Post("/", r.handlers.Workflow.Create)
					router.Get("/{wid}", r.handlers.Workflow.Get)
					router.Delete("/{wid}", r.handlers.Workflow.Delete)
					router.Post("/{wid}/messages", r.handlers.Workflow.SendMessage)
					router.Post("/{wid}/voice", r.handlers.Workflow.Voice)
					router.Get("/{wid}/export", r.handlers.Workflow.Export)
				})

				// Cart
				router.Get("/cart", r.handlers.Cart.Get)
				router.Post("/cart/items", r.handlers.Cart.AddItem)
				router.Patch("/cart/items/{itemID}", r.handlers.Cart.UpdateItem)
				router.Delete("/cart/items/{itemID}", r.handlers.Cart.RemoveItem)
			})
		})
	})
}

// Handler returns the http.Handler
func (r *Router) Handler() http.Handler {
	return r.router
}
