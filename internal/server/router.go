// Package server assembles the HTTP router and runs the API server.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/loanboard/cms/internal/applynow"
	"github.com/loanboard/cms/internal/category"
	"github.com/loanboard/cms/internal/commodity"
	"github.com/loanboard/cms/internal/loan"
	appMiddleware "github.com/loanboard/cms/internal/middleware"
	"github.com/loanboard/cms/internal/response"
)

// Services are the domain services the routes dispatch to.
type Services struct {
	ApplyNow    *applynow.Service
	Categories  *category.Service
	Commodities *commodity.Service
	Loans       *loan.Service
}

// Options configure the cross-cutting parts of the router.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	// Registry receives the HTTP collectors and is served on /metrics. Nil disables both.
	Registry *prometheus.Registry
	// Gatherer is served on /metrics alongside Registry, typically prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewRouter wires every route: public reads under /api, admin CRUD under /api/admin.
func NewRouter(svc Services, opts Options) http.Handler {
	applyNowAdmin := applynow.NewHandler(svc.ApplyNow)
	applyNowPublic := applynow.NewPublicHandler(svc.ApplyNow)
	categoryAdmin := category.NewHandler(svc.Categories)
	categoryPublic := category.NewPublicHandler(svc.Categories)
	commodityAdmin := commodity.NewHandler(svc.Commodities)
	commodityPublic := commodity.NewPublicHandler(svc.Commodities)
	loanAdmin := loan.NewHandler(svc.Loans)
	loanPublic := loan.NewPublicHandler(svc.Loans)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	if opts.Registry != nil {
		r.Use(appMiddleware.NewMetrics(opts.Registry, "loanboard").Handler)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, r, "Route not found")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	if opts.Registry != nil {
		gatherers := prometheus.Gatherers{opts.Registry}
		if opts.Gatherer != nil {
			gatherers = append(gatherers, opts.Gatherer)
		}
		r.Handle("/metrics", promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))
	}

	// Swagger UI at /swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	scopes := map[string]applynow.Scope{
		"/apply-now":       applynow.ScopeGlobal,
		"/apply-now/usa":   applynow.ScopeUSA,
		"/apply-now/india": applynow.ScopeIndia,
	}

	r.Route("/api", func(r chi.Router) {
		for path, scope := range scopes {
			r.Get(path, applyNowPublic.Get(scope))
		}

		r.Get("/categories", categoryPublic.List)
		r.Get("/categories/{id}", categoryPublic.Get)

		r.Route("/commodity-prices", func(r chi.Router) {
			r.Get("/", commodityPublic.List)
			r.Get("/grouped", commodityPublic.Grouped)
			r.Get("/type/{commodityType}", commodityPublic.ByType)
			r.Get("/{id}", commodityPublic.Get)
		})

		r.Route("/loans", func(r chi.Router) {
			r.Get("/", loanPublic.List)
			r.Get("/category/{categoryId}", loanPublic.ByCategory)
			r.Get("/{id}", loanPublic.Get)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(appMiddleware.RequireAuth(opts.JWTSecret))

			for path, scope := range scopes {
				r.Get(path, applyNowAdmin.Get(scope))
				r.Post(path, applyNowAdmin.Set(scope))
				r.Put(path, applyNowAdmin.Update(scope))
			}

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryAdmin.List)
				r.Post("/", categoryAdmin.Create)
				r.Get("/{id}", categoryAdmin.Get)
				r.Put("/{id}", categoryAdmin.Update)
				r.Delete("/{id}", categoryAdmin.Delete)
			})

			r.Route("/commodity-prices", func(r chi.Router) {
				r.Get("/", commodityAdmin.List)
				r.Post("/", commodityAdmin.Create)
				r.Get("/{id}", commodityAdmin.Get)
				r.Put("/{id}", commodityAdmin.Update)
				r.Delete("/{id}", commodityAdmin.Delete)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Get("/", loanAdmin.List)
				r.Post("/", loanAdmin.Create)
				r.Get("/{id}", loanAdmin.Get)
				r.Put("/{id}", loanAdmin.Update)
				r.Delete("/{id}", loanAdmin.Delete)
			})
		})
	})

	return r
}
