package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/msgboard-dev/msgboard/internal/middleware/metrics"
	"github.com/msgboard-dev/msgboard/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(metrics.Middleware)

	// setup CORS for browser clients
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/threads/{board}", func(r chi.Router) {
			r.Post("/", h.CreateThread)
			r.Get("/", h.GetThreads)
			r.Delete("/", h.DeleteThread)
			r.Put("/", h.ReportThread)
		})
		r.Route("/replies/{board}", func(r chi.Router) {
			r.Post("/", h.CreateReply)
			r.Get("/", h.GetReplies)
			r.Delete("/", h.DeleteReply)
			r.Put("/", h.ReportReply)
		})
	})

	// server-rendered pages the creation endpoints redirect to
	r.Get("/b/{board}", deps.Web.Board)
	r.Get("/b/{board}/{thread}", deps.Web.Thread)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/b/general", http.StatusSeeOther)
	})

	return r
}
