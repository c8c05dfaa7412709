package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures the full HTTP surface: the pipeline endpoints, the
// dashboard CRUD routes, and the health check.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// Permissive CORS: the dashboard frontend may be served from anywhere
	// and sends its platform headers on every call.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type", "x-user-id"},
		MaxAge:         86400,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/prospects", func(r chi.Router) {
			// Pipeline operations
			r.Post("/discover", h.DiscoverProspects)
			r.Post("/autodiscover", h.AutodiscoverProspects)
			r.Post("/crawl", h.CrawlProspects)
			r.Post("/enrich", h.EnrichProspects)

			// Manual prospect management
			r.Post("/", h.CreateProspect)
			r.Route("/{prospectID}", func(r chi.Router) {
				r.Patch("/status", h.UpdateProspectStatus)
				r.Get("/messages", h.ListMessages)
				r.Post("/messages", h.RecordMessage)
			})
		})
		r.Post("/messages/generate", h.GenerateMessage)
		r.Post("/profiles/analyze", h.AnalyzeProfile)
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.SaveProfile)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.ListCampaigns)
			r.Post("/", h.CreateCampaign)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.GetCampaign)
				r.Put("/", h.UpdateCampaign)
				r.Patch("/status", h.UpdateCampaignStatus)
				r.Get("/prospects", h.ListProspects)
			})
		})

		r.Route("/queue", func(r chi.Router) {
			r.Get("/", h.ListQueue)
			r.Post("/", h.EnqueueMessage)
			r.Post("/process", h.ProcessQueue)
		})
	})

	return r
}
