package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes. tracking may be nil, in which case
// /track is not mounted.
func SetupRoutes(h *Handlers, hc *HealthChecker, tracking http.Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", hc.HandleHealth)
	r.Get("/health/live", hc.HandleLiveness)
	r.Get("/health/ready", hc.HandleReadiness)
	r.Handle("/metrics", promhttp.Handler())

	if tracking != nil {
		r.Mount("/track", tracking)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", h.ListLeads)
			r.Post("/generate", h.GenerateLeads)
			r.Post("/scrape", h.ScrapeLeads)
			r.Post("/evaluate", h.EvaluateLeads)
			r.Get("/{id}", h.GetLead)
			r.Put("/{id}/status", h.UpdateLeadStatus)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.ListCampaigns)
			r.Post("/", h.CreateCampaign)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetCampaign)
				r.Put("/", h.UpdateCampaign)
				r.Delete("/", h.DeleteCampaign)
				r.Post("/launch", h.LaunchCampaign)
				r.Post("/pause", h.PauseCampaign)
				r.Post("/resume", h.ResumeCampaign)
				r.Post("/complete", h.CompleteCampaign)
				r.Post("/send", h.SendCampaign)
				r.Get("/performance", h.CampaignPerformance)
				r.Get("/analysis", h.CampaignAnalysis)
				r.Get("/events", h.CampaignEvents)
				r.Post("/suggestions", h.CampaignSuggestions)
			})
		})

		r.Get("/analytics/dashboard", h.Dashboard)

		r.Route("/optimizations", func(r chi.Router) {
			r.Get("/", h.Optimizations)
			r.Post("/refresh", h.RefreshOptimizations)
			r.Post("/{id}/apply", h.ApplyRecommendation)
			r.Delete("/{id}", h.DismissRecommendation)
		})

		r.Get("/intelligence", h.Intelligence)
		r.Post("/intelligence", h.GenerateIntelligence)
	})

	return r
}
