package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/segurofacil-leads/internal/config"
	"github.com/xavierca1/segurofacil-leads/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/segurofacil-leads/internal/infra/http/middleware"
)

func newRouter(cfg *config.Config, leads *handlers.LeadHandler, pages *handlers.PageHandler, health *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()
	if cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Funil público
	r.Get("/", pages.ShowForm)
	r.Post("/", pages.SubmitForm)
	r.Post("/nova-cotacao", pages.NewQuote)
	r.Post("/api/leads", leads.CaptureLead)

	// Painel comercial
	r.Group(func(r chi.Router) {
		if cfg.AdminAuthEnabled() {
			r.Use(middleware.BasicAuth("SeguroFácil Admin", map[string]string{
				cfg.AdminUser: cfg.AdminPassword,
			}))
		}
		r.Get("/admin", pages.ShowAdmin)
		r.Get("/api/leads", leads.ListLeads)
	})

	return r
}
