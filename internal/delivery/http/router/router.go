package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/frontpage-archiver/internal/delivery/http/handler"
	"github.com/user/frontpage-archiver/internal/delivery/http/middleware"
)

func New(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)

	r.Get("/api/health", h.HandleHealthCheck)
	r.Route("/api/days", func(r chi.Router) {
		r.Post("/", h.HandleSubmitDay)
		r.Get("/{day}", h.HandleGetDayStatus)
		r.Get("/{day}/posts", h.HandleGetDayPosts)
	})
	r.Get("/dashboard", h.HandleDashboard)

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
