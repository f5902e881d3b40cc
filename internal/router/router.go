package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/trsv-dev/etx-disk-dashboard/internal/di_containers"
	"github.com/trsv-dev/etx-disk-dashboard/internal/middleware"
	"github.com/trsv-dev/etx-disk-dashboard/internal/view"
)

// Router Роутер.
func Router(h *di_containers.HandlersContainer) chi.Router {
	router := chi.NewRouter()

	// идентификатор запроса, логгер всех запросов и перехват паник
	router.Use(middleware.RequestID)
	router.Use(middleware.LogMiddleware)
	router.Use(chimiddleware.Recoverer)

	// экран входа
	router.Get("/", h.LoginHandler.LoginPage)
	router.Post("/", h.LoginHandler.Login)

	// экран данных
	router.Route("/Data", func(r chi.Router) {
		r.Get("/", h.DataHandler.DataPage)
		r.Post("/reminder", h.DataHandler.SendReminder)
	})

	router.Get("/health", h.HealthHandler.GetHealth)
	router.Handle("/static/*", http.StripPrefix("/static/", view.StaticHandler()))

	return router
}
