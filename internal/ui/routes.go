package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns the console's http.Handler.
func (ui *UI) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(ui.logger))
	r.Use(sameOriginMiddleware)

	ui.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all console routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Logout is not a view; it works from any state.
	r.Get("/logout", ui.HandleLogout)
	r.Post("/logout", ui.HandleLogout)

	// Unmatched paths still go through the gate so that /admin/<anything>
	// redirects the same way /admin does.
	r.NotFound(ui.GateMiddleware(http.HandlerFunc(ui.HandleUnknownSection)).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(ui.GateMiddleware)

		r.Get("/", ui.HandleRoot)

		r.Get("/login", ui.HandleLogin)
		r.Post("/login", ui.HandleLoginPost)
		r.Get("/register", ui.HandleRegister)
		r.Post("/register", ui.HandleRegisterPost)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/", ui.HandleAdminOverview)
			r.Route("/equipment", func(r chi.Router) {
				r.Get("/", ui.HandleAdminEquipment)
				r.Post("/", ui.HandleAdminEquipmentAdd)
				r.Post("/{id}/activate", ui.HandleAdminEquipmentToggle(true))
				r.Post("/{id}/deactivate", ui.HandleAdminEquipmentToggle(false))
			})
			r.Route("/rentals", func(r chi.Router) {
				r.Get("/", ui.HandleAdminRentals)
				r.Post("/{id}/return", ui.HandleAdminRentalReturn)
			})
			r.Get("/reports", ui.HandleAdminReports)
			r.Get("/audit", ui.HandleAdminAudit)
		})

		r.Route("/customer", func(r chi.Router) {
			r.Get("/", ui.HandleCustomerOverview)
			r.Get("/browse", ui.HandleCustomerBrowse)
			r.Post("/browse/rent", ui.HandleCustomerRent)
			r.Get("/rentals", ui.HandleCustomerRentals)
			r.Post("/rentals/contract", ui.HandleCustomerContract)
			r.Get("/ai-recommend", ui.HandleCustomerRecommend)
			r.Post("/ai-recommend", ui.HandleCustomerRecommendPost)
			r.Get("/ai-chat", ui.HandleCustomerChat)
			r.Post("/ai-chat", ui.HandleCustomerChatPost)
		})
	})
}
