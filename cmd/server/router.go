package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gocontacts/contacts-api/internal/api"
	apiMiddleware "github.com/gocontacts/contacts-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	userHandler := api.NewUserHandler(app.userService)
	contactHandler := api.NewContactHandler(app.contactService)
	addressHandler := api.NewAddressHandler(app.addressService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.userStore)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// User endpoints (public)
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User endpoints
			r.Get("/users/current", userHandler.GetCurrent)
			r.Patch("/users/current", userHandler.UpdateCurrent)
			r.Delete("/users/logout", userHandler.Logout)

			// Contact endpoints
			r.Post("/contacts", contactHandler.Create)
			r.Get("/contacts", contactHandler.Search)
			r.Get("/contacts/{contactId}", contactHandler.Get)
			r.Put("/contacts/{contactId}", contactHandler.Update)
			r.Delete("/contacts/{contactId}", contactHandler.Delete)

			// Address endpoints nested under a contact
			r.Post("/contacts/{contactId}/addresses", addressHandler.Create)
			r.Get("/contacts/{contactId}/addresses", addressHandler.List)
			r.Get("/contacts/{contactId}/addresses/{addressId}", addressHandler.Get)
			r.Put("/contacts/{contactId}/addresses/{addressId}", addressHandler.Update)
			r.Delete("/contacts/{contactId}/addresses/{addressId}", addressHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
