package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth     *AuthHandler
	Category *CategoryHandler
	Habit    *HabitHandler
	Health   *HealthHandler
}

// NewRouter mounts all API routes. requireAuth guards every route that acts
// on the caller's data; loaders installs the per-request DataLoaders used
// by the habit endpoints.
func NewRouter(h Handlers, requireAuth, loaders func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/auth/v1", func(r chi.Router) {
		r.Post("/register-user", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/google-sign-in", h.Auth.GoogleSignIn)
		r.Post("/refresh-token", h.Auth.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/get-user-details", h.Auth.GetUserDetails)
			r.Get("/logout", h.Auth.Logout)
			r.Delete("/delete-account", h.Auth.DeleteAccount)
			r.Put("/update-username", h.Auth.UpdateUsername)
		})
	})

	r.Route("/category/v1", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/create", h.Category.Create)
		r.Get("/fetch", h.Category.List)
		r.Put("/update/{id}", h.Category.Update)
		r.Delete("/delete/{id}", h.Category.Delete)
	})

	r.Route("/habit/v1", func(r chi.Router) {
		r.Use(requireAuth, loaders)
		r.Post("/create-habit", h.Habit.Create)
		r.Get("/get-habits", h.Habit.List)
		r.Get("/get-archived-habits", h.Habit.ListArchived)
		r.Get("/get-habit/{id}", h.Habit.Get)
		r.Put("/update-habit/{id}", h.Habit.Update)
		r.Put("/archive/{id}", h.Habit.Archive)
		r.Put("/unarchive/{id}", h.Habit.Unarchive)
		r.Delete("/delete/{id}", h.Habit.Delete)
		r.Put("/toggle-completion/{id}", h.Habit.Toggle)
		r.Post("/reorder", h.Habit.Reorder)
	})

	return r
}
