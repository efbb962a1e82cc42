package handler

import (
	"github.com/dangerclosesec/tounesna/internal/auth"
	"github.com/dangerclosesec/tounesna/internal/middleware"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups every HTTP handler served under /api.
type Handlers struct {
	Auth          *AuthHandler
	Organizations *OrganizationHandler
	Volunteers    *VolunteerHandler
	Requests      *RequestHandler
	Posts         *PostHandler
	Notifications *NotificationHandler
}

// Routes mounts the API on r.
func (h *Handlers) Routes(r chi.Router, tokenManager *auth.TokenManager) {
	volunteerOnly := middleware.RequireUserType(model.UserTypeVolunteer)
	organizationOnly := middleware.RequireUserType(model.UserTypeOrganization)

	// Public routes
	r.Route("/auth", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		r.Post("/volunteers", h.Auth.RegisterVolunteer)
		r.Post("/organizations", h.Auth.RegisterOrganization)
		r.Post("/login", h.Auth.Login)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))
		r.Use(middleware.AuthMiddleware(tokenManager))

		r.Get("/me", h.Auth.Me)

		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", h.Organizations.Search)
			r.With(organizationOnly).Put("/me", h.Organizations.UpdateMe)
			r.Get("/{id}", h.Organizations.Get)
			r.Get("/{id}/posts", h.Organizations.Posts)
			r.Get("/{id}/followers", h.Organizations.Followers)
			r.Get("/{id}/ratings", h.Organizations.Ratings)

			r.Group(func(r chi.Router) {
				r.Use(volunteerOnly)
				r.Post("/{id}/follow", h.Organizations.Follow)
				r.Delete("/{id}/follow", h.Organizations.Unfollow)
				r.Post("/{id}/ratings", h.Organizations.Rate)
			})
		})

		r.Route("/volunteers", func(r chi.Router) {
			r.Get("/", h.Volunteers.Search)
			r.With(volunteerOnly).Put("/me", h.Volunteers.UpdateMe)
			r.With(volunteerOnly).Get("/me/following", h.Volunteers.Following)
			r.Get("/{id}", h.Volunteers.Get)
		})

		r.Route("/requests", func(r chi.Router) {
			r.With(volunteerOnly).Post("/", h.Requests.Submit)
			r.With(volunteerOnly).Get("/", h.Requests.Mine)
			r.With(organizationOnly).Get("/inbox", h.Requests.Inbox)
			r.With(organizationOnly).Post("/legs/{id}/approve", h.Requests.Approve)
			r.With(organizationOnly).Post("/legs/{id}/reject", h.Requests.Reject)
			r.Get("/{id}", h.Requests.Get)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.Posts.Recent)
			r.With(organizationOnly).Post("/", h.Posts.Create)
			r.Get("/search", h.Posts.Search)
			r.Get("/dashboard", h.Posts.Dashboard)
			r.Get("/{id}", h.Posts.Get)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notifications.List)
			r.Get("/unread/count", h.Notifications.UnreadCount)
			r.Post("/read", h.Notifications.MarkAllRead)
			r.Post("/{id}/read", h.Notifications.MarkRead)
		})
	})
}
