package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"aihub/internal/delivery/http/controllers"
	"aihub/internal/delivery/http/middleware"
	"aihub/internal/domain"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Events         *controllers.EventController
	Registrations  *controllers.RegistrationController
	Contact        *controllers.ContactController
	Newsletter     *controllers.NewsletterController
	Collaborations *controllers.CollaborationController
	Team           *controllers.TeamController
	Auth           *controllers.AuthController
	Admin          *controllers.AdminController

	Verifier    domain.TokenVerifier
	IntakeLimit *middleware.RateLimiter
}

// NewRouter initializes the HTTP router with all application routes.
// Public routes live under /api; admin routes require a Bearer token with
// the admin role. Public intake POSTs are rate limited per IP.
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(d.Verifier)
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireAdmin()(next))
	}
	limited := d.IntakeLimit.Limit

	// Public events
	mux.HandleFunc("GET /api/events", d.Events.List)
	mux.HandleFunc("GET /api/events/{slug}", d.Events.GetBySlug)
	mux.HandleFunc("POST /api/events/seed", d.Events.Seed)

	// Registration
	mux.HandleFunc("POST /api/events/{eventID}/registrations", limited(d.Registrations.Register))
	mux.HandleFunc("GET /api/events/{eventID}/registrations/check", d.Registrations.Check)
	mux.HandleFunc("GET /api/events/{eventID}/registrations/count", d.Registrations.Count)

	// Public intake
	mux.HandleFunc("POST /api/contact", limited(d.Contact.Submit))
	mux.HandleFunc("POST /api/newsletter/subscribe", limited(d.Newsletter.Subscribe))
	mux.HandleFunc("POST /api/collaborations", limited(d.Collaborations.Submit))

	// Team
	mux.HandleFunc("GET /api/team", d.Team.List)
	mux.HandleFunc("GET /api/team/{memberKey}", d.Team.GetByKey)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", d.Auth.SignUp)
	mux.HandleFunc("POST /api/auth/login", d.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", authed(d.Auth.Me))

	// Admin
	mux.HandleFunc("GET /api/admin/stats", admin(d.Admin.DashboardStats))

	mux.HandleFunc("GET /api/admin/events", admin(d.Events.AdminList))
	mux.HandleFunc("POST /api/admin/events", admin(d.Events.Create))
	mux.HandleFunc("GET /api/admin/events/{id}", admin(d.Events.AdminGet))
	mux.HandleFunc("PUT /api/admin/events/{id}", admin(d.Events.Update))
	mux.HandleFunc("DELETE /api/admin/events/{id}", admin(d.Events.Delete))

	mux.HandleFunc("GET /api/admin/events/{eventID}/registrations", admin(d.Registrations.AdminListByEvent))
	mux.HandleFunc("PATCH /api/admin/registrations/{id}/status", admin(d.Registrations.UpdateStatus))
	mux.HandleFunc("DELETE /api/admin/registrations/{id}", admin(d.Registrations.Delete))

	mux.HandleFunc("GET /api/admin/contacts", admin(d.Contact.AdminList))
	mux.HandleFunc("PATCH /api/admin/contacts/{id}/read", admin(d.Contact.MarkRead))
	mux.HandleFunc("DELETE /api/admin/contacts/{id}", admin(d.Contact.Delete))

	mux.HandleFunc("GET /api/admin/newsletter", admin(d.Newsletter.AdminList))
	mux.HandleFunc("DELETE /api/admin/newsletter/{id}", admin(d.Newsletter.Delete))

	mux.HandleFunc("GET /api/admin/collaborations", admin(d.Collaborations.AdminList))
	mux.HandleFunc("PATCH /api/admin/collaborations/{id}/read", admin(d.Collaborations.MarkRead))
	mux.HandleFunc("DELETE /api/admin/collaborations/{id}", admin(d.Collaborations.Delete))

	mux.HandleFunc("GET /api/admin/users", admin(d.Admin.ListUsers))
	mux.HandleFunc("PATCH /api/admin/users/{id}/role", admin(d.Admin.UpdateUserRole))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
