// handlers/routes.go - Route table
package handlers

import (
	"github.com/wallasazevedo60-ux/canta-liga/middleware"
	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/services"

	"github.com/gofiber/fiber/v2"
)

// API bundles the handlers with the session service they are gated by.
type API struct {
	Auth        *AuthHandler
	Birds       *BirdHandler
	Tournaments *TournamentHandler
	Sessions    *services.SessionService
	CookieName  string
}

// Register mounts every /api route with its auth requirements. Tournament
// listing, single-tournament reads and rankings are public; everything else
// needs a session, and tournament creation additionally needs the organizer
// or admin role.
func (a *API) Register(app *fiber.App) {
	requireAuth := middleware.SessionAuth(a.Sessions, a.CookieName)
	optionalAuth := middleware.OptionalSessionAuth(a.Sessions, a.CookieName)

	api := app.Group("/api")

	// Auth, with the stricter limiter on credential endpoints
	api.Post("/register", middleware.AuthRateLimit(), a.Auth.Register)
	api.Post("/login", middleware.AuthRateLimit(), a.Auth.Login)
	api.Post("/logout", requireAuth, a.Auth.Logout)
	api.Get("/user", requireAuth, a.Auth.Me)

	// Birds and trainings
	api.Get("/birds", requireAuth, a.Birds.List)
	api.Post("/birds", requireAuth, a.Birds.Create)
	api.Get("/birds/:id", requireAuth, a.Birds.Get)
	api.Put("/birds/:id", requireAuth, a.Birds.Update)
	api.Delete("/birds/:id", requireAuth, a.Birds.Delete)
	api.Get("/birds/:birdId/trainings", requireAuth, a.Birds.Trainings)
	api.Post("/trainings", requireAuth, a.Birds.CreateTraining)

	// Tournaments. Reads are public but still resolve the session when one
	// is present.
	api.Get("/tournaments", optionalAuth, a.Tournaments.List)
	api.Post("/tournaments", requireAuth,
		middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin),
		a.Tournaments.Create)
	api.Get("/tournaments/:id", optionalAuth, a.Tournaments.Get)
	api.Post("/tournaments/:id/enroll", requireAuth, a.Tournaments.Enroll)
	api.Post("/tournaments/:id/results", requireAuth, a.Tournaments.Results)

	// Rankings
	api.Get("/rankings", optionalAuth, a.Tournaments.Rankings)
}
