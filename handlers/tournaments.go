// handlers/tournaments.go - Tournaments, enrollments, results, rankings
package handlers

import (
	"github.com/wallasazevedo60-ux/canta-liga/middleware"
	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/schema"
	"github.com/wallasazevedo60-ux/canta-liga/services"

	"github.com/gofiber/fiber/v2"
)

type TournamentHandler struct {
	tournaments *services.TournamentService
	birds       *services.BirdService
}

func NewTournamentHandler(tournaments *services.TournamentService, birds *services.BirdService) *TournamentHandler {
	return &TournamentHandler{tournaments: tournaments, birds: birds}
}

// tournamentDetail is the single-tournament response: the row plus its
// enrollments. The outer Enrollments field keeps the key present even when
// the list is empty.
type tournamentDetail struct {
	models.Tournament
	Enrollments []models.Enrollment `json:"enrollments"`
}

// List returns all tournaments with organizer info, newest first. Public.
func (h *TournamentHandler) List(c *fiber.Ctx) error {
	tournaments, err := h.tournaments.GetTournaments()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(tournaments)
}

// Create creates a tournament. RequireRole has already checked that the
// user is an organizer or admin.
func (h *TournamentHandler) Create(c *fiber.Ctx) error {
	var req schema.InsertTournament
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user := middleware.CurrentUser(c)
	tournament, err := h.tournaments.CreateTournament(user.ID, &req)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusCreated).JSON(tournament)
}

// Get returns one tournament with its enrollments. Public.
func (h *TournamentHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid tournament id"})
	}

	tournament, err := h.tournaments.GetTournament(uint(id))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if tournament == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tournament not found"})
	}

	enrollments, err := h.tournaments.GetEnrollmentsByTournament(tournament.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	return c.JSON(tournamentDetail{Tournament: *tournament, Enrollments: enrollments})
}

// Enroll registers one of the caller's birds in the tournament.
func (h *TournamentHandler) Enroll(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid tournament id"})
	}

	var req schema.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	tournament, err := h.tournaments.GetTournament(uint(id))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if tournament == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tournament not found"})
	}

	user := middleware.CurrentUser(c)
	bird, err := h.birds.GetBird(req.BirdID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if bird == nil || bird.OwnerID != user.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid bird"})
	}

	enrollment, err := h.tournaments.CreateEnrollment(tournament.ID, bird.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// Results applies a batch of score/rank updates. Only the tournament's
// organizer may record results. The batch is applied row by row without a
// wrapping transaction; see TournamentService.UpdateResults.
func (h *TournamentHandler) Results(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid tournament id"})
	}

	tournament, err := h.tournaments.GetTournament(uint(id))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	user := middleware.CurrentUser(c)
	if tournament == nil || tournament.OrganizerID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "No permission"})
	}

	var entries []schema.ResultEntry
	if err := c.BodyParser(&entries); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := schema.ValidateResults(entries); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.tournaments.UpdateResults(entries); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true})
}

// Rankings returns the aggregate score view. Public.
func (h *TournamentHandler) Rankings(c *fiber.Ctx) error {
	rankings, err := h.tournaments.GetRankings()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if rankings == nil {
		rankings = []models.RankingEntry{}
	}
	return c.JSON(rankings)
}
