// handlers/birds.go - Bird roster and training log
package handlers

import (
	"github.com/wallasazevedo60-ux/canta-liga/middleware"
	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/schema"
	"github.com/wallasazevedo60-ux/canta-liga/services"

	"github.com/gofiber/fiber/v2"
)

type BirdHandler struct {
	birds *services.BirdService
}

func NewBirdHandler(birds *services.BirdService) *BirdHandler {
	return &BirdHandler{birds: birds}
}

// List returns the authenticated user's birds.
func (h *BirdHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	birds, err := h.birds.GetBirdsByOwner(user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(birds)
}

// Create registers a bird owned by the authenticated user.
func (h *BirdHandler) Create(c *fiber.Ctx) error {
	var req schema.InsertBird
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user := middleware.CurrentUser(c)
	bird, err := h.birds.CreateBird(user.ID, &req)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusCreated).JSON(bird)
}

// Get returns one of the user's birds. Birds owned by someone else report
// not-found rather than forbidden so the response never confirms the bird
// exists.
func (h *BirdHandler) Get(c *fiber.Ctx) error {
	bird, ok := h.ownedBird(c, "id")
	if !ok {
		return nil
	}
	return c.JSON(bird)
}

// Update applies a partial update to one of the user's birds.
func (h *BirdHandler) Update(c *fiber.Ctx) error {
	bird, ok := h.ownedBird(c, "id")
	if !ok {
		return nil
	}

	var req schema.BirdUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.birds.UpdateBird(bird.ID, &req)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(updated)
}

// Delete hard-deletes one of the user's birds. Trainings and enrollments
// referencing it are left behind.
func (h *BirdHandler) Delete(c *fiber.Ctx) error {
	bird, ok := h.ownedBird(c, "id")
	if !ok {
		return nil
	}
	if err := h.birds.DeleteBird(bird.ID); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Trainings lists the practice log of one of the user's birds.
func (h *BirdHandler) Trainings(c *fiber.Ctx) error {
	bird, ok := h.ownedBird(c, "birdId")
	if !ok {
		return nil
	}
	trainings, err := h.birds.GetTrainingsByBird(bird.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(trainings)
}

// CreateTraining appends a practice session for a bird the user owns.
func (h *BirdHandler) CreateTraining(c *fiber.Ctx) error {
	var req schema.InsertTraining
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user := middleware.CurrentUser(c)
	bird, err := h.birds.GetBird(req.BirdID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if bird == nil || bird.OwnerID != user.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Bird not found"})
	}

	training, err := h.birds.CreateTraining(&req)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusCreated).JSON(training)
}

// ownedBird loads the bird named by the path param and checks ownership.
// On failure it writes the response and returns ok=false.
func (h *BirdHandler) ownedBird(c *fiber.Ctx, param string) (*models.Bird, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid bird id"})
		return nil, false
	}

	bird, err := h.birds.GetBird(uint(id))
	if err != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
		return nil, false
	}
	user := middleware.CurrentUser(c)
	if bird == nil || bird.OwnerID != user.ID {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Bird not found"})
		return nil, false
	}
	return bird, true
}
