package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/athly-global/athly-api/internal/models"
	"github.com/athly-global/athly-api/internal/services"
	"github.com/athly-global/athly-api/internal/store"
)

type trainerSearcher interface {
	Search(ctx context.Context, filters services.SearchFilters) ([]store.Document, error)
	Featured(ctx context.Context) []store.Document
}

type TrainerSearchHandler struct {
	search trainerSearcher
}

func NewTrainerSearchHandler(search trainerSearcher) *TrainerSearchHandler {
	return &TrainerSearchHandler{search: search}
}

func (h *TrainerSearchHandler) SearchTrainers(c *fiber.Ctx) error {
	var filters services.SearchFilters
	if err := c.BodyParser(&filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate("search query", &filters); err != nil {
		return invalidRecordResponse(c, err)
	}

	items, err := h.search.Search(c.Context(), filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *TrainerSearchHandler) FeaturedTrainers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": h.search.Featured(c.Context())})
}
