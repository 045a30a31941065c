package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/athly-global/athly-api/internal/config"
	"github.com/athly-global/athly-api/internal/models"
)

const maxDiagnosticCollections = 10

type storeDiagnostics interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

type SystemHandler struct {
	cfg   *config.Config
	store storeDiagnostics
}

func NewSystemHandler(cfg *config.Config, store storeDiagnostics) *SystemHandler {
	return &SystemHandler{cfg: cfg, store: store}
}

func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Athly Global Backend Running"})
}

// TestDatabase reports store connectivity without failing the request:
// every outcome is a 200 carrying the observed state.
func (h *SystemHandler) TestDatabase(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus(h.cfg.DatabaseURL),
		"database_name":     envStatus(h.cfg.DatabaseName),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if err := h.store.Ping(c.Context()); err != nil {
		response["database"] = "error: " + err.Error()
		return c.JSON(response)
	}
	response["connection_status"] = "connected"

	names, err := h.store.Collections(c.Context())
	if err != nil {
		response["database"] = "connected but error: " + err.Error()
		return c.JSON(response)
	}
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	response["database"] = "connected"
	response["collections"] = names

	return c.JSON(response)
}

func (h *SystemHandler) Schema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"collections": []string{
			models.CollectionClient,
			models.CollectionTrainer,
			models.CollectionReview,
			models.CollectionWaitlist,
		},
	})
}

func envStatus(value string) string {
	if value == "" {
		return "not set"
	}
	return "set"
}
