package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/athly-global/athly-api/internal/models"
)

type recordInserter interface {
	Insert(ctx context.Context, collection string, record any) (string, error)
}

type SignupHandler struct {
	store recordInserter
}

func NewSignupHandler(store recordInserter) *SignupHandler {
	return &SignupHandler{store: store}
}

type waitlistRequest struct {
	Email string `json:"email"`
}

func (h *SignupHandler) JoinWaitlist(c *fiber.Ctx) error {
	var req waitlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record := models.Waitlist{Email: req.Email}
	if err := models.Validate("waitlist entry", &record); err != nil {
		return invalidRecordResponse(c, err)
	}

	id, err := h.store.Insert(c.Context(), models.CollectionWaitlist, record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "ok", "id": id})
}

type clientSignupRequest struct {
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Goals    []string `json:"goals"`
	Timezone *string  `json:"timezone"`
}

func (h *SignupHandler) ClientSignup(c *fiber.Ctx) error {
	var req clientSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	client := models.Client{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Goals:    req.Goals,
		Timezone: req.Timezone,
	}
	client.ApplyDefaults()
	if err := models.Validate("client signup", &client); err != nil {
		return invalidRecordResponse(c, err)
	}

	id, err := h.store.Insert(c.Context(), models.CollectionClient, client)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "ok", "id": id})
}

type trainerIdentity struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type trainerCredentials struct {
	Certifications []string `json:"certifications"`
	Verified       bool     `json:"verified"`
}

type trainerExpertise struct {
	Specializations []string `json:"specializations"`
	Bio             *string  `json:"bio"`
}

type trainerPricing struct {
	Price30  *float64 `json:"price_30"`
	Price60  *float64 `json:"price_60"`
	Timezone *string  `json:"timezone"`
}

// The web app collects trainer signup across four steps; the API accepts
// them as a single composite payload validated as one unit.
type trainerSignupRequest struct {
	Identity    trainerIdentity    `json:"identity"`
	Credentials trainerCredentials `json:"credentials"`
	Expertise   trainerExpertise   `json:"expertise"`
	Pricing     trainerPricing     `json:"pricing"`
}

func (h *SignupHandler) TrainerSignup(c *fiber.Ctx) error {
	var req trainerSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	trainer := models.Trainer{
		FullName:        req.Identity.FullName,
		Email:           req.Identity.Email,
		Password:        req.Identity.Password,
		Certifications:  req.Credentials.Certifications,
		Verified:        req.Credentials.Verified,
		Specializations: req.Expertise.Specializations,
		Bio:             req.Expertise.Bio,
		Price30:         req.Pricing.Price30,
		Price60:         req.Pricing.Price60,
		Timezone:        req.Pricing.Timezone,
	}
	trainer.ApplyDefaults()
	if err := models.Validate("trainer signup", &trainer); err != nil {
		return invalidRecordResponse(c, err)
	}

	id, err := h.store.Insert(c.Context(), models.CollectionTrainer, trainer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "ok", "id": id})
}

func invalidRecordResponse(c *fiber.Ctx, err error) error {
	var invalid *models.InvalidRecordError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  invalid.Error(),
			"fields": invalid.Fields,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
