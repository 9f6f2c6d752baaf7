package handlers

import (
	"log/slog"

	"github.com/celebrateug/media-api/internal/service"
	"github.com/celebrateug/media-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type InteractionHandler struct {
	s service.InteractionService
}

func NewInteractionHandler(s service.InteractionService) *InteractionHandler {
	return &InteractionHandler{s: s}
}

func (h *InteractionHandler) ListInteractions(c *fiber.Ctx) error {
	userID := GetUserID(c)

	interactions, err := h.s.ListInteractions(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list interactions",
		})
	}

	return c.Status(fiber.StatusOK).JSON(interactions)
}

func (h *InteractionHandler) ToggleLike(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.ToggleLikeRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if req.ContentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing content_id",
		})
	}

	err := h.s.ToggleLike(c.Context(), userID, req.ContentID, req.Liked)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to toggle like",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *InteractionHandler) ToggleFollow(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.ToggleFollowRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if req.CreatorName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing creator_name",
		})
	}

	err := h.s.ToggleFollow(c.Context(), userID, req.CreatorName, req.Following)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to toggle follow",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
