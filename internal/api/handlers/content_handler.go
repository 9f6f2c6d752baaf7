package handlers

import (
	"log/slog"

	"github.com/celebrateug/media-api/internal/queue"
	"github.com/celebrateug/media-api/internal/service"
	"github.com/celebrateug/media-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type ContentHandler struct {
	s           service.ContentService
	AsynqClient *asynq.Client
}

func NewContentHandler(s service.ContentService, asynqClient *asynq.Client) *ContentHandler {
	return &ContentHandler{s: s, AsynqClient: asynqClient}
}

func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	destination := c.Query("destination", "media")

	items, err := h.s.ListByDestination(c.Context(), destination)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list content",
		})
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *ContentHandler) RemoveContent(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.RemoveContentRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	err := h.s.Remove(c.Context(), userID, req.ContentID, req.Destination)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// TrackView is best-effort: the caller fires it without awaiting, so the
// response only acknowledges receipt.
func (h *ContentHandler) TrackView(c *fiber.Ctx) error {
	var req transfer.ContentIDRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.TrackView(c.Context(), req.ContentID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to track view",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *ContentHandler) RefreshDuration(c *fiber.Ctx) error {
	var req transfer.ContentIDRequest
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

	err := queue.EnqueueDurationBackfill(h.AsynqClient, queue.DurationBackfillPayload{ContentID: req.ContentID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error scheduling duration refresh",
		})
	}

	return c.SendStatus(fiber.StatusAccepted)
}
