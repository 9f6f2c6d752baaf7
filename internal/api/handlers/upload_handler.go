package handlers

import (
	"io"
	"log/slog"

	"github.com/celebrateug/media-api/internal/service"
	"github.com/celebrateug/media-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler serves the two relay endpoints the upload widget calls:
// the bucket upload and the transcode kick-off.
type UploadHandler struct {
	s service.UploadService
}

func NewUploadHandler(s service.UploadService) *UploadHandler {
	return &UploadHandler{s: s}
}

// UploadToB2 accepts the multipart form {file, filename, contentType} and
// streams the payload into the bucket under the given key.
func (h *UploadHandler) UploadToB2(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	filename := c.FormValue("filename")
	contentType := c.FormValue("contentType")

	if err != nil || filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing file or filename",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read file",
		})
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read file",
		})
	}

	result, err := h.s.Upload(c.Context(), filename, fileBytes, contentType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// ProcessNewVideo takes a previously-uploaded key and hands it to the
// transcoding provider, recording the tracking row. The raw provider
// payload is returned so the widget can read playback ids straight from it.
func (h *UploadHandler) ProcessNewVideo(c *fiber.Ctx) error {
	var req transfer.ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if req.Filename == "" || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing filename or userId",
		})
	}

	rawBody, err := h.s.Process(c.Context(), req.Filename, req.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(rawBody)
}
