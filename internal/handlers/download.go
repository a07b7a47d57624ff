package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/pipeline"
)

const presentationMediaType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// DownloadHandler streams a completed deck back to the client
type DownloadHandler struct {
	orch *pipeline.Orchestrator
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(orch *pipeline.Orchestrator) *DownloadHandler {
	return &DownloadHandler{orch: orch}
}

// Handle sends the rendered .pptx file as an attachment
func (h *DownloadHandler) Handle(c *fiber.Ctx) error {
	jobID := c.Params("job_id")

	path, filename, err := h.orch.DeckFile(jobID)
	if errors.Is(err, pipeline.ErrJobNotFound) {
		return c.Status(404).JSON(fiber.Map{
			"error": "Job not found",
			"code":  "ERR_JOB_NOT_FOUND",
		})
	}
	if errors.Is(err, pipeline.ErrDeckNotReady) {
		return c.Status(400).JSON(fiber.Map{
			"error": "PowerPoint not ready",
			"code":  "ERR_DECK_NOT_READY",
		})
	}
	if errors.Is(err, pipeline.ErrDeckFileMissing) {
		return c.Status(404).JSON(fiber.Map{
			"error": "File not found",
			"code":  "ERR_FILE_MISSING",
		})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "ERR_PIPELINE",
		})
	}

	c.Attachment(filename)
	if err := c.SendFile(path); err != nil {
		log.Printf("Failed to send deck for job %s: %v", jobID, err)
		return c.Status(404).JSON(fiber.Map{
			"error": "File not found",
			"code":  "ERR_FILE_MISSING",
		})
	}

	// SendFile guesses the type from the extension; force the real one
	c.Set(fiber.HeaderContentType, presentationMediaType)
	return nil
}
