package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/pipeline"
)

// SlidesHandler turns a job's transcript into a rendered deck
type SlidesHandler struct {
	orch *pipeline.Orchestrator
}

// NewSlidesHandler creates a new slides handler
func NewSlidesHandler(orch *pipeline.Orchestrator) *SlidesHandler {
	return &SlidesHandler{orch: orch}
}

// Handle generates the outline and renders the deck for a job
func (h *SlidesHandler) Handle(c *fiber.Ctx) error {
	jobID := c.Params("job_id")

	// Background context: a dropped connection must not cancel a
	// generation already in flight
	content, err := h.orch.GenerateSlides(context.Background(), jobID, c.Query("theme"))
	if errors.Is(err, pipeline.ErrJobNotFound) {
		return c.Status(404).JSON(fiber.Map{
			"error": "Job not found",
			"code":  "ERR_JOB_NOT_FOUND",
		})
	}
	if errors.Is(err, pipeline.ErrTranscriptMissing) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Transcript not available",
			"code":  "ERR_NO_TRANSCRIPT",
		})
	}
	if errors.Is(err, pipeline.ErrJobFailed) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Job is in error state",
			"code":  "ERR_JOB_FAILED",
		})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "ERR_PIPELINE",
		})
	}

	return c.JSON(fiber.Map{
		"message":       "Slides generated successfully",
		"slide_content": content,
	})
}
