package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/pipeline"
)

// TranscriptHandler returns a job's transcript, producing it on first request
type TranscriptHandler struct {
	orch *pipeline.Orchestrator
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(orch *pipeline.Orchestrator) *TranscriptHandler {
	return &TranscriptHandler{orch: orch}
}

// Handle runs extraction and transcription if the job is still fresh, then
// returns the transcript text
func (h *TranscriptHandler) Handle(c *fiber.Ctx) error {
	text, err := h.orch.Transcript(c.Params("job_id"))
	if errors.Is(err, pipeline.ErrJobNotFound) {
		return c.Status(404).JSON(fiber.Map{
			"error": "Job not found",
			"code":  "ERR_JOB_NOT_FOUND",
		})
	}
	if errors.Is(err, pipeline.ErrTranscriptNotReady) {
		return c.JSON(fiber.Map{
			"message": "Transcript not ready yet",
		})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "ERR_PIPELINE",
		})
	}

	return c.JSON(fiber.Map{
		"transcript": text,
	})
}
