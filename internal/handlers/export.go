package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/export"
	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
	"github.com/codebuildervaibhav/voice2slide/internal/storage"
)

const wordMediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ExportHandler serves a job's transcript as a Word document
type ExportHandler struct {
	store *jobstore.Store
	paths storage.Paths
}

// NewExportHandler creates a new transcript export handler
func NewExportHandler(store *jobstore.Store, paths storage.Paths) *ExportHandler {
	return &ExportHandler{store: store, paths: paths}
}

// Handle writes the transcript to a .docx and sends it as an attachment
func (h *ExportHandler) Handle(c *fiber.Ctx) error {
	job, ok := h.store.Get(c.Params("job_id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{
			"error": "Job not found",
			"code":  "ERR_JOB_NOT_FOUND",
		})
	}
	// Presence decides, not status: a transcript produced before a later
	// slides failure is still exportable.
	if job.Transcript == "" && !job.Status.TranscriptAvailable() {
		return c.Status(400).JSON(fiber.Map{
			"error": "Transcript not available",
			"code":  "ERR_NO_TRANSCRIPT",
		})
	}

	docPath := h.paths.TranscriptDoc(job.ID)
	if err := export.WriteTranscriptDocx(job.Filename, job.Transcript, docPath); err != nil {
		log.Printf("Failed to export transcript for job %s: %v", job.ID, err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to export transcript",
			"code":  "ERR_EXPORT_FAILED",
		})
	}

	c.Attachment(job.Filename + ".docx")
	if err := c.SendFile(docPath); err != nil {
		log.Printf("Failed to send transcript document for job %s: %v", job.ID, err)
		return c.Status(404).JSON(fiber.Map{
			"error": "File not found",
			"code":  "ERR_FILE_MISSING",
		})
	}

	c.Set(fiber.HeaderContentType, wordMediaType)
	return nil
}
