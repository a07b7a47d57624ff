package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
)

// StatusHandler reports job state for polling clients
type StatusHandler struct {
	store *jobstore.Store
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(store *jobstore.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

// Handle returns the full job record
func (h *StatusHandler) Handle(c *fiber.Ctx) error {
	job, ok := h.store.Get(c.Params("job_id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{
			"error": "Job not found",
			"code":  "ERR_JOB_NOT_FOUND",
		})
	}
	return c.JSON(job)
}
