package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// ProgressHandler pushes job snapshots over a websocket so clients can watch
// a conversion without polling
type ProgressHandler struct {
	store    *jobstore.Store
	interval time.Duration
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(store *jobstore.Store) *ProgressHandler {
	return &ProgressHandler{
		store:    store,
		interval: time.Second,
	}
}

// Handle streams the job record about once a second until the job reaches a
// terminal status or the client disconnects
func (h *ProgressHandler) Handle(conn *websocket.Conn) {
	defer conn.Close()

	jobID := conn.Params("job_id")
	log.Printf("Progress stream opened for job %s", jobID)

	for {
		job, ok := h.store.Get(jobID)
		if !ok {
			conn.WriteJSON(fiber.Map{
				"error": "Job not found",
				"code":  "ERR_JOB_NOT_FOUND",
			})
			return
		}

		if err := conn.WriteJSON(job); err != nil {
			log.Printf("Progress stream for job %s closed: %v", jobID, err)
			return
		}

		// completed still allows a re-render, but the stream's contract
		// ends at the first terminal status
		if job.Status == types.StatusCompleted || job.Status.Failed() {
			return
		}

		time.Sleep(h.interval)
	}
}
