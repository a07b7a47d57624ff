package handlers

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
	"github.com/codebuildervaibhav/voice2slide/internal/media"
	"github.com/codebuildervaibhav/voice2slide/internal/storage"
	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// DurationProber reports a media file's duration in seconds.
type DurationProber interface {
	ProbeDuration(path string) (float64, error)
}

// UploadHandler handles video file uploads
type UploadHandler struct {
	store              *jobstore.Store
	paths              storage.Paths
	prober             DurationProber
	maxSizeMB          int
	maxDurationMinutes int
}

// NewUploadHandler creates a new upload handler. prober may be nil, in which
// case the duration probe and the duration limit are skipped.
func NewUploadHandler(store *jobstore.Store, paths storage.Paths, prober DurationProber, maxSizeMB, maxDurationMinutes int) *UploadHandler {
	return &UploadHandler{
		store:              store,
		paths:              paths,
		prober:             prober,
		maxSizeMB:          maxSizeMB,
		maxDurationMinutes: maxDurationMinutes,
	}
}

// Handle processes the upload request
func (h *UploadHandler) Handle(c *fiber.Ctx) error {
	// Get uploaded file
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "No file uploaded",
			"code":  "ERR_NO_FILE",
		})
	}

	// Validate file format
	if !media.ValidVideoFormat(file.Filename) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Only MP4 files are supported",
			"code":  "ERR_INVALID_FORMAT",
		})
	}

	// Validate file size
	maxSize := int64(h.maxSizeMB) * 1024 * 1024
	if file.Size > maxSize {
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large (max %dMB)", h.maxSizeMB),
			"code":  "ERR_FILE_TOO_LARGE",
		})
	}

	// Register the job; its id fixes where the video lands on disk
	job := h.store.Create(file.Filename, h.paths.Video)

	// Save file
	if err := c.SaveFile(file, job.FilePath); err != nil {
		log.Printf("Failed to save uploaded file: %v", err)
		h.store.SetError(job.ID, "Failed to save uploaded file")
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to save file",
			"code":  "ERR_SAVE_FAILED",
		})
	}

	// Probe duration and enforce the length limit
	if h.prober != nil {
		seconds, err := h.prober.ProbeDuration(job.FilePath)
		if err != nil {
			log.Printf("WARNING: could not probe duration for job %s: %v", job.ID, err)
		} else {
			h.store.Update(job.ID, func(j *types.Job) {
				j.DurationSeconds = seconds
			})
			if h.maxDurationMinutes > 0 && seconds > float64(h.maxDurationMinutes)*60 {
				detail := fmt.Sprintf("Video too long (max %d minutes)", h.maxDurationMinutes)
				os.Remove(job.FilePath)
				h.store.SetError(job.ID, detail)
				return c.Status(400).JSON(fiber.Map{
					"error": detail,
					"code":  "ERR_VIDEO_TOO_LONG",
				})
			}
		}
	}

	log.Printf("Uploaded %s as job %s", file.Filename, job.ID)

	// Return job ID immediately; transcription starts on the first
	// transcript request
	return c.JSON(fiber.Map{
		"job_id":  job.ID,
		"message": "File uploaded successfully",
	})
}
