package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves job-scoped file locations. The upload directory holds the
// source video and derived audio, the output directory holds rendered decks.
// Files are named by job id alone; the in-memory job store is the only index.
type Paths struct {
	uploadDir string
	outputDir string
}

// NewPaths creates a path resolver over the two storage directories.
func NewPaths(uploadDir, outputDir string) Paths {
	return Paths{
		uploadDir: uploadDir,
		outputDir: outputDir,
	}
}

// EnsureDirs creates the storage directories if they do not exist.
func (p Paths) EnsureDirs() error {
	for _, dir := range []string{p.uploadDir, p.outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create storage directory %s: %v", dir, err)
		}
	}
	return nil
}

// Video returns the uploaded source file path for a job.
func (p Paths) Video(jobID string) string {
	return filepath.Join(p.uploadDir, jobID+".mp4")
}

// Audio returns the extracted audio file path for a job.
func (p Paths) Audio(jobID string) string {
	return filepath.Join(p.uploadDir, jobID+".wav")
}

// Deck returns the rendered presentation file path for a job.
func (p Paths) Deck(jobID string) string {
	return filepath.Join(p.outputDir, jobID+".pptx")
}

// TranscriptDoc returns the exported transcript document path for a job.
func (p Paths) TranscriptDoc(jobID string) string {
	return filepath.Join(p.outputDir, jobID+".docx")
}
