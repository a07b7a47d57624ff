package pipeline

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
	"github.com/codebuildervaibhav/voice2slide/internal/storage"
	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// Sentinel errors surfaced to the HTTP layer. Anything else returned by the
// pipeline is a collaborator failure and carries the collaborator's message.
var (
	ErrJobNotFound        = errors.New("Job not found")
	ErrTranscriptNotReady = errors.New("Transcript not ready yet")
	ErrTranscriptMissing  = errors.New("Transcript not available")
	ErrJobFailed          = errors.New("Job is in error state")
	ErrDeckNotReady       = errors.New("PowerPoint not ready")
	ErrDeckFileMissing    = errors.New("File not found")
)

// Extractor produces an audio file from a video file.
type Extractor interface {
	ExtractAudio(videoPath, audioPath string) error
}

// Transcriber produces a transcript from an audio file.
type Transcriber interface {
	Transcribe(audioPath string) (*types.TranscriptionResult, error)
}

// Generator produces structured slide content from transcript text.
type Generator interface {
	Generate(ctx context.Context, transcript string) (*types.SlideContent, error)
}

// Renderer writes slide content to a presentation file.
type Renderer interface {
	Render(content *types.SlideContent, themeID, outputPath string) error
}

// Archiver uploads a rendered deck to remote storage and returns a link.
type Archiver interface {
	UploadDeck(path, name string) (string, error)
}

// Orchestrator drives jobs through the pipeline stages, invoking the
// collaborators synchronously and updating the job record as it goes.
type Orchestrator struct {
	store       *jobstore.Store
	paths       storage.Paths
	extractor   Extractor
	transcriber Transcriber
	generator   Generator
	renderer    Renderer
	archiver    Archiver // optional, may be nil

	retryDelay time.Duration
}

// New creates an orchestrator. archiver may be nil to disable deck archival.
func New(
	store *jobstore.Store,
	paths storage.Paths,
	extractor Extractor,
	transcriber Transcriber,
	generator Generator,
	renderer Renderer,
	archiver Archiver,
) *Orchestrator {
	return &Orchestrator{
		store:       store,
		paths:       paths,
		extractor:   extractor,
		transcriber: transcriber,
		generator:   generator,
		renderer:    renderer,
		archiver:    archiver,
		retryDelay:  time.Second,
	}
}

// Transcript returns the job's transcript text, first running audio
// extraction and transcription when the job is still in the uploaded stage.
// Re-invoking it after the transcript exists returns the cached text without
// repeating either step. Text already produced outlives a later slides
// failure; only a job that errored before transcription finished reports
// not ready.
func (o *Orchestrator) Transcript(jobID string) (string, error) {
	job, ok := o.store.Get(jobID)
	if !ok {
		return "", ErrJobNotFound
	}

	if job.Status == types.StatusUploaded {
		if err := o.runTranscriptLeg(jobID, job.FilePath); err != nil {
			return "", err
		}
	}

	job, ok = o.store.Get(jobID)
	if !ok {
		return "", ErrJobNotFound
	}
	// Presence decides, not status. A transcript_ready job may hold empty
	// text, which still counts as produced.
	if job.Transcript == "" && !job.Status.TranscriptAvailable() {
		return "", ErrTranscriptNotReady
	}
	return job.Transcript, nil
}

func (o *Orchestrator) runTranscriptLeg(jobID, videoPath string) error {
	o.store.SetStatus(jobID, types.StatusExtractingAudio, types.ProgressExtractingAudio)

	// Step 1: Extract audio
	audioPath := o.paths.Audio(jobID)
	if err := o.extractor.ExtractAudio(videoPath, audioPath); err != nil {
		log.Printf("Error processing %s: %v", jobID, err)
		o.store.SetError(jobID, err.Error())
		return err
	}

	o.store.SetStatus(jobID, types.StatusTranscribing, types.ProgressTranscribing)
	o.store.Update(jobID, func(j *types.Job) {
		j.AudioPath = audioPath
	})

	// Step 2: Transcribe
	result, err := o.transcriber.Transcribe(audioPath)
	if err != nil {
		log.Printf("Error processing %s: %v", jobID, err)
		o.store.SetError(jobID, err.Error())
		return err
	}

	o.store.SetStatus(jobID, types.StatusTranscriptReady, types.ProgressTranscriptReady)
	o.store.Update(jobID, func(j *types.Job) {
		j.Transcript = result.Text
	})

	log.Printf("Transcription completed for job %s", jobID)
	return nil
}

// GenerateSlides drives a job through outline generation and deck rendering,
// returning the generated slide content. The transcript must already exist;
// the transcript leg is never triggered implicitly. A completed job may be
// re-rendered with a different theme.
func (o *Orchestrator) GenerateSlides(ctx context.Context, jobID, themeID string) (*types.SlideContent, error) {
	job, ok := o.store.Get(jobID)
	if !ok {
		return nil, ErrJobNotFound
	}
	if job.Status.Failed() {
		return nil, ErrJobFailed
	}
	if !job.Status.TranscriptAvailable() {
		return nil, ErrTranscriptMissing
	}

	o.store.SetStatus(jobID, types.StatusGeneratingSlides, types.ProgressGeneratingSlides)
	o.store.Update(jobID, func(j *types.Job) {
		j.Theme = themeID
	})

	// Step 1: Generate the outline
	content, err := o.generator.Generate(ctx, job.Transcript)
	if err != nil {
		log.Printf("Error generating slides for %s: %v", jobID, err)
		o.store.SetError(jobID, err.Error())
		return nil, err
	}

	o.store.SetStatus(jobID, types.StatusCreatingPowerPoint, types.ProgressCreatingPowerPoint)
	o.store.Update(jobID, func(j *types.Job) {
		j.SlideContent = content
	})

	// Step 2: Render the deck
	deckPath := o.paths.Deck(jobID)
	if err := o.renderer.Render(content, themeID, deckPath); err != nil {
		log.Printf("Error generating slides for %s: %v", jobID, err)
		o.store.SetError(jobID, err.Error())
		return nil, err
	}

	o.store.SetStatus(jobID, types.StatusCompleted, types.ProgressCompleted)
	o.store.Update(jobID, func(j *types.Job) {
		j.PPTPath = deckPath
	})
	log.Printf("PowerPoint generated for job %s", jobID)

	// Step 3: Archive to Drive, never fatal
	o.archiveDeck(jobID, deckPath, job.Filename)

	return content, nil
}

// DeckFile returns the rendered deck path and download filename for a
// completed job.
func (o *Orchestrator) DeckFile(jobID string) (path, filename string, err error) {
	job, ok := o.store.Get(jobID)
	if !ok {
		return "", "", ErrJobNotFound
	}
	if job.Status != types.StatusCompleted || job.PPTPath == "" {
		return "", "", ErrDeckNotReady
	}
	if _, err := os.Stat(job.PPTPath); err != nil {
		return "", "", ErrDeckFileMissing
	}
	return job.PPTPath, job.Filename + ".pptx", nil
}

func (o *Orchestrator) archiveDeck(jobID, deckPath, filename string) {
	if o.archiver == nil {
		return
	}

	var url string
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		url, err = o.archiver.UploadDeck(deckPath, filename+".pptx")
		if err == nil {
			break
		}
		log.Printf("Drive upload attempt %d/3 for job %s failed: %v", attempt, jobID, err)
		if attempt < 3 {
			time.Sleep(time.Duration(attempt*attempt) * o.retryDelay)
		}
	}
	if err != nil {
		log.Printf("WARNING: Drive upload for job %s failed after 3 attempts, deck kept locally only", jobID)
		return
	}

	o.store.Update(jobID, func(j *types.Job) {
		j.GDriveURL = url
	})
	log.Printf("Deck for job %s archived to Drive", jobID)
}
