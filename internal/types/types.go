package types

import "time"

// Status tracks a job's position in the fixed conversion pipeline.
type Status string

const (
	StatusUploaded           Status = "uploaded"
	StatusExtractingAudio    Status = "extracting_audio"
	StatusTranscribing       Status = "transcribing"
	StatusTranscriptReady    Status = "transcript_ready"
	StatusGeneratingSlides   Status = "generating_slides"
	StatusCreatingPowerPoint Status = "creating_powerpoint"
	StatusCompleted          Status = "completed"
	StatusError              Status = "error"
)

// Progress checkpoints reported alongside each status.
const (
	ProgressUploaded           = 10
	ProgressExtractingAudio    = 20
	ProgressTranscribing       = 40
	ProgressTranscriptReady    = 60
	ProgressGeneratingSlides   = 70
	ProgressCreatingPowerPoint = 85
	ProgressCompleted          = 100
)

// ValidTransition enforces the allowed job state machine edges.
// completed -> generating_slides is the re-render edge: a finished deck may be
// regenerated with a different theme. The error state has no outgoing edges.
func ValidTransition(from, to Status) bool {
	if to == StatusError {
		return from != StatusError && from != StatusCompleted
	}
	switch from {
	case StatusUploaded:
		return to == StatusExtractingAudio
	case StatusExtractingAudio:
		return to == StatusTranscribing
	case StatusTranscribing:
		return to == StatusTranscriptReady
	case StatusTranscriptReady:
		return to == StatusGeneratingSlides
	case StatusGeneratingSlides:
		return to == StatusCreatingPowerPoint
	case StatusCreatingPowerPoint:
		return to == StatusCompleted
	case StatusCompleted:
		return to == StatusGeneratingSlides
	default:
		return false
	}
}

// TranscriptAvailable reports whether the job currently sits at or past
// transcript_ready. An errored job reports false even when it still holds
// transcript text; readers that serve cached text check the field too.
func (s Status) TranscriptAvailable() bool {
	switch s {
	case StatusTranscriptReady, StatusGeneratingSlides, StatusCreatingPowerPoint, StatusCompleted:
		return true
	default:
		return false
	}
}

// Failed reports whether the job is stuck in the terminal error state.
func (s Status) Failed() bool {
	return s == StatusError
}

// Job is one end-to-end conversion attempt. Field names on the wire match the
// status snapshot payload clients poll.
type Job struct {
	ID              string        `json:"id"`
	Status          Status        `json:"status"`
	Progress        int           `json:"progress"`
	Filename        string        `json:"filename"`
	FilePath        string        `json:"file_path"`
	AudioPath       string        `json:"audio_path,omitempty"`
	Transcript      string        `json:"transcript,omitempty"`
	SlideContent    *SlideContent `json:"slide_content,omitempty"`
	PPTPath         string        `json:"ppt_path,omitempty"`
	Theme           string        `json:"theme,omitempty"`
	GDriveURL       string        `json:"gdrive_url,omitempty"`
	DurationSeconds float64       `json:"duration_seconds,omitempty"`
	Error           string        `json:"error,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// SlideContent is the structured outline generated from a transcript.
type SlideContent struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// Slide is one content slide: a title plus its bullet points.
type Slide struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// TranscriptionResult represents the output from Whisper.
type TranscriptionResult struct {
	Text     string
	Language string
	Duration float64
	Segments []Segment
}

// Segment is a timestamped piece of the transcription.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}
