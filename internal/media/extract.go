package media

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// FFmpeg invokes the ffmpeg and ffprobe binaries for extraction and probing.
type FFmpeg struct {
	binary  string
	ffprobe string
}

// NewFFmpeg creates an FFmpeg wrapper around the given binaries.
func NewFFmpeg(binary, ffprobe string) *FFmpeg {
	return &FFmpeg{
		binary:  binary,
		ffprobe: ffprobe,
	}
}

// ExtractAudio strips the audio track into a 16kHz mono WAV file.
// Deliberately not CommandContext: a dropped client connection must not kill
// an extraction the job record already claims to be running.
func (f *FFmpeg) ExtractAudio(videoPath, audioPath string) error {
	cmd := exec.Command(f.binary,
		"-i", videoPath,
		"-vn",               // No video
		"-ar", "16000",      // 16kHz sample rate
		"-ac", "1",          // Mono
		"-c:a", "pcm_s16le", // 16-bit PCM
		"-y",                // Overwrite output
		audioPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %v\nOutput: %s", err, string(output))
	}

	return nil
}

// ProbeDuration returns the container duration in seconds, or 0 when ffprobe
// cannot determine it.
func (f *FFmpeg) ProbeDuration(videoPath string) (float64, error) {
	cmd := exec.Command(f.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %v\nOutput: %s", err, string(output))
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe returned unparseable duration %q", strings.TrimSpace(string(output)))
	}

	return duration, nil
}

// ValidVideoFormat checks if the file is the supported upload container.
func ValidVideoFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	supportedFormats := []string{".mp4"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
