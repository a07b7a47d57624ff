package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsLayout(t *testing.T) {
	p := NewPaths("temp/uploads", "temp/outputs")

	if got := p.Video("abc"); got != filepath.Join("temp/uploads", "abc.mp4") {
		t.Errorf("Video() = %q", got)
	}
	if got := p.Audio("abc"); got != filepath.Join("temp/uploads", "abc.wav") {
		t.Errorf("Audio() = %q", got)
	}
	if got := p.Deck("abc"); got != filepath.Join("temp/outputs", "abc.pptx") {
		t.Errorf("Deck() = %q", got)
	}
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	p := NewPaths(filepath.Join(base, "up"), filepath.Join(base, "out"))

	if err := p.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs(): %v", err)
	}
	for _, dir := range []string{filepath.Join(base, "up"), filepath.Join(base, "out")} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	// Idempotent on existing directories.
	if err := p.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() second call: %v", err)
	}
}
