package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
)

func writeFileAged(t *testing.T, path string, age time.Duration) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	old := time.Now().Add(-age)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func TestSweepRemovesOldFiles(t *testing.T) {
	uploads := t.TempDir()
	outputs := t.TempDir()

	writeFileAged(t, filepath.Join(uploads, "old.mp4"), 48*time.Hour)
	writeFileAged(t, filepath.Join(uploads, "fresh.wav"), time.Hour)
	writeFileAged(t, filepath.Join(outputs, "old.pptx"), 48*time.Hour)

	s := NewScheduler(nil, []string{uploads, outputs}, 60, 24)
	s.sweep()

	if _, err := os.Stat(filepath.Join(uploads, "old.mp4")); !os.IsNotExist(err) {
		t.Error("old upload survived the sweep")
	}
	if _, err := os.Stat(filepath.Join(outputs, "old.pptx")); !os.IsNotExist(err) {
		t.Error("old output survived the sweep")
	}
	if _, err := os.Stat(filepath.Join(uploads, "fresh.wav")); err != nil {
		t.Error("fresh file was removed")
	}
}

func TestSweepPrunesExpiredRecords(t *testing.T) {
	store := jobstore.NewStore()
	job := store.Create("talk.mp4", nil)

	s := NewScheduler(store, nil, 60, 24)
	s.sweep()
	if _, ok := store.Get(job.ID); !ok {
		t.Fatal("fresh job was pruned")
	}

	// Records age out along with their files.
	expired := NewScheduler(store, nil, 60, 0)
	time.Sleep(10 * time.Millisecond)
	expired.sweep()
	if _, ok := store.Get(job.ID); ok {
		t.Fatal("expired job survived the sweep")
	}
}

func TestDisabledSchedulerIsInert(t *testing.T) {
	s := NewScheduler(nil, nil, 0, 24)
	s.Start()
	s.Stop() // must not panic on a scheduler that never started
}
