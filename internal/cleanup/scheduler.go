package cleanup

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
)

// Scheduler periodically removes job files and records older than a maximum
// age. It is optional: an interval of zero disables it entirely, and storage
// then accumulates for the process lifetime.
type Scheduler struct {
	store           *jobstore.Store
	dirs            []string
	intervalMinutes int
	maxAgeHours     int
	stopChan        chan struct{}
}

// NewScheduler creates a cleanup scheduler over the given storage directories.
func NewScheduler(store *jobstore.Store, dirs []string, intervalMinutes, maxAgeHours int) *Scheduler {
	return &Scheduler{
		store:           store,
		dirs:            dirs,
		intervalMinutes: intervalMinutes,
		maxAgeHours:     maxAgeHours,
		stopChan:        make(chan struct{}),
	}
}

// Start begins the periodic sweep. A non-positive interval disables it.
func (s *Scheduler) Start() {
	if s.intervalMinutes <= 0 {
		log.Println("Cleanup scheduler disabled")
		return
	}

	// Run initial cleanup on startup
	log.Println("Running initial storage cleanup...")
	s.sweep()

	ticker := time.NewTicker(time.Duration(s.intervalMinutes) * time.Minute)

	go func() {
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				ticker.Stop()
				return
			}
		}
	}()

	log.Printf("Cleanup scheduler started (interval: %dm, max age: %dh)",
		s.intervalMinutes, s.maxAgeHours)
}

// Stop stops the periodic sweep.
func (s *Scheduler) Stop() {
	if s.intervalMinutes <= 0 {
		return
	}
	close(s.stopChan)
	log.Println("Cleanup scheduler stopped")
}

// sweep removes files older than the max age from every storage directory and
// prunes job records of the same age from the store.
func (s *Scheduler) sweep() {
	now := time.Now()
	maxAge := time.Duration(s.maxAgeHours) * time.Hour

	var deletedCount int
	var deletedSize int64

	for _, dir := range s.dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // Skip files we can't access
			}
			if info.IsDir() {
				return nil
			}

			age := now.Sub(info.ModTime())
			if age > maxAge {
				size := info.Size()
				if err := os.Remove(path); err != nil {
					log.Printf("Failed to delete old file %s: %v", path, err)
				} else {
					deletedCount++
					deletedSize += size
					log.Printf("Deleted old file: %s (age: %s, size: %dKB)",
						filepath.Base(path), age.Round(time.Hour), size/1024)
				}
			}

			return nil
		})
		if err != nil {
			log.Printf("Error during cleanup of %s: %v", dir, err)
		}
	}

	if s.store != nil {
		if pruned := s.store.Prune(now.Add(-maxAge)); pruned > 0 {
			log.Printf("Pruned %d expired job records", pruned)
		}
	}

	if deletedCount > 0 {
		log.Printf("Cleanup complete: %d files deleted, %.2fMB freed",
			deletedCount, float64(deletedSize)/(1024*1024))
	}
}
