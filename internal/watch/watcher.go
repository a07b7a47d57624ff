package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
	"github.com/codebuildervaibhav/voice2slide/internal/media"
	"github.com/codebuildervaibhav/voice2slide/internal/pipeline"
	"github.com/codebuildervaibhav/voice2slide/internal/storage"
)

// Watcher ingests video files dropped into an inbox directory. Each file is
// claimed into the upload directory under a fresh job id and pushed through
// the full pipeline, as if it had arrived through the upload endpoint.
type Watcher struct {
	inboxDir string
	store    *jobstore.Store
	paths    storage.Paths
	orch     *pipeline.Orchestrator

	fsw  *fsnotify.Watcher
	jobs chan string
	done chan struct{}
	wg   sync.WaitGroup

	// settleDelay gives the producer time to finish writing a file after
	// the create event fires.
	settleDelay time.Duration
}

// New creates a watcher over inboxDir. The directory must exist.
func New(inboxDir string, store *jobstore.Store, paths storage.Paths, orch *pipeline.Orchestrator) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create inbox watcher: %w", err)
	}
	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", inboxDir, err)
	}

	return &Watcher{
		inboxDir:    inboxDir,
		store:       store,
		paths:       paths,
		orch:        orch,
		fsw:         fsw,
		jobs:        make(chan string, 16),
		done:        make(chan struct{}),
		settleDelay: 500 * time.Millisecond,
	}, nil
}

// Start launches the event loop and the processing drain.
func (w *Watcher) Start() {
	w.wg.Add(2)
	go w.watch()
	go w.drain()
	log.Printf("Inbox watcher started. Monitoring: %s", w.inboxDir)
}

// Stop shuts the watcher down, waiting for in-flight processing to finish.
func (w *Watcher) Stop() {
	close(w.done)
	w.fsw.Close()
	w.wg.Wait()
	log.Println("Inbox watcher stopped")
}

func (w *Watcher) watch() {
	defer w.wg.Done()

	// Pick up files already sitting in the inbox.
	if entries, err := os.ReadDir(w.inboxDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !media.ValidVideoFormat(entry.Name()) {
				continue
			}
			select {
			case w.jobs <- filepath.Join(w.inboxDir, entry.Name()):
			case <-w.done:
				return
			}
		}
	}

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create == 0 || !media.ValidVideoFormat(event.Name) {
				continue
			}
			log.Printf("New video detected in inbox: %s", event.Name)
			time.Sleep(w.settleDelay)
			select {
			case w.jobs <- event.Name:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Inbox watcher error: %v", err)
		}
	}
}

func (w *Watcher) drain() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case path := <-w.jobs:
			w.process(path)
		}
	}
}

func (w *Watcher) process(path string) {
	// The initial scan and a create event can enqueue the same file; the
	// first claim moves it, so a vanished path is a duplicate, not an error.
	if _, err := os.Stat(path); err != nil {
		return
	}

	job := w.store.Create(filepath.Base(path), w.paths.Video)

	// Claiming the file moves it out of the inbox so a rescan cannot pick
	// it up twice.
	if err := os.Rename(path, job.FilePath); err != nil {
		log.Printf("Failed to claim inbox file %s: %v", path, err)
		w.store.SetError(job.ID, fmt.Sprintf("Failed to claim inbox file: %v", err))
		return
	}
	log.Printf("Inbox file %s registered as job %s", filepath.Base(path), job.ID)

	// Failures are already recorded on the job by the pipeline.
	if _, err := w.orch.Transcript(job.ID); err != nil {
		return
	}
	if _, err := w.orch.GenerateSlides(context.Background(), job.ID, ""); err != nil {
		return
	}
	log.Printf("Inbox job %s completed", job.ID)
}
