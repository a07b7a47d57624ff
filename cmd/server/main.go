package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/cleanup"
	"github.com/codebuildervaibhav/voice2slide/internal/config"
	"github.com/codebuildervaibhav/voice2slide/internal/deck"
	"github.com/codebuildervaibhav/voice2slide/internal/diagnostics"
	"github.com/codebuildervaibhav/voice2slide/internal/handlers"
	"github.com/codebuildervaibhav/voice2slide/internal/jobstore"
	"github.com/codebuildervaibhav/voice2slide/internal/media"
	"github.com/codebuildervaibhav/voice2slide/internal/outline"
	"github.com/codebuildervaibhav/voice2slide/internal/pipeline"
	"github.com/codebuildervaibhav/voice2slide/internal/storage"
	"github.com/codebuildervaibhav/voice2slide/internal/transcription"
	"github.com/codebuildervaibhav/voice2slide/internal/watch"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure storage directories exist
	paths := storage.NewPaths(cfg.Storage.UploadDir, cfg.Storage.OutputDir)
	if err := paths.EnsureDirs(); err != nil {
		log.Fatalf("Failed to prepare storage: %v", err)
	}

	// Custom logger setup
	logBuffer := &LogBuffer{
		lines: make([]string, 0, 1000),
	}
	multiWriter := io.MultiWriter(os.Stdout, logBuffer)
	log.SetOutput(multiWriter)

	log.Println("Initializing components...")

	// Startup diagnostics - warnings only, the first job surfaces the
	// authoritative error
	checker := diagnostics.NewChecker()
	warnings := checker.Run(
		[]string{cfg.FFmpeg.Binary, cfg.FFmpeg.FFprobeBinary, "python"},
		[]string{cfg.Storage.UploadDir, cfg.Storage.OutputDir},
	)
	for _, w := range warnings {
		log.Printf("WARNING: %s: %s", w.Subject, w.Detail)
	}

	// Core components
	store := jobstore.NewStore()
	ffmpeg := media.NewFFmpeg(cfg.FFmpeg.Binary, cfg.FFmpeg.FFprobeBinary)
	transcriber := transcription.NewWhisperTranscriber(
		cfg.Whisper.Model,
		cfg.Whisper.Language,
		cfg.Whisper.Threads,
	)
	generator, err := outline.New(cfg.Outline.Provider, cfg.Outline.Model, cfg.Outline.MaxTokens)
	if err != nil {
		log.Fatalf("Failed to initialize outline generator: %v", err)
	}
	renderer := deck.NewRenderer()

	// Google Drive client (optional - may fail if credentials not set up)
	var archiver pipeline.Archiver
	if _, err := os.Stat(cfg.GoogleDrive.CredentialsFile); err == nil {
		driveClient, err := storage.NewDriveClient(
			cfg.GoogleDrive.CredentialsFile,
			cfg.GoogleDrive.TokenFile,
			cfg.GoogleDrive.FolderName,
		)
		if err != nil {
			log.Printf("WARNING: Google Drive not available: %v", err)
			log.Println("Decks will only be saved locally")
		} else {
			log.Println("Google Drive integration enabled")
			archiver = driveClient
		}
	} else {
		log.Println("Google Drive credentials not found - saving locally only")
	}

	// Pipeline orchestrator
	orch := pipeline.New(store, paths, ffmpeg, transcriber, generator, renderer, archiver)

	// Cleanup scheduler (disabled unless an interval is configured)
	cleanupScheduler := cleanup.NewScheduler(
		store,
		[]string{cfg.Storage.UploadDir, cfg.Storage.OutputDir},
		cfg.Cleanup.IntervalMinutes,
		cfg.Cleanup.MaxAgeHours,
	)
	cleanupScheduler.Start()
	defer cleanupScheduler.Stop()

	// Inbox watcher (optional)
	if cfg.Watch.Enabled {
		if err := os.MkdirAll(cfg.Watch.InboxDir, 0755); err != nil {
			log.Fatalf("Failed to create inbox directory: %v", err)
		}
		watcher, err := watch.New(cfg.Watch.InboxDir, store, paths, orch)
		if err != nil {
			log.Fatalf("Failed to start inbox watcher: %v", err)
		}
		watcher.Start()
		defer watcher.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Limits.MaxFileSizeMB * 1024 * 1024,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(store, paths, ffmpeg, cfg.Limits.MaxFileSizeMB, cfg.Limits.MaxDurationMinutes)
	statusHandler := handlers.NewStatusHandler(store)
	transcriptHandler := handlers.NewTranscriptHandler(orch)
	exportHandler := handlers.NewExportHandler(store, paths)
	slidesHandler := handlers.NewSlidesHandler(orch)
	downloadHandler := handlers.NewDownloadHandler(orch)
	themesHandler := handlers.NewThemesHandler()
	progressHandler := handlers.NewProgressHandler(store)

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Voice-to-Slide Generator API",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	app.Post("/upload", uploadHandler.Handle)
	app.Get("/status/:job_id", statusHandler.Handle)
	app.Get("/transcript/:job_id", transcriptHandler.Handle)
	app.Get("/transcript/:job_id/download", exportHandler.Handle)
	app.Post("/generate-slides/:job_id", slidesHandler.Handle)
	app.Get("/download/:job_id", downloadHandler.Handle)
	app.Get("/themes", themesHandler.Handle)

	// WebSocket route
	app.Get("/ws/progress/:job_id", websocket.New(progressHandler.Handle))

	// Get server logs
	app.Get("/logs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"logs": logBuffer.GetLogs(),
		})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Server starting on %s", addr)
	log.Println("📝 Endpoints:")
	log.Println("   POST /upload                      - Upload video file")
	log.Println("   GET  /status/:job_id              - Job status")
	log.Println("   GET  /transcript/:job_id          - Get transcript (transcribes once)")
	log.Println("   GET  /transcript/:job_id/download - Transcript as Word document")
	log.Println("   POST /generate-slides/:job_id     - Generate slides from transcript")
	log.Println("   GET  /download/:job_id            - Download PowerPoint")
	log.Println("   GET  /themes                      - List deck themes")
	log.Println("   GET  /ws/progress/:job_id         - WebSocket progress stream")
	log.Println("   GET  /logs                        - View server logs")
	log.Println("   GET  /health                      - Health check")

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down gracefully...")
		app.Shutdown()
	}()

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// LogBuffer captures logs in memory
type LogBuffer struct {
	lines []string
	mu    sync.Mutex
}

func (lb *LogBuffer) Write(p []byte) (n int, err error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.lines = append(lb.lines, string(p))

	// Keep last 1000 lines
	if len(lb.lines) > 1000 {
		lb.lines = lb.lines[len(lb.lines)-1000:]
	}

	return len(p), nil
}

func (lb *LogBuffer) GetLogs() []string {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	logs := make([]string, len(lb.lines))
	copy(logs, lb.lines)
	return logs
}
