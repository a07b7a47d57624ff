package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on empty config: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Storage.UploadDir != "temp/uploads" {
		t.Errorf("default upload dir = %s", cfg.Storage.UploadDir)
	}
	if cfg.Storage.OutputDir != "temp/outputs" {
		t.Errorf("default output dir = %s", cfg.Storage.OutputDir)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" || cfg.FFmpeg.FFprobeBinary != "ffprobe" {
		t.Errorf("default ffmpeg binaries = %s/%s", cfg.FFmpeg.Binary, cfg.FFmpeg.FFprobeBinary)
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("default whisper model = %s, want base", cfg.Whisper.Model)
	}
	if cfg.Outline.Provider != "gemini" {
		t.Errorf("default outline provider = %s, want gemini", cfg.Outline.Provider)
	}
	if cfg.Outline.Model != "gemini-2.5-flash" {
		t.Errorf("default gemini model = %s", cfg.Outline.Model)
	}
	if cfg.Limits.MaxFileSizeMB != 500 {
		t.Errorf("default max file size = %d, want 500", cfg.Limits.MaxFileSizeMB)
	}
	if cfg.Cleanup.IntervalMinutes != 0 {
		t.Errorf("cleanup should default to disabled, got interval %d", cfg.Cleanup.IntervalMinutes)
	}
}

func TestValidateProviderModels(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		wantModel string
		wantErr   bool
	}{
		{"gemini default model", "gemini", "gemini-2.5-flash", false},
		{"openai default model", "openai", "gpt-4o-mini", false},
		{"unknown provider", "anthropic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.Outline.Provider = tt.provider
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown provider")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate(): %v", err)
			}
			if cfg.Outline.Model != tt.wantModel {
				t.Errorf("model = %s, want %s", cfg.Outline.Model, tt.wantModel)
			}
		})
	}
}

func TestValidateWatchRequiresInbox(t *testing.T) {
	var cfg Config
	cfg.Watch.Enabled = true
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when watch enabled without inbox_dir")
	}

	cfg.Watch.InboxDir = "inbox"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with inbox_dir: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := []byte(`
server:
  host: 127.0.0.1
  port: 9000
whisper:
  model: small
outline:
  provider: openai
cleanup:
  interval_minutes: 30
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("server = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Whisper.Model != "small" {
		t.Errorf("whisper model = %s, want small", cfg.Whisper.Model)
	}
	if cfg.Outline.Model != "gpt-4o-mini" {
		t.Errorf("openai default model not applied, got %s", cfg.Outline.Model)
	}
	if cfg.Cleanup.MaxAgeHours != 24 {
		t.Errorf("enabled cleanup should default max_age_hours to 24, got %d", cfg.Cleanup.MaxAgeHours)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
