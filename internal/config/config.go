package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	Storage struct {
		UploadDir string `yaml:"upload_dir"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"storage"`

	FFmpeg struct {
		Binary        string `yaml:"binary"`
		FFprobeBinary string `yaml:"ffprobe_binary"`
	} `yaml:"ffmpeg"`

	Whisper struct {
		Model    string `yaml:"model"`
		Language string `yaml:"language"`
		Threads  int    `yaml:"threads"`
	} `yaml:"whisper"`

	Outline struct {
		Provider  string `yaml:"provider"`
		Model     string `yaml:"model"`
		MaxTokens int    `yaml:"max_tokens"`
	} `yaml:"outline"`

	Limits struct {
		MaxFileSizeMB      int `yaml:"max_file_size_mb"`
		MaxDurationMinutes int `yaml:"max_duration_minutes"`
	} `yaml:"limits"`

	Cleanup struct {
		IntervalMinutes int `yaml:"interval_minutes"`
		MaxAgeHours     int `yaml:"max_age_hours"`
	} `yaml:"cleanup"`

	Watch struct {
		Enabled  bool   `yaml:"enabled"`
		InboxDir string `yaml:"inbox_dir"`
	} `yaml:"watch"`

	GoogleDrive struct {
		CredentialsFile string `yaml:"credentials_file"`
		TokenFile       string `yaml:"token_file"`
		FolderName      string `yaml:"folder_name"`
	} `yaml:"google_drive"`
}

// Load reads and validates the YAML configuration file.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fills defaults and rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Storage.UploadDir == "" {
		c.Storage.UploadDir = "temp/uploads"
	}
	if c.Storage.OutputDir == "" {
		c.Storage.OutputDir = "temp/outputs"
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.FFprobeBinary == "" {
		c.FFmpeg.FFprobeBinary = "ffprobe"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Outline.Provider == "" {
		c.Outline.Provider = "gemini"
	}
	if c.Outline.Provider != "gemini" && c.Outline.Provider != "openai" {
		return fmt.Errorf("outline.provider must be \"gemini\" or \"openai\", got %q", c.Outline.Provider)
	}
	if c.Outline.Model == "" {
		switch c.Outline.Provider {
		case "gemini":
			c.Outline.Model = "gemini-2.5-flash"
		case "openai":
			c.Outline.Model = "gpt-4o-mini"
		}
	}
	if c.Outline.MaxTokens == 0 {
		c.Outline.MaxTokens = 1500
	}
	if c.Limits.MaxFileSizeMB == 0 {
		c.Limits.MaxFileSizeMB = 500
	}
	if c.Cleanup.IntervalMinutes < 0 {
		return fmt.Errorf("cleanup.interval_minutes must not be negative")
	}
	if c.Cleanup.IntervalMinutes > 0 && c.Cleanup.MaxAgeHours == 0 {
		c.Cleanup.MaxAgeHours = 24
	}
	if c.Watch.Enabled && c.Watch.InboxDir == "" {
		return fmt.Errorf("watch.inbox_dir is required when watch.enabled is true")
	}
	return nil
}
