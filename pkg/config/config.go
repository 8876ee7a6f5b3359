package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults used when a field is unset
const (
	DefaultDraft     = "Draft_2"
	DefaultExamDraft = "Draft_3"
	DefaultAddr      = ":8080"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	APIURL        string `json:"api_url,omitempty" validate:"omitempty,url"`
	Department    string `json:"department,omitempty" validate:"omitempty,len=2,alpha"`
	Year          int    `json:"year,omitempty" validate:"omitempty,min=1,max=4"`
	Draft         string `json:"draft,omitempty"`
	ExamDraft     string `json:"exam_draft,omitempty"`
	Theme         string `json:"theme,omitempty" validate:"omitempty,oneof=system light dark"`
	View          string `json:"view,omitempty" validate:"omitempty,oneof=week day"`
	PaletteFile   string `json:"palette_file,omitempty"`
	CacheBackend  string `json:"cache_backend,omitempty" validate:"omitempty,oneof=file redis none"`
	RedisAddr     string `json:"redis_addr,omitempty" validate:"omitempty,hostname_port"`
	RedisPassword string `json:"redis_password,omitempty"`
	AccentColor   string `json:"accent_color,omitempty"`
}

var validate = validator.New()

// Validate checks field formats
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DraftName returns the class timetable draft, falling back to the default
func (c *AppConfig) DraftName() string {
	if c.Draft != "" {
		return c.Draft
	}
	return DefaultDraft
}

// ExamDraftName returns the exam timetable draft, falling back to the default
func (c *AppConfig) ExamDraftName() string {
	if c.ExamDraft != "" {
		return c.ExamDraft
	}
	return DefaultExamDraft
}

// WithEnv returns a copy with EASECHAOS_* environment variables applied on
// top. The copy is for runtime use and should not be saved.
func (c *AppConfig) WithEnv() *AppConfig {
	out := *c
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString(&out.APIURL, "EASECHAOS_API_URL")
	setString(&out.Department, "EASECHAOS_DEPARTMENT")
	setString(&out.Draft, "EASECHAOS_DRAFT")
	setString(&out.ExamDraft, "EASECHAOS_EXAM_DRAFT")
	setString(&out.Theme, "EASECHAOS_THEME")
	setString(&out.PaletteFile, "EASECHAOS_PALETTE_FILE")
	setString(&out.CacheBackend, "EASECHAOS_CACHE_BACKEND")
	setString(&out.RedisAddr, "EASECHAOS_REDIS_ADDR")
	setString(&out.RedisPassword, "EASECHAOS_REDIS_PASSWORD")

	if v, ok := os.LookupEnv("EASECHAOS_YEAR"); ok {
		if year, err := strconv.Atoi(v); err == nil {
			out.Year = year
		}
	}
	return &out
}

// getConfigPath returns the absolute path to ~/.easechaos.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".easechaos.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
// A .env file in the working directory is loaded into the environment first
// so WithEnv sees its EASECHAOS_* overrides. Variables already set win.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save validates the configuration and writes it back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
