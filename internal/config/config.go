// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/codegen-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete codegen configuration.
type Config struct {
	// General settings
	Version      string `toml:"version" json:"version"`
	DefaultModel string `toml:"default_model" json:"default_model"`

	// API (Groq) configuration
	API APIConfig `toml:"api" json:"api"`

	// User identity shown in the chat header
	User UserConfig `toml:"user" json:"user"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Voice input configuration
	Speech SpeechConfig `toml:"speech" json:"speech"`

	// Logging configuration
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// APIConfig contains the remote completion provider settings.
type APIConfig struct {
	// Key is the Groq API key. Required; there is no default.
	Key string `toml:"key" json:"key"`
	// BaseURL overrides the API root, mostly for testing against a proxy.
	BaseURL string `toml:"base_url" json:"base_url"`
}

// UserConfig identifies the person using the assistant. Both fields are
// asked for on first launch when empty.
type UserConfig struct {
	// Name is the display name shown in the header greeting.
	Name string `toml:"name" json:"name"`
	// Role selects which assistant modes are offered: student, teacher,
	// coder, employee, or business.
	Role string `toml:"role" json:"role"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "Dark" or "Light"
	Theme string `toml:"theme" json:"theme"`
	// FontSize is the chat text size: "Small", "Medium", or "Large"
	FontSize string `toml:"font_size" json:"font_size"`
	// AIName is the assistant's display name.
	AIName string `toml:"ai_name" json:"ai_name"`
}

// SpeechConfig contains voice input configuration.
type SpeechConfig struct {
	// Enabled controls whether the voice capture key is active.
	Enabled bool `toml:"enabled" json:"enabled"`
	// RecorderBinary overrides the auto-detected capture binary.
	RecorderBinary string `toml:"recorder_binary" json:"recorder_binary"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `toml:"level" json:"level"`
	// Path is the log file location (empty = ~/.codegen/codegen.log)
	Path string `toml:"path" json:"path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version:      "1.0.0",
		DefaultModel: "llama-3.1-8b-instant",

		API: APIConfig{
			Key:     "",
			BaseURL: "https://api.groq.com/openai/v1",
		},

		User: UserConfig{
			Name: "",
			Role: "",
		},

		UI: UIConfig{
			Theme:    "Dark",
			FontSize: "Medium",
			AIName:   "Code Gen Ai",
		},

		Speech: SpeechConfig{
			Enabled: true,
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the codegen configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".codegen"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the resolved log file location.
func (c *Config) LogPath() (string, error) {
	if c.Logging.Path != "" {
		return c.Logging.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "codegen.log"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions checks and fixes permissions on config files.
// Config files hold the API key and should be owner read/write only.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// A .env file in the working directory is honored, then environment
// overrides are applied last.
func Load() (*Config, error) {
	// Best effort; a missing .env file is the normal case.
	_ = godotenv.Load()

	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// finish applies env overrides, fills defaults, and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// fillDefaults fills in any missing values with defaults. The API key is
// deliberately left alone; it has no default.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = defaults.DefaultModel
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaults.API.BaseURL
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.FontSize == "" {
		cfg.UI.FontSize = defaults.UI.FontSize
	}
	if cfg.UI.AIName == "" {
		cfg.UI.AIName = defaults.UI.AIName
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
// CODEGEN_API_KEY wins over GROQ_API_KEY; both win over the config file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CODEGEN_API_KEY"); v != "" {
		c.API.Key = v
	} else if v := os.Getenv("GROQ_API_KEY"); v != "" {
		c.API.Key = v
	}
	if v := os.Getenv("CODEGEN_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("CODEGEN_MODEL"); v != "" {
		c.DefaultModel = v
	}
	if v := os.Getenv("CODEGEN_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("CODEGEN_USER_NAME"); v != "" {
		c.User.Name = v
	}
	if v := os.Getenv("CODEGEN_ROLE"); v != "" {
		c.User.Role = v
	}
	if v := os.Getenv("CODEGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with owner-only
// permissions; the file carries the API key.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# codegen configuration file")
	fmt.Fprintln(file, "# Generated by codegen - edit with care")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file atomically.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// ErrMissingAPIKey is returned by RequireAPIKey when no key is configured
// through any source.
var ErrMissingAPIKey = errors.New("no API key configured: set CODEGEN_API_KEY or GROQ_API_KEY, or add [api] key to ~/.codegen/config.toml")

// RequireAPIKey returns ErrMissingAPIKey when the key is absent. Called
// at startup; the app refuses to launch without it.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.API.Key) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

var (
	validThemes    = map[string]bool{"dark": true, "light": true}
	validFontSizes = map[string]bool{"small": true, "medium": true, "large": true}
	validRoles     = map[string]bool{"student": true, "teacher": true, "coder": true, "employee": true, "business": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.DefaultModel == "" {
		errs = append(errs, ValidationError{
			Field:   "default_model",
			Message: "must not be empty",
		})
	}

	if c.API.BaseURL != "" {
		if _, err := url.Parse(c.API.BaseURL); err != nil {
			errs = append(errs, ValidationError{
				Field:   "api.base_url",
				Message: fmt.Sprintf("invalid URL: %v", err),
			})
		}
	}

	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: Dark, Light", c.UI.Theme),
		})
	}

	if !validFontSizes[strings.ToLower(c.UI.FontSize)] {
		errs = append(errs, ValidationError{
			Field:   "ui.font_size",
			Message: fmt.Sprintf("invalid font size '%s', must be one of: Small, Medium, Large", c.UI.FontSize),
		})
	}

	// Role is empty until first-launch setup completes; only reject
	// values that will never map to a mode set.
	if c.User.Role != "" && !validRoles[strings.ToLower(c.User.Role)] {
		errs = append(errs, ValidationError{
			Field:   "user.role",
			Message: fmt.Sprintf("invalid role '%s', must be one of: student, teacher, coder, employee, business", c.User.Role),
		})
	}

	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
