// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
	if cfg.DefaultModel != "llama-3.1-8b-instant" {
		t.Errorf("unexpected default model: %s", cfg.DefaultModel)
	}
	if cfg.UI.Theme != "Dark" || cfg.UI.FontSize != "Medium" {
		t.Errorf("unexpected UI defaults: %+v", cfg.UI)
	}
	if cfg.UI.AIName != "Code Gen Ai" {
		t.Errorf("unexpected AI name: %s", cfg.UI.AIName)
	}
}

func TestDefault_HasNoAPIKey(t *testing.T) {
	cfg := Default()
	if err := cfg.RequireAPIKey(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got: %v", err)
	}
	cfg.API.Key = "sk-test"
	if err := cfg.RequireAPIKey(); err != nil {
		t.Fatalf("key set, expected nil, got: %v", err)
	}
	cfg.API.Key = "   "
	if err := cfg.RequireAPIKey(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("whitespace key should not count, got: %v", err)
	}
}

func TestFillDefaults_PartialConfig(t *testing.T) {
	cfg := &Config{}
	cfg.UI.Theme = "Light"
	fillDefaults(cfg)

	if cfg.UI.Theme != "Light" {
		t.Errorf("explicit theme overwritten: %s", cfg.UI.Theme)
	}
	if cfg.UI.FontSize != "Medium" {
		t.Errorf("font size not defaulted: %s", cfg.UI.FontSize)
	}
	if cfg.DefaultModel == "" || cfg.API.BaseURL == "" || cfg.Logging.Level == "" {
		t.Errorf("defaults not filled: %+v", cfg)
	}
	if cfg.API.Key != "" {
		t.Errorf("API key must never be defaulted, got: %s", cfg.API.Key)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad theme", func(c *Config) { c.UI.Theme = "Sepia" }, "ui.theme"},
		{"bad font size", func(c *Config) { c.UI.FontSize = "Huge" }, "ui.font_size"},
		{"bad role", func(c *Config) { c.User.Role = "wizard" }, "user.role"},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"empty model", func(c *Config) { c.DefaultModel = "" }, "default_model"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var errs ValidateErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidateErrors, got %T", err)
			}
			found := false
			for _, e := range errs {
				if e.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %s, got: %v", tc.field, errs)
			}
		})
	}
}

func TestValidate_CaseInsensitiveValues(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "light"
	cfg.UI.FontSize = "LARGE"
	cfg.User.Role = "Student"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("case variants should validate, got: %v", err)
	}
}

func TestValidate_EmptyRoleAllowed(t *testing.T) {
	cfg := Default()
	cfg.User.Role = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty role is the pre-setup state, got: %v", err)
	}
}

func TestApplyEnvOverrides_KeyPrecedence(t *testing.T) {
	t.Setenv("CODEGEN_API_KEY", "from-codegen")
	t.Setenv("GROQ_API_KEY", "from-groq")

	cfg := Default()
	cfg.API.Key = "from-file"
	cfg.ApplyEnvOverrides()
	if cfg.API.Key != "from-codegen" {
		t.Errorf("CODEGEN_API_KEY should win, got: %s", cfg.API.Key)
	}

	t.Setenv("CODEGEN_API_KEY", "")
	cfg.API.Key = "from-file"
	cfg.ApplyEnvOverrides()
	if cfg.API.Key != "from-groq" {
		t.Errorf("GROQ_API_KEY should override file, got: %s", cfg.API.Key)
	}
}

func TestApplyEnvOverrides_Settings(t *testing.T) {
	t.Setenv("CODEGEN_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("CODEGEN_THEME", "Light")
	t.Setenv("CODEGEN_USER_NAME", "Riley")
	t.Setenv("CODEGEN_ROLE", "coder")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.DefaultModel != "llama-3.3-70b-versatile" {
		t.Errorf("model override missed: %s", cfg.DefaultModel)
	}
	if cfg.UI.Theme != "Light" {
		t.Errorf("theme override missed: %s", cfg.UI.Theme)
	}
	if cfg.User.Name != "Riley" || cfg.User.Role != "coder" {
		t.Errorf("user overrides missed: %+v", cfg.User)
	}
}

func TestLoadFromPath_TOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	content := `
default_model = "qwen/qwen3-32b"

[api]
key = "sk-file-key"

[user]
name = "Sam"
role = "teacher"

[ui]
theme = "Light"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	// Keep env from interfering with the file contents.
	t.Setenv("CODEGEN_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("CODEGEN_MODEL", "")
	t.Setenv("CODEGEN_THEME", "")
	t.Setenv("CODEGEN_USER_NAME", "")
	t.Setenv("CODEGEN_ROLE", "")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.DefaultModel != "qwen/qwen3-32b" {
		t.Errorf("model not loaded: %s", cfg.DefaultModel)
	}
	if cfg.API.Key != "sk-file-key" {
		t.Errorf("key not loaded: %s", cfg.API.Key)
	}
	if cfg.User.Name != "Sam" || cfg.User.Role != "teacher" {
		t.Errorf("user not loaded: %+v", cfg.User)
	}
	if cfg.UI.Theme != "Light" {
		t.Errorf("theme not loaded: %s", cfg.UI.Theme)
	}
	// Unset fields come from defaults.
	if cfg.UI.FontSize != "Medium" {
		t.Errorf("font size not defaulted: %s", cfg.UI.FontSize)
	}
}

func TestLoadFromPath_InvalidConfigRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ui]
theme = "Sepia"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CODEGEN_THEME", "")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected validation failure for bad theme")
	}
}

func TestLoadTOML_FixesLoosePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permissions")
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`default_model = "m"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions not tightened, got %o", perm)
	}
}
