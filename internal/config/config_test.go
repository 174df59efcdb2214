// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the home directory at a temp dir so tests never read the
// developer's real config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.UI.DefaultView != "agent" {
		t.Errorf("DefaultView = %q, want agent", cfg.UI.DefaultView)
	}
	if cfg.UI.Skin != SkinNeon {
		t.Errorf("Skin = %q, want neon", cfg.UI.Skin)
	}
	if cfg.UI.Engine != "data-stream" {
		t.Errorf("Engine = %q, want data-stream", cfg.UI.Engine)
	}
	if cfg.Hive.Mention != "@helper" {
		t.Errorf("Mention = %q, want @helper", cfg.Hive.Mention)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"unknown view", func(c *Config) { c.UI.DefaultView = "void" }, "ui.default_view"},
		{"unknown skin", func(c *Config) { c.UI.Skin = "pastel" }, "ui.skin"},
		{"unknown engine", func(c *Config) { c.UI.Engine = "plasma" }, "ui.engine"},
		{"empty agent name", func(c *Config) { c.Agent.Name = "  " }, "agent.name"},
		{"mention without at", func(c *Config) { c.Hive.Mention = "helper" }, "hive.mention"},
		{"bare at", func(c *Config) { c.Hive.Mention = "@" }, "hive.mention"},
		{"mention with space", func(c *Config) { c.Hive.Mention = "@help me" }, "hive.mention"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)

			err := c.Validate()
			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v, want ValidateErrors", err)
			}
			if len(verrs) != 1 || verrs[0].Field != tc.wantField {
				t.Errorf("Validate() fields = %v, want [%s]", verrs, tc.wantField)
			}
		})
	}
}

func TestConfig_ValidateAggregates(t *testing.T) {
	c := Default()
	c.UI.Skin = "x"
	c.UI.Engine = "y"

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	if !strings.Contains(err.Error(), "ui.skin") || !strings.Contains(err.Error(), "ui.engine") {
		t.Errorf("error should list both fields, got %q", err)
	}
}

// =============================================================================
// LOADING
// =============================================================================

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.Skin != SkinNeon {
		t.Errorf("Skin = %q, want default", cfg.UI.Skin)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".agentdeck", "config.toml"), `
[ui]
skin = "low-light"
engine = "deep-void"

[hive]
mention = "@bot"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.Skin != SkinLowLight || cfg.UI.Engine != "deep-void" || cfg.Hive.Mention != "@bot" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Hive.Assistant != "Helper AI" {
		t.Errorf("unset field should keep default, got %q", cfg.Hive.Assistant)
	}
	if !cfg.UI.AltScreen {
		t.Error("AltScreen should keep its default when the file omits it")
	}
}

func TestLoad_JSONFallback(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".agentdeck", "config.json"), `{"agent": {"name": "UNIT_7"}}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Agent.Name != "UNIT_7" {
		t.Errorf("Agent.Name = %q, want UNIT_7", cfg.Agent.Name)
	}
}

func TestLoad_BrokenFileFallsBackWithError(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".agentdeck", "config.toml"), "[ui\nskin=")

	cfg, err := Load()
	if err == nil {
		t.Error("Load() should report the parse error")
	}
	if cfg == nil || cfg.UI.Skin != SkinNeon {
		t.Errorf("Load() should still return defaults, got %+v", cfg)
	}
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	writeFile(t, path, "[ui]\nskn = \"neon\"\n")

	_, err := LoadFromPath(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("LoadFromPath() error = %v, want ErrUnknownKey", err)
	}
	if !strings.Contains(err.Error(), "ui.skn") {
		t.Errorf("error should name the key, got %q", err)
	}
}

func TestLoadFromPath_InvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	writeFile(t, path, "[ui]\nengine = \"plasma\"\n")

	if _, err := LoadFromPath(path); err == nil {
		t.Error("LoadFromPath() should reject an unknown engine")
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	writeFile(t, path, "[ui]\nskin = \"neon\"\nalt_screen = true\n")

	t.Setenv("AGENTDECK_SKIN", "low-light")
	t.Setenv("AGENTDECK_ALT_SCREEN", "false")
	t.Setenv("AGENTDECK_AGENT_NAME", "ENV_AGENT")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.UI.Skin != SkinLowLight {
		t.Errorf("Skin = %q, want env value", cfg.UI.Skin)
	}
	if cfg.UI.AltScreen {
		t.Error("AltScreen should be false from env")
	}
	if cfg.Agent.Name != "ENV_AGENT" {
		t.Errorf("Agent.Name = %q, want ENV_AGENT", cfg.Agent.Name)
	}
}

func TestEnvHelp_ListsVariables(t *testing.T) {
	help, err := EnvHelp()
	if err != nil {
		t.Fatalf("EnvHelp() error = %v", err)
	}
	for _, v := range []string{"AGENTDECK_SKIN", "AGENTDECK_HIVE_MENTION", "AGENTDECK_LOG_LEVEL"} {
		if !strings.Contains(help, v) {
			t.Errorf("EnvHelp() missing %s", v)
		}
	}
}

// =============================================================================
// SAVE AND KEY ACCESS
// =============================================================================

func TestSaveTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.UI.Engine = "static-grid"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}
	got, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if got.UI.Engine != "static-grid" {
		t.Errorf("Engine = %q after round trip", got.UI.Engine)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 && os.PathSeparator == '/' {
		t.Errorf("config file mode = %o, want owner-only", perm)
	}
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("ui.skin", "low-light"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cfg.Set("ui.alt_screen", "false"); err != nil {
		t.Fatalf("Set(bool) error = %v", err)
	}
	v, err := cfg.Get("ui.skin")
	if err != nil || v != "low-light" {
		t.Errorf("Get(ui.skin) = %v, %v", v, err)
	}
	if cfg.UI.AltScreen {
		t.Error("alt_screen should be false")
	}

	for _, bad := range []string{"ui.nope", "ui", "ghost.skin", ""} {
		if _, err := cfg.Get(bad); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("Get(%q) error = %v, want ErrUnknownKey", bad, err)
		}
	}
	if err := cfg.Set("ui.mouse", "maybe"); err == nil {
		t.Error("Set(ui.mouse, maybe) should fail")
	}
}

func TestAllKeys(t *testing.T) {
	keys := AllKeys()
	cfg := Default()
	for _, k := range keys {
		if _, err := cfg.Get(k); err != nil {
			t.Errorf("AllKeys() lists %q but Get fails: %v", k, err)
		}
	}
	if len(keys) != 11 {
		t.Errorf("AllKeys() = %d keys, want 11", len(keys))
	}
}

func TestLogPath(t *testing.T) {
	home := isolate(t)
	cfg := Default()

	got, err := cfg.LogPath()
	if err != nil || got != filepath.Join(home, ".agentdeck", "agentdeck.log") {
		t.Errorf("default LogPath() = %q, %v", got, err)
	}
	cfg.Log.File = "-"
	if got, _ := cfg.LogPath(); got != "" {
		t.Errorf("disabled LogPath() = %q, want empty", got)
	}
}

// =============================================================================
// WATCH
// =============================================================================

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[ui]\nskin = \"neon\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Config, 8)
	err := Watch(ctx, path, func(cfg *Config, err error) {
		if err == nil {
			got <- cfg
		}
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	writeFile(t, path, "[ui]\nskin = \"low-light\"\n")

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.UI.Skin == SkinLowLight {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
