// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for agentdeck.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.agentdeck/config.toml
//   - ~/.agentdeck/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/agentdeck/internal/grid"
	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/util"
)

// ErrUnknownKey is returned when a config file or key path names a setting
// that does not exist.
var ErrUnknownKey = errors.New("unknown config key")

// Skin names.
const (
	SkinNeon     = "neon"
	SkinLowLight = "low-light"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete agentdeck configuration.
type Config struct {
	UI    UIConfig    `toml:"ui" json:"ui"`
	Agent AgentConfig `toml:"agent" json:"agent"`
	Hive  HiveConfig  `toml:"hive" json:"hive"`
	Log   LogConfig   `toml:"log" json:"log"`
}

// UIConfig controls the terminal interface.
type UIConfig struct {
	// DefaultView is the view shown at start: agent, hive, nexus, vault, profile, settings
	DefaultView string `toml:"default_view" json:"default_view" env:"AGENTDECK_VIEW" env-description:"view shown at start"`
	// Skin is the palette: "neon" or "low-light"
	Skin string `toml:"skin" json:"skin" env:"AGENTDECK_SKIN" env-description:"interface skin (neon, low-light)"`
	// Engine is the background grid mode: data-stream, static-grid, deep-void
	Engine    string `toml:"engine" json:"engine" env:"AGENTDECK_ENGINE" env-description:"visual engine (data-stream, static-grid, deep-void)"`
	AltScreen bool   `toml:"alt_screen" json:"alt_screen" env:"AGENTDECK_ALT_SCREEN" env-description:"use the terminal's alternate screen"`
	Mouse     bool   `toml:"mouse" json:"mouse" env:"AGENTDECK_MOUSE" env-description:"enable mouse wheel scrolling"`
	// UserLabel marks your own messages in both the agent terminal and the hive
	UserLabel string `toml:"user_label" json:"user_label" env:"AGENTDECK_USER_LABEL" env-description:"label on your own messages in every chat"`
}

// AgentConfig controls the terminal agent.
type AgentConfig struct {
	// Name labels agent replies in the transcript
	Name string `toml:"name" json:"name" env:"AGENTDECK_AGENT_NAME" env-description:"label on agent replies"`
}

// HiveConfig controls the group chat helper.
type HiveConfig struct {
	// Mention is the token that wakes the helper, e.g. "@helper"
	Mention   string `toml:"mention" json:"mention" env:"AGENTDECK_HIVE_MENTION" env-description:"token that wakes the helper"`
	Assistant string `toml:"assistant" json:"assistant" env:"AGENTDECK_HIVE_ASSISTANT" env-description:"label on helper replies"`
}

// LogConfig controls the debug log. The TUI owns stdout, so logs only ever
// go to a file.
type LogConfig struct {
	// File is the log path; empty means ~/.agentdeck/agentdeck.log, "-" disables logging
	File  string `toml:"file" json:"file" env:"AGENTDECK_LOG_FILE" env-description:"log file path, - to disable"`
	Level string `toml:"level" json:"level" env:"AGENTDECK_LOG_LEVEL" env-description:"log level (debug, info, warn, error)"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			DefaultView: nav.Agent,
			Skin:        SkinNeon,
			Engine:      string(grid.DataStream),
			AltScreen:   true,
			Mouse:       false,
			UserLabel:   "You",
		},
		Agent: AgentConfig{
			Name: "AGENT_V3",
		},
		Hive: HiveConfig{
			Mention:   "@helper",
			Assistant: "Helper AI",
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns ~/.agentdeck.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".agentdeck"), nil
}

// ConfigPathTOML returns the path of the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path of the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the effective log file path, or "" when logging is off.
func (c *Config) LogPath() (string, error) {
	switch c.Log.File {
	case "-":
		return "", nil
	case "":
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "agentdeck.log"), nil
	default:
		return c.Log.File, nil
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the TOML config if present, else the JSON one, else the
// defaults, then applies AGENTDECK_* environment overrides and validates.
// A file that fails to parse is reported alongside a usable default config.
func Load() (*Config, error) {
	var loadErr error

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg, err := LoadFromPath(tomlPath)
			if err == nil {
				return cfg, nil
			}
			loadErr = fmt.Errorf("failed to load TOML config: %w", err)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil && loadErr == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			cfg, err := LoadFromPath(jsonPath)
			if err == nil {
				return cfg, nil
			}
			loadErr = fmt.Errorf("failed to load JSON config: %w", err)
		}
	}

	cfg := Default()
	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadFromPath loads a config file, choosing the format by extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = LoadJSON(cfg, path)
	default:
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, err
	}

	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes path into cfg. Keys that match no setting are an error
// wrapping ErrUnknownKey, so typos do not pass silently.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON decodes path into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

func finish(cfg *Config) error {
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides sets fields from their AGENTDECK_* variables. Unset
// variables leave the field alone, so env beats file beats default.
func (c *Config) ApplyEnvOverrides() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}
	return nil
}

// EnvHelp describes every supported environment variable.
func EnvHelp() (string, error) {
	return cleanenv.GetDescription(Default(), nil)
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes cfg to the default TOML path.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg to path atomically with owner-only permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# agentdeck configuration file\n")
	buf.WriteString("# Environment variables (AGENTDECK_*) override these values.\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFileWithDir(path, buf.Bytes(), 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors aggregates every invalid setting found by Validate.
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

// Validate checks every setting and returns ValidateErrors, or nil.
func (c *Config) Validate() error {
	var errs ValidateErrors

	registered := false
	var views []string
	for _, it := range nav.DefaultItems {
		views = append(views, it.ID)
		if it.ID == c.UI.DefaultView {
			registered = true
		}
	}
	if !registered {
		errs = append(errs, ValidationError{
			Field:   "ui.default_view",
			Message: fmt.Sprintf("invalid view '%s', must be one of: %s", c.UI.DefaultView, strings.Join(views, ", ")),
		})
	}

	if c.UI.Skin != SkinNeon && c.UI.Skin != SkinLowLight {
		errs = append(errs, ValidationError{
			Field:   "ui.skin",
			Message: fmt.Sprintf("invalid skin '%s', must be one of: %s, %s", c.UI.Skin, SkinNeon, SkinLowLight),
		})
	}

	if _, err := grid.ParseEngine(c.UI.Engine); err != nil {
		errs = append(errs, ValidationError{Field: "ui.engine", Message: err.Error()})
	}

	if strings.TrimSpace(c.Agent.Name) == "" {
		errs = append(errs, ValidationError{Field: "agent.name", Message: "cannot be empty"})
	}

	switch m := c.Hive.Mention; {
	case len(m) < 2 || m[0] != '@':
		errs = append(errs, ValidationError{
			Field:   "hive.mention",
			Message: fmt.Sprintf("invalid mention '%s', must start with '@' followed by a name", m),
		})
	case strings.ContainsFunc(m, func(r rune) bool { return r == ' ' || r == '\t' }):
		errs = append(errs, ValidationError{Field: "hive.mention", Message: "cannot contain whitespace"})
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty fields that have no meaningful zero value.
func (c *Config) SetDefaults() {
	d := Default()
	if c.UI.DefaultView == "" {
		c.UI.DefaultView = d.UI.DefaultView
	}
	if c.UI.Skin == "" {
		c.UI.Skin = d.UI.Skin
	}
	if c.UI.Engine == "" {
		c.UI.Engine = d.UI.Engine
	}
	if c.Agent.Name == "" {
		c.Agent.Name = d.Agent.Name
	}
	if c.Hive.Mention == "" {
		c.Hive.Mention = d.Hive.Mention
	}
	if c.Hive.Assistant == "" {
		c.Hive.Assistant = d.Hive.Assistant
	}
	if c.UI.UserLabel == "" {
		c.UI.UserLabel = d.UI.UserLabel
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	c.UI.Skin = strings.ToLower(c.UI.Skin)
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// =============================================================================
// KEY ACCESS
// =============================================================================

// Get returns the value at a dotted key such as "ui.skin".
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set assigns value to a dotted key. String values are converted to the
// field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	parts := strings.Split(key, ".")
	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		if fieldName == "" {
			return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("%w: %s is a section, not a setting", ErrUnknownKey, key)
			}
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// normalizeFieldName turns "default_view" into "DefaultView".
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(strings.ToLower(part[1:]))
	}
	return result.String()
}

func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Bool:
			b, err := strconv.ParseBool(strVal)
			if err != nil {
				return fmt.Errorf("invalid boolean value: %w", err)
			}
			field.SetBool(b)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// AllKeys returns every settable key in sorted order.
func AllKeys() []string {
	var keys []string
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		section := t.Field(i)
		prefix := section.Tag.Get("toml")
		for j := 0; j < section.Type.NumField(); j++ {
			keys = append(keys, prefix+"."+section.Type.Field(j).Tag.Get("toml"))
		}
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of c. Config holds no reference types, so a value
// copy is deep.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

// String renders the config as indented JSON.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
