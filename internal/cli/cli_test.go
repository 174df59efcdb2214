// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// TEST HELPERS
// =============================================================================

// isolate points HOME at a temp dir and turns logging off.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("AGENTDECK_LOG_FILE", "-")
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(IOStreams{In: strings.NewReader(""), Out: &out, Err: &errOut})
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// scriptedInput feeds fixed lines and then io.EOF.
type scriptedInput struct {
	lines   []string
	history []string
}

func (s *scriptedInput) Prompt(string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func newTestSession(t *testing.T, view string, lines ...string) (*chatSession, *bytes.Buffer, *scriptedInput) {
	t.Helper()
	cfg := config.Default()
	data, err := seed.Load()
	require.NoError(t, err)
	sim := newChatSimulator(view, cfg, data, zap.NewNop())
	t.Cleanup(sim.Close)

	var out bytes.Buffer
	in := &scriptedInput{lines: lines}
	return &chatSession{
		view:    view,
		sim:     sim,
		in:      in,
		out:     &out,
		cfg:     cfg,
		info:    session.Info{ID: "sess_cli00001", StartTime: time.Now()},
		log:     zap.NewNop(),
		timeout: 5 * time.Second,
	}, &out, in
}

// =============================================================================
// VERSION TESTS
// =============================================================================

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "agentdeck "+Version)
	assert.Contains(t, out, "OS/Arch:")
}

func TestVersion_JSON(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

// =============================================================================
// CONFIG COMMAND TESTS
// =============================================================================

func TestConfig_InitThenPath(t *testing.T) {
	home := isolate(t)
	want := filepath.Join(home, ".agentdeck", "config.toml")

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, want)
	assert.FileExists(t, want)

	_, _, err = execute(t, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, _, err = execute(t, "config", "init", "--force")
	assert.NoError(t, err)

	out, _, err = execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(out))
}

func TestConfig_InitExplicitPath(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(t.TempDir(), "deck.toml")

	out, _, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
	assert.NoFileExists(t, filepath.Join(home, ".agentdeck", "config.toml"))

	out, _, err = execute(t, "--config", path, "config", "get", "ui.engine")
	require.NoError(t, err)
	assert.Equal(t, "data-stream", strings.TrimSpace(out))
}

func TestConfig_SetThenGet(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "config", "set", "ui.skin", "low-light")
	require.NoError(t, err)

	out, _, err := execute(t, "config", "get", "ui.skin")
	require.NoError(t, err)
	assert.Equal(t, config.SkinLowLight, strings.TrimSpace(out))

	out, _, err = execute(t, "config", "get", "hive.mention")
	require.NoError(t, err)
	assert.Equal(t, "@helper", strings.TrimSpace(out))
}

func TestConfig_SetRejectsBadValues(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "config", "set", "ui.skin", "sepia")
	assert.Error(t, err)

	_, _, err = execute(t, "config", "set", "ui.nope", "x")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfig_SetDoesNotPersistEnv(t *testing.T) {
	home := isolate(t)
	t.Setenv("AGENTDECK_AGENT_NAME", "FROM_ENV")

	_, _, err := execute(t, "config", "set", "ui.engine", "static-grid")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".agentdeck", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `engine = "static-grid"`)
	assert.NotContains(t, string(data), "FROM_ENV")
}

func TestConfig_ShowAndEnv(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `skin = "neon"`)

	out, _, err = execute(t, "config", "show", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"skin": "neon"`)

	out, _, err = execute(t, "config", "env")
	require.NoError(t, err)
	assert.Contains(t, out, "AGENTDECK_SKIN")

	out, _, err = execute(t, "config", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "ui.user_label")
}

func TestConfig_BrokenDefaultFileWarns(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".agentdeck")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\ncolour = 1\n"), 0600))

	out, errOut, err := execute(t, "config", "get", "ui.skin")
	require.NoError(t, err)
	assert.Equal(t, "neon", strings.TrimSpace(out))
	assert.Contains(t, errOut, "[WARN]")
	assert.Contains(t, errOut, "config init --force")
}

func TestConfig_BrokenExplicitFileFails(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0600))

	_, _, err := execute(t, "--config", path, "config", "show")
	assert.ErrorContains(t, err, "failed to load")
}

// =============================================================================
// ROOT FLAG TESTS
// =============================================================================

func TestRoot_InvalidSkinFlag(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "--skin", "sepia")
	assert.ErrorContains(t, err, "invalid flags")
}

func TestRoot_NeedsTerminal(t *testing.T) {
	if IsTTY() && IsStdoutTTY() {
		t.Skip("running attached to a terminal")
	}
	isolate(t)

	_, _, err := execute(t)
	assert.ErrorIs(t, err, ErrNoTerminal)
}

func TestChat_RejectsUnknownView(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "chat", "vault")
	assert.Error(t, err)

	_, _, err = execute(t, "chat", "agent", "hive")
	assert.Error(t, err)
}

// =============================================================================
// CHAT SESSION TESTS
// =============================================================================

func TestChatSession_PrintsSeedAndQuits(t *testing.T) {
	s, out, _ := newTestSession(t, nav.Agent, "/quit", "never read")

	require.NoError(t, s.run(context.Background()))
	assert.Contains(t, out.String(), "AGENTDECK :: AGENT")
	assert.Contains(t, out.String(), "AGENT_V3 ONLINE. READY.")
	assert.Equal(t, s.sim.Store().Len(), s.printed)
}

func TestChatSession_EOFEnds(t *testing.T) {
	s, _, in := newTestSession(t, nav.Agent, "   ")

	require.NoError(t, s.run(context.Background()))
	assert.Empty(t, in.history, "blank lines are not kept")
}

func TestChatSession_UnknownCommand(t *testing.T) {
	s, out, _ := newTestSession(t, nav.Agent, "/dance")

	require.NoError(t, s.run(context.Background()))
	assert.Contains(t, out.String(), "Unknown command: /dance")
}

func TestChatSession_AgentReplies(t *testing.T) {
	s, out, in := newTestSession(t, nav.Agent, "hello there")
	before := s.sim.Store().Len()

	require.NoError(t, s.run(context.Background()))

	assert.Equal(t, before+2, s.sim.Store().Len(), "one user line and one reply")
	assert.Equal(t, 0, s.sim.Pending())
	assert.Contains(t, out.String(), "AGENT_V3 is typing...")
	assert.Equal(t, []string{"hello there"}, in.history)

	last := s.sim.Store().List()[s.sim.Store().Len()-1]
	assert.Contains(t, out.String(), last.Content)
}

func TestChatSession_HiveWithoutMentionStaysQuiet(t *testing.T) {
	s, out, _ := newTestSession(t, nav.Hive, "thanks all")
	before := s.sim.Store().Len()

	require.NoError(t, s.run(context.Background()))

	assert.Equal(t, before+1, s.sim.Store().Len())
	assert.NotContains(t, out.String(), "is typing")
}

func TestChatSession_AttachOnlyInHive(t *testing.T) {
	s, out, _ := newTestSession(t, nav.Agent, "/attach notes.txt")
	require.NoError(t, s.run(context.Background()))
	assert.Contains(t, out.String(), "Uploads are not available here.")

	s, out, _ = newTestSession(t, nav.Hive, "/attach")
	require.NoError(t, s.run(context.Background()))
	assert.Contains(t, out.String(), "Usage: /attach <file>")
}

func TestChatSession_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hive.json")
	s, out, _ := newTestSession(t, nav.Hive, "/export json "+path)

	require.NoError(t, s.run(context.Background()))
	assert.Contains(t, out.String(), "[OK] Exported to: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sess_cli00001")
}

func TestChatSession_ExportBadFormat(t *testing.T) {
	s, out, _ := newTestSession(t, nav.Agent, "/export html")

	require.NoError(t, s.run(context.Background()))
	assert.Contains(t, out.String(), "[FAIL]")
}
