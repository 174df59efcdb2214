// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jeranaias/agentdeck/internal/model"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// TEST HELPERS
// =============================================================================

func newAgentChat(t *testing.T, seed ...model.Message) Model {
	t.Helper()
	sim := session.NewSimulator(session.NewStore(seed...), session.CannedResponder{Label: "AGENT_V3"})
	m := New(styles.NewTheme(styles.SkinNeon), sim, Config{
		View:        "agent",
		Title:       "Agent",
		TypingLabel: "AGENT_V3",
		ExportDir:   t.TempDir(),
	})
	m.SetSize(80, 24)
	t.Cleanup(m.Close)
	return m
}

func newHiveChat(t *testing.T) Model {
	t.Helper()
	sim := session.NewSimulator(session.NewStore(), session.MentionResponder{Label: "Helper AI"})
	m := New(styles.NewTheme(styles.SkinNeon), sim, Config{
		View:        "hive",
		Title:       "Hive",
		TypingLabel: "Helper AI",
		AllowAttach: true,
	})
	m.SetSize(80, 24)
	t.Cleanup(m.Close)
	return m
}

func typeText(m Model, text string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

// =============================================================================
// SUBMIT TESTS
// =============================================================================

func TestSubmit_AppendsAndStartsTyping(t *testing.T) {
	m := newAgentChat(t)
	m = typeText(m, "  scan sector 7  ")

	m, cmd := press(m, tea.KeyEnter)

	msgs := m.Simulator().Store().List()
	require.Len(t, msgs, 1)
	assert.Equal(t, "scan sector 7", msgs[0].Content)
	assert.Equal(t, model.SenderUser, msgs[0].Sender)
	assert.Empty(t, m.Input(), "input should clear after send")
	assert.True(t, m.Typing(), "typing indicator should show while a reply is pending")
	assert.NotNil(t, cmd, "typing indicator should start ticking")
	assert.Contains(t, m.View(), "AGENT_V3 is typing")
}

func TestSubmit_BlankIsNoop(t *testing.T) {
	m := newAgentChat(t)
	m = typeText(m, "   ")

	m, cmd := press(m, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Simulator().Store().Len())
	assert.Equal(t, 0, m.Simulator().Pending())
	assert.False(t, m.Typing())
}

func TestSubmit_ReplyLandsAndStopsTyping(t *testing.T) {
	m := newAgentChat(t)
	m = typeText(m, "hello")
	m, _ = press(m, tea.KeyEnter)
	require.True(t, m.Typing())

	done := make(chan tea.Msg, 1)
	go func() { done <- waitForUpdate(m.Simulator())() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("no update after reply delay")
	}

	m, cmd := m.Update(msg)
	assert.NotNil(t, cmd, "panel should keep waiting for updates")
	assert.False(t, m.Typing(), "typing should stop once no replies are pending")

	msgs := m.Simulator().Store().List()
	require.Len(t, msgs, 2)
	assert.Contains(t, session.AgentCandidates("hello"), msgs[1].Content)
	assert.Contains(t, m.View(), "AGENT_V3")
}

func TestHiveWithoutMention_NoTyping(t *testing.T) {
	m := newHiveChat(t)
	m = typeText(m, "morning all")

	m, _ = press(m, tea.KeyEnter)

	assert.Equal(t, 1, m.Simulator().Store().Len())
	assert.Equal(t, 0, m.Simulator().Pending())
	assert.False(t, m.Typing())
}

// =============================================================================
// UPDATE ROUTING TESTS
// =============================================================================

func TestUpdateMsg_FromOtherSimulatorIgnored(t *testing.T) {
	m := newAgentChat(t)
	other := session.NewSimulator(session.NewStore(), session.CannedResponder{})
	defer other.Close()

	_, cmd := m.Update(UpdateMsg{source: other})
	assert.Nil(t, cmd, "a stale update must not restart the wait")
}

func TestWaitForUpdate_NilAfterClose(t *testing.T) {
	sim := session.NewSimulator(session.NewStore(), session.CannedResponder{})
	cmd := waitForUpdate(sim)
	sim.Close()

	assert.Nil(t, cmd(), "closed simulator should end the wait with a nil message")
}

func TestClose_CancelsPendingReply(t *testing.T) {
	m := newAgentChat(t)
	m = typeText(m, "abort")
	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, 1, m.Simulator().Pending())

	m.Close()

	assert.Equal(t, 0, m.Simulator().Pending())
	assert.True(t, m.Simulator().Closed())
	assert.False(t, m.Typing())
}

// =============================================================================
// COMMAND TESTS
// =============================================================================

func TestExportCommand_WritesFile(t *testing.T) {
	seed := []model.Message{model.NewAgentMessage("AGENT_V3", "SYSTEM ONLINE.")}
	m := newAgentChat(t, seed...)
	path := filepath.Join(t.TempDir(), "out.json")

	m = typeText(m, "/export json "+path)
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Empty(t, m.Input())
	assert.Equal(t, 1, m.Simulator().Store().Len(), "commands must not be sent as messages")

	m, _ = m.Update(cmd())

	notice, isErr := m.Notice()
	assert.False(t, isErr, notice)
	assert.Contains(t, notice, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SYSTEM ONLINE.")
}

func TestExportCommand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		seed  []model.Message
		input string
		want  string
	}{
		{"bad format", []model.Message{model.NewUserMessage("You", "x")}, "/export pdf", "unsupported export format"},
		{"empty transcript", nil, "/export md", "no messages"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newAgentChat(t, tc.seed...)
			m = typeText(m, tc.input)
			m, cmd := press(m, tea.KeyEnter)

			assert.Nil(t, cmd)
			notice, isErr := m.Notice()
			assert.True(t, isErr)
			assert.Contains(t, notice, tc.want)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	m := newAgentChat(t)
	m = typeText(m, "/warp 9")
	m, _ = press(m, tea.KeyEnter)

	notice, isErr := m.Notice()
	assert.True(t, isErr)
	assert.Contains(t, notice, "/warp")
}

func TestHelpCommand_HidesAttachWhenDisabled(t *testing.T) {
	m := newAgentChat(t)
	m = typeText(m, "/help")
	m, _ = press(m, tea.KeyEnter)

	notice, _ := m.Notice()
	assert.Contains(t, notice, "/export")
	assert.NotContains(t, notice, "/attach")
}

func TestAttach(t *testing.T) {
	t.Run("hive key uploads input", func(t *testing.T) {
		m := newHiveChat(t)
		m = typeText(m, "specs.pdf")
		m, cmd := press(m, tea.KeyCtrlO)

		assert.NotNil(t, cmd)
		assert.Equal(t, 1, m.Simulator().Scanning())
		assert.Empty(t, m.Input())
		assert.Equal(t, 0, m.Simulator().Store().Len(), "upload notice lands after the scan")
	})

	t.Run("hive command", func(t *testing.T) {
		m := newHiveChat(t)
		m = typeText(m, "/attach q3 report.pdf")
		m, _ = press(m, tea.KeyEnter)
		assert.Equal(t, 1, m.Simulator().Scanning())
	})

	t.Run("agent refuses", func(t *testing.T) {
		m := newAgentChat(t)
		m = typeText(m, "/attach x.txt")
		m, _ = press(m, tea.KeyEnter)

		assert.Equal(t, 0, m.Simulator().Scanning())
		_, isErr := m.Notice()
		assert.True(t, isErr)
	})
}

// =============================================================================
// RENDERING TESTS
// =============================================================================

func TestView_EmptyTranscript(t *testing.T) {
	m := newAgentChat(t)
	assert.Contains(t, m.View(), "No messages yet.")
}

func TestView_ShowsLabelsAndClock(t *testing.T) {
	msg := model.NewMessage(model.SenderOther, "Alex", "API is live")
	m := newAgentChat(t, msg)

	view := m.View()
	assert.Contains(t, view, "Alex")
	assert.Contains(t, view, msg.Clock())
	assert.Contains(t, view, "API is live")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"breaks at space", "hello brave world", 11, "hello brave\nworld"},
		{"keeps newlines", "a\nb", 5, "a\nb"},
		{"mid word", "abcdefgh", 3, "abc\ndef\ngh"},
		{"wide runes", "日本語テキスト", 6, "日本語\nテキス\nト"},
		{"zero width", "as is", 0, "as is"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wrapText(tc.text, tc.width))
		})
	}
}

func TestKeyMap_AttachDisabled(t *testing.T) {
	k := DefaultKeyMap(false)
	assert.False(t, k.Attach.Enabled())
	assert.True(t, DefaultKeyMap(true).Attach.Enabled())
	assert.True(t, strings.Contains(k.Submit.Help().Desc, "send"))
}
