// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/grid"
	"github.com/jeranaias/agentdeck/internal/model"
	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/nexus"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// TEST HELPERS
// =============================================================================

func testDeps(t *testing.T) Deps {
	t.Helper()
	return Deps{
		Theme:     styles.NewTheme(styles.SkinNeon),
		Config:    config.Default(),
		Session:   session.Info{ID: "sess_test1234"},
		Version:   "1.2.3",
		ExportDir: t.TempDir(),
	}
}

func build(t *testing.T, id string) Panel {
	t.Helper()
	p, ok := Build(id, testDeps(t))
	require.True(t, ok, "no panel for %q", id)
	p.SetSize(100, 30)
	t.Cleanup(p.Close)
	return p
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(p Panel, msgs ...tea.Msg) (Panel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		p, cmd = p.Update(msg)
	}
	return p, cmd
}

// =============================================================================
// FACTORY TESTS
// =============================================================================

func TestBuild_EveryDockItem(t *testing.T) {
	for _, item := range nav.DefaultItems {
		t.Run(item.ID, func(t *testing.T) {
			p := build(t, item.ID)
			assert.NotEmpty(t, p.View())
			assert.NotNil(t, p.Keys())
		})
	}
}

func TestBuild_UnknownView(t *testing.T) {
	p, ok := Build("archive", testDeps(t))
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestBuild_FreshSeedEachTime(t *testing.T) {
	first := build(t, nav.Vault).(*Vault)
	first.Model().Upload()

	second := build(t, nav.Vault).(*Vault)
	data, err := seed.Load()
	require.NoError(t, err)
	assert.Equal(t, len(data.Vault), second.Model().Len(), "remount should start from the seed")
}

// =============================================================================
// CHAT PANEL TESTS
// =============================================================================

func TestAgent_SubmitAppendsAfterGreeting(t *testing.T) {
	p := build(t, nav.Agent).(*Agent)
	require.Equal(t, 1, p.Chat().Simulator().Store().Len())

	send(p, keyRunes("status report"), tea.KeyMsg{Type: tea.KeyEnter})

	msgs := p.Chat().Simulator().Store().List()
	require.Len(t, msgs, 2)
	assert.Equal(t, "status report", msgs[1].Content)
	assert.Equal(t, "You", msgs[1].SenderLabel)
	assert.Equal(t, 1, p.Chat().Simulator().Pending())
	assert.True(t, p.CapturesInput())
}

func TestUserLabel_SharedByChatViews(t *testing.T) {
	deps := testDeps(t)
	deps.Config.UI.UserLabel = "OPERATOR"

	for _, id := range []string{nav.Agent, nav.Hive} {
		t.Run(id, func(t *testing.T) {
			p, ok := Build(id, deps)
			require.True(t, ok)
			t.Cleanup(p.Close)
			p.SetSize(100, 30)

			send(p, keyRunes("thanks all"), tea.KeyMsg{Type: tea.KeyEnter})

			var store *session.Store
			switch v := p.(type) {
			case *Agent:
				store = v.Chat().Simulator().Store()
			case *Hive:
				store = v.Chat().Simulator().Store()
			}
			msgs := store.List()
			assert.Equal(t, "OPERATOR", msgs[len(msgs)-1].SenderLabel)
		})
	}
}

func TestAgent_CloseCancelsReply(t *testing.T) {
	p := build(t, nav.Agent).(*Agent)
	send(p, keyRunes("go"), tea.KeyMsg{Type: tea.KeyEnter})

	p.Close()

	assert.Equal(t, 0, p.Chat().Simulator().Pending())
	assert.True(t, p.Chat().Simulator().Closed())
}

func TestHive_ChannelSwitchClearsBadge(t *testing.T) {
	p := build(t, nav.Hive).(*Hive)
	require.Equal(t, "1", p.Channels().Active())
	require.Equal(t, 1, p.Channels().Unread(), "Alex Chen starts unread")

	send(p, tea.KeyMsg{Type: tea.KeyCtrlN}, tea.KeyMsg{Type: tea.KeyCtrlN})

	assert.Equal(t, "3", p.Channels().Active())
	assert.Equal(t, 0, p.Channels().Unread())
	assert.Contains(t, p.View(), "Alex Chen")
}

func TestHive_MentionSchedulesReply(t *testing.T) {
	p := build(t, nav.Hive).(*Hive)
	sim := p.Chat().Simulator()
	before := sim.Store().Len()

	send(p, keyRunes("thanks all"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, sim.Pending())

	send(p, keyRunes("@helper status?"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, sim.Pending())
	assert.Equal(t, before+2, sim.Store().Len())
}

// =============================================================================
// NEXUS TESTS
// =============================================================================

func TestNexus_ToggleAndReveal(t *testing.T) {
	p := build(t, nav.Nexus).(*Nexus)
	first := p.Model().Integrations()[0]

	send(p, tea.KeyMsg{Type: tea.KeySpace})
	got, _ := p.Model().Find(first.ID)
	assert.Equal(t, !first.Connected, got.Connected)

	send(p, tea.KeyMsg{Type: tea.KeySpace})
	got, _ = p.Model().Find(first.ID)
	assert.Equal(t, first.Connected, got.Connected, "toggle twice restores")

	// Second card holds the secret key.
	send(p, keyRunes("j"))
	require.Equal(t, 1, p.Cursor())
	assert.Contains(t, p.View(), nexus.Mask)
	assert.NotContains(t, p.View(), "sk-proj-abc123xyz789")

	send(p, keyRunes("r"))
	assert.Contains(t, p.View(), "sk-proj-abc123xyz789")
	assert.False(t, p.CapturesInput())
}

func TestNexus_CursorClamps(t *testing.T) {
	p := build(t, nav.Nexus).(*Nexus)

	send(p, keyRunes("k"))
	assert.Equal(t, 0, p.Cursor())

	for i := 0; i < 10; i++ {
		send(p, keyRunes("j"))
	}
	assert.Equal(t, len(p.Model().Integrations())-1, p.Cursor())
}

// =============================================================================
// VAULT TESTS
// =============================================================================

func TestVault_StarAndColor(t *testing.T) {
	p := build(t, nav.Vault).(*Vault)
	id := p.Model().Files()[0].ID

	send(p, keyRunes("s"), keyRunes("c"), keyRunes("c"))

	f, _ := p.Model().Find(id)
	assert.True(t, f.Starred)
	assert.Equal(t, model.ColorGreen, f.Color)
}

func TestVault_Rename(t *testing.T) {
	tests := []struct {
		name   string
		typed  string
		finish tea.KeyType
		want   string
	}{
		{"confirm", "  BRIEF.pdf ", tea.KeyEnter, "BRIEF.pdf"},
		{"blank keeps old", "   ", tea.KeyEnter, "SPEC_SHEET_V3.pdf"},
		{"escape cancels", "IGNORED.pdf", tea.KeyEsc, "SPEC_SHEET_V3.pdf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := build(t, nav.Vault).(*Vault)
			id := p.Model().Files()[0].ID

			send(p, keyRunes("r"))
			require.True(t, p.Renaming())
			assert.True(t, p.CapturesInput())

			// Clear the prefilled name, then type the new one.
			send(p, tea.KeyMsg{Type: tea.KeyCtrlU}, keyRunes(tc.typed), tea.KeyMsg{Type: tc.finish})

			assert.False(t, p.Renaming())
			f, _ := p.Model().Find(id)
			assert.Equal(t, tc.want, f.Name)
		})
	}
}

func TestVault_UploadFocusesPlaceholder(t *testing.T) {
	p := build(t, nav.Vault).(*Vault)
	n := p.Model().Len()

	send(p, keyRunes("u"))

	files := p.Model().Files()
	require.Len(t, files, n+1)
	last := files[n]
	assert.Equal(t, "NEW_FILE_6.txt", last.Name)
	assert.Equal(t, model.FileTxt, last.Type)
	assert.Equal(t, "0 KB", last.SizeLabel)
	assert.Equal(t, n, p.Cursor())
	assert.Contains(t, p.View(), "NEW_FILE_6.txt")
}

func TestNextColor(t *testing.T) {
	tests := []struct {
		in, want model.ColorTag
	}{
		{model.ColorNone, model.ColorRed},
		{model.ColorRed, model.ColorGreen},
		{model.ColorBlue, model.ColorYellow},
		{model.ColorYellow, model.ColorNone},
		{model.ColorTag("purple"), model.ColorRed},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, nextColor(tc.in), "nextColor(%q)", tc.in)
	}
}

// =============================================================================
// PROFILE TESTS
// =============================================================================

func TestProfile_View(t *testing.T) {
	p := build(t, nav.Profile).(*Profile)
	view := p.View()

	for _, want := range []string{"Wali", "PRO PLAN", "84%", "1.2 GB", "847K", "Member since", "Manage Subscription", "Sign Out"} {
		assert.Contains(t, view, want)
	}
	assert.Contains(t, view, "─────", "usage and account are separated by a rule")
}

func TestProfile_ActionsAreInert(t *testing.T) {
	p := build(t, nav.Profile).(*Profile)

	_, cmd := send(p, keyRunes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, p.Action())

	send(p, keyRunes("l"))
	assert.Equal(t, 1, p.Action(), "cursor clamps at the last action")
}

// =============================================================================
// SETTINGS TESTS
// =============================================================================

func TestSettings_SkinToggle(t *testing.T) {
	p := build(t, nav.Settings).(*Settings)
	require.Equal(t, config.SkinNeon, p.Skin())

	_, cmd := send(p, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SkinChangedMsg{Skin: config.SkinLowLight}, cmd())

	_, cmd = send(p, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SkinChangedMsg{Skin: config.SkinNeon}, cmd())
}

func TestSettings_EngineCycle(t *testing.T) {
	p := build(t, nav.Settings).(*Settings)
	send(p, keyRunes("j"))

	_, cmd := send(p, keyRunes("l"))
	assert.Equal(t, EngineChangedMsg{Engine: grid.StaticGrid}, cmd())

	_, cmd = send(p, keyRunes("l"))
	assert.Equal(t, EngineChangedMsg{Engine: grid.DeepVoid}, cmd())

	_, cmd = send(p, keyRunes("l"))
	assert.Equal(t, EngineChangedMsg{Engine: grid.DataStream}, cmd(), "engine selection wraps")

	_, cmd = send(p, keyRunes("h"))
	assert.Equal(t, EngineChangedMsg{Engine: grid.DeepVoid}, cmd())
}

func TestSettings_SystemInfo(t *testing.T) {
	p := build(t, nav.Settings)
	view := p.View()

	assert.Contains(t, view, "sess_test1234")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "LOW_LIGHT_OPS")
	assert.Contains(t, view, "Data Stream")
}
