// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/grid"
	"github.com/jeranaias/agentdeck/internal/model"
	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(styles.SkinNeon)
}

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestHeader_View(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(60)
	h.Section = "hive"
	h.Meta = "sess_1234"

	got := h.View()
	if !strings.Contains(got, "AGENTDECK") {
		t.Errorf("header should contain brand, got %q", got)
	}
	if !strings.Contains(got, "HIVE") {
		t.Errorf("header should contain upper-cased view, got %q", got)
	}
	if !strings.Contains(got, "sess_1234") {
		t.Errorf("header should contain meta, got %q", got)
	}
	if w := lipgloss.Width(got); w != 60 {
		t.Errorf("header width = %d, want 60", w)
	}
}

func TestHeader_NarrowDropsMeta(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(14)
	h.Section = "settings"
	h.Meta = "engine: data-stream"

	got := h.View()
	if strings.Contains(got, "engine") {
		t.Errorf("narrow header should drop meta, got %q", got)
	}
}

func TestHeader_NilTheme(t *testing.T) {
	h := NewHeader(nil)
	if got := h.View(); got != "" {
		t.Errorf("View() with nil theme = %q, want empty", got)
	}
}

// =============================================================================
// DOCK TESTS
// =============================================================================

func TestDock_ListsEveryItem(t *testing.T) {
	d := NewDock(testTheme(), nav.DefaultItems)
	d.Active = nav.Vault
	d.Width = 120

	got := d.View()
	for _, item := range nav.DefaultItems {
		if !strings.Contains(got, strings.ToUpper(item.Label)) {
			t.Errorf("dock missing %q", item.Label)
		}
	}
}

func TestDock_Empty(t *testing.T) {
	d := NewDock(testTheme(), nil)
	if got := d.View(); got != "" {
		t.Errorf("empty dock View() = %q", got)
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBar_MessageOverridesHelp(t *testing.T) {
	s := NewStatusBar(testTheme())
	s.SetWidth(80)
	keys := Bindings{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send"))}

	if got := s.View(keys); !strings.Contains(got, "send") {
		t.Errorf("help view should list bindings, got %q", got)
	}

	s.SetMessage("exported to /tmp/x.md")
	if got := s.View(keys); !strings.Contains(got, "exported") || strings.Contains(got, "send") {
		t.Errorf("message should replace help, got %q", got)
	}

	s.SetError("export failed")
	if got := s.View(keys); !strings.Contains(got, "export failed") {
		t.Errorf("error message missing, got %q", got)
	}

	s.ClearMessage()
	if s.Message() != "" {
		t.Error("ClearMessage() should reset the message")
	}
}

// =============================================================================
// TYPING INDICATOR TESTS
// =============================================================================

func TestTyping_Lifecycle(t *testing.T) {
	ty := NewTyping(testTheme(), "AGENT_V3")

	if ty.IsActive() || ty.View() != "" {
		t.Fatal("new indicator should be inactive and render nothing")
	}
	if ty.GetElapsed() != 0 {
		t.Error("GetElapsed() before Start should be 0")
	}

	if cmd := ty.Start(); cmd == nil {
		t.Error("Start() should return a tick command")
	}
	if cmd := ty.Start(); cmd != nil {
		t.Error("second Start() should not start another tick loop")
	}
	if !strings.Contains(ty.View(), "AGENT_V3 is typing") {
		t.Errorf("View() = %q", ty.View())
	}

	ty.Stop()
	next, cmd := ty.Update(struct{}{})
	if cmd != nil {
		t.Error("stopped indicator should not reschedule ticks")
	}
	if next.View() != "" {
		t.Error("stopped indicator should render nothing")
	}
}

func TestScanning_View(t *testing.T) {
	s := NewScanning(testTheme())
	s.Start()
	if !strings.Contains(s.View(), "SCANNING UPLOAD") {
		t.Errorf("View() = %q", s.View())
	}
}

// =============================================================================
// USAGE BAR TESTS
// =============================================================================

func TestUsageBar_View(t *testing.T) {
	u := NewUsageBar(testTheme(), 40)
	got := u.View(model.UsageMetric{Label: "API Tokens", Value: 847000, Max: 1000000})

	for _, want := range []string{"API Tokens", "847K", "847,000 / 1,000,000"} {
		if !strings.Contains(got, want) {
			t.Errorf("usage bar missing %q in %q", want, got)
		}
	}
	if lines := strings.Count(got, "\n") + 1; lines != 3 {
		t.Errorf("usage bar has %d lines, want 3", lines)
	}
}

// =============================================================================
// GRID TESTS
// =============================================================================

func TestRenderGrid_Dimensions(t *testing.T) {
	cells := []grid.Cell{
		{Glyph: "0x4F", Opacity: 0.2},
		{Glyph: "∆", Opacity: 0.5},
		{Glyph: "⊕", Opacity: 0.69},
	}

	got := RenderGrid(testTheme(), cells, 12, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("row %d width = %d, want 12", i, w)
		}
	}
	if !strings.Contains(lines[0], "0x4F") || !strings.Contains(lines[0], "∆") {
		t.Errorf("first row should hold the first two cells, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "⊕") {
		t.Errorf("second row should hold the third cell, got %q", lines[1])
	}
}

func TestRenderGrid_TooSmall(t *testing.T) {
	if got := RenderGrid(testTheme(), []grid.Cell{{Glyph: "∞"}}, 3, 4); got != "" {
		t.Errorf("RenderGrid below one cell wide = %q, want empty", got)
	}
}

func TestDivider(t *testing.T) {
	if got := Divider(3); got != "───" {
		t.Errorf("Divider(3) = %q", got)
	}
	if got := Divider(-1); got != "" {
		t.Errorf("Divider(-1) = %q", got)
	}
}
