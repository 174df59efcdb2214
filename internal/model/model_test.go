// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sort"
	"testing"
)

// =============================================================================
// SENDER TESTS
// =============================================================================

func TestSender_DisplayName(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "You"},
		{SenderAgent, "System"},
		{SenderOther, "Member"},
		{Sender("bot"), "bot"},
	}

	for _, tc := range tests {
		if got := tc.sender.DisplayName(); got != tc.want {
			t.Errorf("Sender(%q).DisplayName() = %q, want %q", tc.sender, got, tc.want)
		}
	}
}

func TestSender_IsValid(t *testing.T) {
	for _, s := range []Sender{SenderUser, SenderAgent, SenderOther} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Sender("ghost").IsValid() {
		t.Error("unknown sender should not be valid")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage_DefaultsLabel(t *testing.T) {
	msg := NewMessage(SenderAgent, "", "READY")
	if msg.SenderLabel != "System" {
		t.Errorf("SenderLabel = %q, want System", msg.SenderLabel)
	}
	if msg.ID == "" {
		t.Error("ID should not be empty")
	}
	if msg.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestNewID_UniqueAndOrdered(t *testing.T) {
	const n = 500
	ids := make([]string, n)
	seen := make(map[string]bool, n)
	for i := range ids {
		ids[i] = NewID()
		if seen[ids[i]] {
			t.Fatalf("duplicate id %s at %d", ids[i], i)
		}
		seen[ids[i]] = true
	}

	if !sort.StringsAreSorted(ids) {
		t.Error("ids should sort in creation order")
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := Message{Content: "ANALYZING DATA STREAMS"}

	if got := msg.Preview(100); got != msg.Content {
		t.Errorf("Preview(100) = %q, want full content", got)
	}
	if got := msg.Preview(8); got != "ANALY..." {
		t.Errorf("Preview(8) = %q, want %q", got, "ANALY...")
	}
	if got := (Message{Content: "∆∑◊∞⌘"}).Preview(4); got != "∆..." {
		t.Errorf("unicode Preview(4) = %q", got)
	}
}

// =============================================================================
// ENTITY TESTS
// =============================================================================

func TestChannel_Glyph(t *testing.T) {
	tests := []struct {
		name string
		ch   Channel
		want string
	}{
		{"group", Channel{Kind: ChannelGroup}, "#"},
		{"direct", Channel{Kind: ChannelDirect}, "@"},
		{"bot", Channel{Kind: ChannelDirect, Bot: true}, "*"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ch.Glyph(); got != tc.want {
				t.Errorf("Glyph() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIntegration_CloneDoesNotAlias(t *testing.T) {
	orig := Integration{
		ID:         "openai",
		Attributes: []Attribute{{Label: "key", Value: "sk", Kind: AttrSecret}},
	}
	clone := orig.Clone()
	clone.Attributes[0].Value = "changed"

	if orig.Attributes[0].Value != "sk" {
		t.Error("Clone() should not share the attribute slice")
	}
	if !orig.HasSecret() {
		t.Error("HasSecret() = false, want true")
	}
}

func TestColorTag_Hex(t *testing.T) {
	if ColorNone.Hex() != "" {
		t.Error("ColorNone should have no swatch")
	}
	for _, c := range ColorTags {
		if c.Hex() == "" {
			t.Errorf("palette colour %q has no swatch", c)
		}
	}
}
