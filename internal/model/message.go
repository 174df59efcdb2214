// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by every agentdeck view.
package model

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
	SenderOther Sender = "other"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns the default label for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAgent:
		return "System"
	case SenderOther:
		return "Member"
	default:
		return string(s)
	}
}

// IsValid reports whether s is one of the known senders.
func (s Sender) IsValid() bool {
	switch s {
	case SenderUser, SenderAgent, SenderOther:
		return true
	}
	return false
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat entry. It is a value type: once created it is
// never edited, and stores hand out copies.
type Message struct {
	ID          string    `json:"id" yaml:"id"`
	Sender      Sender    `json:"sender" yaml:"sender"`
	SenderLabel string    `json:"sender_label" yaml:"sender_label"`
	Content     string    `json:"content" yaml:"content"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}

// NewMessage creates a message stamped with a fresh ID and the current time.
// An empty label falls back to the sender's display name.
func NewMessage(sender Sender, label, content string) Message {
	if label == "" {
		label = sender.DisplayName()
	}
	return Message{
		ID:          NewID(),
		Sender:      sender,
		SenderLabel: label,
		Content:     content,
		CreatedAt:   time.Now(),
	}
}

// NewUserMessage creates a message authored by the local user.
func NewUserMessage(label, content string) Message {
	return NewMessage(SenderUser, label, content)
}

// NewAgentMessage creates a message authored by the simulated assistant.
func NewAgentMessage(label, content string) Message {
	return NewMessage(SenderAgent, label, content)
}

// IsUser reports whether the local user wrote the message.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Clock returns the message time as HH:MM.
func (m Message) Clock() string {
	return m.CreatedAt.Format("15:04")
}

// =============================================================================
// ID GENERATION
// =============================================================================

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a ULID string. IDs produced by one process are unique and
// sort lexically in creation order, even within the same millisecond.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
