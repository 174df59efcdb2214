// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"

	"github.com/jeranaias/agentdeck/internal/model"
)

// =============================================================================
// MESSAGE STORE
// =============================================================================

// Store is an append-only list of messages in insertion order.
// It is safe for concurrent use; reply timers append from their own
// goroutines.
type Store struct {
	mu       sync.Mutex
	messages []model.Message
}

// NewStore creates a store holding the given initial messages.
func NewStore(initial ...model.Message) *Store {
	s := &Store{messages: make([]model.Message, 0, len(initial)+16)}
	s.messages = append(s.messages, initial...)
	return s
}

// Append adds msg to the end of the store and returns it.
func (s *Store) Append(msg model.Message) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return msg
}

// List returns a copy of every message, oldest first.
func (s *Store) List() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of stored messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Since returns the messages appended after the first n.
func (s *Store) Since(n int) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n >= len(s.messages) {
		return nil
	}
	out := make([]model.Message, len(s.messages)-n)
	copy(out, s.messages[n:])
	return out
}

// Last returns the newest message, or false when the store is empty.
func (s *Store) Last() (model.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return model.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
