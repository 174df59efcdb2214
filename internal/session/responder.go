// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/agentdeck/internal/model"
)

// Responder decides whether a submission earns a reply and builds it.
// Reply runs when the timer fires, not when the input is submitted.
type Responder interface {
	Match(input string) bool
	Reply(input string, rng *rand.Rand) model.Message
}

// =============================================================================
// AGENT TERMINAL
// =============================================================================

// AgentCandidates returns the replies the terminal agent picks from.
func AgentCandidates(input string) []string {
	return []string{
		"PROCESSING REQUEST...",
		"EXECUTING COMMAND: " + strings.ToUpper(input),
		"OPERATION COMPLETE. AWAITING NEXT DIRECTIVE.",
		"ANALYZING DATA STREAMS... PATTERNS DETECTED.",
		"SYSTEM INTEGRITY VERIFIED. ALL PROTOCOLS ACTIVE.",
	}
}

// CannedResponder answers every input with a uniformly random candidate.
type CannedResponder struct {
	Label string
}

// Match always reports true.
func (CannedResponder) Match(string) bool { return true }

// Reply picks one of AgentCandidates.
func (c CannedResponder) Reply(input string, rng *rand.Rand) model.Message {
	candidates := AgentCandidates(input)
	return model.NewAgentMessage(c.Label, candidates[rng.IntN(len(candidates))])
}

// =============================================================================
// HIVE HELPER
// =============================================================================

const (
	DefaultMention = "@helper"

	SummaryReply  = "Here's a summary: The team discussed the new API integration. Alex reported it's live and requested testing. Automated tests are available upon request."
	StatusReply   = "Current system status: All APIs operational. 2 active integrations. 0 pending issues."
	FallbackReply = `I'm here to help! Try asking me to "summarize this" or check "status".`
)

// MentionResponder answers only inputs that mention the helper.
//
// The mention is a case-folded substring match, so "@Helper," and
// "hey@helper" both count.
type MentionResponder struct {
	Mention string
	Label   string
}

// Match reports whether input contains the mention token.
func (m MentionResponder) Match(input string) bool {
	return strings.Contains(fold(input), fold(m.mention()))
}

// Reply applies the keyword rules in order: summarize, status, fallback.
func (m MentionResponder) Reply(input string, _ *rand.Rand) model.Message {
	return model.NewAgentMessage(m.Label, HelperReply(input))
}

// HelperReply returns the helper's answer for input. Keywords are
// case-sensitive: "STATUS" gets the fallback.
func HelperReply(input string) string {
	switch {
	case strings.Contains(input, "summarize"):
		return SummaryReply
	case strings.Contains(input, "status"):
		return StatusReply
	default:
		return FallbackReply
	}
}

func (m MentionResponder) mention() string {
	if m.Mention == "" {
		return DefaultMention
	}
	return m.Mention
}

// fold normalises s so that canonically equivalent, differently cased
// inputs compare equal. Casers carry state, so each call builds its own.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
