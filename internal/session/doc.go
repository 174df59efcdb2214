// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the conversational core shared by the Agent and
// Hive views: an append-only message store and a simulator that answers
// submissions after a fixed delay.
//
// # Key Types
//
//   - Store: append-only, insertion-ordered message list
//   - Responder: decides whether an input earns a reply and builds it
//   - CannedResponder: Agent terminal replies, always answers
//   - MentionResponder: Hive helper replies, answers only when mentioned
//   - Simulator: owns the one-shot reply timers for a store
//   - Info: identity and uptime of the running session
//
// # Usage
//
//	store := session.NewStore(seedMessages...)
//	sim := session.NewSimulator(store, session.CannedResponder{Label: "AGENT_V3"})
//	defer sim.Close()
//
//	if _, ok := sim.Submit("  run diagnostics "); ok {
//	    <-sim.Updates() // reply landed
//	}
//
// # Teardown
//
// Close stops every pending timer, so a reply scheduled before Close never
// lands, and closes the Updates channel so waiting commands return.
package session
