// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by every agentdeck view.
//
// All values here are plain data. Ownership and mutation live elsewhere:
// messages belong to a session.Store, channels and vault files to
// collection.List instances, and integrations to nexus.Nexus.
//
// # Key Types
//
//   - Message: immutable chat entry with sender, label, content, and time
//   - Channel: Hive sidebar entry (group or direct) with an unread count
//   - Integration: Nexus node with a connected flag and attributes
//   - VaultFile: Vault card with type, size label, star, and colour tag
//   - UsageMetric, Account: read-only profile data
//
// # Usage
//
//	msg := model.NewUserMessage("You", "hello")
//	fmt.Println(msg.ID, msg.Clock(), msg.Content)
//
// Message IDs are ULIDs from a monotonic source, so sorting IDs reproduces
// creation order.
package model
