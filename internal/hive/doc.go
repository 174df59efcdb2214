// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hive tracks the Hive sidebar: which channel is active and how
// many unread messages each one holds.
package hive
