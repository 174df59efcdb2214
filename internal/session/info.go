// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"time"

	"github.com/google/uuid"
)

// Info identifies the running program instance. It is shown on the
// settings sheet and stamped into exported transcripts.
type Info struct {
	ID        string
	StartTime time.Time
}

// NewInfo returns an Info with a fresh ID, started now.
func NewInfo() Info {
	return Info{
		ID:        "sess_" + uuid.NewString()[:8],
		StartTime: time.Now(),
	}
}

// Uptime returns how long the session has been running, rounded to seconds.
func (i Info) Uptime() time.Duration {
	return time.Since(i.StartTime).Round(time.Second)
}
