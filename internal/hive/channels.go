// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hive holds the channel sidebar of the group chat view.
package hive

import (
	"github.com/jeranaias/agentdeck/internal/collection"
	"github.com/jeranaias/agentdeck/internal/model"
)

// Channels is the sidebar: an ordered channel list with one selection.
// Channels do not filter messages; every channel shows the shared
// transcript.
type Channels struct {
	list   *collection.List[model.Channel]
	active string
}

// NewChannels creates a sidebar over a copy of channels. The first channel
// starts selected and is marked read.
func NewChannels(channels []model.Channel) *Channels {
	c := &Channels{list: collection.New(model.Channel.Key, channels...)}
	if first, ok := c.list.At(0); ok {
		c.Select(first.ID)
	}
	return c
}

// Items returns the channels in sidebar order.
func (c *Channels) Items() []model.Channel {
	return c.list.Items()
}

// Len returns the number of channels.
func (c *Channels) Len() int {
	return c.list.Len()
}

// Active returns the selected channel id, or "" for an empty sidebar.
func (c *Channels) Active() string {
	return c.active
}

// ActiveChannel returns the selected channel.
func (c *Channels) ActiveChannel() (model.Channel, bool) {
	return c.list.Find(c.active)
}

// Select makes id the active channel and clears its unread badge. Unknown
// ids are ignored and report false.
func (c *Channels) Select(id string) bool {
	if c.list.Index(id) < 0 {
		return false
	}
	c.active = id
	c.MarkRead(id)
	return true
}

// MarkRead zeroes the unread count of id.
func (c *Channels) MarkRead(id string) bool {
	return c.list.Update(id, func(ch model.Channel) model.Channel {
		ch.Unread = 0
		return ch
	})
}

// Unread returns the total unread count across channels.
func (c *Channels) Unread() int {
	total := 0
	for _, ch := range c.list.Items() {
		total += ch.Unread
	}
	return total
}

// Next selects the channel after the active one, wrapping around.
func (c *Channels) Next() string { return c.step(1) }

// Prev selects the channel before the active one, wrapping around.
func (c *Channels) Prev() string { return c.step(-1) }

func (c *Channels) step(delta int) string {
	n := c.list.Len()
	if n == 0 {
		return ""
	}
	i := c.list.Index(c.active)
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	next, _ := c.list.At(i)
	c.Select(next.ID)
	return c.active
}
