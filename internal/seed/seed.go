// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package seed loads the mock data every view starts from. The data is
// embedded in the binary; nothing is read from or written to disk.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jeranaias/agentdeck/internal/model"
)

//go:embed seed.yaml
var raw []byte

// Data is the complete initial state.
type Data struct {
	Agent   AgentSeed           `yaml:"agent"`
	Hive    HiveSeed            `yaml:"hive"`
	Nexus   []model.Integration `yaml:"nexus"`
	Vault   []model.VaultFile   `yaml:"vault"`
	Profile ProfileSeed         `yaml:"profile"`
}

// AgentSeed is the terminal's starting state.
type AgentSeed struct {
	Label    string `yaml:"label"`
	Greeting string `yaml:"greeting"`
}

// HiveSeed is the group chat's starting state.
type HiveSeed struct {
	Channels []model.Channel `yaml:"channels"`
	Messages []SeedMessage   `yaml:"messages"`
}

// SeedMessage is a message whose timestamp is relative to load time.
type SeedMessage struct {
	Sender     model.Sender `yaml:"sender"`
	Label      string       `yaml:"label"`
	Content    string       `yaml:"content"`
	MinutesAgo int          `yaml:"minutes_ago"`
}

// ProfileSeed is the profile page data.
type ProfileSeed struct {
	Account model.Account       `yaml:"account"`
	Usage   []model.UsageMetric `yaml:"usage"`
}

// Load parses the embedded seed. Each call returns fresh values that share
// nothing with earlier calls.
func Load() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	for i, m := range d.Hive.Messages {
		if !m.Sender.IsValid() {
			return nil, fmt.Errorf("seed hive message %d: unknown sender %q", i, m.Sender)
		}
	}
	return &d, nil
}


// AgentMessages returns the terminal's initial transcript.
func (d *Data) AgentMessages() []model.Message {
	return []model.Message{model.NewAgentMessage(d.Agent.Label, d.Agent.Greeting)}
}

// HiveMessages returns the group chat transcript stamped relative to now.
func (d *Data) HiveMessages(now time.Time) []model.Message {
	out := make([]model.Message, 0, len(d.Hive.Messages))
	for _, m := range d.Hive.Messages {
		msg := model.NewMessage(m.Sender, m.Label, m.Content)
		msg.CreatedAt = now.Add(-time.Duration(m.MinutesAgo) * time.Minute)
		out = append(out, msg)
	}
	return out
}
