// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// HIVE CHANNELS
// =============================================================================

// ChannelKind distinguishes group channels from direct conversations.
type ChannelKind string

const (
	ChannelGroup  ChannelKind = "group"
	ChannelDirect ChannelKind = "direct"
)

// Channel is an entry in the Hive sidebar. Channels are not linked to
// messages: every channel shows the same transcript.
type Channel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Kind   ChannelKind `yaml:"kind"`
	Unread int         `yaml:"unread"`
	Bot    bool        `yaml:"bot"`
}

// Key returns the channel ID.
func (c Channel) Key() string { return c.ID }

// Glyph returns the sidebar marker for the channel.
func (c Channel) Glyph() string {
	switch {
	case c.Bot:
		return "*"
	case c.Kind == ChannelGroup:
		return "#"
	default:
		return "@"
	}
}

// =============================================================================
// NEXUS INTEGRATIONS
// =============================================================================

// AttributeKind controls how an integration attribute is displayed.
type AttributeKind string

const (
	AttrStatus AttributeKind = "status"
	AttrMeta   AttributeKind = "meta"
	AttrSecret AttributeKind = "secret"
)

// Attribute is one labelled value shown under an integration.
type Attribute struct {
	Label string        `yaml:"label"`
	Value string        `yaml:"value"`
	Kind  AttributeKind `yaml:"kind"`
}

// Integration is a Nexus node that can be connected or disconnected.
type Integration struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Connected  bool        `yaml:"connected"`
	Attributes []Attribute `yaml:"attributes"`
}

// Key returns the integration ID.
func (i Integration) Key() string { return i.ID }

// Clone returns a deep copy so edits never alias the attribute slice.
func (i Integration) Clone() Integration {
	out := i
	out.Attributes = append([]Attribute(nil), i.Attributes...)
	return out
}

// HasSecret reports whether any attribute is a secret.
func (i Integration) HasSecret() bool {
	for _, a := range i.Attributes {
		if a.Kind == AttrSecret {
			return true
		}
	}
	return false
}

// =============================================================================
// VAULT FILES
// =============================================================================

// FileType is the coarse kind of a vault file.
type FileType string

const (
	FilePDF  FileType = "pdf"
	FileZip  FileType = "zip"
	FileMD   FileType = "md"
	FileCode FileType = "code"
	FileTxt  FileType = "txt"
)

// Icon returns a short ASCII icon for the file type.
func (t FileType) Icon() string {
	switch t {
	case FileZip:
		return "[=]"
	case FileCode:
		return "</>"
	default:
		return "[~]"
	}
}

// ColorTag is an optional highlight applied to a vault file.
type ColorTag string

const (
	ColorNone   ColorTag = ""
	ColorRed    ColorTag = "red"
	ColorGreen  ColorTag = "green"
	ColorBlue   ColorTag = "blue"
	ColorYellow ColorTag = "yellow"
)

// ColorTags lists the palette offered by the vault menu, in menu order.
var ColorTags = []ColorTag{ColorRed, ColorGreen, ColorBlue, ColorYellow}

// Hex returns the swatch colour for the tag, or "" for none.
func (c ColorTag) Hex() string {
	switch c {
	case ColorRed:
		return "#EF4444"
	case ColorGreen:
		return "#22C55E"
	case ColorBlue:
		return "#3B82F6"
	case ColorYellow:
		return "#FACC15"
	default:
		return ""
	}
}

// VaultFile is a mock file card in the Vault.
type VaultFile struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Type      FileType `yaml:"type"`
	SizeLabel string   `yaml:"size"`
	Starred   bool     `yaml:"starred"`
	Color     ColorTag `yaml:"color"`
}

// Key returns the file ID.
func (f VaultFile) Key() string { return f.ID }

// =============================================================================
// PROFILE
// =============================================================================

// UsageMetric is a read-only usage bar on the profile page.
type UsageMetric struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
	Max   float64 `yaml:"max"`
	Unit  string  `yaml:"unit"`
}

// Account holds the identity card shown on the profile page.
type Account struct {
	Name         string `yaml:"name"`
	Handle       string `yaml:"handle"`
	Plan         string `yaml:"plan"`
	Email        string `yaml:"email"`
	MemberSince  string `yaml:"member_since"`
	BillingCycle string `yaml:"billing_cycle"`
}
