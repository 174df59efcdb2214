// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import "fmt"

// Engine selects how the background grid behaves.
type Engine string

const (
	DataStream Engine = "data-stream"
	StaticGrid Engine = "static-grid"
	DeepVoid   Engine = "deep-void"
)

// EngineInfo describes an engine on the settings sheet.
type EngineInfo struct {
	ID          Engine
	Name        string
	Description string
}

// Engines lists the selectable engines in menu order.
var Engines = []EngineInfo{
	{DataStream, "Data Stream", "Live Hex/Data Feed"},
	{StaticGrid, "Static Grid", "Low Power / Minimal"},
	{DeepVoid, "Deep Void", "OLED / Pure Black"},
}

// ParseEngine validates s as an engine id.
func ParseEngine(s string) (Engine, error) {
	for _, e := range Engines {
		if string(e.ID) == s {
			return e.ID, nil
		}
	}
	return "", fmt.Errorf("unknown visual engine %q", s)
}

// Animated reports whether the engine runs the ticker.
func (e Engine) Animated() bool { return e == DataStream }

// Visible reports whether the engine draws the grid at all.
func (e Engine) Visible() bool { return e == DataStream || e == StaticGrid }
