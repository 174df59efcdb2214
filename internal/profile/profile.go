// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package profile formats the read-only usage and account data shown on the
// Profile view.
package profile

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jeranaias/agentdeck/internal/model"
)

// FormatValue renders a metric value the way the usage list shows it:
// "84%", "1.2 GB", "847K", or the plain number.
func FormatValue(m model.UsageMetric) string {
	switch {
	case m.Unit == "%":
		return number(m.Value) + "%"
	case m.Unit == "GB":
		return number(m.Value) + " GB"
	case m.Value >= 1000:
		return strconv.FormatFloat(math.Round(m.Value/1000), 'f', 0, 64) + "K"
	default:
		return number(m.Value)
	}
}

// Percent returns Value/Max as a percentage clamped to [0, 100].
// A non-positive Max yields 0.
func Percent(m model.UsageMetric) float64 {
	if m.Max <= 0 {
		return 0
	}
	p := m.Value / m.Max * 100
	return math.Max(0, math.Min(100, p))
}

// Ratio is Percent scaled to [0, 1] for progress bars.
func Ratio(m model.UsageMetric) float64 {
	return Percent(m) / 100
}

// Detail returns "value / max unit" with thousands separators, shown under
// a focused bar.
func Detail(m model.UsageMetric) string {
	s := humanize.Commaf(m.Value) + " / " + humanize.Commaf(m.Max)
	switch unit := strings.TrimSpace(m.Unit); unit {
	case "":
	case "%":
		s += "%"
	default:
		s += " " + unit
	}
	return s
}

// Row is a label/value pair in the account section.
type Row struct {
	Label string
	Value string
}

// AccountRows returns the account details in display order.
func AccountRows(a model.Account) []Row {
	return []Row{
		{Label: "Email", Value: a.Email},
		{Label: "Member since", Value: a.MemberSince},
		{Label: "Billing cycle", Value: a.BillingCycle},
	}
}

// Actions lists the profile buttons. They have no effect.
var Actions = []string{"Manage Subscription", "Sign Out"}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
