// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/model"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
	"github.com/jeranaias/agentdeck/internal/util"
	"github.com/jeranaias/agentdeck/internal/vault"
)

var (
	keyStar = key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "star"),
	)
	keyColor = key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "color"),
	)
	keyRename = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	)
	keyUpload = key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "upload"),
	)
)

// vaultCardWidth is the outer width of one file card.
const vaultCardWidth = 26

// Vault shows file cards in a grid. The focused card can be starred,
// tagged with a color, and renamed; uploads append placeholders.
type Vault struct {
	vault    *vault.Vault
	cursor   int
	renaming bool
	rename   textinput.Model
	theme    *styles.Theme
	log      *zap.Logger
	width    int
	height   int
}

// NewVault builds the panel from the seeded files.
func NewVault(deps Deps, data *seed.Data) *Vault {
	ti := textinput.New()
	ti.Prompt = "rename> "
	ti.CharLimit = 128

	return &Vault{
		vault:  vault.New(data.Vault),
		rename: ti,
		theme:  deps.Theme,
		log:    deps.logger().Named("vault"),
	}
}

// Model exposes the file list.
func (v *Vault) Model() *vault.Vault { return v.vault }

// Cursor returns the focused card index.
func (v *Vault) Cursor() int { return v.cursor }

// Renaming reports whether the rename prompt is open.
func (v *Vault) Renaming() bool { return v.renaming }

func (v *Vault) focused() (model.VaultFile, bool) {
	files := v.vault.Files()
	if v.cursor < 0 || v.cursor >= len(files) {
		return model.VaultFile{}, false
	}
	return files[v.cursor], true
}

func (v *Vault) columns() int {
	cols := v.width / vaultCardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

func (v *Vault) Init() tea.Cmd { return nil }

func (v *Vault) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if v.renaming {
		return v.updateRename(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	n := v.vault.Len()
	switch {
	case key.Matches(km, keyLeft):
		v.cursor = moveCursor(v.cursor, -1, n)
	case key.Matches(km, keyRight):
		v.cursor = moveCursor(v.cursor, 1, n)
	case key.Matches(km, keyUp):
		v.cursor = moveCursor(v.cursor, -v.columns(), n)
	case key.Matches(km, keyDown):
		v.cursor = moveCursor(v.cursor, v.columns(), n)

	case key.Matches(km, keyStar):
		if f, ok := v.focused(); ok {
			v.vault.ToggleStar(f.ID)
		}

	case key.Matches(km, keyColor):
		if f, ok := v.focused(); ok {
			v.vault.Recolor(f.ID, nextColor(f.Color))
		}

	case key.Matches(km, keyRename):
		if f, ok := v.focused(); ok {
			v.renaming = true
			v.rename.SetValue(f.Name)
			v.rename.CursorEnd()
			return v, v.rename.Focus()
		}

	case key.Matches(km, keyUpload):
		f := v.vault.Upload()
		v.cursor = v.vault.Len() - 1
		v.log.Debug("placeholder uploaded", zap.String("name", f.Name))
	}
	return v, nil
}

func (v *Vault) updateRename(msg tea.Msg) (Panel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keyConfirm):
			if f, ok := v.focused(); ok {
				v.vault.Rename(f.ID, v.rename.Value())
			}
			v.closeRename()
			return v, nil
		case key.Matches(km, keyCancel):
			v.closeRename()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.rename, cmd = v.rename.Update(msg)
	return v, cmd
}

func (v *Vault) closeRename() {
	v.renaming = false
	v.rename.Blur()
	v.rename.Reset()
}

// nextColor cycles none -> red -> green -> blue -> yellow -> none.
func nextColor(c model.ColorTag) model.ColorTag {
	for i, tag := range model.ColorTags {
		if tag == c {
			if i+1 < len(model.ColorTags) {
				return model.ColorTags[i+1]
			}
			return model.ColorNone
		}
	}
	return model.ColorTags[0]
}

func (v *Vault) View() string {
	files := v.vault.Files()
	cols := v.columns()

	var rows []string
	for start := 0; start < len(files); start += cols {
		end := start + cols
		if end > len(files) {
			end = len(files)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, v.renderCard(files[i], i == v.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	header := v.theme.Label.Render(fmt.Sprintf("VAULT :: %d FILES", len(files)))
	parts := []string{header, ""}
	parts = append(parts, rows...)
	if v.renaming {
		parts = append(parts, "", v.rename.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *Vault) renderCard(f model.VaultFile, focused bool) string {
	inner := vaultCardWidth - 4

	star := styles.StatusIndicators.Unstarred
	if f.Starred {
		star = v.theme.Star.Render(styles.StatusIndicators.Starred)
	}

	icon := f.Type.Icon()
	if hex := f.Color.Hex(); hex != "" {
		icon = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(icon)
	}

	name := util.TruncateWidth(f.Name, inner)
	lines := []string{
		icon + " " + star,
		v.theme.CardTitle.Render(name),
		v.theme.Label.Render(strings.ToUpper(string(f.Type)) + " · " + f.SizeLabel),
	}

	style := v.theme.Card
	if focused {
		style = v.theme.CardSelected
	}
	// Width excludes the border.
	return style.Width(vaultCardWidth - 2).Render(strings.Join(lines, "\n"))
}

func (v *Vault) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.rename.Width = width - len(v.rename.Prompt) - 1
}

func (v *Vault) SetTheme(theme *styles.Theme) { v.theme = theme }

func (v *Vault) Keys() help.KeyMap {
	if v.renaming {
		return bindingList{keyConfirm, keyCancel}
	}
	return bindingList{keyRight, keyStar, keyColor, keyRename, keyUpload}
}

func (v *Vault) CapturesInput() bool { return v.renaming }
func (v *Vault) Close()              {}
