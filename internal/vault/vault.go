// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package vault edits the in-memory file cards shown in the Vault view.
package vault

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jeranaias/agentdeck/internal/collection"
	"github.com/jeranaias/agentdeck/internal/model"
)

// PlaceholderSize is the size label given to uploaded placeholders.
const PlaceholderSize = "0 KB"

// Vault is the editable list of vault files.
type Vault struct {
	files *collection.List[model.VaultFile]
}

// New creates a vault holding a copy of files.
func New(files []model.VaultFile) *Vault {
	return &Vault{files: collection.New(model.VaultFile.Key, files...)}
}

// Files returns the files in display order.
func (v *Vault) Files() []model.VaultFile {
	return v.files.Items()
}

// Len returns the number of files.
func (v *Vault) Len() int {
	return v.files.Len()
}

// Find returns the file with the given id.
func (v *Vault) Find(id string) (model.VaultFile, bool) {
	return v.files.Find(id)
}

// Rename sets the file's name to the trimmed value of name. A blank name
// keeps the old one and reports false.
func (v *Vault) Rename(id, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return v.files.Update(id, func(f model.VaultFile) model.VaultFile {
		f.Name = name
		return f
	})
}

// ToggleStar flips the starred flag.
func (v *Vault) ToggleStar(id string) bool {
	return v.files.Update(id, func(f model.VaultFile) model.VaultFile {
		f.Starred = !f.Starred
		return f
	})
}

// Recolor sets the file's colour tag. ColorNone clears it.
func (v *Vault) Recolor(id string, color model.ColorTag) bool {
	return v.files.Update(id, func(f model.VaultFile) model.VaultFile {
		f.Color = color
		return f
	})
}

// Upload appends a placeholder text file named after the new file count
// and returns it.
func (v *Vault) Upload() model.VaultFile {
	f := model.VaultFile{
		ID:        uuid.NewString(),
		Name:      PlaceholderName(v.files.Len() + 1),
		Type:      model.FileTxt,
		SizeLabel: PlaceholderSize,
	}
	v.files.Append(f)
	return f
}

// PlaceholderName returns the name of the n-th uploaded placeholder.
func PlaceholderName(n int) string {
	return fmt.Sprintf("NEW_FILE_%d.txt", n)
}
