// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events reads the per-event enable switches out of a resolved
// configuration.
//
// The configuration is keyed by event schema identifiers, each holding an
// object with a boolean "enable" member. Events are on by default: only an
// explicit false turns one off.
package events

const (
	schemaPrefix = "mentoracademy.org/schemas/events/1.0.0/"
	enableKey    = "enable"
)

// Known event schema identifiers.
const (
	NotebookSave       = schemaPrefix + "NotebookSaveEvent"
	NotebookClose      = schemaPrefix + "NotebookCloseEvent"
	NotebookOpen       = schemaPrefix + "NotebookOpenEvent"
	CellRemove         = schemaPrefix + "CellRemoveEvent"
	CellAdd            = schemaPrefix + "CellAddEvent"
	CellExecution      = schemaPrefix + "CellExecutionEvent"
	NotebookScroll     = schemaPrefix + "NotebookScrollEvent"
	ActiveCellChange   = schemaPrefix + "ActiveCellChangeEvent"
	CellError          = schemaPrefix + "CellErrorEvent"
	NotebookClipboard  = schemaPrefix + "NotebookClipboardEvent"
	NotebookVisibility = schemaPrefix + "NotebookVisibilityEvent"
)

// Schemas lists every known event schema.
var Schemas = []string{
	NotebookSave,
	NotebookClose,
	NotebookOpen,
	CellRemove,
	CellAdd,
	CellExecution,
	NotebookScroll,
	ActiveCellChange,
	CellError,
	NotebookClipboard,
	NotebookVisibility,
}

// Enabled reports whether schema is switched on in cfg. A missing entry,
// a non-object entry or a non-boolean "enable" member counts as enabled.
func Enabled(cfg map[string]any, schema string) bool {
	entry, ok := cfg[schema].(map[string]any)
	if !ok {
		return true
	}

	enable, ok := entry[enableKey].(bool)
	if !ok {
		return true
	}

	return enable
}

// Toggles returns the switch state of every known schema plus any schema
// found in cfg that carries a boolean "enable" member.
func Toggles(cfg map[string]any) map[string]bool {
	toggles := make(map[string]bool, len(Schemas))
	for _, schema := range Schemas {
		toggles[schema] = Enabled(cfg, schema)
	}

	for key, value := range cfg {
		entry, ok := value.(map[string]any)
		if !ok {
			continue
		}
		if enable, ok := entry[enableKey].(bool); ok {
			toggles[key] = enable
		}
	}

	return toggles
}
