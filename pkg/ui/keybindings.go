// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyBinding represents a single key action
type KeyBinding struct {
	Key         string   // Display name: "ENTER", "SPACE", "ESC"
	Keys        []string // Actual keys to match: ["enter"], [" "], ["esc"]
	Description string   // What it does
}

// KeyBindingSet is a collection of related key bindings
type KeyBindingSet struct {
	Bindings []KeyBinding
}

// Contains checks if a key press matches any binding in the set
func (kbs KeyBindingSet) Contains(key string) *KeyBinding {
	for i := range kbs.Bindings {
		for _, k := range kbs.Bindings[i].Keys {
			if k == key {
				return &kbs.Bindings[i]
			}
		}
	}
	return nil
}

// Render formats key bindings for display
// Format: "[KEY] Action  •  [KEY] Action"
func (kbs KeyBindingSet) Render(style lipgloss.Style) string {
	if len(kbs.Bindings) == 0 {
		return ""
	}

	parts := make([]string, len(kbs.Bindings))
	for i, binding := range kbs.Bindings {
		parts[i] = fmt.Sprintf("[%s] %s", binding.Key, binding.Description)
	}

	return style.Render(strings.Join(parts, "  •  "))
}

// RenderInline formats key bindings for inline display (more compact)
// Format: "Key: action | Key: action"
func (kbs KeyBindingSet) RenderInline(style lipgloss.Style) string {
	if len(kbs.Bindings) == 0 {
		return ""
	}

	parts := make([]string, len(kbs.Bindings))
	caser := cases.Title(language.Und, cases.NoLower)
	for i, binding := range kbs.Bindings {
		// Use first key alias for display (e.g., "enter" instead of showing all)
		keyName := caser.String(binding.Keys[0])
		parts[i] = fmt.Sprintf("%s: %s", keyName, strings.ToLower(binding.Description))
	}

	return style.Render(strings.Join(parts, " | "))
}

// Common key binding sets shared by the wizard screens

// NavigateKeys returns cursor movement bindings (list screens)
func NavigateKeys() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "↑/↓", Keys: []string{"up", "down", "j", "k"}, Description: "Navigate"},
			{Key: "SPACE", Keys: []string{" "}, Description: "Select"},
			{Key: "ENTER", Keys: []string{"enter"}, Description: "Continue"},
			{Key: "ESC", Keys: []string{"esc"}, Description: "Back"},
			{Key: "Q", Keys: []string{"q"}, Description: "Quit"},
		},
	}
}

// ContinueBackQuitKeys returns the standard screen footer bindings
func ContinueBackQuitKeys() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "ENTER", Keys: []string{"enter"}, Description: "Continue"},
			{Key: "ESC", Keys: []string{"esc"}, Description: "Back"},
			{Key: "Q", Keys: []string{"q"}, Description: "Quit"},
		},
	}
}

// ContinueQuitKeys returns the footer bindings for entry screens with no
// back transition
func ContinueQuitKeys() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "ENTER", Keys: []string{"enter"}, Description: "Continue"},
			{Key: "Q", Keys: []string{"q"}, Description: "Quit"},
		},
	}
}

// EditKeys returns the bindings shown while an inline editor is open
func EditKeys() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "ENTER", Keys: []string{"enter"}, Description: "Save"},
			{Key: "ESC", Keys: []string{"esc"}, Description: "Cancel"},
		},
	}
}

// QuitOnlyKeys returns the binding set for terminal screens
func QuitOnlyKeys() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "ENTER", Keys: []string{"enter"}, Description: "Exit"},
		},
	}
}
