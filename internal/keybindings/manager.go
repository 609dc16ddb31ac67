// ABOUTME: Keybindings manager with O(1) key-to-action lookup
// ABOUTME: Translates decoded keys to binding names and detects conflicting bindings

package keybindings

import (
	"fmt"
	"slices"

	"github.com/mauromedda/tedit/internal/config"
	"github.com/mauromedda/tedit/pkg/tui/key"
)

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

// Manager provides O(1) key-to-action lookup.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[string]config.KeyAction // "up" → ActionCursorUp
}

// New creates a Manager with the default bindings.
func New() *Manager {
	return NewFromBindings(config.NewKeybindings())
}

// NewFromBindings creates a Manager from an existing Keybindings instance.
func NewFromBindings(kb *config.Keybindings) *Manager {
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionForKey returns the action bound to the given key, or "" if unbound.
func (m *Manager) ActionForKey(k key.Key) config.KeyAction {
	name := KeyName(k)
	if name == "" {
		return ""
	}
	return m.lookup[name]
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]config.KeyAction)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			slices.Sort(actions)
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	slices.SortFunc(conflicts, func(a, b ConflictInfo) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return conflicts
}

// buildLookup indexes bindings by key name. When a key is bound to several
// actions the lexically smallest action wins, so lookups are deterministic.
func (m *Manager) buildLookup() {
	m.lookup = make(map[string]config.KeyAction, len(m.bindings.Bindings)*2)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			if prev, ok := m.lookup[k]; ok && prev < action {
				continue
			}
			m.lookup[k] = action
		}
	}
}

var keyTypeNames = map[key.KeyType]string{
	key.KeyUp:       "up",
	key.KeyDown:     "down",
	key.KeyLeft:     "left",
	key.KeyRight:    "right",
	key.KeyHome:     "home",
	key.KeyEnd:      "end",
	key.KeyPageUp:   "pgup",
	key.KeyPageDown: "pgdown",
	key.KeyDelete:   "delete",
}

// KeyName converts a key.Key to the string format used in keybinding configs.
// Passthrough bytes are named like the literal byte they carry.
func KeyName(k key.Key) string {
	if k.Type != key.KeyChar {
		return keyTypeNames[k.Type]
	}

	b := k.Byte
	switch {
	case b == key.Escape:
		return "escape"
	case b == '\r':
		return "enter"
	case b == '\t':
		return "tab"
	case b == 0x7f:
		return "backspace"
	case b >= 0x01 && b <= 0x1a:
		return fmt.Sprintf("ctrl+%c", 'a'+b-1)
	case b >= 0x20 && b <= 0x7e:
		return string(rune(b))
	}
	return ""
}
