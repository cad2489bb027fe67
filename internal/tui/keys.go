package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key scopes. A binding with no scopes applies everywhere.
const (
	scopeBoard = "board"
	scopeDrag  = "drag"
)

const (
	actQuit   = "quit"
	actLeft   = "left"
	actRight  = "right"
	actUp     = "up"
	actDown   = "down"
	actAdd    = "add"
	actEdit   = "edit"
	actDelete = "delete"
	actSearch = "search"
	actSort   = "sort"
	actUnsort = "unsort"
	actMove   = "move"
	actDrop   = "drop"
	actCancel = "cancel"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultBindings is the stock keymap. Footer hints follow this order.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"a"}, Action: actAdd, Description: "Add", Scopes: []string{scopeBoard}},
		{Keys: []string{"e", "enter"}, Action: actEdit, Description: "Edit", Scopes: []string{scopeBoard}},
		{Keys: []string{"x", "delete"}, Action: actDelete, Description: "Delete", Scopes: []string{scopeBoard}},
		{Keys: []string{"m", "space"}, Action: actMove, Description: "Move", Scopes: []string{scopeBoard}},
		{Keys: []string{"/"}, Action: actSearch, Description: "Search", Scopes: []string{scopeBoard}},
		{Keys: []string{"s"}, Action: actSort, Description: "Sort", Scopes: []string{scopeBoard}},
		{Keys: []string{"u"}, Action: actUnsort, Description: "Unsort", Scopes: []string{scopeBoard}},
		{Keys: []string{"h", "left"}, Action: actLeft, Description: "Group", Scopes: []string{scopeDrag}},
		{Keys: []string{"l", "right"}, Action: actRight, Scopes: []string{scopeDrag}},
		{Keys: []string{"k", "up"}, Action: actUp, Description: "Position", Scopes: []string{scopeDrag}},
		{Keys: []string{"j", "down"}, Action: actDown, Scopes: []string{scopeDrag}},
		{Keys: []string{"enter", "space", "m"}, Action: actDrop, Description: "Drop", Scopes: []string{scopeDrag}},
		{Keys: []string{"esc"}, Action: actCancel, Description: "Cancel", Scopes: []string{scopeDrag}},
		{Keys: []string{"h", "left"}, Action: actLeft, Scopes: []string{scopeBoard}},
		{Keys: []string{"l", "right"}, Action: actRight, Scopes: []string{scopeBoard}},
		{Keys: []string{"k", "up"}, Action: actUp, Scopes: []string{scopeBoard}},
		{Keys: []string{"j", "down"}, Action: actDown, Scopes: []string{scopeBoard}},
		{Keys: []string{"q", "ctrl+c"}, Action: actQuit, Description: "Quit", Scopes: []string{scopeBoard}},
		{Keys: []string{"ctrl+c"}, Action: actQuit},
	}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// HelpLine renders "[key] Description" hints for scope.
func (r *KeyRegistry) HelpLine(scope string) string {
	var parts []string
	for _, b := range r.BindingsForScope(scope) {
		if b.Description == "" || len(b.Keys) == 0 || len(b.Scopes) == 0 {
			continue
		}
		parts = append(parts, "["+b.Keys[0]+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
