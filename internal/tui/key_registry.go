package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Modes       []Mode
	Priority    int
}

func (b KeyBinding) AppliesToMode(mode Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesToMode(m.mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// HelpForMode renders the described bindings of mode as a one-line hint.
func (r *HandlerRegistry) HelpForMode(mode Mode) string {
	var parts []string
	seen := make(map[string]bool)
	for _, b := range r.bindings {
		if b.Description == "" || !b.AppliesToMode(mode) || len(b.Keys) == 0 {
			continue
		}
		label := b.Keys[0]
		if label == " " {
			label = "space"
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	list := []Mode{ModeList}
	r.Register(KeyBinding{Keys: []string{"q"}, Handler: handleQuit, Description: "quit", Modes: list})
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Handler: handleCursor(-1), Modes: list, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Handler: handleCursor(1), Modes: list, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"a"}, Handler: handleAddOpen, Description: "add", Modes: list, Priority: 9})
	r.Register(KeyBinding{Keys: []string{"enter", " "}, Handler: handleToggleCategory, Description: "expand", Modes: list, Priority: 8})
	r.Register(KeyBinding{Keys: []string{"s"}, Handler: handleStart, Description: "start", Modes: list, Priority: 7})
	r.Register(KeyBinding{Keys: []string{"p"}, Handler: handlePause, Description: "pause", Modes: list, Priority: 7})
	r.Register(KeyBinding{Keys: []string{"r"}, Handler: handleReset, Description: "reset", Modes: list, Priority: 7})
	r.Register(KeyBinding{Keys: []string{"h"}, Handler: handleHistoryOpen, Description: "history", Modes: list, Priority: 5})
	r.Register(KeyBinding{Keys: []string{"e"}, Handler: handleExport, Description: "export", Modes: []Mode{ModeList, ModeHistory}, Priority: 5})
	r.Register(KeyBinding{Keys: []string{"P"}, Handler: handleReport, Description: "report", Modes: list, Priority: 5})
	r.Register(KeyBinding{Keys: []string{"t"}, Handler: handleTheme, Description: "theme", Modes: list, Priority: 4})
	r.Register(KeyBinding{Keys: []string{"esc", "h", "q"}, Handler: handleHistoryClose, Description: "close", Modes: []Mode{ModeHistory}, Priority: 5})
	return r
}
