package tui

import (
	"github.com/akyairhashvil/multitimer/internal/timers"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type registryEventMsg timers.Event

type eventsClosedMsg struct{}

// waitForEvent blocks on the registry subscription and hands the next event
// to the bubbletea loop.
func waitForEvent(ch <-chan timers.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return registryEventMsg(ev)
	}
}
