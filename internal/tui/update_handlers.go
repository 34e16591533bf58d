package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/akyairhashvil/multitimer/internal/export"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 3
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m Model) handleRegistryEvent(_ registryEventMsg) (Model, tea.Cmd) {
	m.refresh()
	return m, waitForEvent(m.events)
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleCursor(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		n := len(m.rows())
		if n == 0 {
			return m, nil, true
		}
		m.cursor += delta
		if m.cursor < 0 {
			m.cursor = 0
		}
		if m.cursor >= n {
			m.cursor = n - 1
		}
		return m, nil, true
	}
}

func handleAddOpen(m Model, _ string) (Model, tea.Cmd, bool) {
	m.mode = ModeAdding
	cmd := m.form.reset()
	return m, cmd, true
}

func handleToggleCategory(m Model, _ string) (Model, tea.Cmd, bool) {
	r, ok := m.selected()
	if !ok || r.timer != nil {
		return m, nil, false
	}
	m.expanded[r.category] = !m.expanded[r.category]
	return m, nil, true
}

// timerAction applies op to the timer under the cursor.
func timerAction(op func(TimerService, context.Context, string) bool) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		r, ok := m.selected()
		if !ok || r.timer == nil {
			return m, nil, false
		}
		op(m.svc, m.ctx, r.timer.Name)
		m.refresh()
		return m, nil, true
	}
}

var (
	handleStart = timerAction(TimerService.Start)
	handlePause = timerAction(TimerService.Pause)
	handleReset = timerAction(TimerService.Reset)
)

func handleHistoryOpen(m Model, _ string) (Model, tea.Cmd, bool) {
	m.history = m.svc.History()
	m.mode = ModeHistory
	return m, nil, true
}

func handleHistoryClose(m Model, _ string) (Model, tea.Cmd, bool) {
	m.mode = ModeList
	return m, nil, true
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	path, err := export.WriteHistory(m.exportDir, m.svc.History(), export.FormatJSON)
	if err != nil {
		m.err = fmt.Errorf("export history: %w", err)
		return m, nil, true
	}
	m.Message = "History exported to " + path
	return m, nil, true
}

func handleReport(m Model, _ string) (Model, tea.Cmd, bool) {
	path, err := export.WriteReport(m.exportDir, m.svc.Timers(), m.svc.History(), m.now())
	if err != nil {
		m.err = fmt.Errorf("write report: %w", err)
		return m, nil, true
	}
	m.Message = "Report written to " + path
	return m, nil, true
}

func handleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	m.theme = nextTheme(m.theme)
	SetTheme(m.theme)
	return m, nil, true
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeList
		return m, nil
	case "tab", "down":
		return m, m.form.setFocus(m.form.focus + 1)
	case "shift+tab", "up":
		return m, m.form.setFocus(m.form.focus - 1)
	case " ":
		if m.form.focus == fieldHalfway {
			m.form.halfway = !m.form.halfway
			return m, nil
		}
	case "enter":
		if m.form.focus == fieldHalfway || m.form.focus == fieldCategory {
			return m.submitForm()
		}
		return m, m.form.setFocus(m.form.focus + 1)
	}
	return m, m.form.update(msg)
}

func (m Model) submitForm() (Model, tea.Cmd) {
	category := strings.TrimSpace(m.form.value(fieldCategory))
	t, err := m.svc.AddFromInput(m.ctx, m.form.value(fieldName), m.form.value(fieldDuration), category, m.form.halfway)
	if err != nil {
		m.form.err = err
		return m, nil
	}
	m.mode = ModeList
	m.expanded[t.Category] = true
	m.refresh()
	m.cursorTo(t.Name)
	m.Message = "Added " + t.Name
	return m, nil
}
