package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/akyairhashvil/multitimer/internal/export"
	"github.com/akyairhashvil/multitimer/internal/models"
	"github.com/akyairhashvil/multitimer/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if len(m.completed) > 0 {
		return m.renderModal()
	}
	var body string
	switch m.mode {
	case ModeAdding:
		body = m.renderForm()
	case ModeHistory:
		body = m.renderHistory()
	default:
		body = m.renderList()
	}
	return CurrentTheme.Base.Render(body + "\n" + m.renderFooter())
}

func (m Model) renderHeader() string {
	running := 0
	for _, t := range m.timers {
		if t.Status == models.StatusRunning {
			running++
		}
	}
	return CurrentTheme.Header.Render(fmt.Sprintf("Multi Timer | %d %s, %d running",
		len(m.timers), util.Plural(len(m.timers), "timer"), running))
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(m.renderHeader() + "\n\n")
	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No timers yet. Press a to add one.") + "\n")
		return b.String()
	}
	for i, r := range rows {
		focused := i == m.cursor
		if r.timer == nil {
			b.WriteString(m.renderCategory(r.category, focused) + "\n")
			continue
		}
		b.WriteString(m.renderTimer(*r.timer, focused) + "\n")
	}
	return b.String()
}

func (m Model) renderCategory(category string, focused bool) string {
	marker := "▸"
	if m.expanded[category] {
		marker = "▾"
	}
	count := 0
	for _, t := range m.timers {
		if t.Category == category {
			count++
		}
	}
	line := fmt.Sprintf("%s %s (%d)", marker, models.CategoryLabel(category), count)
	if focused {
		return CurrentTheme.Focused.Render(line)
	}
	return CurrentTheme.Category.Render(line)
}

func (m Model) renderTimer(t models.Timer, focused bool) string {
	name := ansi.Truncate(t.Name, m.nameWidth(), config.TruncationSuffix)
	if pad := m.nameWidth() - ansi.StringWidth(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}
	style := CurrentTheme.Timer
	switch t.Status {
	case models.StatusRunning:
		style = CurrentTheme.Running
	case models.StatusCompleted:
		style = CurrentTheme.Completed
	}
	if focused {
		style = CurrentTheme.Focused
	}
	status := string(t.Status)
	if t.HalfwayAlert {
		status += " ½"
	}
	return fmt.Sprintf("    %s %s %s %s",
		style.Render(name),
		m.progress.ViewAs(t.Progress()),
		export.FormatSeconds(t.RemainingTime),
		CurrentTheme.Dim.Render(status))
}

func (m Model) nameWidth() int {
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return util.Clamp(m.width/3, 8, config.MaxNameWidth)
	}
	return config.MaxNameWidth
}

func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Add Timer") + "\n\n")
	for _, in := range m.form.inputs {
		b.WriteString(CurrentTheme.Input.Render(in.View()) + "\n")
	}
	check := "[ ]"
	if m.form.halfway {
		check = "[x]"
	}
	label := check + " Halfway alert"
	if m.form.focus == fieldHalfway {
		label = CurrentTheme.Focused.Render(label)
	}
	b.WriteString(" " + label + "\n")
	if m.form.err != nil {
		b.WriteString("\n" + CurrentTheme.Error.Render(m.form.err.Error()) + "\n")
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("[tab]next [enter]add [esc]cancel"))
	return b.String()
}

func (m Model) renderHistory() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Completed Timers") + "\n\n")
	if len(m.history) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("Nothing completed yet.") + "\n")
		return b.String()
	}
	start := 0
	if len(m.history) > config.MaxVisibleHistory {
		start = len(m.history) - config.MaxVisibleHistory
	}
	for _, h := range m.history[start:] {
		b.WriteString(fmt.Sprintf("  %s  %s\n", CurrentTheme.Timer.Render(h.Name), CurrentTheme.Dim.Render(h.CompletedAt)))
	}
	if start > 0 {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  ... %d older", start)) + "\n")
	}
	return b.String()
}

func (m Model) renderModal() string {
	msg := fmt.Sprintf("%s completed!", m.completed[0])
	if n := len(m.completed) - 1; n > 0 {
		msg += "\n" + CurrentTheme.Dim.Render(fmt.Sprintf("%d more %s", n, util.Plural(n, "timer")))
	}
	box := CurrentTheme.Modal.Render(CurrentTheme.Focused.Render(msg) + "\n\n" + CurrentTheme.Dim.Render("press any key"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderFooter() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(CurrentTheme.Error.Render(m.err.Error()) + "\n")
	} else if m.Message != "" {
		b.WriteString(CurrentTheme.Dim.Render(m.Message) + "\n")
	}
	if m.mode != ModeAdding {
		b.WriteString(CurrentTheme.Dim.Render(m.keys.HelpForMode(m.mode)))
	}
	return b.String()
}
