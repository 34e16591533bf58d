package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/akyairhashvil/multitimer/internal/models"
	"github.com/akyairhashvil/multitimer/internal/timers"
	"github.com/akyairhashvil/multitimer/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the screen currently shown.
type Mode int

const (
	ModeList Mode = iota
	ModeAdding
	ModeHistory
)

// Options wires the model to its surroundings.
type Options struct {
	Events    <-chan timers.Event
	ExportDir string
	Theme     string
	Now       func() time.Time
}

// row is one line of the timer list: a category header when timer is nil.
type row struct {
	category string
	timer    *models.Timer
}

// Model is the root bubbletea model.
type Model struct {
	ctx       context.Context
	svc       TimerService
	events    <-chan timers.Event
	exportDir string
	now       func() time.Time
	keys      *HandlerRegistry

	mode      Mode
	timers    []models.Timer
	history   []models.HistoryEntry
	expanded  map[string]bool
	cursor    int
	form      addForm
	completed []string
	announced int
	theme     string
	progress  progress.Model

	Message       string
	err           error
	width, height int
}

func NewModel(ctx context.Context, svc TimerService, opts Options) Model {
	theme := opts.Theme
	if _, ok := Themes[theme]; !ok {
		theme = config.ThemeLight
	}
	SetTheme(theme)
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := Model{
		ctx:       ctx,
		svc:       svc,
		events:    opts.Events,
		exportDir: opts.ExportDir,
		now:       now,
		keys:      defaultKeyRegistry(),
		expanded:  make(map[string]bool),
		form:      newAddForm(),
		theme:     theme,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.progress.Width = config.ProgressWidth
	m.announced = len(svc.History())
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return waitForEvent(m.events) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		next, cmd := m.handleWindowSize(msg)
		return next, cmd
	case registryEventMsg:
		next, cmd := m.handleRegistryEvent(msg)
		return next, cmd
	case eventsClosedMsg:
		m.events = nil
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if len(m.completed) > 0 {
			m.completed = m.completed[1:]
			return m, nil
		}
		if m.mode == ModeAdding {
			next, cmd := m.handleFormKey(msg)
			return next, cmd
		}
		m.err, m.Message = nil, ""
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

// refresh re-reads the registry snapshot and keeps the cursor in range.
// History entries not yet announced are queued for the completion modal, so
// a completion is shown even if its event was dropped.
func (m *Model) refresh() {
	m.timers = m.svc.Timers()
	m.history = m.svc.History()
	if m.announced > len(m.history) {
		m.announced = len(m.history)
	}
	for _, h := range m.history[m.announced:] {
		m.completed = append(m.completed, h.Name)
	}
	m.announced = len(m.history)
	m.cursor = util.Clamp(m.cursor, 0, max(len(m.rows())-1, 0))
}

func (m Model) rows() []row {
	var out []row
	for _, g := range models.GroupByCategory(m.timers) {
		out = append(out, row{category: g.Category})
		if !m.expanded[g.Category] {
			continue
		}
		for i := range g.Timers {
			t := g.Timers[i]
			out = append(out, row{category: g.Category, timer: &t})
		}
	}
	return out
}

func (m Model) selected() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

// cursorTo moves the cursor onto the named timer, if visible.
func (m *Model) cursorTo(name string) {
	for i, r := range m.rows() {
		if r.timer != nil && r.timer.Name == name {
			m.cursor = i
			return
		}
	}
}
