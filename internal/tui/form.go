package tui

import (
	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldDuration
	fieldCategory
	fieldHalfway
	fieldCount
)

// addForm collects a new timer's name, duration, category and halfway flag.
type addForm struct {
	inputs  []textinput.Model
	halfway bool
	focus   int
	err     error
}

func newAddForm() addForm {
	name := textinput.New()
	name.Placeholder = "Timer Name"
	name.CharLimit = config.MaxNameLength
	name.Width = 40

	duration := textinput.New()
	duration.Placeholder = "Duration (seconds or 1m30s)"
	duration.CharLimit = config.MaxDurationLength
	duration.Width = 40

	category := textinput.New()
	category.Placeholder = "Category"
	category.CharLimit = config.MaxCategoryLength
	category.Width = 40

	return addForm{inputs: []textinput.Model{name, duration, category}}
}

func (f *addForm) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.halfway = false
	f.err = nil
	return f.setFocus(fieldName)
}

func (f *addForm) setFocus(field int) tea.Cmd {
	f.focus = (field%fieldCount + fieldCount) % fieldCount
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f addForm) value(field int) string {
	return f.inputs[field].Value()
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
