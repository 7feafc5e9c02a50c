package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rkanban/internal/application/dto"
	"rkanban/internal/domain/valueobject"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldPriority
	fieldList
	fieldCount
)

var priorities = []string{
	valueobject.PriorityLow.String(),
	valueobject.PriorityMedium.String(),
	valueobject.PriorityHigh.String(),
}

// taskForm edits a task. Text fields use textinput; priority and list are
// choices cycled with left/right.
type taskForm struct {
	id       string
	inputs   [fieldPriority]textinput.Model
	priority int
	lists    []dto.ListDTO
	list     int
	focus    int
	err      string
}

func newTaskForm(form dto.TaskForm, lists []dto.ListDTO) *taskForm {
	f := &taskForm{id: form.ID, lists: lists}

	placeholders := [fieldPriority]string{"Title", "Description", "YYYY-MM-DD"}
	values := [fieldPriority]string{form.Title, form.Description, form.DueDate}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		ti.Width = 40
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[fieldDueDate].CharLimit = 10
	f.inputs[fieldTitle].Focus()

	for i, p := range priorities {
		if p == form.Priority {
			f.priority = i
		}
	}
	for i, l := range lists {
		if l.ID == form.ListID {
			f.list = i
		}
	}
	return f
}

func (f *taskForm) editing() bool {
	return f.id != ""
}

// value returns the submission for the current field values
func (f *taskForm) value() dto.TaskForm {
	form := dto.TaskForm{
		ID:          f.id,
		Title:       strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Description: f.inputs[fieldDescription].Value(),
		DueDate:     strings.TrimSpace(f.inputs[fieldDueDate].Value()),
		Priority:    priorities[f.priority],
	}
	if f.list >= 0 && f.list < len(f.lists) {
		form.ListID = f.lists[f.list].ID
	}
	return form
}

func (f *taskForm) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

// update handles a key while the form is open
func (f *taskForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return f.setFocus(f.focus - 1)
	}

	switch f.focus {
	case fieldPriority:
		f.priority = cycle(f.priority, len(priorities), msg.String())
		return nil
	case fieldList:
		f.list = cycle(f.list, len(f.lists), msg.String())
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func cycle(i, n int, key string) int {
	if n == 0 {
		return 0
	}
	switch key {
	case "left", "h":
		return (i - 1 + n) % n
	case "right", "l", " ":
		return (i + 1) % n
	}
	return i
}

// listForm creates or renames a list
type listForm struct {
	id    string
	input textinput.Model
	err   string
}

func newListForm(id, title string) *listForm {
	ti := textinput.New()
	ti.Placeholder = "List title"
	ti.CharLimit = 100
	ti.Width = 40
	ti.SetValue(title)
	ti.Focus()
	return &listForm{id: id, input: ti}
}

func (f *listForm) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// confirmation asks before a destructive action
type confirmation struct {
	taskID    string
	taskTitle string
	listID    string
	listTitle string
}
