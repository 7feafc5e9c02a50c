package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"rkanban/internal/application/dto"
	"rkanban/internal/application/status"
	"rkanban/internal/application/usecase/drag"
	"rkanban/internal/domain/valueobject"
	"rkanban/tui/style"
)

const minListWidth = 24

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.mode {
	case modeTaskForm:
		body = m.renderTaskForm()
	case modeListForm:
		body = m.renderListForm()
	case modeConfirm:
		body = m.renderConfirm()
	default:
		body = m.renderBoard()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus(), m.renderHelp())
}

func (m Model) renderBoard() string {
	numLists := len(m.board.Lists)
	if numLists == 0 {
		if !m.loaded {
			return style.StatusStyle.Render("Loading board...")
		}
		return style.StatusStyle.Render("No lists yet. Press " + keys.AddList.Help().Key + " to add one.")
	}

	// 4 chars of border+padding and 2 of margin per list
	visible := max(1, m.width/(minListWidth+6))
	visible = min(visible, numLists)
	listWidth := max(minListWidth, (m.width-visible*6)/visible)
	viewportHeight := max(1, (m.height-10)/4)

	m.updateHorizontalScroll(visible)
	m.updateScroll(viewportHeight)

	state := m.container.DragController.State()
	end := min(numLists, m.horizontalScrollOffset+visible)
	var lists []string
	for i := m.horizontalScrollOffset; i < end; i++ {
		lists = append(lists, m.renderList(m.board.Lists[i], i, listWidth, viewportHeight, state))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, lists...)
}

// renderList renders a single list with scrolling support
func (m Model) renderList(l dto.ListDTO, index, width, viewportHeight int, state drag.State) string {
	isFocused := index == m.focusedList
	title := style.ListTitleStyle.Width(width).Render(fmt.Sprintf("%s (%d)", l.Title, len(l.Tasks)))

	offset := 0
	if index < len(m.scrollOffsets) {
		offset = m.scrollOffsets[index]
	}
	endIdx := min(len(l.Tasks), offset+viewportHeight)

	var cards []string
	if offset > 0 {
		cards = append(cards, indicator(width, "▲ more above ▲"))
	}
	for i := offset; i < endIdx; i++ {
		task := l.Tasks[i]
		cards = append(cards, m.renderTaskCard(task, width, isFocused && i == m.focusedTask, task.ID == state.ActiveTaskID))
	}
	if endIdx < len(l.Tasks) {
		cards = append(cards, indicator(width, "▼ more below ▼"))
	}
	if len(l.Tasks) == 0 {
		cards = append(cards, style.TaskStyle.Width(width).Foreground(lipgloss.Color("240")).Render("(empty)"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(cards, "\n"))
	height := max(3, m.height-8)
	switch {
	case state.Phase != drag.PhaseIdle && l.ID == state.DestListID:
		return style.DropTargetStyle.Height(height).Render(content)
	case isFocused:
		return style.FocusedListStyle.Height(height).Render(content)
	default:
		return style.ListStyle.Height(height).Render(content)
	}
}

func (m Model) renderTaskCard(task dto.TaskDTO, width int, selected, dragged bool) string {
	titleStyle := style.TaskStyle
	switch {
	case dragged:
		titleStyle = style.DraggedTaskStyle
	case selected:
		titleStyle = style.SelectedTaskStyle
	}

	badge := style.PriorityStyle(valueobject.Priority(task.Priority)).Render("●")
	lines := []string{titleStyle.Width(width).Render(badge + " " + task.Title)}
	if task.Description != "" {
		lines = append(lines, style.DescriptionStyle.Width(width).Render(truncate(task.Description, width-4)))
	}
	if task.DueDate != "" {
		if task.IsOverdue {
			lines = append(lines, style.OverdueStyle.Render("due "+task.DueDate+" (overdue)"))
		} else {
			lines = append(lines, style.DueDateStyle.Render("due "+task.DueDate))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTaskForm() string {
	f := m.taskForm
	heading := "New task"
	if f.editing() {
		heading = "Edit task"
	}

	labels := [fieldCount]string{"Title", "Description", "Due date", "Priority", "List"}
	rows := []string{style.ListTitleStyle.Render(heading), ""}
	for i := 0; i < fieldCount; i++ {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		var value string
		switch i {
		case fieldPriority:
			value = "< " + priorities[f.priority] + " >"
		case fieldList:
			value = "< " + listTitle(f.lists, f.list) + " >"
		default:
			value = f.inputs[i].View()
		}
		rows = append(rows, fmt.Sprintf("%s%-12s %s", marker, labels[i], value))
	}
	if f.err != "" {
		rows = append(rows, "", style.ErrorStyle.Render(f.err))
	}
	rows = append(rows, "", style.HelpStyle.Render("tab: next field  ←/→: change choice  enter: save  esc: cancel"))
	return style.FocusedListStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderListForm() string {
	f := m.listForm
	heading := "New list"
	if f.id != "" {
		heading = "Rename list"
	}
	rows := []string{style.ListTitleStyle.Render(heading), "", f.input.View()}
	if f.err != "" {
		rows = append(rows, "", style.ErrorStyle.Render(f.err))
	}
	rows = append(rows, "", style.HelpStyle.Render("enter: save  esc: cancel"))
	return style.FocusedListStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderConfirm() string {
	c := m.confirm
	var prompt string
	if c.taskID != "" {
		prompt = fmt.Sprintf("Delete task %q? (y/n, L deletes list %q with all its tasks)", c.taskTitle, c.listTitle)
	} else {
		prompt = fmt.Sprintf("Delete list %q? (y/n)", c.listTitle)
	}
	return style.FocusedListStyle.Render(style.ErrorStyle.Render(prompt))
}

// renderStatus shows the saving indicator and the latest notice
func (m Model) renderStatus() string {
	tracker := m.container.Tracker
	var parts []string
	if tracker.Saving() {
		parts = append(parts, style.StatusStyle.Render("Saving changes..."))
	}
	if state := m.container.DragController.State(); state.Phase == drag.PhaseDragging {
		parts = append(parts, style.StatusStyle.Render("Moving task: ←/→ choose list, "+keys.Drop.Help().Key+" drop, "+keys.Cancel.Help().Key+" cancel"))
	}
	if n, ok := tracker.Latest(); ok && m.now().Sub(n.At) < noticeTTL {
		if n.Level == status.LevelError {
			parts = append(parts, style.ErrorStyle.Render(n.Op+": "+n.Message))
		} else {
			parts = append(parts, style.StatusStyle.Render(n.Message))
		}
	}
	if !m.container.Session.Authenticated() {
		parts = append(parts, style.ErrorStyle.Render("Not logged in: run `rkanban login`"))
	}
	return strings.Join(parts, "\n")
}

// renderHelp renders the help text at the bottom
func (m Model) renderHelp() string {
	bindings := []key.Binding{
		keys.Left, keys.Right, keys.Up, keys.Down, keys.Grab,
		keys.Add, keys.AddList, keys.Edit, keys.Rename, keys.Delete,
		keys.Refresh, keys.Quit,
	}
	help := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	return style.HelpStyle.Render(strings.Join(help, "  •  "))
}

func indicator(width int, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

func listTitle(lists []dto.ListDTO, i int) string {
	if i < 0 || i >= len(lists) {
		return "(none)"
	}
	return lists[i].Title
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
