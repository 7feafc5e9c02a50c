package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/dto"
	"rkanban/internal/application/usecase/drag"
	"rkanban/internal/domain/entity"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, doTick()

	case boardChangedMsg:
		m.syncBoard()
		return m, waitForChange(m.changes)

	case tokenChangedMsg:
		if msg.token == "" {
			return m, waitForToken(m.tokens)
		}
		return m, tea.Batch(waitForToken(m.tokens), m.refresh())

	case refreshedMsg:
		if msg.err == nil {
			m.loaded = true
		} else if !m.loaded {
			m.container.Tracker.Error(entity.OpFetchBoard, msg.err)
		}
		m.syncBoard()
		return m, nil

	case dragEndedMsg:
		logDrop(msg.result)
		m.syncBoard()
		m.followTask(msg.result.TaskID)
		return m, nil

	case opDoneMsg:
		if msg.err != nil && !entity.IsNotFound(msg.err) {
			log.WithError(msg.err).WithField("op", msg.op).Debug("operation failed")
		}
		m.syncBoard()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeTaskForm:
			return m.updateTaskForm(msg)
		case modeListForm:
			return m.updateListForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

// syncBoard re-reads the store
func (m *Model) syncBoard() {
	var taskID string
	if t := m.currentTask(); t != nil {
		taskID = t.ID
	}
	m.setBoard(m.container.GetBoardUseCase.Execute())
	if state := m.container.DragController.State(); state.Phase != drag.PhaseIdle {
		taskID = state.ActiveTaskID
	}
	if taskID != "" {
		m.followTask(taskID)
	}
}

func (m Model) dragging() bool {
	return m.container.DragController.State().Phase == drag.PhaseDragging
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dragging() {
		return m.updateDrag(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Left):
		m.moveLeft()

	case key.Matches(msg, keys.Right):
		m.moveRight()

	case key.Matches(msg, keys.Up):
		if m.focusedTask > 0 {
			m.focusedTask--
		}

	case key.Matches(msg, keys.Down):
		if m.focusedTask < m.currentListTaskCount()-1 {
			m.focusedTask++
		}

	case key.Matches(msg, keys.Grab):
		if task := m.currentTask(); task != nil {
			if err := m.container.DragController.Start(task.ID); err != nil {
				m.container.Tracker.Error(entity.OpMoveTask, err)
			}
		}

	case key.Matches(msg, keys.Add):
		if l := m.currentList(); l != nil {
			m.taskForm = newTaskForm(dto.TaskForm{ListID: l.ID}, m.board.Lists)
			m.mode = modeTaskForm
		}

	case key.Matches(msg, keys.Edit):
		if task := m.currentTask(); task != nil {
			form, err := m.container.FindTaskUseCase.Form(task.ID)
			if err != nil {
				return m, nil
			}
			m.taskForm = newTaskForm(form, m.board.Lists)
			m.mode = modeTaskForm
		}

	case key.Matches(msg, keys.AddList):
		m.listForm = newListForm("", "")
		m.mode = modeListForm

	case key.Matches(msg, keys.Rename):
		if l := m.currentList(); l != nil {
			m.listForm = newListForm(l.ID, l.Title)
			m.mode = modeListForm
		}

	case key.Matches(msg, keys.Delete):
		if l := m.currentList(); l != nil {
			c := &confirmation{listID: l.ID, listTitle: l.Title}
			if task := m.currentTask(); task != nil {
				c.taskID = task.ID
				c.taskTitle = task.Title
			}
			m.confirm = c
			m.mode = modeConfirm
		}

	case key.Matches(msg, keys.Refresh):
		return m, m.refresh()
	}

	return m, nil
}

// updateDrag handles keys while a task is grabbed. Moving between lists is a
// drag-over; nothing reaches the server until the drop.
func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controller := m.container.DragController

	switch {
	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Quit):
		controller.Cancel()
		m.syncBoard()

	case key.Matches(msg, keys.Left):
		if m.focusedList > 0 {
			m.dragOver(m.focusedList - 1)
		}

	case key.Matches(msg, keys.Right):
		if m.focusedList < len(m.board.Lists)-1 {
			m.dragOver(m.focusedList + 1)
		}

	case key.Matches(msg, keys.Drop), key.Matches(msg, keys.Grab):
		var overID string
		if l := m.currentList(); l != nil {
			overID = l.ID
		}
		ctx := m.ctx
		return m, func() tea.Msg {
			return dragEndedMsg{result: controller.End(ctx, overID)}
		}
	}

	return m, nil
}

func (m *Model) dragOver(listIndex int) {
	state := m.container.DragController.State()
	m.container.DragController.Over(m.board.Lists[listIndex].ID)
	m.setBoard(m.container.GetBoardUseCase.Execute())
	m.followTask(state.ActiveTaskID)
}

// moveLeft moves focus to the left list
func (m *Model) moveLeft() {
	if m.focusedList > 0 {
		m.focusedList--
		m.focusedTask = 0
		m.clampTaskFocus()
	}
}

// moveRight moves focus to the right list
func (m *Model) moveRight() {
	if m.focusedList < len(m.board.Lists)-1 {
		m.focusedList++
		m.focusedTask = 0
		m.clampTaskFocus()
	}
}

func (m Model) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.taskForm
	switch msg.String() {
	case "esc":
		m.closeForms()
		return m, nil
	case "enter":
		form := f.value()
		if err := m.validateTask(form); err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.closeForms()
		uc := m.container.SubmitTaskUseCase
		ctx := m.ctx
		op := entity.OpCreateTask
		if form.ID != "" {
			op = entity.OpUpdateTask
		}
		return m, func() tea.Msg {
			_, err := uc.Execute(ctx, form)
			return opDoneMsg{op: op, err: err}
		}
	}
	f.err = ""
	return m, f.update(msg)
}

func (m Model) validateTask(form dto.TaskForm) error {
	v := m.container.Validation
	if err := v.ValidateTaskTitle(form.Title); err != nil {
		return err
	}
	if _, err := v.ValidateDueDate(form.DueDate); err != nil {
		return err
	}
	_, err := v.ValidatePriority(form.Priority)
	return err
}

func (m Model) updateListForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.listForm
	switch msg.String() {
	case "esc":
		m.closeForms()
		return m, nil
	case "enter":
		title := f.input.Value()
		if err := m.container.Validation.ValidateListTitle(title); err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.closeForms()
		ctx := m.ctx
		if f.id == "" {
			uc := m.container.CreateListUseCase
			return m, func() tea.Msg {
				_, err := uc.Execute(ctx, title)
				return opDoneMsg{op: entity.OpCreateList, err: err}
			}
		}
		uc := m.container.RenameListUseCase
		listID := f.id
		return m, func() tea.Msg {
			_, err := uc.Execute(ctx, listID, title)
			return opDoneMsg{op: entity.OpRenameList, err: err}
		}
	}
	f.err = ""
	return m, f.update(msg)
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	ctx := m.ctx
	switch msg.String() {
	case "y", "Y":
		m.closeForms()
		if c.taskID == "" {
			return m, m.deleteList(c.listID)
		}
		uc := m.container.DeleteTaskUseCase
		return m, func() tea.Msg {
			return opDoneMsg{op: entity.OpDeleteTask, err: uc.Execute(ctx, c.taskID)}
		}
	case "L":
		m.closeForms()
		return m, m.deleteList(c.listID)
	case "n", "N", "esc", "q":
		m.closeForms()
	}
	return m, nil
}

func (m Model) deleteList(listID string) tea.Cmd {
	uc := m.container.DeleteListUseCase
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: entity.OpDeleteList, err: uc.Execute(ctx, listID)}
	}
}

func (m *Model) closeForms() {
	m.mode = modeBoard
	m.taskForm = nil
	m.listForm = nil
	m.confirm = nil
}
