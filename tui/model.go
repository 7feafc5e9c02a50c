package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/dto"
	"rkanban/internal/application/usecase/drag"
	"rkanban/internal/di"
	"rkanban/internal/domain/service"
)

// noticeTTL is how long the latest notice stays on screen
const noticeTTL = 5 * time.Second

type mode int

const (
	modeBoard mode = iota
	modeTaskForm
	modeListForm
	modeConfirm
)

// Model represents the TUI state
type Model struct {
	ctx       context.Context
	container *di.Container
	board     dto.BoardDTO

	focusedList            int   // which list is currently selected
	focusedTask            int   // which task in the current list is selected
	scrollOffsets          []int // scroll offset for each list (vertical)
	horizontalScrollOffset int   // horizontal scroll offset for lists
	width                  int
	height                 int

	mode     mode
	taskForm *taskForm
	listForm *listForm
	confirm  *confirmation

	changes <-chan service.Change
	tokens  <-chan string
	loaded  bool
	now     func() time.Time
}

// NewModel creates a new TUI model. changes and tokens feed store and login
// updates into the program; either may be nil.
func NewModel(ctx context.Context, container *di.Container, changes <-chan service.Change, tokens <-chan string) Model {
	board := container.GetBoardUseCase.Execute()
	return Model{
		ctx:           ctx,
		container:     container,
		board:         board,
		scrollOffsets: make([]int, len(board.Lists)),
		changes:       changes,
		tokens:        tokens,
		now:           time.Now,
	}
}

// tickMsg is sent when the ticker fires
type tickMsg time.Time

// boardChangedMsg carries a new store snapshot
type boardChangedMsg struct {
	change service.Change
}

// tokenChangedMsg is sent when a login or logout happened elsewhere
type tokenChangedMsg struct {
	token string
}

// refreshedMsg reports a finished full refetch
type refreshedMsg struct {
	err error
}

// dragEndedMsg reports the outcome of a drop
type dragEndedMsg struct {
	result drag.Result
}

// opDoneMsg reports a finished list or task mutation
type opDoneMsg struct {
	op  string
	err error
}

// doTick keeps the saving indicator current
func doTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForChange(ch <-chan service.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return boardChangedMsg{change: change}
	}
}

func waitForToken(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		token, ok := <-ch
		if !ok {
			return nil
		}
		return tokenChangedMsg{token: token}
	}
}

func (m Model) refresh() tea.Cmd {
	uc := m.container.RefreshBoardUseCase
	ctx := m.ctx
	return func() tea.Msg {
		_, err := uc.Execute(ctx)
		return refreshedMsg{err: err}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		doTick(),
		waitForChange(m.changes),
		waitForToken(m.tokens),
		m.refresh(),
	)
}

// setBoard installs a new board DTO and keeps focus in range
func (m *Model) setBoard(board dto.BoardDTO) {
	m.board = board
	if len(m.scrollOffsets) != len(board.Lists) {
		offsets := make([]int, len(board.Lists))
		copy(offsets, m.scrollOffsets)
		m.scrollOffsets = offsets
	}
	if m.focusedList >= len(board.Lists) {
		m.focusedList = len(board.Lists) - 1
	}
	if m.focusedList < 0 {
		m.focusedList = 0
	}
	m.clampTaskFocus()
}

// followTask moves focus onto taskID wherever it is now
func (m *Model) followTask(taskID string) {
	for li, l := range m.board.Lists {
		for ti, t := range l.Tasks {
			if t.ID == taskID {
				m.focusedList = li
				m.focusedTask = ti
				return
			}
		}
	}
}

// Helper to get current list
func (m Model) currentList() *dto.ListDTO {
	if m.focusedList < 0 || m.focusedList >= len(m.board.Lists) {
		return nil
	}
	return &m.board.Lists[m.focusedList]
}

// Helper to get task count in current list
func (m Model) currentListTaskCount() int {
	l := m.currentList()
	if l == nil {
		return 0
	}
	return len(l.Tasks)
}

// Helper to get current task
func (m Model) currentTask() *dto.TaskDTO {
	count := m.currentListTaskCount()
	if count == 0 || m.focusedTask < 0 || m.focusedTask >= count {
		return nil
	}
	return &m.board.Lists[m.focusedList].Tasks[m.focusedTask]
}

// Helper to update scroll position to keep focused task visible
func (m *Model) updateScroll(viewportHeight int) {
	if m.focusedList < 0 || m.focusedList >= len(m.scrollOffsets) {
		return
	}
	taskCount := m.currentListTaskCount()
	if taskCount == 0 {
		m.scrollOffsets[m.focusedList] = 0
		return
	}

	offset := m.scrollOffsets[m.focusedList]
	if m.focusedTask < offset {
		offset = m.focusedTask
	} else if m.focusedTask >= offset+viewportHeight {
		offset = m.focusedTask - viewportHeight + 1
	}
	m.scrollOffsets[m.focusedList] = clamp(offset, 0, max(0, taskCount-viewportHeight))
}

// Helper to update horizontal scroll to keep focused list visible
func (m *Model) updateHorizontalScroll(visibleLists int) {
	if visibleLists <= 0 {
		visibleLists = 1
	}
	total := len(m.board.Lists)
	if total == 0 {
		m.horizontalScrollOffset = 0
		return
	}

	offset := m.horizontalScrollOffset
	if m.focusedList < offset {
		offset = m.focusedList
	} else if m.focusedList >= offset+visibleLists {
		offset = m.focusedList - visibleLists + 1
	}
	m.horizontalScrollOffset = clamp(offset, 0, max(0, total-visibleLists))
}

// clampTaskFocus ensures the task focus is within valid bounds
func (m *Model) clampTaskFocus() {
	taskCount := m.currentListTaskCount()
	if taskCount == 0 {
		m.focusedTask = 0
	} else if m.focusedTask >= taskCount {
		m.focusedTask = taskCount - 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func logDrop(result drag.Result) {
	log.WithFields(log.Fields{
		"task_id": result.TaskID,
		"from":    result.From,
		"to":      result.To,
		"outcome": result.Outcome,
	}).Debug("drop handled")
}
