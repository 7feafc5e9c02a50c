package dto

import (
	"time"

	"rkanban/internal/domain/entity"
)

// TaskDTO represents a task data transfer object
type TaskDTO struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Priority    string `json:"priority" yaml:"priority"`
	ListID      string `json:"list_id" yaml:"list_id"`
	IsOverdue   bool   `json:"is_overdue" yaml:"is_overdue"`
}

// ListDTO represents a list with its tasks
type ListDTO struct {
	ID    string    `json:"id" yaml:"id"`
	Title string    `json:"title" yaml:"title"`
	Tasks []TaskDTO `json:"tasks" yaml:"tasks"`
}

// BoardDTO represents the whole board
type BoardDTO struct {
	Lists []ListDTO `json:"lists" yaml:"lists"`
}

// TaskForm is a single create/edit submission. An empty ID means "create".
// ListID is the list selected in the form: the target list for both create and edit.
type TaskForm struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	DueDate     string `json:"due_date" yaml:"due_date"`
	Priority    string `json:"priority" yaml:"priority"`
	ListID      string `json:"list_id" yaml:"list_id"`
}

// TaskToDTO converts a task entity to its DTO
func TaskToDTO(task entity.Task, listID string, now time.Time) TaskDTO {
	return TaskDTO{
		ID:          task.ID(),
		Title:       task.Title(),
		Description: task.Description(),
		DueDate:     task.DueDate().String(),
		Priority:    task.Priority().String(),
		ListID:      listID,
		IsOverdue:   task.IsOverdue(now),
	}
}

// BoardToDTO converts a board snapshot to its DTO
func BoardToDTO(board *entity.Board, now time.Time) BoardDTO {
	out := BoardDTO{Lists: make([]ListDTO, 0, board.ListCount())}
	for _, l := range board.Lists() {
		listDTO := ListDTO{ID: l.ID(), Title: l.Title(), Tasks: make([]TaskDTO, 0, l.TaskCount())}
		for _, task := range l.Tasks() {
			listDTO.Tasks = append(listDTO.Tasks, TaskToDTO(task, l.ID(), now))
		}
		out.Lists = append(out.Lists, listDTO)
	}
	return out
}

// FormFromTask pre-fills an edit form from an existing task
func FormFromTask(task entity.Task, listID string) TaskForm {
	return TaskForm{
		ID:          task.ID(),
		Title:       task.Title(),
		Description: task.Description(),
		DueDate:     task.DueDate().String(),
		Priority:    task.Priority().String(),
		ListID:      listID,
	}
}
