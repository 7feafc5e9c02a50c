package mapper

import (
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/valueobject"
)

// TaskStorage represents task storage format
type TaskStorage struct {
	ID          string              `yaml:"id"`
	Title       string              `yaml:"title"`
	Description string              `yaml:"description,omitempty"`
	DueDate     valueobject.DueDate `yaml:"due_date,omitempty"`
	Priority    string              `yaml:"priority"`
}

// TaskToStorage converts a Task entity to storage format
func TaskToStorage(task entity.Task) TaskStorage {
	return TaskStorage{
		ID:          task.ID(),
		Title:       task.Title(),
		Description: task.Description(),
		DueDate:     task.DueDate(),
		Priority:    task.Priority().String(),
	}
}

// TaskFromStorage rebuilds a task held by listID
func TaskFromStorage(s TaskStorage, listID string) (entity.Task, error) {
	priority, err := valueobject.ParsePriority(s.Priority)
	if err != nil {
		return entity.Task{}, err
	}
	return entity.NewTask(s.ID, s.Title, s.Description, s.DueDate, priority, listID)
}
