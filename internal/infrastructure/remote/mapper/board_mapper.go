package mapper

import (
	log "github.com/sirupsen/logrus"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/valueobject"
)

// TaskWire is a task as the board API sends it
type TaskWire struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate,omitempty"`
	Priority    string `json:"priority,omitempty"`
	ListID      string `json:"listId,omitempty"`
}

// TaskPayloadWire is the body of a task create or update. Updates are
// partial on the server, so every editable field is always sent.
type TaskPayloadWire struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	ListID      string `json:"listId,omitempty"`
}

// ListWire is a list with its nested tasks
type ListWire struct {
	ID    string     `json:"_id,omitempty"`
	Title string     `json:"title"`
	Tasks []TaskWire `json:"tasks"`
}

// BoardWire is the full board document
type BoardWire struct {
	ID    string     `json:"_id,omitempty"`
	Lists []ListWire `json:"lists"`
}

// TaskFromWire converts a wire task. Unknown priorities fall back to low and
// unparseable dates are dropped.
func TaskFromWire(w TaskWire) (entity.Task, error) {
	priority, err := valueobject.ParsePriority(w.Priority)
	if err != nil {
		log.WithFields(log.Fields{"task_id": w.ID, "priority": w.Priority}).Warn("unknown priority from server, using low")
		priority = valueobject.DefaultPriority
	}
	dueDate, err := valueobject.ParseDueDate(w.DueDate)
	if err != nil {
		log.WithFields(log.Fields{"task_id": w.ID, "due_date": w.DueDate}).Warn("unparseable due date from server, ignoring")
		dueDate = valueobject.DueDate{}
	}
	return entity.NewTask(w.ID, w.Title, w.Description, dueDate, priority, w.ListID)
}

// TaskToWire converts a task entity
func TaskToWire(task entity.Task) TaskWire {
	return TaskWire{
		ID:          task.ID(),
		Title:       task.Title(),
		Description: task.Description(),
		DueDate:     task.DueDate().String(),
		Priority:    task.Priority().String(),
		ListID:      task.ListID(),
	}
}

// PayloadToWire converts a create/update payload
func PayloadToWire(p repository.TaskPayload) TaskPayloadWire {
	priority := p.Priority
	if priority == "" {
		priority = valueobject.DefaultPriority
	}
	return TaskPayloadWire{
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate.String(),
		Priority:    priority.String(),
		ListID:      p.ListID,
	}
}

// ListFromWire converts a wire list and its tasks
func ListFromWire(w ListWire) (entity.List, error) {
	tasks := make([]entity.Task, 0, len(w.Tasks))
	for _, tw := range w.Tasks {
		task, err := TaskFromWire(tw)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{"task_id": tw.ID, "list_id": w.ID}).Warn("skipping invalid task from server")
			continue
		}
		tasks = append(tasks, task)
	}
	return entity.NewList(w.ID, w.Title, tasks)
}

// ListToWire converts a list entity
func ListToWire(l entity.List) ListWire {
	out := ListWire{ID: l.ID(), Title: l.Title(), Tasks: make([]TaskWire, 0, l.TaskCount())}
	for _, task := range l.Tasks() {
		tw := TaskToWire(task)
		tw.ListID = l.ID()
		out.Tasks = append(out.Tasks, tw)
	}
	return out
}

// BoardFromWire converts the board document. A task listed under more than
// one list is kept in the first list only, so the result always satisfies
// the one-list-per-task invariant.
func BoardFromWire(w BoardWire) (*entity.Board, error) {
	seen := make(map[string]string)
	lists := make([]entity.List, 0, len(w.Lists))
	for _, lw := range w.Lists {
		filtered := lw
		filtered.Tasks = make([]TaskWire, 0, len(lw.Tasks))
		for _, tw := range lw.Tasks {
			if owner, dup := seen[tw.ID]; dup {
				log.WithFields(log.Fields{"task_id": tw.ID, "list_id": lw.ID, "kept_in": owner}).Warn("task listed twice by server, keeping first")
				continue
			}
			seen[tw.ID] = lw.ID
			filtered.Tasks = append(filtered.Tasks, tw)
		}

		l, err := ListFromWire(filtered)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return entity.NewBoard(lists)
}

// BoardToWire converts a board snapshot
func BoardToWire(b *entity.Board) BoardWire {
	out := BoardWire{Lists: make([]ListWire, 0, b.ListCount())}
	for _, l := range b.Lists() {
		out.Lists = append(out.Lists, ListToWire(l))
	}
	return out
}
