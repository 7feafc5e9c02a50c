package serialization

import (
	"bufio"
	"strings"

	"rkanban/internal/application/dto"
	"rkanban/internal/domain/valueobject"
)

// taskMeta is the frontmatter of a task document
type taskMeta struct {
	ID       string              `yaml:"id,omitempty"`
	List     string              `yaml:"list,omitempty"`
	Priority string              `yaml:"priority,omitempty"`
	Due      valueobject.DueDate `yaml:"due,omitempty"`
}

// ParseTaskDocument reads a task written in an editor:
//
//	---
//	list: <list id>
//	priority: high
//	due: 2025-01-31
//	---
//	# Title
//
//	Description...
//
// The first "# " heading is the title and everything after it the
// description. Without a heading the first non-empty line is the title.
func ParseTaskDocument(data []byte) (dto.TaskForm, error) {
	var meta taskMeta
	body, err := decodeFrontmatter(data, &meta)
	if err != nil {
		return dto.TaskForm{}, err
	}
	title, description := splitTitle(body)
	return dto.TaskForm{
		ID:          meta.ID,
		Title:       title,
		Description: description,
		DueDate:     meta.Due.String(),
		Priority:    meta.Priority,
		ListID:      meta.List,
	}, nil
}

// RenderTaskDocument writes form in the format ParseTaskDocument reads
func RenderTaskDocument(form dto.TaskForm) ([]byte, error) {
	due, err := valueobject.ParseDueDate(form.DueDate)
	if err != nil {
		return nil, err
	}
	meta := taskMeta{ID: form.ID, List: form.ListID, Priority: form.Priority, Due: due}

	body := "# " + form.Title
	if form.Description != "" {
		body += "\n\n" + form.Description
	}
	return encodeFrontmatter(meta, body)
}

func splitTitle(body string) (string, string) {
	var title string
	var rest []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		if title == "" {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			continue
		}
		rest = append(rest, line)
	}
	return title, strings.TrimSpace(strings.Join(rest, "\n"))
}
