package boardapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// taskRequest fields are pointers so updates only touch what was sent
type taskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	ListID      string  `json:"listId"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Email]; exists {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}
	s.users[req.Email] = req.Password
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	s.mu.Lock()
	password, ok := s.users[req.Email]
	s.mu.Unlock()
	if !ok || password != req.Password {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	token, err := sign(req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	b := board{ID: "board", Lists: s.copyLists()}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	s.mu.Lock()
	l := List{ID: newID(), Title: req.Title, Tasks: []Task{}}
	s.lists = append(s.lists, l)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, l)
}

func (s *Server) handleRenameList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findList(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "List not found")
		return
	}
	s.lists[i].Title = req.Title
	writeJSON(w, http.StatusOK, List{ID: s.lists[i].ID, Title: s.lists[i].Title, Tasks: append([]Task{}, s.lists[i].Tasks...)})
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findList(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "List not found")
		return
	}
	s.lists = append(s.lists[:i], s.lists[i+1:]...)
	writeJSON(w, http.StatusOK, map[string]string{"message": "List deleted"})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == nil || *req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findList(req.ListID)
	if i < 0 {
		writeError(w, http.StatusNotFound, "List not found")
		return
	}
	t := Task{
		ID:          newID(),
		Title:       *req.Title,
		Description: deref(req.Description),
		DueDate:     timestamp(deref(req.DueDate)),
		Priority:    priorityOr(deref(req.Priority)),
		ListID:      req.ListID,
	}
	s.lists[i].Tasks = append(s.lists[i].Tasks, t)
	writeJSON(w, http.StatusCreated, t)
}

// handleUpdateTask serves both full edits and bare {"listId"} moves
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	li, ti := s.findTask(chi.URLParam(r, "id"))
	if li < 0 {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	t := s.lists[li].Tasks[ti]
	move := req.Title == nil
	if !move {
		t.Title = *req.Title
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.DueDate != nil {
			t.DueDate = timestamp(*req.DueDate)
		}
		if req.Priority != nil {
			t.Priority = priorityOr(*req.Priority)
		}
	}

	target := li
	if req.ListID != "" && req.ListID != t.ListID {
		target = s.findList(req.ListID)
		if target < 0 {
			writeError(w, http.StatusNotFound, "List not found")
			return
		}
		t.ListID = req.ListID
	}

	if target == li {
		s.lists[li].Tasks[ti] = t
	} else {
		s.lists[li].Tasks = append(s.lists[li].Tasks[:ti], s.lists[li].Tasks[ti+1:]...)
		s.lists[target].Tasks = append(s.lists[target].Tasks, t)
	}

	if move && s.bareMoves {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	li, ti := s.findTask(chi.URLParam(r, "id"))
	if li < 0 {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	s.lists[li].Tasks = append(s.lists[li].Tasks[:ti], s.lists[li].Tasks[ti+1:]...)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

// timestamp stores dates the way a document store does
func timestamp(date string) string {
	if date == "" {
		return ""
	}
	return date + "T00:00:00.000Z"
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func priorityOr(p string) string {
	if p == "" {
		return "low"
	}
	return p
}
