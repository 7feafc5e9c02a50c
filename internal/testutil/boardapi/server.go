// Package boardapi is an in-memory board API for tests. It speaks the same
// JSON as the real server: Mongo-style "_id" fields, bearer JWTs and
// {"message": ...} error bodies.
package boardapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const signingKey = "boardapi-test-key"

// Task is a stored task
type Task struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate,omitempty"`
	Priority    string `json:"priority"`
	ListID      string `json:"listId"`
}

// List is a stored list
type List struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

type board struct {
	ID    string `json:"_id"`
	Lists []List `json:"lists"`
}

type failure struct {
	method  string
	prefix  string
	status  int
	message string
}

// Server is a fake board API backed by httptest
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	users      map[string]string
	lists      []List
	failures   []failure
	calls      map[string]int
	requestIDs []string
	bareMoves  bool
	delay      time.Duration
}

// NewServer starts a fake API that is closed when the test ends
func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		users: make(map[string]string),
		calls: make(map[string]int),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Post("/api/auth/register", s.handleRegister)
	r.Post("/api/auth/login", s.handleLogin)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/api/board", s.handleGetBoard)
		r.Post("/api/board/list", s.handleCreateList)
		r.Put("/api/board/list/{id}", s.handleRenameList)
		r.Delete("/api/board/list/{id}", s.handleDeleteList)
		r.Post("/api/board/task", s.handleCreateTask)
		r.Put("/api/board/task/{id}", s.handleUpdateTask)
		r.Delete("/api/board/task/{id}", s.handleDeleteTask)
	})
	return r
}

// Token issues a valid bearer token for email
func (s *Server) Token(email string) string {
	token, err := sign(email)
	if err != nil {
		panic(err)
	}
	return token
}

// AddUser registers a user directly
func (s *Server) AddUser(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = password
}

// Seed replaces the stored board
func (s *Server) Seed(lists ...List) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = nil
	for _, l := range lists {
		cp := List{ID: l.ID, Title: l.Title, Tasks: make([]Task, 0, len(l.Tasks))}
		for _, t := range l.Tasks {
			t.ListID = l.ID
			if t.Priority == "" {
				t.Priority = "low"
			}
			cp.Tasks = append(cp.Tasks, t)
		}
		s.lists = append(s.lists, cp)
	}
}

// Lists returns a copy of the stored board
func (s *Server) Lists() []List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLists()
}

// FailNext makes the next request matching method and path prefix fail
func (s *Server) FailNext(method, pathPrefix string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, prefix: pathPrefix, status: status, message: message})
}

// BareMoves makes move requests answer 200 without a body
func (s *Server) BareMoves(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bareMoves = on
}

// Delay slows every request down
func (s *Server) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Calls counts requests for "METHOD /path"
func (s *Server) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+path]
}

// RequestIDs returns the X-Request-ID headers seen, in order
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[r.Method+" "+r.URL.Path]++
		s.requestIDs = append(s.requestIDs, r.Header.Get("X-Request-ID"))
		delay := s.delay
		var injected *failure
		for i, f := range s.failures {
			if f.method == r.Method && strings.HasPrefix(r.URL.Path, f.prefix) {
				injected = &f
				s.failures = append(s.failures[:i], s.failures[i+1:]...)
				break
			}
		}
		s.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if injected != nil {
			writeError(w, injected.status, injected.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		if _, err := verify(raw); err != nil {
			writeError(w, http.StatusUnauthorized, "Token is not valid")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sign(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		ID:        uuid.NewString(),
	})
	return token.SignedString([]byte(signingKey))
}

func verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func (s *Server) copyLists() []List {
	out := make([]List, 0, len(s.lists))
	for _, l := range s.lists {
		out = append(out, List{ID: l.ID, Title: l.Title, Tasks: append([]Task{}, l.Tasks...)})
	}
	return out
}

// findTask returns list and task positions, or -1s
func (s *Server) findTask(id string) (int, int) {
	for i, l := range s.lists {
		for j, t := range l.Tasks {
			if t.ID == id {
				return i, j
			}
		}
	}
	return -1, -1
}

func (s *Server) findList(id string) int {
	for i, l := range s.lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}
