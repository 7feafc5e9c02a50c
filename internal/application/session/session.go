package session

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/domain/repository"
)

// Session holds the bearer token used for every board API call
type Session struct {
	mu     sync.RWMutex
	token  string
	tokens repository.TokenRepository
}

// NewSession creates a session seeded from the token repository
func NewSession(tokens repository.TokenRepository) (*Session, error) {
	token, err := tokens.Load()
	if err != nil {
		return nil, err
	}
	return &Session{token: token, tokens: tokens}, nil
}

// NewStaticSession creates a session with a fixed token and no persistence
func NewStaticSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the current bearer token
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores a new token, persisting it when a repository is attached
func (s *Session) SetToken(token string) error {
	if s.tokens != nil {
		if err := s.tokens.Save(token); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear forgets the token
func (s *Session) Clear() error {
	if s.tokens != nil {
		if err := s.tokens.Clear(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// Follow keeps the in-memory token in step with the repository until ctx ends.
// changed is called after every token change picked up from storage.
func (s *Session) Follow(ctx context.Context, changed func(token string)) error {
	if s.tokens == nil {
		return nil
	}
	updates, err := s.tokens.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for token := range updates {
			s.mu.Lock()
			same := s.token == token
			s.token = token
			s.mu.Unlock()
			if same {
				continue
			}
			log.WithField("authenticated", token != "").Info("token changed on disk")
			if changed != nil {
				changed(token)
			}
		}
	}()
	return nil
}
