package auth

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/session"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// LogoutUseCase forgets the stored token and the board fetched with it
type LogoutUseCase struct {
	session *session.Session
	store   *service.BoardStore
	cache   repository.BoardCache
}

// NewLogoutUseCase creates a new LogoutUseCase
func NewLogoutUseCase(sess *session.Session, store *service.BoardStore, cache repository.BoardCache) *LogoutUseCase {
	return &LogoutUseCase{session: sess, store: store, cache: cache}
}

// Execute clears the session
func (uc *LogoutUseCase) Execute() error {
	if err := uc.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	uc.store.ReplaceBoard(nil)
	if err := uc.cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear board cache: %w", err)
	}
	log.Info("logged out")
	return nil
}
