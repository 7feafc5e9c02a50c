package di

import (
	"time"

	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/application/usecase/auth"
	"rkanban/internal/application/usecase/board"
	"rkanban/internal/application/usecase/drag"
	"rkanban/internal/application/usecase/list"
	"rkanban/internal/application/usecase/task"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
	"rkanban/internal/infrastructure/config"
	"rkanban/internal/infrastructure/credentials"
	"rkanban/internal/infrastructure/persistence/filesystem"
	"rkanban/internal/infrastructure/remote/httpclient"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	Tokens *credentials.TokenStore
	Client *httpclient.Client
	Cache  *filesystem.BoardCache

	// Session and state
	Session    *session.Session
	Store      *service.BoardStore
	Tracker    *status.Tracker
	Validation *service.ValidationService

	// Use Cases - Board
	RefreshBoardUseCase *board.RefreshBoardUseCase
	GetBoardUseCase     *board.GetBoardUseCase
	CachedBoardUseCase  *board.CachedBoardUseCase
	DragController      *drag.Controller

	// Use Cases - List
	CreateListUseCase *list.CreateListUseCase
	RenameListUseCase *list.RenameListUseCase
	DeleteListUseCase *list.DeleteListUseCase

	// Use Cases - Task
	SubmitTaskUseCase *task.SubmitTaskUseCase
	DeleteTaskUseCase *task.DeleteTaskUseCase
	FindTaskUseCase   *task.FindTaskUseCase
	ListTasksUseCase  *task.ListTasksUseCase

	// Use Cases - Auth
	LoginUseCase    *auth.LoginUseCase
	RegisterUseCase *auth.RegisterUseCase
	LogoutUseCase   *auth.LogoutUseCase
}

// Provider functions

func ProvideTokenStore(cfg *config.Config) *credentials.TokenStore {
	return credentials.NewTokenStore(cfg.Storage.DataPath, cfg.API.BaseURL)
}

func ProvideBoardCache(cfg *config.Config) *filesystem.BoardCache {
	return filesystem.NewBoardCache(cfg.Storage.DataPath, cfg.API.BaseURL)
}

func ProvideHTTPClient(cfg *config.Config) *httpclient.Client {
	return httpclient.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
}

// ProvideSession prefers a token from the environment over the stored login
func ProvideSession(cfg *config.Config, tokens repository.TokenRepository) (*session.Session, error) {
	if cfg.API.Token != "" {
		return session.NewStaticSession(cfg.API.Token), nil
	}
	return session.NewSession(tokens)
}

func ProvideDragController(
	cfg *config.Config,
	store *service.BoardStore,
	remote repository.BoardRemote,
	refresh *board.RefreshBoardUseCase,
	sess *session.Session,
	tracker *status.Tracker,
) *drag.Controller {
	timeout := cfg.Sync.CommitTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return drag.NewController(store, remote, refresh, sess, tracker, timeout)
}
