//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"rkanban/internal/application/status"
	"rkanban/internal/application/usecase/auth"
	"rkanban/internal/application/usecase/board"
	"rkanban/internal/application/usecase/list"
	"rkanban/internal/application/usecase/task"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
	"rkanban/internal/infrastructure/config"
	"rkanban/internal/infrastructure/credentials"
	"rkanban/internal/infrastructure/persistence/filesystem"
	"rkanban/internal/infrastructure/remote/httpclient"
)

// InitializeContainer sets up all dependencies
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(
		// Infrastructure
		ProvideTokenStore,
		ProvideHTTPClient,
		ProvideBoardCache,
		wire.Bind(new(repository.TokenRepository), new(*credentials.TokenStore)),
		wire.Bind(new(repository.BoardCache), new(*filesystem.BoardCache)),
		wire.Bind(new(repository.BoardRemote), new(*httpclient.Client)),
		wire.Bind(new(repository.AuthRemote), new(*httpclient.Client)),

		// Session and state
		ProvideSession,
		service.NewBoardStore,
		service.NewValidationService,
		status.NewTracker,

		// Use Cases - Board
		board.NewRefreshBoardUseCase,
		board.NewGetBoardUseCase,
		board.NewCachedBoardUseCase,
		ProvideDragController,

		// Use Cases - List
		list.NewCreateListUseCase,
		list.NewRenameListUseCase,
		list.NewDeleteListUseCase,

		// Use Cases - Task
		task.NewSubmitTaskUseCase,
		task.NewDeleteTaskUseCase,
		task.NewFindTaskUseCase,
		task.NewListTasksUseCase,

		// Use Cases - Auth
		auth.NewLoginUseCase,
		auth.NewRegisterUseCase,
		auth.NewLogoutUseCase,

		// Wire the container
		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}
