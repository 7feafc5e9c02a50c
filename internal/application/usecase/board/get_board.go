package board

import (
	"time"

	"rkanban/internal/application/dto"
	"rkanban/internal/domain/service"
)

// GetBoardUseCase returns the current local snapshot as a DTO
type GetBoardUseCase struct {
	store *service.BoardStore
	now   func() time.Time
}

// NewGetBoardUseCase creates a new GetBoardUseCase
func NewGetBoardUseCase(store *service.BoardStore) *GetBoardUseCase {
	return &GetBoardUseCase{store: store, now: time.Now}
}

// Execute returns the board DTO
func (uc *GetBoardUseCase) Execute() dto.BoardDTO {
	return dto.BoardToDTO(uc.store.Snapshot(), uc.now())
}
