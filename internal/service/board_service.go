package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
	"github.com/kim0hyeon/CRUDBoard/internal/dto"
	"github.com/kim0hyeon/CRUDBoard/internal/metrics"
	"github.com/kim0hyeon/CRUDBoard/internal/repository"
	"github.com/kim0hyeon/CRUDBoard/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	ListBoards(ctx context.Context) ([]dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error)
	RenameBoard(ctx context.Context, boardID uuid.UUID, req *dto.RenameBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		metrics:   m,
		logger:    logger,
	}
}

// CreateBoard creates a new board with a unique name
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	existing, err := s.boardRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check board name", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeDuplicateName, "A board with this name already exists", "")
	}

	board := &domain.Board{Name: req.Name}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		// The unique index catches a concurrent create with the same name
		if isUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeDuplicateName, "A board with this name already exists", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	s.metrics.IncrementBoardCreated()
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("name", board.Name),
	)

	resp := dto.ToBoardResponse(board)
	return &resp, nil
}

// ListBoards returns all boards in creation order
func (s *boardServiceImpl) ListBoards(ctx context.Context) ([]dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}

	responses := make([]dto.BoardResponse, len(boards))
	for i, board := range boards {
		responses[i] = dto.ToBoardResponse(board)
	}
	return responses, nil
}

// GetBoard retrieves a board by ID
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	resp := dto.ToBoardResponse(board)
	return &resp, nil
}

// RenameBoard changes a board's name. Renaming a board to its current name
// is allowed; only a name held by another board is a conflict.
func (s *boardServiceImpl) RenameBoard(ctx context.Context, boardID uuid.UUID, req *dto.RenameBoardRequest) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	existing, err := s.boardRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check board name", err.Error())
	}
	if existing != nil && existing.ID != board.ID {
		return nil, response.NewAppError(response.ErrCodeDuplicateName, "A board with this name already exists", "")
	}

	board.Name = req.Name
	if err := s.boardRepo.Update(ctx, board); err != nil {
		if isUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeDuplicateName, "A board with this name already exists", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to rename board", err.Error())
	}

	s.logger.Info("Board renamed",
		zap.String("board_id", board.ID.String()),
		zap.String("name", board.Name),
	)

	resp := dto.ToBoardResponse(board)
	return &resp, nil
}

// DeleteBoard removes a board together with its posts and their comments
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	if _, err := s.boardRepo.FindByID(ctx, boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.logger.Info("Board deleted", zap.String("board_id", boardID.String()))
	return nil
}
