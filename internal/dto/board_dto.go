package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// CreateBoardRequest represents the request to create a new board
type CreateBoardRequest struct {
	Name string `json:"name" binding:"required,min=1,max=30"`
}

// RenameBoardRequest represents the request to rename a board
type RenameBoardRequest struct {
	Name string `json:"name" binding:"required,min=1,max=30"`
}

// BoardResponse represents the board response
type BoardResponse struct {
	BoardID   uuid.UUID `json:"boardId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToBoardResponse converts domain.Board to BoardResponse
func ToBoardResponse(board *domain.Board) BoardResponse {
	return BoardResponse{
		BoardID:   board.ID,
		Name:      board.Name,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
}
