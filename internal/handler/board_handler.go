package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kim0hyeon/CRUDBoard/internal/dto"
	"github.com/kim0hyeon/CRUDBoard/internal/response"
	"github.com/kim0hyeon/CRUDBoard/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  Creates a board with a unique name
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse} "Board created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Board name already exists"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// ListBoards godoc
// @Summary      List boards
// @Description  Returns all boards in creation order
// @Tags         boards
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardResponse} "Boards listed"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	boards, err := h.boardService.ListBoards(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// GetBoard godoc
// @Summary      Get a board
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "Board found"
// @Failure      400 {object} response.ErrorResponse "Invalid board ID"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// RenameBoard godoc
// @Summary      Rename a board
// @Description  Changes a board's name. Renaming to the current name is a no-op.
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.RenameBoardRequest true "Rename request"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "Board renamed"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Failure      409 {object} response.ErrorResponse "Board name already exists"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /boards/{boardId} [put]
func (h *BoardHandler) RenameBoard(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	var req dto.RenameBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.RenameBoard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Description  Deletes a board together with its posts and their comments
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Board deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid board ID"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Board deleted successfully")
}
