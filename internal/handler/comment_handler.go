package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kim0hyeon/CRUDBoard/internal/dto"
	"github.com/kim0hyeon/CRUDBoard/internal/response"
	"github.com/kim0hyeon/CRUDBoard/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment godoc
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "Comment creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "Comment created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Post or user not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// ListCommentsByPost godoc
// @Summary      List a post's comments
// @Description  Returns one page of comments in creation order
// @Tags         comments
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Param        page query int false "Zero-indexed page" default(0)
// @Param        size query int false "Page size" default(10)
// @Success      200 {object} response.SuccessResponse "Comments listed"
// @Failure      400 {object} response.ErrorResponse "Invalid post ID"
// @Failure      404 {object} response.ErrorResponse "Post not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /comments/post/{postId} [get]
func (h *CommentHandler) ListCommentsByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}
	page, size := pagination(c)

	comments, err := h.commentService.ListCommentsByPost(c.Request.Context(), postID, page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// GetComment godoc
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Comment found"
// @Failure      400 {object} response.ErrorResponse "Invalid comment ID"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /comments/{commentId} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), commentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary      Update a comment
// @Description  Edits a comment's content. Only the author may edit.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "Comment update request"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Comment updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      403 {object} response.ErrorResponse "Requester is not the author"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Deletes a comment. Only the author may delete.
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Param        userId query string true "Requesting user ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Comment deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid comment or user ID"
// @Failure      403 {object} response.ErrorResponse "Requester is not the author"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Comment deleted successfully")
}

// AddLike godoc
// @Summary      Like a comment
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Like added"
// @Failure      400 {object} response.ErrorResponse "Invalid comment ID"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /comments/{commentId}/like [post]
func (h *CommentHandler) AddLike(c *gin.Context) {
	h.mutateCounter(c, h.commentService.AddLike)
}

// RemoveLike godoc
// @Summary      Remove a like from a comment
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Like removed"
// @Failure      400 {object} response.ErrorResponse "Invalid comment ID"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /comments/{commentId}/like [delete]
func (h *CommentHandler) RemoveLike(c *gin.Context) {
	h.mutateCounter(c, h.commentService.RemoveLike)
}

// AddHate godoc
// @Summary      Hate a comment
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Hate added"
// @Failure      400 {object} response.ErrorResponse "Invalid comment ID"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /comments/{commentId}/hate [post]
func (h *CommentHandler) AddHate(c *gin.Context) {
	h.mutateCounter(c, h.commentService.AddHate)
}

// RemoveHate godoc
// @Summary      Remove a hate from a comment
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Hate removed"
// @Failure      400 {object} response.ErrorResponse "Invalid comment ID"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /comments/{commentId}/hate [delete]
func (h *CommentHandler) RemoveHate(c *gin.Context) {
	h.mutateCounter(c, h.commentService.RemoveHate)
}

func (h *CommentHandler) mutateCounter(c *gin.Context, op func(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	comment, err := op(c.Request.Context(), commentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}
