package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// CreateCommentRequest represents the request to create a new comment
type CreateCommentRequest struct {
	PostID  uuid.UUID `json:"postId" binding:"required"`
	UserID  uuid.UUID `json:"userId" binding:"required"`
	Content string    `json:"content" binding:"required,min=1"`
}

// UpdateCommentRequest represents the request to update a comment.
// UserID identifies the requesting user for the author check.
type UpdateCommentRequest struct {
	UserID  uuid.UUID `json:"userId" binding:"required"`
	Content string    `json:"content" binding:"required,min=1"`
}

// CommentResponse represents the comment response
type CommentResponse struct {
	CommentID uuid.UUID `json:"commentId"`
	PostID    uuid.UUID `json:"postId"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	LikeCount int       `json:"likeCount"`
	HateCount int       `json:"hateCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCommentResponse converts domain.Comment to CommentResponse
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		LikeCount: comment.LikeCount,
		HateCount: comment.HateCount,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// ToCommentResponses converts a slice of comments
func ToCommentResponses(comments []*domain.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = ToCommentResponse(comment)
	}
	return responses
}
