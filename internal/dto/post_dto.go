package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// CreatePostRequest represents the request to create a new post
type CreatePostRequest struct {
	BoardID  uuid.UUID `json:"boardId" binding:"required"`
	UserID   uuid.UUID `json:"userId" binding:"required"`
	Title    string    `json:"title" binding:"required,min=1,max=60"`
	Content  string    `json:"content" binding:"required,min=1"`
	ImageURL string    `json:"imageUrl,omitempty"`
}

// UpdatePostRequest represents the request to update a post.
// ImageURL pointer semantics: nil keeps the current image, an empty string
// clears it, any other value replaces it.
type UpdatePostRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=60"`
	Content  string  `json:"content" binding:"required,min=1"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// PresignedUploadRequest represents the request for a post image upload URL
type PresignedUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// PresignedUploadResponse carries the upload URL and the key the client
// should send back as imageUrl once the upload completes
type PresignedUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ImageURL  string `json:"imageUrl"`
}

// PostResponse represents the post response
type PostResponse struct {
	PostID    uuid.UUID `json:"postId"`
	BoardID   uuid.UUID `json:"boardId"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	LikeCount int       `json:"likeCount"`
	HateCount int       `json:"hateCount"`
	ViewCount int       `json:"viewCount"`
	Flagged   bool      `json:"flagged"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToPostResponse converts domain.Post to PostResponse
func ToPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		PostID:    post.ID,
		BoardID:   post.BoardID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		LikeCount: post.LikeCount,
		HateCount: post.HateCount,
		ViewCount: post.ViewCount,
		Flagged:   post.Flagged,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// ToPostResponses converts a slice of posts
func ToPostResponses(posts []*domain.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToPostResponse(post)
	}
	return responses
}
