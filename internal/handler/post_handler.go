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

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "Post creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.PostResponse} "Post created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Board or user not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, post)
}

// ListPosts godoc
// @Summary      List posts
// @Description  Returns one page of posts, newest first
// @Tags         posts
// @Produce      json
// @Param        page query int false "Zero-indexed page" default(0)
// @Param        size query int false "Page size" default(10)
// @Success      200 {object} response.SuccessResponse "Posts listed"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, size := pagination(c)

	posts, err := h.postService.ListPosts(c.Request.Context(), page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// ListPostsByBoard godoc
// @Summary      List a board's posts
// @Tags         posts
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        page query int false "Zero-indexed page" default(0)
// @Param        size query int false "Page size" default(10)
// @Success      200 {object} response.SuccessResponse "Posts listed"
// @Failure      400 {object} response.ErrorResponse "Invalid board ID"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /posts/board/{boardId} [get]
func (h *PostHandler) ListPostsByBoard(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}
	page, size := pagination(c)

	posts, err := h.postService.ListPostsByBoard(c.Request.Context(), boardID, page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// SearchPosts godoc
// @Summary      Search posts
// @Description  Searches posts by title, title and content, or author username
// @Tags         posts
// @Produce      json
// @Param        type query string true "Search type" Enums(title, title_content, author)
// @Param        keyword query string true "Search keyword"
// @Param        page query int false "Zero-indexed page" default(0)
// @Param        size query int false "Page size" default(10)
// @Success      200 {object} response.SuccessResponse "Posts found"
// @Failure      400 {object} response.ErrorResponse "Unknown search type"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /posts/search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	searchType := c.Query("type")
	keyword := c.Query("keyword")
	page, size := pagination(c)

	posts, err := h.postService.SearchPosts(c.Request.Context(), searchType, keyword, page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get a post
// @Description  Returns a post and counts the read as a view
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "Post found"
// @Failure      400 {object} response.ErrorResponse "Invalid post ID"
// @Failure      404 {object} response.ErrorResponse "Post not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /posts/{postId} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Edits title, content and image. Omitting imageUrl keeps the current image, an empty string clears it.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Param        request body dto.UpdatePostRequest true "Post update request"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "Post updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Post not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /posts/{postId} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), postID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes a post together with its comments and stored image
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Post deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid post ID"
// @Failure      404 {object} response.ErrorResponse "Post not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /posts/{postId} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), postID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Post deleted successfully")
}

// AddLike godoc
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "Like added"
// @Failure      400 {object} response.ErrorResponse "Invalid post ID"
// @Failure      404 {object} response.ErrorResponse "Post not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /posts/{postId}/like [post]
func (h *PostHandler) AddLike(c *gin.Context) {
	h.mutateCounter(c, h.postService.AddLike)
}

// RemoveLike godoc
// @Summary      Remove a like from a post
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "Like removed"
// @Failure      400 {object} response.ErrorResponse "Invalid post ID"
// @Failure      404 {object} response.ErrorResponse "Post not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /posts/{postId}/like [delete]
func (h *PostHandler) RemoveLike(c *gin.Context) {
	h.mutateCounter(c, h.postService.RemoveLike)
}

// AddHate godoc
// @Summary      Hate a post
// @Description  Increments the hate counter. Reaching the threshold flags the post.
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "Hate added"
// @Failure      400 {object} response.ErrorResponse "Invalid post ID"
// @Failure      404 {object} response.ErrorResponse "Post not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /posts/{postId}/hate [post]
func (h *PostHandler) AddHate(c *gin.Context) {
	h.mutateCounter(c, h.postService.AddHate)
}

// RemoveHate godoc
// @Summary      Remove a hate from a post
// @Description  Decrements the hate counter. Dropping below the threshold unflags the post.
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "Hate removed"
// @Failure      400 {object} response.ErrorResponse "Invalid post ID"
// @Failure      404 {object} response.ErrorResponse "Post not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /posts/{postId}/hate [delete]
func (h *PostHandler) RemoveHate(c *gin.Context) {
	h.mutateCounter(c, h.postService.RemoveHate)
}

// GeneratePresignedUploadURL godoc
// @Summary      Request an image upload URL
// @Description  Returns a short-lived URL to upload a post image directly to storage
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body dto.PresignedUploadRequest true "Upload request"
// @Success      200 {object} response.SuccessResponse{data=dto.PresignedUploadResponse} "URL generated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /posts/images/presigned-url [post]
func (h *PostHandler) GeneratePresignedUploadURL(c *gin.Context) {
	var req dto.PresignedUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.postService.GeneratePresignedUploadURL(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// mutateCounter shares the parse-call-respond shape of the four
// like/hate endpoints.
func (h *PostHandler) mutateCounter(c *gin.Context, op func(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error)) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	post, err := op(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}
