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

// Search types accepted by SearchPosts
const (
	SearchTypeTitle        = "title"
	SearchTypeTitleContent = "title_content"
	SearchTypeAuthor       = "author"
)

// ImageClient handles post image storage
type ImageClient interface {
	GeneratePresignedURL(ctx context.Context, fileName, contentType string) (uploadURL, fileURL string, err error)
	DeleteFile(ctx context.Context, fileURL string) error
}

// PostService defines the interface for post business logic
type PostService interface {
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, page, size int) (*dto.Page[dto.PostResponse], error)
	ListPostsByBoard(ctx context.Context, boardID uuid.UUID, page, size int) (*dto.Page[dto.PostResponse], error)
	GetPost(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
	SearchPosts(ctx context.Context, searchType, keyword string, page, size int) (*dto.Page[dto.PostResponse], error)
	AddLike(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error)
	RemoveLike(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error)
	AddHate(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error)
	RemoveHate(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error)
	GeneratePresignedUploadURL(ctx context.Context, req *dto.PresignedUploadRequest) (*dto.PresignedUploadResponse, error)
}

// postServiceImpl is the implementation of PostService
type postServiceImpl struct {
	postRepo    repository.PostRepository
	boardRepo   repository.BoardRepository
	userRepo    repository.UserRepository
	imageClient ImageClient
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(
	postRepo repository.PostRepository,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	imageClient ImageClient,
	m *metrics.Metrics,
	logger *zap.Logger,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		imageClient: imageClient,
		metrics:     m,
		logger:      logger,
	}
}

// CreatePost creates a new post on an existing board
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if _, err := s.boardRepo.FindByID(ctx, req.BoardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify board", err.Error())
	}
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}

	post := &domain.Post{
		BoardID: req.BoardID,
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	}
	if req.ImageURL != "" {
		imageURL := req.ImageURL
		post.ImageURL = &imageURL
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}

	s.metrics.IncrementPostCreated()
	s.logger.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("board_id", post.BoardID.String()),
		zap.String("user_id", post.UserID.String()),
	)

	resp := dto.ToPostResponse(post)
	return &resp, nil
}

// ListPosts returns one page of all posts, newest first
func (s *postServiceImpl) ListPosts(ctx context.Context, page, size int) (*dto.Page[dto.PostResponse], error) {
	posts, total, err := s.postRepo.FindAll(ctx, page, size)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}
	return dto.NewPage(dto.ToPostResponses(posts), total, page, size), nil
}

// ListPostsByBoard returns one page of a board's posts
func (s *postServiceImpl) ListPostsByBoard(ctx context.Context, boardID uuid.UUID, page, size int) (*dto.Page[dto.PostResponse], error) {
	if _, err := s.boardRepo.FindByID(ctx, boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify board", err.Error())
	}

	posts, total, err := s.postRepo.FindByBoardID(ctx, boardID, page, size)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}
	return dto.NewPage(dto.ToPostResponses(posts), total, page, size), nil
}

// GetPost retrieves a post by ID. Every successful read counts as a view, so
// the view counter is bumped before the row is fetched.
func (s *postServiceImpl) GetPost(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error) {
	if err := s.postRepo.IncrementViewCount(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count view", err.Error())
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	resp := dto.ToPostResponse(post)
	return &resp, nil
}

// UpdatePost edits a post's title, content and image. A nil ImageURL keeps
// the current image, an empty string clears it, any other value replaces it.
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	post.Title = req.Title
	post.Content = req.Content

	// The replaced image is removed only after the update commits, so a
	// failed update never leaves the post pointing at a deleted object.
	var replacedImage *string
	if req.ImageURL != nil {
		old := post.ImageURL
		if *req.ImageURL == "" {
			post.ImageURL = nil
		} else {
			imageURL := *req.ImageURL
			post.ImageURL = &imageURL
		}
		if old != nil && (post.ImageURL == nil || *old != *post.ImageURL) {
			replacedImage = old
		}
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update post", err.Error())
	}

	if replacedImage != nil {
		s.deleteImage(ctx, *replacedImage)
	}

	resp := dto.ToPostResponse(post)
	return &resp, nil
}

// DeletePost removes a post, its comments and its stored image
func (s *postServiceImpl) DeletePost(ctx context.Context, postID uuid.UUID) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete post", err.Error())
	}

	if post.ImageURL != nil {
		s.deleteImage(ctx, *post.ImageURL)
	}

	s.logger.Info("Post deleted", zap.String("post_id", postID.String()))
	return nil
}

// SearchPosts dispatches on searchType. Unknown types are rejected rather
// than silently falling back to a title search.
func (s *postServiceImpl) SearchPosts(ctx context.Context, searchType, keyword string, page, size int) (*dto.Page[dto.PostResponse], error) {
	var (
		posts []*domain.Post
		total int64
		err   error
	)

	switch searchType {
	case SearchTypeTitle:
		posts, total, err = s.postRepo.SearchByTitle(ctx, keyword, page, size)
	case SearchTypeTitleContent:
		posts, total, err = s.postRepo.SearchByTitleOrContent(ctx, keyword, page, size)
	case SearchTypeAuthor:
		posts, total, err = s.postRepo.SearchByAuthor(ctx, keyword, page, size)
	default:
		return nil, response.NewAppError(response.ErrCodeInvalidSearchType, "Unknown search type: "+searchType, "")
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to search posts", err.Error())
	}

	return dto.NewPage(dto.ToPostResponses(posts), total, page, size), nil
}

// AddLike increments the like counter and returns the updated post
func (s *postServiceImpl) AddLike(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error) {
	return s.mutateCounter(ctx, postID, s.postRepo.AddLike)
}

// RemoveLike decrements the like counter and returns the updated post
func (s *postServiceImpl) RemoveLike(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error) {
	return s.mutateCounter(ctx, postID, s.postRepo.RemoveLike)
}

// AddHate increments the hate counter. The post becomes flagged once the
// counter reaches the threshold.
func (s *postServiceImpl) AddHate(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error) {
	resp, err := s.mutateCounter(ctx, postID, s.postRepo.AddHate)
	if err != nil {
		return nil, err
	}
	if resp.Flagged && resp.HateCount == domain.HateThreshold {
		s.metrics.IncrementPostFlagged()
		s.logger.Warn("Post flagged", zap.String("post_id", postID.String()))
	}
	return resp, nil
}

// RemoveHate decrements the hate counter. Dropping below the threshold
// unflags the post.
func (s *postServiceImpl) RemoveHate(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error) {
	return s.mutateCounter(ctx, postID, s.postRepo.RemoveHate)
}

func (s *postServiceImpl) mutateCounter(ctx context.Context, postID uuid.UUID, op func(context.Context, uuid.UUID) error) (*dto.PostResponse, error) {
	if err := op(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update counter", err.Error())
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	resp := dto.ToPostResponse(post)
	return &resp, nil
}

// GeneratePresignedUploadURL hands out a short-lived upload URL for a post image
func (s *postServiceImpl) GeneratePresignedUploadURL(ctx context.Context, req *dto.PresignedUploadRequest) (*dto.PresignedUploadResponse, error) {
	if s.imageClient == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Image storage is not configured", "")
	}

	uploadURL, fileURL, err := s.imageClient.GeneratePresignedURL(ctx, req.FileName, req.ContentType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate upload URL", err.Error())
	}

	return &dto.PresignedUploadResponse{
		UploadURL: uploadURL,
		ImageURL:  fileURL,
	}, nil
}

// deleteImage removes a stored image, logging instead of failing the request
func (s *postServiceImpl) deleteImage(ctx context.Context, imageURL string) {
	if s.imageClient == nil {
		return
	}
	if err := s.imageClient.DeleteFile(ctx, imageURL); err != nil {
		s.logger.Warn("Failed to delete post image",
			zap.String("image_url", imageURL),
			zap.Error(err),
		)
	}
}
