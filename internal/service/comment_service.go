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

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListCommentsByPost(ctx context.Context, postID uuid.UUID, page, size int) (*dto.Page[dto.CommentResponse], error)
	GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error
	AddLike(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	RemoveLike(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	AddHate(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	RemoveHate(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateComment adds a comment to an existing post
func (s *commentServiceImpl) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(ctx, req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify post", err.Error())
	}
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}

	comment := &domain.Comment{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()
	s.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("post_id", comment.PostID.String()),
	)

	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

// ListCommentsByPost returns one page of a post's comments, newest first
func (s *commentServiceImpl) ListCommentsByPost(ctx context.Context, postID uuid.UUID, page, size int) (*dto.Page[dto.CommentResponse], error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify post", err.Error())
	}

	comments, total, err := s.commentRepo.FindByPostID(ctx, postID, page, size)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}
	return dto.NewPage(dto.ToCommentResponses(comments), total, page, size), nil
}

// GetComment retrieves a comment by ID
func (s *commentServiceImpl) GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

// UpdateComment edits a comment's content. Only the author may edit.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}

	if comment.UserID != req.UserID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the author can edit this comment", "")
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

// DeleteComment removes a comment. Only the author may delete.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}

	if comment.UserID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the author can delete this comment", "")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.logger.Info("Comment deleted", zap.String("comment_id", commentID.String()))
	return nil
}

// AddLike increments the like counter and returns the updated comment
func (s *commentServiceImpl) AddLike(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	return s.mutateCounter(ctx, commentID, s.commentRepo.AddLike)
}

// RemoveLike decrements the like counter and returns the updated comment
func (s *commentServiceImpl) RemoveLike(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	return s.mutateCounter(ctx, commentID, s.commentRepo.RemoveLike)
}

// AddHate increments the hate counter and returns the updated comment
func (s *commentServiceImpl) AddHate(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	return s.mutateCounter(ctx, commentID, s.commentRepo.AddHate)
}

// RemoveHate decrements the hate counter and returns the updated comment
func (s *commentServiceImpl) RemoveHate(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	return s.mutateCounter(ctx, commentID, s.commentRepo.RemoveHate)
}

func (s *commentServiceImpl) mutateCounter(ctx context.Context, commentID uuid.UUID, op func(context.Context, uuid.UUID) error) (*dto.CommentResponse, error) {
	if err := op(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update counter", err.Error())
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}
