package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByPostID(ctx context.Context, postID uuid.UUID, page, size int) ([]*domain.Comment, int64, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddLike(ctx context.Context, id uuid.UUID) error
	RemoveLike(ctx context.Context, id uuid.UUID) error
	AddHate(ctx context.Context, id uuid.UUID) error
	RemoveHate(ctx context.Context, id uuid.UUID) error
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create creates a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID finds a comment by its ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByPostID returns one page of a post's comments, newest first
func (r *commentRepositoryImpl) FindByPostID(ctx context.Context, postID uuid.UUID, page, size int) ([]*domain.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Comment{}).Where("post_id = ?", postID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*domain.Comment
	if err := query.
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Update saves comment changes
func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete soft deletes a comment by ID
func (r *commentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, "id = ?", id).Error
}

// AddLike bumps the like counter by one
func (r *commentRepositoryImpl) AddLike(ctx context.Context, id uuid.UUID) error {
	return r.adjustCounter(ctx, id, "like_count", 1)
}

// RemoveLike drops the like counter by one (no floor)
func (r *commentRepositoryImpl) RemoveLike(ctx context.Context, id uuid.UUID) error {
	return r.adjustCounter(ctx, id, "like_count", -1)
}

// AddHate bumps the hate counter by one
func (r *commentRepositoryImpl) AddHate(ctx context.Context, id uuid.UUID) error {
	return r.adjustCounter(ctx, id, "hate_count", 1)
}

// RemoveHate drops the hate counter by one (no floor)
func (r *commentRepositoryImpl) RemoveHate(ctx context.Context, id uuid.UUID) error {
	return r.adjustCounter(ctx, id, "hate_count", -1)
}

func (r *commentRepositoryImpl) adjustCounter(ctx context.Context, id uuid.UUID, column string, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
