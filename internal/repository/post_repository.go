package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// PostRepository defines the interface for post data access.
// Counter mutations are single atomic UPDATE statements so that concurrent
// callers never lose increments.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindAll(ctx context.Context, page, size int) ([]*domain.Post, int64, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID, page, size int) ([]*domain.Post, int64, error)
	SearchByTitle(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error)
	SearchByTitleOrContent(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error)
	SearchByAuthor(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	AddLike(ctx context.Context, id uuid.UUID) error
	RemoveLike(ctx context.Context, id uuid.UUID) error
	AddHate(ctx context.Context, id uuid.UUID) error
	RemoveHate(ctx context.Context, id uuid.UUID) error
	CountFlaggedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// postRepositoryImpl is the GORM implementation of PostRepository
type postRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepositoryImpl{db: db}
}

// Create creates a new post
func (r *postRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID finds a post by its ID
func (r *postRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll returns one page of posts ordered by creation time descending
func (r *postRepositoryImpl) FindAll(ctx context.Context, page, size int) ([]*domain.Post, int64, error) {
	return r.findPage(ctx, r.db.WithContext(ctx).Model(&domain.Post{}), page, size)
}

// FindByBoardID returns one page of a board's posts
func (r *postRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID, page, size int) ([]*domain.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Post{}).Where("board_id = ?", boardID)
	return r.findPage(ctx, query, page, size)
}

// SearchByTitle returns posts whose title contains the keyword
func (r *postRepositoryImpl) SearchByTitle(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Post{}).
		Where("title LIKE ?", "%"+keyword+"%")
	return r.findPage(ctx, query, page, size)
}

// SearchByTitleOrContent returns posts whose title or content contains the keyword
func (r *postRepositoryImpl) SearchByTitleOrContent(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error) {
	pattern := "%" + keyword + "%"
	query := r.db.WithContext(ctx).Model(&domain.Post{}).
		Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	return r.findPage(ctx, query, page, size)
}

// SearchByAuthor returns posts whose author's username contains the keyword
func (r *postRepositoryImpl) SearchByAuthor(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Post{}).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("users.username LIKE ?", "%"+keyword+"%")
	return r.findPage(ctx, query, page, size)
}

// findPage counts the filtered set and fetches one page, newest first
func (r *postRepositoryImpl) findPage(ctx context.Context, query *gorm.DB, page, size int) ([]*domain.Post, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*domain.Post
	if err := query.
		Order("posts.created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Update saves post changes
func (r *postRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete soft deletes a post together with its comments
func (r *postRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Post{}, "id = ?", id).Error
	})
}

// IncrementViewCount bumps the view counter by one
func (r *postRepositoryImpl) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.adjustCounter(ctx, id, "view_count", 1)
}

// AddLike bumps the like counter by one
func (r *postRepositoryImpl) AddLike(ctx context.Context, id uuid.UUID) error {
	return r.adjustCounter(ctx, id, "like_count", 1)
}

// RemoveLike drops the like counter by one. There is no floor: the counter
// may go negative, matching the board's historical behavior.
func (r *postRepositoryImpl) RemoveLike(ctx context.Context, id uuid.UUID) error {
	return r.adjustCounter(ctx, id, "like_count", -1)
}

// AddHate bumps the hate counter by one and recomputes the flagged state in
// the same statement
func (r *postRepositoryImpl) AddHate(ctx context.Context, id uuid.UUID) error {
	return r.adjustHate(ctx, id, 1)
}

// RemoveHate drops the hate counter by one and recomputes the flagged state.
// No floor either; any value below the threshold unflags the post.
func (r *postRepositoryImpl) RemoveHate(ctx context.Context, id uuid.UUID) error {
	return r.adjustHate(ctx, id, -1)
}

func (r *postRepositoryImpl) adjustCounter(ctx context.Context, id uuid.UUID, column string, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Post{}).
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

func (r *postRepositoryImpl) adjustHate(ctx context.Context, id uuid.UUID, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"hate_count": gorm.Expr("hate_count + ?", delta),
			"flagged":    gorm.Expr("hate_count + ? >= ?", delta, domain.HateThreshold),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountFlaggedByUser counts a user's currently flagged posts
func (r *postRepositoryImpl) CountFlaggedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("user_id = ? AND flagged = ?", userID, true).
		Count(&count).Error
	return count, err
}
