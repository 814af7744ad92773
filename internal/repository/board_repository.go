package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByName(ctx context.Context, name string) (*domain.Board, error)
	FindAll(ctx context.Context) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID finds a board by its ID
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByName finds a board by its unique name
func (r *boardRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).First(&board, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindAll returns all boards in insertion order
func (r *boardRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update saves board changes
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

// Delete soft deletes a board together with its posts and their comments
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id IN (?)",
			tx.Model(&domain.Post{}).Select("id").Where("board_id = ?", id),
		).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Board{}, "id = ?", id).Error
	})
}
