package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

func TestCommentRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	board := createBoard(t, db, "general")
	post := createPost(t, db, board.ID, user.ID, "t")
	comment := createComment(t, db, post.ID, user.ID, "first")

	found, err := repo.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", found.Content)
	assert.Equal(t, post.ID, found.PostID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommentRepository_FindByPostID_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	board := createBoard(t, db, "general")
	post := createPost(t, db, board.ID, user.ID, "t")
	other := createPost(t, db, board.ID, user.ID, "other")
	createComment(t, db, other.ID, user.ID, "on another post")

	for i := 0; i < 7; i++ {
		comment := &domain.Comment{PostID: post.ID, UserID: user.ID, Content: fmt.Sprintf("comment %02d", i)}
		comment.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, db.Create(comment).Error)
	}

	first, total, err := repo.FindByPostID(ctx, post.ID, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, first, 3)
	assert.Equal(t, "comment 06", first[0].Content)

	last, total, err := repo.FindByPostID(ctx, post.ID, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, last, 1)
}

func TestCommentRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	board := createBoard(t, db, "general")
	post := createPost(t, db, board.ID, user.ID, "t")
	comment := createComment(t, db, post.ID, user.ID, "before")

	comment.Content = "after"
	require.NoError(t, repo.Update(ctx, comment))

	found, err := repo.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", found.Content)
}

func TestCommentRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	board := createBoard(t, db, "general")
	post := createPost(t, db, board.ID, user.ID, "t")
	comment := createComment(t, db, post.ID, user.ID, "gone soon")

	require.NoError(t, repo.Delete(ctx, comment.ID))

	_, err := repo.FindByID(ctx, comment.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, total, err := repo.FindByPostID(ctx, post.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestCommentRepository_Counters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	board := createBoard(t, db, "general")
	post := createPost(t, db, board.ID, user.ID, "t")
	comment := createComment(t, db, post.ID, user.ID, "c")

	require.NoError(t, repo.AddLike(ctx, comment.ID))
	require.NoError(t, repo.AddLike(ctx, comment.ID))
	require.NoError(t, repo.AddHate(ctx, comment.ID))

	found, err := repo.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.LikeCount)
	assert.Equal(t, 1, found.HateCount)

	// No floor on the way down.
	require.NoError(t, repo.RemoveHate(ctx, comment.ID))
	require.NoError(t, repo.RemoveHate(ctx, comment.ID))
	found, err = repo.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, found.HateCount)
}

func TestCommentRepository_CounterOnMissingComment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.AddLike(ctx, uuid.New()), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.RemoveLike(ctx, uuid.New()), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.AddHate(ctx, uuid.New()), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.RemoveHate(ctx, uuid.New()), gorm.ErrRecordNotFound)
}
