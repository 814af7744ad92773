package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/client"
	"github.com/kim0hyeon/CRUDBoard/internal/database"
	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

func setupCleanupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, imageURL *string) *domain.Post {
	t.Helper()

	suffix := uuid.NewString()[:8]
	user := &domain.User{Username: "author-" + suffix, Password: "x", Nickname: "nick-" + suffix}
	require.NoError(t, db.Create(user).Error)

	board := &domain.Board{Name: "board-" + suffix}
	require.NoError(t, db.Create(board).Error)

	post := &domain.Post{
		BoardID:  board.ID,
		UserID:   user.ID,
		Title:    "title",
		Content:  "content",
		ImageURL: imageURL,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// softDeleteAt marks a row deleted with a back-dated timestamp
func softDeleteAt(t *testing.T, db *gorm.DB, table string, id interface{}, at time.Time) {
	t.Helper()
	err := db.Table(table).Where("id = ?", id).Update("deleted_at", at).Error
	require.NoError(t, err)
}

func TestCleanupJob_PurgesExpiredRows(t *testing.T) {
	db := setupCleanupDB(t)
	images := &client.MockImageStore{Bucket: "test-bucket", Region: "us-east-1"}
	cleanup := NewCleanupJob(db, images, 30, zap.NewNop())

	imageURL := "https://test-bucket.s3.us-east-1.amazonaws.com/posts/2026/07/old.jpg"
	oldPost := seedPost(t, db, &imageURL)
	comment := &domain.Comment{PostID: oldPost.ID, UserID: oldPost.UserID, Content: "c"}
	require.NoError(t, db.Create(comment).Error)

	past := time.Now().AddDate(0, 0, -60)
	softDeleteAt(t, db, "comments", comment.ID, past)
	softDeleteAt(t, db, "posts", oldPost.ID, past)

	cleanup.Run()

	var postCount, commentCount int64
	require.NoError(t, db.Unscoped().Model(&domain.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Unscoped().Model(&domain.Comment{}).Count(&commentCount).Error)
	assert.Equal(t, int64(0), postCount, "Purged post should be gone even unscoped")
	assert.Equal(t, int64(0), commentCount)
	assert.Equal(t, []string{imageURL}, images.Deleted, "Stored image should be deleted")
}

func TestCleanupJob_KeepsRecentlyDeletedRows(t *testing.T) {
	db := setupCleanupDB(t)
	images := &client.MockImageStore{Bucket: "test-bucket", Region: "us-east-1"}
	cleanup := NewCleanupJob(db, images, 30, zap.NewNop())

	post := seedPost(t, db, nil)
	softDeleteAt(t, db, "posts", post.ID, time.Now().AddDate(0, 0, -5))

	cleanup.Run()

	var count int64
	require.NoError(t, db.Unscoped().Model(&domain.Post{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "Rows inside the retention window must survive")
	assert.Empty(t, images.Deleted)
}

func TestCleanupJob_KeepsLiveRows(t *testing.T) {
	db := setupCleanupDB(t)
	cleanup := NewCleanupJob(db, nil, 30, zap.NewNop())

	seedPost(t, db, nil)

	cleanup.Run()

	var count int64
	require.NoError(t, db.Model(&domain.Post{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCleanupJob_ImageDeleteFailureDoesNotBlockPurge(t *testing.T) {
	db := setupCleanupDB(t)
	images := &client.MockImageStore{
		Bucket: "test-bucket",
		Region: "us-east-1",
		DeleteFileFunc: func(ctx context.Context, fileURL string) error {
			return errors.New("storage unavailable")
		},
	}
	cleanup := NewCleanupJob(db, images, 30, zap.NewNop())

	imageURL := "https://test-bucket.s3.us-east-1.amazonaws.com/posts/2026/07/old.jpg"
	post := seedPost(t, db, &imageURL)
	softDeleteAt(t, db, "posts", post.ID, time.Now().AddDate(0, 0, -60))

	cleanup.Run()

	var count int64
	require.NoError(t, db.Unscoped().Model(&domain.Post{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "Row purge must proceed despite storage errors")
}

func TestNewCleanupJob_DefaultRetention(t *testing.T) {
	cleanup := NewCleanupJob(nil, nil, 0, zap.NewNop())
	assert.Equal(t, defaultRetentionDays, cleanup.retentionDays)
}
