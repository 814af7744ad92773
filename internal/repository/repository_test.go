package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/database"
	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, Password: "hash", Nickname: "nick-" + username}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createBoard(t *testing.T, db *gorm.DB, name string) *domain.Board {
	t.Helper()
	board := &domain.Board{Name: name}
	require.NoError(t, db.Create(board).Error)
	return board
}

func createPost(t *testing.T, db *gorm.DB, boardID, userID uuid.UUID, title string) *domain.Post {
	t.Helper()
	post := &domain.Post{BoardID: boardID, UserID: userID, Title: title, Content: "content of " + title}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createComment(t *testing.T, db *gorm.DB, postID, userID uuid.UUID, content string) *domain.Comment {
	t.Helper()
	comment := &domain.Comment{PostID: postID, UserID: userID, Content: content}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
