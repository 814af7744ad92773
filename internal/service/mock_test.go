package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// Function-field mocks. Unset find functions report not found, unset
// mutations succeed, so each test overrides only what it exercises.

type mockUserRepo struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	FindByNicknameFunc func(ctx context.Context, nickname string) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetFlaggedFunc     func(ctx context.Context, id uuid.UUID, flagged bool) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	if m.FindByNicknameFunc != nil {
		return m.FindByNicknameFunc(ctx, nickname)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *mockUserRepo) SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error {
	if m.SetFlaggedFunc != nil {
		return m.SetFlaggedFunc(ctx, id, flagged)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockBoardRepo struct {
	CreateFunc     func(ctx context.Context, board *domain.Board) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Board, error)
	FindAllFunc    func(ctx context.Context) ([]*domain.Board, error)
	UpdateFunc     func(ctx context.Context, board *domain.Board) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBoardRepo) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	if board.ID == uuid.Nil {
		board.ID = uuid.New()
	}
	return nil
}

func (m *mockBoardRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBoardRepo) FindByName(ctx context.Context, name string) (*domain.Board, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBoardRepo) FindAll(ctx context.Context) ([]*domain.Board, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockBoardRepo) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *mockBoardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPostRepo struct {
	CreateFunc                 func(ctx context.Context, post *domain.Post) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindAllFunc                func(ctx context.Context, page, size int) ([]*domain.Post, int64, error)
	FindByBoardIDFunc          func(ctx context.Context, boardID uuid.UUID, page, size int) ([]*domain.Post, int64, error)
	SearchByTitleFunc          func(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error)
	SearchByTitleOrContentFunc func(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error)
	SearchByAuthorFunc         func(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error)
	UpdateFunc                 func(ctx context.Context, post *domain.Post) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
	IncrementViewCountFunc     func(ctx context.Context, id uuid.UUID) error
	AddLikeFunc                func(ctx context.Context, id uuid.UUID) error
	RemoveLikeFunc             func(ctx context.Context, id uuid.UUID) error
	AddHateFunc                func(ctx context.Context, id uuid.UUID) error
	RemoveHateFunc             func(ctx context.Context, id uuid.UUID) error
	CountFlaggedByUserFunc     func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (m *mockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return nil
}

func (m *mockPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPostRepo) FindAll(ctx context.Context, page, size int) ([]*domain.Post, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, page, size)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) FindByBoardID(ctx context.Context, boardID uuid.UUID, page, size int) ([]*domain.Post, int64, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID, page, size)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) SearchByTitle(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error) {
	if m.SearchByTitleFunc != nil {
		return m.SearchByTitleFunc(ctx, keyword, page, size)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) SearchByTitleOrContent(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error) {
	if m.SearchByTitleOrContentFunc != nil {
		return m.SearchByTitleOrContentFunc(ctx, keyword, page, size)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) SearchByAuthor(ctx context.Context, keyword string, page, size int) ([]*domain.Post, int64, error) {
	if m.SearchByAuthorFunc != nil {
		return m.SearchByAuthorFunc(ctx, keyword, page, size)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) AddLike(ctx context.Context, id uuid.UUID) error {
	if m.AddLikeFunc != nil {
		return m.AddLikeFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) RemoveLike(ctx context.Context, id uuid.UUID) error {
	if m.RemoveLikeFunc != nil {
		return m.RemoveLikeFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) AddHate(ctx context.Context, id uuid.UUID) error {
	if m.AddHateFunc != nil {
		return m.AddHateFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) RemoveHate(ctx context.Context, id uuid.UUID) error {
	if m.RemoveHateFunc != nil {
		return m.RemoveHateFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) CountFlaggedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountFlaggedByUserFunc != nil {
		return m.CountFlaggedByUserFunc(ctx, userID)
	}
	return 0, nil
}

type mockCommentRepo struct {
	CreateFunc       func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByPostIDFunc func(ctx context.Context, postID uuid.UUID, page, size int) ([]*domain.Comment, int64, error)
	UpdateFunc       func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	AddLikeFunc      func(ctx context.Context, id uuid.UUID) error
	RemoveLikeFunc   func(ctx context.Context, id uuid.UUID) error
	AddHateFunc      func(ctx context.Context, id uuid.UUID) error
	RemoveHateFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return nil
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCommentRepo) FindByPostID(ctx context.Context, postID uuid.UUID, page, size int) ([]*domain.Comment, int64, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, postID, page, size)
	}
	return nil, 0, nil
}

func (m *mockCommentRepo) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepo) AddLike(ctx context.Context, id uuid.UUID) error {
	if m.AddLikeFunc != nil {
		return m.AddLikeFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepo) RemoveLike(ctx context.Context, id uuid.UUID) error {
	if m.RemoveLikeFunc != nil {
		return m.RemoveLikeFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepo) AddHate(ctx context.Context, id uuid.UUID) error {
	if m.AddHateFunc != nil {
		return m.AddHateFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepo) RemoveHate(ctx context.Context, id uuid.UUID) error {
	if m.RemoveHateFunc != nil {
		return m.RemoveHateFunc(ctx, id)
	}
	return nil
}

type mockImageClient struct {
	GeneratePresignedURLFunc func(ctx context.Context, fileName, contentType string) (string, string, error)
	DeleteFileFunc           func(ctx context.Context, fileURL string) error
	Deleted                  []string
}

func (m *mockImageClient) GeneratePresignedURL(ctx context.Context, fileName, contentType string) (string, string, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, fileName, contentType)
	}
	return "https://upload.example.com/" + fileName, "https://cdn.example.com/" + fileName, nil
}

func (m *mockImageClient) DeleteFile(ctx context.Context, fileURL string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, fileURL)
	}
	m.Deleted = append(m.Deleted, fileURL)
	return nil
}

// plainHasher keeps password tests readable without bcrypt costs
type plainHasher struct{}

func (plainHasher) Hash(rawPassword string) (string, error) {
	return "hashed:" + rawPassword, nil
}

func (plainHasher) Verify(rawPassword, hash string) bool {
	return hash == "hashed:"+rawPassword
}

type mockTokenIssuer struct {
	IssueFunc func(userID uuid.UUID, username string) (string, error)
}

func (m *mockTokenIssuer) Issue(userID uuid.UUID, username string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, username)
	}
	return "token-for-" + username, nil
}

func (m *mockTokenIssuer) Validate(token string) (uuid.UUID, error) {
	return uuid.Nil, nil
}
