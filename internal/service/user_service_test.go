package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
	"github.com/kim0hyeon/CRUDBoard/internal/dto"
	"github.com/kim0hyeon/CRUDBoard/internal/metrics"
	"github.com/kim0hyeon/CRUDBoard/internal/response"
)

func testMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestSignUp_Success(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	resp, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice",
		Password: "password123",
		Nickname: "Allie",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Allie", resp.Nickname)
	assert.NotEqual(t, uuid.Nil, resp.UserID)
}

func TestSignUp_PasswordIsHashedBeforeStore(t *testing.T) {
	var stored *domain.User
	userRepo := &mockUserRepo{
		CreateFunc: func(ctx context.Context, user *domain.User) error {
			stored = user
			return nil
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice",
		Password: "password123",
		Nickname: "Allie",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:password123", stored.Password)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	userRepo := &mockUserRepo{
		FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username}, nil
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice", Password: "password123", Nickname: "Allie",
	})

	assertAppErrorCode(t, err, response.ErrCodeDuplicateUsername)
}

func TestSignUp_DuplicateNickname(t *testing.T) {
	userRepo := &mockUserRepo{
		FindByNicknameFunc: func(ctx context.Context, nickname string) (*domain.User, error) {
			return &domain.User{Nickname: nickname}, nil
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice", Password: "password123", Nickname: "Allie",
	})

	assertAppErrorCode(t, err, response.ErrCodeDuplicateNickname)
}

func TestSignUp_UsernameConflictWinsOverNickname(t *testing.T) {
	// Both checks collide; the username check runs first and its error is
	// the one reported.
	userRepo := &mockUserRepo{
		FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username}, nil
		},
		FindByNicknameFunc: func(ctx context.Context, nickname string) (*domain.User, error) {
			return &domain.User{Nickname: nickname}, nil
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice", Password: "password123", Nickname: "Allie",
	})

	assertAppErrorCode(t, err, response.ErrCodeDuplicateUsername)
}

func TestSignUp_ConcurrentDuplicateMapsToConflict(t *testing.T) {
	// Two signups can both pass the pre-checks; the loser's unique index
	// violation must still surface as the matching conflict error.
	tests := []struct {
		name      string
		createErr error
		wantCode  string
	}{
		{
			name:      "username index violation",
			createErr: errors.New(`duplicate key value violates unique constraint "idx_users_username"`),
			wantCode:  response.ErrCodeDuplicateUsername,
		},
		{
			name:      "nickname index violation",
			createErr: errors.New(`duplicate key value violates unique constraint "idx_users_nickname"`),
			wantCode:  response.ErrCodeDuplicateNickname,
		},
		{
			name:      "sqlite constraint message",
			createErr: errors.New("UNIQUE constraint failed: users.username"),
			wantCode:  response.ErrCodeDuplicateUsername,
		},
		{
			name:      "translated gorm error",
			createErr: gorm.ErrDuplicatedKey,
			wantCode:  response.ErrCodeDuplicateUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mockUserRepo{
				CreateFunc: func(ctx context.Context, user *domain.User) error {
					return tt.createErr
				},
			}
			svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

			_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
				Username: "alice", Password: "password123", Nickname: "Allie",
			})

			assertAppErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	userID := uuid.New()
	userRepo := &mockUserRepo{
		FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{
				BaseModel: domain.BaseModel{ID: userID},
				Username:  username,
				Password:  "hashed:password123",
				Nickname:  "Allie",
			}, nil
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice", Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, resp.User.UserID)
	assert.Equal(t, "token-for-alice", resp.Token)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	// Unknown username and wrong password must produce identical errors.
	knownRepo := &mockUserRepo{
		FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username, Password: "hashed:correct"}, nil
		},
	}
	unknownRepo := &mockUserRepo{}

	tests := []struct {
		name string
		repo *mockUserRepo
		req  dto.LoginRequest
	}{
		{"unknown username", unknownRepo, dto.LoginRequest{Username: "ghost", Password: "whatever"}},
		{"wrong password", knownRepo, dto.LoginRequest{Username: "alice", Password: "wrong"}},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(tt.repo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

			_, err := svc.Login(context.Background(), &tt.req)

			var appErr *response.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, response.ErrCodeInvalidCredentials, appErr.Code)
			messages = append(messages, appErr.Message)
		})
	}
	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
}

func TestGetUser_NotFound(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	_, err := svc.GetUser(context.Background(), uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestGetUser_NeverExposesPassword(t *testing.T) {
	userRepo := &mockUserRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{BaseModel: domain.BaseModel{ID: id}, Username: "alice", Password: "hashed:secret"}, nil
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	resp, err := svc.GetUser(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	// UserResponse has no password field at all; this guards the shape.
}

func TestUpdatePassword_Success(t *testing.T) {
	userID := uuid.New()
	var newHash string
	userRepo := &mockUserRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{BaseModel: domain.BaseModel{ID: id}, Password: "hashed:oldpass"}, nil
		},
		UpdatePasswordFunc: func(ctx context.Context, id uuid.UUID, passwordHash string) error {
			newHash = passwordHash
			return nil
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	err := svc.UpdatePassword(context.Background(), userID, &dto.UpdatePasswordRequest{
		CurrentPassword: "oldpass",
		NewPassword:     "newpass123",
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:newpass123", newHash)
}

func TestUpdatePassword_WrongCurrentPassword(t *testing.T) {
	userRepo := &mockUserRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{BaseModel: domain.BaseModel{ID: id}, Password: "hashed:oldpass"}, nil
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	err := svc.UpdatePassword(context.Background(), uuid.New(), &dto.UpdatePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "newpass123",
	})

	assertAppErrorCode(t, err, response.ErrCodeInvalidCredentials)
}

func TestUpdatePassword_RepoFailure(t *testing.T) {
	userRepo := &mockUserRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{BaseModel: domain.BaseModel{ID: id}, Password: "hashed:oldpass"}, nil
		},
		UpdatePasswordFunc: func(ctx context.Context, id uuid.UUID, passwordHash string) error {
			return errors.New("connection reset")
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	err := svc.UpdatePassword(context.Background(), uuid.New(), &dto.UpdatePasswordRequest{
		CurrentPassword: "oldpass",
		NewPassword:     "newpass123",
	})

	assertAppErrorCode(t, err, response.ErrCodeInternal)
}

func TestLogin_RepoFailureIsInternal(t *testing.T) {
	userRepo := &mockUserRepo{
		FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewUserService(userRepo, plainHasher{}, &mockTokenIssuer{}, testMetrics(), zap.NewNop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "x"})

	assertAppErrorCode(t, err, response.ErrCodeInternal)
	assert.False(t, errors.Is(err, gorm.ErrRecordNotFound))
}
