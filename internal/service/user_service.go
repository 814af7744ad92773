package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
	"github.com/kim0hyeon/CRUDBoard/internal/dto"
	"github.com/kim0hyeon/CRUDBoard/internal/metrics"
	"github.com/kim0hyeon/CRUDBoard/internal/repository"
	"github.com/kim0hyeon/CRUDBoard/internal/response"
)

// UserService defines the interface for user business logic
type UserService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *dto.UpdatePasswordRequest) error
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	m *metrics.Metrics,
	logger *zap.Logger,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		metrics:  m,
		logger:   logger,
	}
}

// SignUp registers a new user. The username check runs before the nickname
// check, so a request that collides on both reports the username conflict.
func (s *userServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check username", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeDuplicateUsername, "Username is already taken", "")
	}

	existing, err = s.userRepo.FindByNickname(ctx, req.Nickname)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check nickname", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeDuplicateNickname, "Nickname is already taken", "")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Username: req.Username,
		Password: hash,
		Nickname: req.Nickname,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent signup can slip past the pre-checks; the unique
		// indexes still reject it and the violation maps back to the same
		// conflict error the pre-check would have produced.
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "nickname") {
				return nil, response.NewAppError(response.ErrCodeDuplicateNickname, "Nickname is already taken", "")
			}
			return nil, response.NewAppError(response.ErrCodeDuplicateUsername, "Username is already taken", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.metrics.IncrementUserSignup()
	s.logger.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login authenticates a user and issues a bearer token. An unknown username
// and a wrong password produce the same error so callers cannot probe for
// registered usernames.
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInvalidCredentials, "Invalid username or password", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, response.NewAppError(response.ErrCodeInvalidCredentials, "Invalid username or password", "")
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &dto.LoginResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	}, nil
}

// GetUser retrieves a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// UpdatePassword changes a user's password after verifying the current one
func (s *userServiceImpl) UpdatePassword(ctx context.Context, userID uuid.UUID, req *dto.UpdatePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if !s.hasher.Verify(req.CurrentPassword, user.Password) {
		return response.NewAppError(response.ErrCodeInvalidCredentials, "Invalid username or password", "")
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update password", err.Error())
	}

	s.logger.Info("User password updated", zap.String("user_id", userID.String()))
	return nil
}

// isUniqueViolation reports whether err came from a unique index. Covers the
// translated gorm error plus the raw postgres and sqlite driver messages.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
