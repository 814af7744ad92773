package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kim0hyeon/CRUDBoard/internal/dto"
	"github.com/kim0hyeon/CRUDBoard/internal/response"
	"github.com/kim0hyeon/CRUDBoard/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// SignUp godoc
// @Summary      Register a new user
// @Description  Creates an account with a unique username and nickname
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.SignUpRequest true "Signup request"
// @Success      201 {object} response.SuccessResponse{data=dto.UserResponse} "User created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Username or nickname already taken"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /users/signup [post]
func (h *UserHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, user)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates a user and returns a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login request"
// @Success      200 {object} response.SuccessResponse{data=dto.LoginResponse} "Login succeeded"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      401 {object} response.ErrorResponse "Invalid username or password"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetUser godoc
// @Summary      Get a user
// @Description  Returns a user's public profile
// @Tags         users
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "User found"
// @Failure      400 {object} response.ErrorResponse "Invalid user ID"
// @Failure      404 {object} response.ErrorResponse "User not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// UpdatePassword godoc
// @Summary      Change password
// @Description  Replaces the password after verifying the current one
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Param        request body dto.UpdatePasswordRequest true "Password change request"
// @Success      200 {object} response.SuccessResponse "Password updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      401 {object} response.ErrorResponse "Current password does not match"
// @Failure      404 {object} response.ErrorResponse "User not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /users/{userId}/password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), userID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Password updated successfully")
}
