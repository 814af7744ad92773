package response

import (
	"github.com/gin-gonic/gin"
)

// Error codes surfaced to clients
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeDuplicateName      = "DUPLICATE_BOARD_NAME"
	ErrCodeDuplicateUsername  = "DUPLICATE_USERNAME"
	ErrCodeDuplicateNickname  = "DUPLICATE_NICKNAME"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeInvalidSearchType  = "INVALID_SEARCH_TYPE"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// AppError is a typed service-layer failure carried up to the HTTP layer
type AppError struct {
	Code    string
	Message string
	Details string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SendSuccess writes a success envelope with the given payload
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Data: data})
}

// SendMessage writes a success envelope with only a message
func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, SuccessResponse{Message: message})
}

// SendError writes an error envelope
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}
