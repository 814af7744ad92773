package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/response"
)

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{response.ErrCodeNotFound, http.StatusNotFound},
		{response.ErrCodeDuplicateName, http.StatusConflict},
		{response.ErrCodeDuplicateUsername, http.StatusConflict},
		{response.ErrCodeDuplicateNickname, http.StatusConflict},
		{response.ErrCodeValidation, http.StatusBadRequest},
		{response.ErrCodeInvalidSearchType, http.StatusBadRequest},
		{response.ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{response.ErrCodeUnauthorized, http.StatusUnauthorized},
		{response.ErrCodeForbidden, http.StatusForbidden},
		{response.ErrCodeTooManyRequests, http.StatusTooManyRequests},
		{response.ErrCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, mapErrorCodeToHTTPStatus(tt.code))
		})
	}
}

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "gorm not found",
			err:        gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   response.ErrCodeNotFound,
		},
		{
			name:       "application error keeps its code",
			err:        response.NewAppError(response.ErrCodeForbidden, "You can only edit your own comments", ""),
			wantStatus: http.StatusForbidden,
			wantCode:   response.ErrCodeForbidden,
		},
		{
			name:       "unknown error becomes internal",
			err:        errors.New("driver: bad connection"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handleServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{name: "defaults", query: "", wantPage: 0, wantSize: 10},
		{name: "explicit values", query: "page=2&size=25", wantPage: 2, wantSize: 25},
		{name: "negative page clamps to zero", query: "page=-3", wantPage: 0, wantSize: 10},
		{name: "zero size falls back", query: "size=0", wantPage: 0, wantSize: 10},
		{name: "oversized clamps to max", query: "size=500", wantPage: 0, wantSize: 100},
		{name: "garbage falls back", query: "page=abc&size=xyz", wantPage: 0, wantSize: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			page, size := pagination(c)

			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}
