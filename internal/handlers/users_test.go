package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobmarket-service/internal/mocks"
	"jobmarket-service/internal/models"
	"jobmarket-service/internal/repositories"
)

func setupUserRouter(handler *UserHandler, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	r.GET("/users/me", handler.Me)
	r.PUT("/users/me/avatar", handler.SetAvatar)
	r.GET("/users/:user_id", handler.Get)
	return r
}

func TestMe(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewUserHandler(userRepo, new(mocks.FileRepositoryMock))
	router := setupUserRouter(handler, 1)

	userRepo.On("FindByID", mock.Anything, 1).Return(models.User{ID: 1, Username: "alice"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	userRepo.AssertExpectations(t)
}

func TestGetUserNotFound(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewUserHandler(userRepo, new(mocks.FileRepositoryMock))
	router := setupUserRouter(handler, 1)

	userRepo.On("FindByID", mock.Anything, 42).Return(models.User{}, repositories.ErrUserNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetAvatarRejectsForeignFile(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	fileRepo := new(mocks.FileRepositoryMock)
	handler := NewUserHandler(userRepo, fileRepo)
	router := setupUserRouter(handler, 1)

	fileRepo.On("FindByID", mock.Anything, 3).Return(models.FileItem{ID: 3, OwnerID: 2}, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/users/me/avatar", bytes.NewBufferString(`{"file_id":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	userRepo.AssertNotCalled(t, "SetAvatar", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetAvatarSuccess(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	fileRepo := new(mocks.FileRepositoryMock)
	handler := NewUserHandler(userRepo, fileRepo)
	router := setupUserRouter(handler, 1)

	fileRepo.On("FindByID", mock.Anything, 3).Return(models.FileItem{ID: 3, OwnerID: 1}, nil).Once()
	userRepo.On("SetAvatar", mock.Anything, 1, 3).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/users/me/avatar", bytes.NewBufferString(`{"file_id":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	userRepo.AssertExpectations(t)
	fileRepo.AssertExpectations(t)
}
