package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
	"jobmarket-service/internal/repositories"
)

// UserHandler serves profile reads and updates.
type UserHandler struct {
	userRepo repositories.UserRepository
	fileRepo repositories.FileRepository
}

func NewUserHandler(userRepo repositories.UserRepository, fileRepo repositories.FileRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, fileRepo: fileRepo}
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userRepo.FindByID(c.Request.Context(), c.GetInt("userID"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Get returns a user's public profile by id.
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, models.Participant{
		ID:        user.ID,
		Username:  user.Username,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
	})
}

// Update replaces the caller's mutable profile fields.
func (h *UserHandler) Update(c *gin.Context) {
	var req struct {
		Email     string     `json:"email" binding:"required,email"`
		Prefix    string     `json:"prefix"`
		Firstname string     `json:"firstname" binding:"required"`
		Lastname  string     `json:"lastname" binding:"required"`
		BirthDate *time.Time `json:"birth_date"`
		Address   string     `json:"address"`
		Latitude  float64    `json:"latitude"`
		Longitude float64    `json:"longitude"`
		TelNumber string     `json:"tel_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userRepo.UpdateProfile(c.Request.Context(), models.User{
		ID:        c.GetInt("userID"),
		Email:     req.Email,
		Prefix:    req.Prefix,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		BirthDate: req.BirthDate,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		TelNumber: req.TelNumber,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// SetAvatar points the caller's avatar at one of their uploaded files.
func (h *UserHandler) SetAvatar(c *gin.Context) {
	var req struct {
		FileID int `json:"file_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetInt("userID")
	item, err := h.fileRepo.FindByID(c.Request.Context(), req.FileID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrFileNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "file not found"})
		return
	}
	if item.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "can only use your own files"})
		return
	}

	if err := h.userRepo.SetAvatar(c.Request.Context(), userID, req.FileID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not set avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_file_id": req.FileID})
}

// List returns a page of all users. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	params := pageParams(c)
	users, total, err := h.userRepo.ListPage(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	c.JSON(http.StatusOK, pagination.New(users, total, params, c.Request.URL.Path))
}
