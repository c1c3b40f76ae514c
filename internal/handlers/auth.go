package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmarket-service/internal/auth"
	"jobmarket-service/internal/models"
	"jobmarket-service/internal/repositories"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	revoker  auth.TokenRevoker
}

func NewAuthHandler(userRepo repositories.UserRepository, tokens *auth.TokenManager, revoker auth.TokenRevoker) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, tokens: tokens, revoker: revoker}
}

// Register creates a user account and returns it without the password
// hash.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username  string  `json:"username" binding:"required"`
		Password  string  `json:"password" binding:"required,min=8"`
		Email     string  `json:"email" binding:"required,email"`
		Prefix    string  `json:"prefix"`
		Firstname string  `json:"firstname" binding:"required"`
		Lastname  string  `json:"lastname" binding:"required"`
		Address   string  `json:"address"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		TelNumber string  `json:"tel_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user, err := h.userRepo.Create(c.Request.Context(), models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
		Prefix:         req.Prefix,
		Firstname:      req.Firstname,
		Lastname:       req.Lastname,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		TelNumber:      req.TelNumber,
	})
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and issues a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userRepo.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if !auth.CheckPassword(req.Password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": user.ID})
}

// Logout revokes the presented token for the rest of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("rawToken")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no token to revoke"})
		return
	}
	if err := h.revoker.Revoke(token, h.tokens.TTL()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
