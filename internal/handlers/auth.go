package handlers

import (
	"errors"
	"net/http"

	"github.com/collablab-dev/collablab/internal/auth"
	"github.com/collablab-dev/collablab/internal/logutils"
	"github.com/collablab-dev/collablab/internal/repository"
	"github.com/collablab-dev/collablab/internal/types"
	"github.com/collablab-dev/collablab/internal/utils"
	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name"`
}

type AuthHandler struct {
	Users  *repository.UserStore
	Tokens *auth.TokenService
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var body SignupRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.Register(body.Name, body.Email, body.Password)

	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		logutils.Log.WithError(err).Error("Failed to register user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := h.Tokens.Issue(user.ID, user.Email)

	if err != nil {
		logutils.Log.WithError(err).Error("Failed to issue token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewTokenResponse(token))
}

func (h *AuthHandler) Signin(ctx *gin.Context) {
	var body SigninRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.Authenticate(body.Email, body.Password)

	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logutils.Log.WithError(err).Error("Failed to authenticate user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := h.Tokens.Issue(user.ID, user.Email)

	if err != nil {
		logutils.Log.WithError(err).Error("Failed to issue token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewTokenResponse(token))
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, types.UserResponse{
		ID:    currentUser.ID,
		Name:  currentUser.Name,
		Email: currentUser.Email,
	})
}

func (h *AuthHandler) UpdateMe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateProfileRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.UpdateProfile(currentUser.ID, repository.ProfileUpdate{Name: body.Name})

	if err != nil {
		logutils.Log.WithError(err).Error("Failed to update profile")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
