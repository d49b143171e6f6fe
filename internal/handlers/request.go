package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/collablab-dev/collablab/internal/logutils"
	"github.com/collablab-dev/collablab/internal/repository"
	"github.com/collablab-dev/collablab/internal/types"
	"github.com/collablab-dev/collablab/internal/utils"
	"github.com/gin-gonic/gin"
)

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type RequestHandler struct {
	Requests *repository.RequestStore
}

// Apply accepts a multipart form: message, portfolio_url and a document file.
func (h *RequestHandler) Apply(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseID(ctx, "Project not found")

	if !ok {
		return
	}

	message := strings.TrimSpace(ctx.PostForm("message"))
	portfolioURL := strings.TrimSpace(ctx.PostForm("portfolio_url"))
	fileHeader, err := ctx.FormFile("document")

	if message == "" || portfolioURL == "" || err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "message, portfolio_url and document are required"})
		return
	}

	file, err := fileHeader.Open()

	if err != nil {
		logutils.Log.WithError(err).Error("Failed to open uploaded document")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	defer file.Close()

	_, err = h.Requests.Apply(id, userID, message, portfolioURL, fileHeader.Filename, file)

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logutils.Log.WithError(err).Error("Failed to submit application")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *RequestHandler) ListForProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseID(ctx, "Project not found")

	if !ok {
		return
	}

	requests, err := h.Requests.ListForProject(id, userID)

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, repository.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			logutils.Log.WithError(err).Error("Failed to list requests")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	response := make([]types.RequestResponse, 0, len(requests))

	for _, r := range requests {
		response = append(response, types.NewRequestResponse(r))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *RequestHandler) Document(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseID(ctx, "Request not found")

	if !ok {
		return
	}

	path, err := h.Requests.Document(id, userID)

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		case errors.Is(err, repository.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			logutils.Log.WithError(err).Error("Failed to fetch document")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.FileAttachment(path, filepath.Base(path))
}

func (h *RequestHandler) SetStatus(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseID(ctx, "Request not found")

	if !ok {
		return
	}

	var body StatusUpdateRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.Requests.SetStatus(id, userID, body.Status); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidStatus):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, repository.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		case errors.Is(err, repository.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			logutils.Log.WithError(err).Error("Failed to update request status")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
