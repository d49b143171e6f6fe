package handlers

import (
	"net/http"

	"github.com/collablab-dev/collablab/internal/logutils"
	"github.com/collablab-dev/collablab/internal/repository"
	"github.com/collablab-dev/collablab/internal/types"
	"github.com/collablab-dev/collablab/internal/utils"
	"github.com/gin-gonic/gin"
)

type SavedHandler struct {
	Saved *repository.SavedStore
}

func (h *SavedHandler) Save(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseID(ctx, "Project not found")

	if !ok {
		return
	}

	if err := h.Saved.Save(userID, id); err != nil {
		logutils.Log.WithError(err).Error("Failed to save project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *SavedHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projects, err := h.Saved.ListProjects(userID)

	if err != nil {
		logutils.Log.WithError(err).Error("Failed to list saved projects")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponses(projects))
}
