package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/collablab-dev/collablab/internal/logutils"
	"github.com/collablab-dev/collablab/internal/repository"
	"github.com/collablab-dev/collablab/internal/types"
	"github.com/collablab-dev/collablab/internal/utils"
	"github.com/gin-gonic/gin"
)

type ProjectRequest struct {
	Title                string   `json:"title" binding:"required"`
	Description          string   `json:"description" binding:"required"`
	SkillsRequired       []string `json:"skills_required"`
	ExpectedContribution string   `json:"expected_contribution"`
	Duration             string   `json:"duration"`
	Tags                 []string `json:"tags"`
	Visibility           string   `json:"visibility" binding:"omitempty,oneof=public private"`
}

func (r ProjectRequest) input() repository.ProjectInput {
	return repository.ProjectInput{
		Title:                r.Title,
		Description:          r.Description,
		SkillsRequired:       r.SkillsRequired,
		ExpectedContribution: r.ExpectedContribution,
		Duration:             r.Duration,
		Tags:                 r.Tags,
		Visibility:           r.Visibility,
	}
}

type ProjectHandler struct {
	Projects *repository.ProjectStore
}

func parseID(ctx *gin.Context, message string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": message})
		return 0, false
	}

	return uint(id), true
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body ProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.Projects.Create(userID, body.input())

	if err != nil {
		logutils.Log.WithError(err).Error("Failed to create project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewProjectResponse(*project))
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	filter := repository.ProjectFilter{
		Query: ctx.Query("q"),
		Tag:   ctx.Query("tag"),
	}

	projects, err := h.Projects.List(filter)

	if err != nil {
		logutils.Log.WithError(err).Error("Failed to list projects")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponses(projects))
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "Project not found")

	if !ok {
		return
	}

	project, err := h.Projects.Get(id)

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logutils.Log.WithError(err).Error("Failed to fetch project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(*project))
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseID(ctx, "Project not found")

	if !ok {
		return
	}

	var body ProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.Projects.Update(id, userID, body.input())

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, repository.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			logutils.Log.WithError(err).Error("Failed to update project")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(*project))
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseID(ctx, "Project not found")

	if !ok {
		return
	}

	if err := h.Projects.Delete(id, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, repository.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			logutils.Log.WithError(err).Error("Failed to delete project")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
