package types

import (
	"time"

	"github.com/collablab-dev/collablab/internal/models"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer"}
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProjectResponse struct {
	ID                   uint      `json:"id"`
	OwnerID              uint      `json:"owner_id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	SkillsRequired       []string  `json:"skills_required"`
	ExpectedContribution string    `json:"expected_contribution"`
	Duration             string    `json:"duration"`
	Tags                 []string  `json:"tags"`
	Visibility           string    `json:"visibility"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		OwnerID:              p.OwnerID,
		Title:                p.Title,
		Description:          p.Description,
		SkillsRequired:       p.SkillsRequired,
		ExpectedContribution: p.ExpectedContribution,
		Duration:             p.Duration,
		Tags:                 p.Tags,
		Visibility:           p.Visibility,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func NewProjectResponses(projects []models.Project) []ProjectResponse {
	response := make([]ProjectResponse, 0, len(projects))

	for _, p := range projects {
		response = append(response, NewProjectResponse(p))
	}

	return response
}

type RequestResponse struct {
	ID           uint      `json:"id"`
	ProjectID    uint      `json:"project_id"`
	ApplicantID  uint      `json:"applicant_id"`
	Message      string    `json:"message"`
	PortfolioURL string    `json:"portfolio_url"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewRequestResponse(r models.CollaborationRequest) RequestResponse {
	return RequestResponse{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		ApplicantID:  r.ApplicantID,
		Message:      r.Message,
		PortfolioURL: r.PortfolioURL,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
}
