package models

import "gorm.io/gorm"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the recognized request statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

type CollaborationRequest struct {
	gorm.Model

	ProjectID    uint `gorm:"not null;index"`
	ApplicantID  uint `gorm:"not null;index"`
	Message      string
	PortfolioURL string
	DocumentPath string
	Status       string `gorm:"not null;default:pending"`
}
