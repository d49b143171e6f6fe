package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Project references its owner by id only. Dependent rows (saved projects,
// collaboration requests) are cleaned up by the repository when a project is
// deleted; there are no database-level foreign keys between collections.
type Project struct {
	gorm.Model

	OwnerID              uint   `gorm:"not null;index"`
	Title                string `gorm:"not null"`
	Description          string
	SkillsRequired       datatypes.JSONSlice[string]
	ExpectedContribution string
	Duration             string
	Tags                 datatypes.JSONSlice[string]
	Visibility           string `gorm:"not null;default:public;index"`
}
