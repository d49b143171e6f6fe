package models

import "time"

// SavedProject is a plain link row; the composite unique index is what makes
// saving idempotent under concurrent requests. Rows are removed outright when
// their project is deleted, so no soft-delete column.
type SavedProject struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_saved_user_project"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_saved_user_project"`
	CreatedAt time.Time
}
