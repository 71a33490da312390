package models

import "github.com/google/uuid"

// ProjectHistory is the append-only log of state-changing actions on a
// project. Rows are never updated or deleted; the acting user reference is
// protected while history exists.
type ProjectHistory struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Description string    `json:"description" gorm:"not null;size:500"`
	UserID      string    `json:"user_id" gorm:"size:100"`
}

// TableName returns the table name for ProjectHistory
func (ProjectHistory) TableName() string {
	return "project_history"
}
