package repository

import (
	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentGroupRepository handles database operations for sibling-project
// component groups. Group membership lives on projects.component_id; this
// repository is the single lookup point for it.
type ComponentGroupRepository struct {
	db *gorm.DB
}

// NewComponentGroupRepository creates a new component group repository
func NewComponentGroupRepository(db *gorm.DB) *ComponentGroupRepository {
	return &ComponentGroupRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ComponentGroupRepository) WithTx(tx *gorm.DB) *ComponentGroupRepository {
	return &ComponentGroupRepository{db: tx}
}

// Create creates a new component group
func (r *ComponentGroupRepository) Create(group *models.ComponentGroup) error {
	return r.db.Create(group).Error
}

// Members returns all live projects of a component group
func (r *ComponentGroupRepository) Members(componentID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("component_id = ? AND latest_project_id IS NULL", componentID).
		Order("created_at").
		Find(&projects).Error
	return projects, err
}

// Detach removes a project from its component group
func (r *ComponentGroupRepository) Detach(projectID uuid.UUID) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("component_id", nil).Error
}
