package repository

import (
	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectHistoryRepository handles the append-only project history log
type ProjectHistoryRepository struct {
	db *gorm.DB
}

// NewProjectHistoryRepository creates a new project history repository
func NewProjectHistoryRepository(db *gorm.DB) *ProjectHistoryRepository {
	return &ProjectHistoryRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ProjectHistoryRepository) WithTx(tx *gorm.DB) *ProjectHistoryRepository {
	return &ProjectHistoryRepository{db: tx}
}

// Create appends a history entry
func (r *ProjectHistoryRepository) Create(entry *models.ProjectHistory) error {
	return r.db.Create(entry).Error
}

// ListForProject returns the history of a project, newest first
func (r *ProjectHistoryRepository) ListForProject(projectID uuid.UUID) ([]models.ProjectHistory, error) {
	var entries []models.ProjectHistory
	err := r.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// CountForProject returns the number of history entries of a project
func (r *ProjectHistoryRepository) CountForProject(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectHistory{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}
