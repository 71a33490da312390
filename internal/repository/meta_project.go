package repository

import (
	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetaProjectRepository handles database operations for meta projects
type MetaProjectRepository struct {
	db *gorm.DB
}

// NewMetaProjectRepository creates a new meta project repository
func NewMetaProjectRepository(db *gorm.DB) *MetaProjectRepository {
	return &MetaProjectRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *MetaProjectRepository) WithTx(tx *gorm.DB) *MetaProjectRepository {
	return &MetaProjectRepository{db: tx}
}

// Create creates a new meta project
func (r *MetaProjectRepository) Create(mp *models.MetaProject) error {
	return r.db.Create(mp).Error
}

// GetByID retrieves a meta project by ID
func (r *MetaProjectRepository) GetByID(id uuid.UUID) (*models.MetaProject, error) {
	var mp models.MetaProject
	err := r.db.First(&mp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mp, nil
}

// GetWithProjects retrieves a meta project with its live member projects
func (r *MetaProjectRepository) GetWithProjects(id uuid.UUID) (*models.MetaProject, error) {
	var mp models.MetaProject
	err := r.db.
		Preload("LeadAgency").
		Preload("Projects", "latest_project_id IS NULL").
		First(&mp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mp, nil
}

// GetAll retrieves meta projects with pagination
func (r *MetaProjectRepository) GetAll(limit, offset int) ([]models.MetaProject, int64, error) {
	var mps []models.MetaProject
	var total int64

	if err := r.db.Model(&models.MetaProject{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("code").Limit(limit).Offset(offset).Find(&mps).Error
	if err != nil {
		return nil, 0, err
	}
	return mps, total, nil
}

// CountByCode counts meta projects sharing a code; duplicates are allowed but
// reported as warnings
func (r *MetaProjectRepository) CountByCode(code string) (int64, error) {
	var count int64
	err := r.db.Model(&models.MetaProject{}).Where("code = ?", code).Count(&count).Error
	return count, err
}

// Update updates a meta project
func (r *MetaProjectRepository) Update(mp *models.MetaProject) error {
	return r.db.Save(mp).Error
}

// Delete deletes a meta project
func (r *MetaProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MetaProject{}, "id = ?", id).Error
}
