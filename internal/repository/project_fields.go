package repository

import (
	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectFieldsRepository reads the declarative per-(cluster, type, sector)
// field configuration consulted by the submission validator
type ProjectFieldsRepository struct {
	db *gorm.DB
}

// NewProjectFieldsRepository creates a new project fields repository
func NewProjectFieldsRepository(db *gorm.DB) *ProjectFieldsRepository {
	return &ProjectFieldsRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ProjectFieldsRepository) WithTx(tx *gorm.DB) *ProjectFieldsRepository {
	return &ProjectFieldsRepository{db: tx}
}

// GetForProject looks up the field configuration for a project's cluster,
// type, and sector. Returns gorm.ErrRecordNotFound when no configuration
// exists for the combination; callers treat that as "no extra checks".
func (r *ProjectFieldsRepository) GetForProject(clusterID, projectTypeID, sectorID uuid.UUID) (*models.ProjectSpecificFields, error) {
	var cfg models.ProjectSpecificFields
	err := r.db.
		Preload("Fields").
		First(&cfg, "cluster_id = ? AND project_type_id = ? AND sector_id = ?",
			clusterID, projectTypeID, sectorID).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Create inserts a field configuration (used by seeding and tests)
func (r *ProjectFieldsRepository) Create(cfg *models.ProjectSpecificFields) error {
	return r.db.Create(cfg).Error
}
