package service

import (
	"context"
	"errors"

	"fund-reporting-backend/internal/database/models"
	apperrors "fund-reporting-backend/internal/errors"
	"fund-reporting-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetaProjectService exposes the read surface of meta projects
type MetaProjectService struct {
	metaRepo *repository.MetaProjectRepository
}

// NewMetaProjectService creates a new meta project service
func NewMetaProjectService(db *gorm.DB) *MetaProjectService {
	return &MetaProjectService{metaRepo: repository.NewMetaProjectRepository(db)}
}

// List retrieves meta projects with pagination
func (s *MetaProjectService) List(ctx context.Context, page, pageSize int) ([]models.MetaProject, int64, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	return s.metaRepo.GetAll(pageSize, (page-1)*pageSize)
}

// Get retrieves a meta project with its live member projects
func (s *MetaProjectService) Get(ctx context.Context, id uuid.UUID) (*models.MetaProject, error) {
	meta, err := s.metaRepo.GetWithProjects(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMetaProjectNotFound
		}
		return nil, err
	}
	return meta, nil
}
