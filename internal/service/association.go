package service

import (
	"context"
	"errors"
	"fmt"

	"fund-reporting-backend/internal/database/models"
	apperrors "fund-reporting-backend/internal/errors"
	"fund-reporting-backend/internal/logger"
	"fund-reporting-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssociationService groups projects under a shared meta project. Association
// is how tranches of a multi-year agreement and multi-agency components get
// tied to one funding lineage.
type AssociationService struct {
	db        *gorm.DB
	validator *validator.Validate
	log       *logger.Logger
}

// NewAssociationService creates a new association service
func NewAssociationService(db *gorm.DB, validate *validator.Validate) *AssociationService {
	return &AssociationService{db: db, validator: validate, log: logger.New()}
}

// AssociateRequest names the projects to place under one meta project
type AssociateRequest struct {
	ProjectIDs   []uuid.UUID `json:"project_ids" binding:"required,min=1" validate:"required,min=1"`
	LeadAgencyID *uuid.UUID  `json:"lead_agency_id"`
	User         string      `json:"-"`
}

// AssociateResult reports the meta project the targets now share, plus any
// soft warnings
type AssociateResult struct {
	MetaProject *models.MetaProject `json:"meta_project"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// Associate places every target project under one meta project. When a target
// already belongs to a meta project that one is reused (the first found, with
// a warning if the targets span several); otherwise a fresh meta project is
// created from the first target's country and cluster. The meta project's
// aggregate code is recomputed from the resulting membership.
func (s *AssociationService) Associate(ctx context.Context, req *AssociateRequest) (*AssociateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrNoProjectsSelected
	}

	var result AssociateResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		metas := repository.NewMetaProjectRepository(tx)
		history := repository.NewProjectHistoryRepository(tx)

		targets, err := projects.ListByIDs(req.ProjectIDs)
		if err != nil {
			return err
		}
		if len(targets) != len(req.ProjectIDs) {
			return apperrors.ErrProjectNotFound
		}
		for i := range targets {
			if targets[i].IsArchived() {
				return apperrors.ErrProjectArchived
			}
		}

		meta, warnings, err := s.resolveMetaProject(tx, targets, metas)
		if err != nil {
			return err
		}
		result.Warnings = warnings

		if req.LeadAgencyID != nil {
			meta.LeadAgencyID = req.LeadAgencyID
		}

		for i := range targets {
			if targets[i].MetaProjectID != nil && *targets[i].MetaProjectID == meta.ID {
				continue
			}
			targets[i].MetaProjectID = &meta.ID
			if err := projects.Update(&targets[i]); err != nil {
				return err
			}
			if err := history.Create(&models.ProjectHistory{
				ProjectID:   targets[i].ID,
				Description: fmt.Sprintf("Project associated with meta project %s", meta.Code),
				UserID:      req.User,
			}); err != nil {
				return err
			}
		}

		members, err := projects.ListByMetaProject(meta.ID)
		if err != nil {
			return err
		}
		meta.NewCode = GetMetaProjectNewCode(members)
		if err := metas.Update(meta); err != nil {
			return err
		}

		result.MetaProject = meta
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// resolveMetaProject picks the meta project the targets will share: the first
// pre-existing one among them, or a newly created one
func (s *AssociationService) resolveMetaProject(tx *gorm.DB, targets []models.Project,
	metas *repository.MetaProjectRepository) (*models.MetaProject, []string, error) {

	var warnings []string

	seen := map[uuid.UUID]bool{}
	var existing []uuid.UUID
	for i := range targets {
		if id := targets[i].MetaProjectID; id != nil && !seen[*id] {
			seen[*id] = true
			existing = append(existing, *id)
		}
	}

	if len(existing) > 0 {
		if len(existing) > 1 {
			warnings = append(warnings, apperrors.WarnMultipleMetaProjects)
		}
		meta, err := metas.GetByID(existing[0])
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperrors.ErrMetaProjectNotFound
			}
			return nil, nil, err
		}
		return meta, warnings, nil
	}

	meta, err := s.newMetaProject(tx, &targets[0])
	if err != nil {
		return nil, nil, err
	}
	if meta.Code != "" {
		count, err := metas.CountByCode(meta.Code)
		if err != nil {
			return nil, nil, err
		}
		if count > 0 {
			warnings = append(warnings,
				fmt.Sprintf("Meta project code %s already exists.", meta.Code))
		}
	}
	if err := metas.Create(meta); err != nil {
		return nil, nil, err
	}
	return meta, warnings, nil
}

// newMetaProject derives a fresh meta project from a seed project's country,
// cluster, and serial number
func (s *AssociationService) newMetaProject(tx *gorm.DB, seed *models.Project) (*models.MetaProject, error) {
	catalogs := repository.NewCatalogRepository(tx)

	var country *models.Country
	var cluster *models.ProjectCluster
	var err error
	if seed.CountryID != nil {
		if country, err = catalogs.GetCountry(*seed.CountryID); err != nil {
			return nil, err
		}
	}
	if seed.ClusterID != nil {
		if cluster, err = catalogs.GetCluster(*seed.ClusterID); err != nil {
			return nil, err
		}
	}

	metaType := models.MetaProjectTypeIndividual
	if seed.Tranche != nil {
		metaType = models.MetaProjectTypeMYA
	}

	return &models.MetaProject{
		Code:         GetMetaProjectCode(country, cluster, seed.SerialNumber),
		Type:         metaType,
		LeadAgencyID: seed.AgencyID,
	}, nil
}
