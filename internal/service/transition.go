package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fund-reporting-backend/internal/database/models"
	apperrors "fund-reporting-backend/internal/errors"
	"fund-reporting-backend/internal/logger"
	"fund-reporting-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransitionAction names one workflow action on a project
type TransitionAction string

const (
	ActionSubmit          TransitionAction = "submit"
	ActionRecommend       TransitionAction = "recommend"
	ActionApprove         TransitionAction = "approve"
	ActionReject          TransitionAction = "reject"
	ActionWithdraw        TransitionAction = "withdraw"
	ActionSendBackToDraft TransitionAction = "send_back_to_draft"
)

// ApprovalPayload carries the decision attributes recorded on approval
type ApprovalPayload struct {
	MeetingID      *uuid.UUID `json:"meeting_id" binding:"required"`
	DecisionID     *uuid.UUID `json:"decision_id" binding:"required"`
	ExcomProvision string     `json:"excom_provision" binding:"required"`
	DateCompletion *time.Time `json:"date_completion" binding:"required"`
}

// TransitionRequest asks for one workflow action on a project. When the
// project belongs to a component group the action applies to every sibling at
// the same stage.
type TransitionRequest struct {
	ProjectID uuid.UUID
	Action    TransitionAction
	User      string
	Approval  *ApprovalPayload
}

// TransitionResult reports the projects that changed state
type TransitionResult struct {
	Projects []models.Project `json:"projects"`
}

// TransitionService runs the approval workflow. Every action is atomic over
// its whole batch: all members are locked, all members are validated, and only
// then are any of them written. A single failing member rolls everything back.
type TransitionService struct {
	db          *gorm.DB
	historyRepo *repository.ProjectHistoryRepository
	fieldsRepo  *repository.ProjectFieldsRepository
	notifier    Notifier
	log         *logger.Logger
}

// NewTransitionService creates a new transition service
func NewTransitionService(db *gorm.DB, notifier Notifier) *TransitionService {
	return &TransitionService{
		db:          db,
		historyRepo: repository.NewProjectHistoryRepository(db),
		fieldsRepo:  repository.NewProjectFieldsRepository(db),
		notifier:    notifier,
		log:         logger.New(),
	}
}

// Execute performs the requested action. The requested project is locked and
// inspected first; its component siblings at the same (status, version) join
// the batch automatically.
func (s *TransitionService) Execute(ctx context.Context, req *TransitionRequest) (*TransitionResult, error) {
	if req.Action == ActionApprove && req.Approval == nil {
		return nil, apperrors.NewValidationError("approval",
			"meeting, decision, excom provision and date of completion are required")
	}

	var result TransitionResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		history := s.historyRepo.WithTx(tx)

		head, err := projects.GetForUpdate(req.ProjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return err
		}
		if head.IsArchived() {
			return apperrors.ErrProjectArchived
		}

		batch := []models.Project{*head}
		if head.ComponentID != nil {
			siblings, err := projects.ComponentMembersForUpdate(
				*head.ComponentID, head.SubmissionStatus, head.Version, head.ID)
			if err != nil {
				return err
			}
			batch = append(batch, siblings...)
		}

		for i := range batch {
			if err := s.checkPrecondition(&batch[i], req.Action); err != nil {
				return err
			}
		}

		if err := s.validateBatch(tx, batch, req.Action); err != nil {
			return err
		}

		for i := range batch {
			if err := s.apply(tx, &batch[i], req, projects, history); err != nil {
				return err
			}
		}

		result.Projects = batch
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.Action == ActionSubmit {
		s.notifySubmitted(ctx, result.Projects, req.User)
	}
	return &result, nil
}

// checkPrecondition enforces the (submission status, version) combinations
// each action accepts
func (s *TransitionService) checkPrecondition(p *models.Project, action TransitionAction) error {
	switch action {
	case ActionSubmit:
		if p.SubmissionStatus != models.SubmissionStatusDraft {
			return transitionRefused(p, action)
		}
	case ActionRecommend:
		if p.SubmissionStatus != models.SubmissionStatusSubmitted || p.Version != 2 {
			return transitionRefused(p, action)
		}
	case ActionApprove, ActionReject:
		if p.SubmissionStatus != models.SubmissionStatusRecommended || p.Version != 3 {
			return transitionRefused(p, action)
		}
	case ActionWithdraw, ActionSendBackToDraft:
		if p.SubmissionStatus != models.SubmissionStatusSubmitted || p.Version != 2 {
			return transitionRefused(p, action)
		}
	default:
		return apperrors.NewTransitionError("unknown action %q", action)
	}
	return nil
}

func transitionRefused(p *models.Project, action TransitionAction) error {
	return apperrors.NewTransitionError(
		"project %s (%s) cannot be %s: submission status is %s at version %d",
		p.Title, p.ID, actionVerb(action), p.SubmissionStatus, p.Version)
}

func actionVerb(action TransitionAction) string {
	switch action {
	case ActionSubmit:
		return "submitted"
	case ActionRecommend:
		return "recommended"
	case ActionApprove:
		return "approved"
	case ActionReject:
		return "rejected"
	case ActionWithdraw:
		return "withdrawn"
	case ActionSendBackToDraft:
		return "sent back to draft"
	}
	return string(action)
}

// validateBatch runs the eligibility checks of the action over every member
// and rejects the whole batch when any member fails. No state has been
// written when this returns an error.
func (s *TransitionService) validateBatch(tx *gorm.DB, batch []models.Project, action TransitionAction) error {
	var check func(data *SubmissionData) apperrors.SubmissionErrors
	switch action {
	case ActionSubmit:
		check = ValidateSubmission
	case ActionRecommend:
		check = ValidateFieldCompleteness
	default:
		return nil
	}

	var failed []apperrors.ProjectValidationErrors
	for i := range batch {
		data, err := s.loadSubmissionData(tx, &batch[i])
		if err != nil {
			return err
		}
		if errs := check(data); !errs.Empty() {
			failed = append(failed, apperrors.ProjectValidationErrors{
				ID:     batch[i].ID,
				Title:  batch[i].Title,
				Errors: errs,
			})
		}
	}
	if len(failed) > 0 {
		return &apperrors.BatchValidationError{Items: failed}
	}
	return nil
}

// loadSubmissionData gathers everything the pure validators consult for one
// project, inside the action's transaction so it sees the locked rows.
func (s *TransitionService) loadSubmissionData(tx *gorm.DB, p *models.Project) (*SubmissionData, error) {
	data := &SubmissionData{Project: p}

	if err := tx.Where("project_id = ?", p.ID).Find(&data.OdsOdp).Error; err != nil {
		return nil, err
	}

	var subCount int64
	if err := tx.Table("project_project_subsectors").
		Where("project_id = ?", p.ID).Count(&subCount).Error; err != nil {
		return nil, err
	}
	data.SubSectorCount = int(subCount)

	if err := tx.Model(&models.ProjectFile{}).
		Where("project_id = ?", p.ID).Count(&data.FileCount).Error; err != nil {
		return nil, err
	}

	cfg, err := s.fieldConfigFor(tx, p)
	if err != nil {
		return nil, err
	}
	data.FieldConfig = cfg

	tranches, err := s.loadPreviousTranches(tx, p)
	if err != nil {
		return nil, err
	}
	data.PreviousTranches = tranches

	return data, nil
}

func (s *TransitionService) fieldConfigFor(tx *gorm.DB, p *models.Project) (*models.ProjectSpecificFields, error) {
	if p.ClusterID == nil || p.ProjectTypeID == nil || p.SectorID == nil {
		return nil, nil
	}
	cfg, err := s.fieldsRepo.WithTx(tx).GetForProject(*p.ClusterID, *p.ProjectTypeID, *p.SectorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadPreviousTranches finds the approved tranche-1 siblings within the same
// meta project, each paired with its own configured actual-indicator fields
func (s *TransitionService) loadPreviousTranches(tx *gorm.DB, p *models.Project) ([]TrancheEntry, error) {
	if p.Tranche == nil || *p.Tranche <= 1 || p.MetaProjectID == nil {
		return nil, nil
	}
	siblings, err := repository.NewProjectRepository(tx).PreviousTranches(*p.MetaProjectID, *p.Tranche-1)
	if err != nil {
		return nil, err
	}
	entries := make([]TrancheEntry, 0, len(siblings))
	for _, sib := range siblings {
		cfg, err := s.fieldConfigFor(tx, &sib)
		if err != nil {
			return nil, err
		}
		entry := TrancheEntry{Project: sib}
		if cfg != nil {
			entry.ActualFields = cfg.ActualFields()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// apply commits one member's transition: archive the pre-transition state
// when the action opens a new version, then advance the live row
func (s *TransitionService) apply(tx *gorm.DB, p *models.Project, req *TransitionRequest,
	projects *repository.ProjectRepository, history *repository.ProjectHistoryRepository) error {

	switch req.Action {
	case ActionSubmit:
		// A project sent back to draft resubmits at version 2 without
		// opening another version.
		if p.Version == 1 {
			if err := s.archiveAndBump(tx, p, req.User, projects); err != nil {
				return err
			}
		}
		p.SubmissionStatus = models.SubmissionStatusSubmitted

	case ActionRecommend:
		if err := s.archiveAndBump(tx, p, req.User, projects); err != nil {
			return err
		}
		p.SubmissionStatus = models.SubmissionStatusRecommended

	case ActionApprove:
		p.SubmissionStatus = models.SubmissionStatusApproved
		p.Status = models.ProjectStatusOngoing
		p.MeetingID = req.Approval.MeetingID
		p.DecisionID = req.Approval.DecisionID
		p.ExcomProvision = req.Approval.ExcomProvision
		p.DateCompletion = req.Approval.DateCompletion

	case ActionReject:
		p.SubmissionStatus = models.SubmissionStatusNotApproved

	case ActionWithdraw:
		p.SubmissionStatus = models.SubmissionStatusWithdrawn
		p.ComponentID = nil

	case ActionSendBackToDraft:
		p.SubmissionStatus = models.SubmissionStatusDraft
	}

	if err := projects.Update(p); err != nil {
		return err
	}

	return history.Create(&models.ProjectHistory{
		ProjectID:   p.ID,
		Description: historyDescription(req.Action, p),
		UserID:      req.User,
	})
}

// archiveAndBump freezes the current state of the live row as a new archived
// snapshot (children and subsector links deep-copied) and increments the live
// row's version. The live row keeps its id so external references survive
// version increases.
func (s *TransitionService) archiveAndBump(tx *gorm.DB, p *models.Project, user string,
	projects *repository.ProjectRepository) error {

	archive := *p
	archive.BaseModel = models.BaseModel{}
	archive.LatestProjectID = &p.ID
	clearRelations(&archive)

	if err := projects.CreateArchive(&archive); err != nil {
		return err
	}
	if err := projects.CloneChildren(p.ID, archive.ID); err != nil {
		return err
	}
	if err := tx.Exec(
		`INSERT INTO project_project_subsectors (project_id, project_sub_sector_id)
		 SELECT ?, project_sub_sector_id FROM project_project_subsectors WHERE project_id = ?`,
		archive.ID, p.ID).Error; err != nil {
		return err
	}

	p.Version++
	p.VersionCreatedBy = user
	return nil
}

// clearRelations drops loaded associations so gorm does not cascade-save them
// onto the archive insert
func clearRelations(p *models.Project) {
	p.Country = nil
	p.Agency = nil
	p.Cluster = nil
	p.ProjectType = nil
	p.Sector = nil
	p.SubSectors = nil
	p.Meeting = nil
	p.Decision = nil
	p.MetaProject = nil
	p.Component = nil
	p.OdsOdp = nil
	p.Funds = nil
	p.RBMMeasures = nil
	p.SubmissionAmounts = nil
	p.Comments = nil
	p.Files = nil
	p.History = nil
}

func historyDescription(action TransitionAction, p *models.Project) string {
	switch action {
	case ActionSubmit:
		return "Project submitted (version " + itoa(p.Version) + ")"
	case ActionRecommend:
		return "Project recommended (version " + itoa(p.Version) + ")"
	case ActionApprove:
		return "Project approved"
	case ActionReject:
		return "Project not approved"
	case ActionWithdraw:
		return "Project withdrawn"
	case ActionSendBackToDraft:
		return "Project sent back to draft"
	}
	return string(action)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func (s *TransitionService) notifySubmitted(ctx context.Context, batch []models.Project, user string) {
	if s.notifier == nil {
		return
	}
	for i := range batch {
		if err := s.notifier.ProjectSubmitted(ctx, &batch[i], user); err != nil {
			s.log.WithField("project_id", batch[i].ID).
				WithField("error", err.Error()).
				Warn("failed to publish submission notification")
		}
	}
}
