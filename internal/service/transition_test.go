package service

import (
	"context"
	"testing"

	"fund-reporting-backend/internal/database/models"
	apperrors "fund-reporting-backend/internal/errors"
	"fund-reporting-backend/internal/mocks"
	"fund-reporting-backend/internal/repository"
	"fund-reporting-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TransitionServiceTestSuite tests the approval workflow end to end against a
// real database
type TransitionServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	svc           *TransitionService
	projectRepo   *repository.ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TransitionServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.svc = NewTransitionService(suite.baseTestSuite.DB, &NoopNotifier{})
	suite.projectRepo = repository.NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TransitionServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TransitionServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TransitionServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createSubmittable persists a draft v1 project that passes every submission
// check: complete mandatory fields, one subsector link, one attached file
func (suite *TransitionServiceTestSuite) createSubmittable() *models.Project {
	country, agency, cluster, projectType, sector, meeting := suite.factories.CreateCatalogSet()
	for _, row := range []interface{}{country, agency, cluster, projectType, sector, meeting} {
		suite.Require().NoError(suite.baseTestSuite.DB.Create(row).Error)
	}

	project := suite.factories.Project.WithCatalogRefs(country, agency, cluster, projectType, sector, meeting)
	suite.Require().NoError(suite.projectRepo.Create(project))

	subSector := suite.factories.SubSector.WithSector(sector.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(subSector).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Exec(
		`INSERT INTO project_project_subsectors (project_id, project_sub_sector_id) VALUES (?, ?)`,
		project.ID, subSector.ID).Error)

	file := suite.factories.ProjectFile.Create(project.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(file).Error)

	return project
}

func (suite *TransitionServiceTestSuite) execute(projectID uuid.UUID, action TransitionAction) (*TransitionResult, error) {
	return suite.svc.Execute(context.Background(), &TransitionRequest{
		ProjectID: projectID,
		Action:    action,
		User:      "tester",
	})
}

func (suite *TransitionServiceTestSuite) historyDescriptions(projectID uuid.UUID) []string {
	var rows []models.ProjectHistory
	suite.Require().NoError(suite.baseTestSuite.DB.
		Where("project_id = ?", projectID).Order("created_at").Find(&rows).Error)
	descriptions := make([]string, 0, len(rows))
	for _, row := range rows {
		descriptions = append(descriptions, row.Description)
	}
	return descriptions
}

func (suite *TransitionServiceTestSuite) TestSubmitOpensVersionTwoAndArchivesVersionOne() {
	project := suite.createSubmittable()

	result, err := suite.execute(project.ID, ActionSubmit)
	suite.Require().NoError(err)
	suite.Require().Len(result.Projects, 1)

	live, err := suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubmissionStatusSubmitted, live.SubmissionStatus)
	suite.Equal(2, live.Version)
	suite.Equal("tester", live.VersionCreatedBy)
	suite.Equal(project.ID, live.ID, "the live row keeps its id across version increases")

	versions, err := suite.projectRepo.ListVersions(project.ID)
	suite.Require().NoError(err)
	suite.Require().Len(versions, 1)
	suite.Equal(1, versions[0].Version)
	suite.Equal(models.SubmissionStatusDraft, versions[0].SubmissionStatus)
	suite.Equal(project.ID, *versions[0].LatestProjectID)
	suite.NotEqual(project.ID, versions[0].ID)

	// Children and subsector links were deep-copied onto the snapshot
	var fileCount int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.ProjectFile{}).
		Where("project_id = ?", versions[0].ID).Count(&fileCount).Error)
	suite.Equal(int64(1), fileCount)

	var subCount int64
	suite.Require().NoError(suite.baseTestSuite.DB.Table("project_project_subsectors").
		Where("project_id = ?", versions[0].ID).Count(&subCount).Error)
	suite.Equal(int64(1), subCount)

	suite.Contains(suite.historyDescriptions(project.ID), "Project submitted (version 2)")
}

func (suite *TransitionServiceTestSuite) TestSubmitIncompleteProjectRejectedWithoutSideEffects() {
	project := suite.factories.Project.Create() // no catalog refs, no file
	suite.Require().NoError(suite.projectRepo.Create(project))

	_, err := suite.execute(project.ID, ActionSubmit)
	suite.Require().Error(err)

	var batchErr *apperrors.BatchValidationError
	suite.Require().ErrorAs(err, &batchErr)
	suite.Require().Len(batchErr.Items, 1)
	suite.Contains(batchErr.Items[0].Errors, "country")
	suite.Equal([]string{"At least one file must be attached before submission."},
		batchErr.Items[0].Errors["files"])

	live, err := suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubmissionStatusDraft, live.SubmissionStatus)
	suite.Equal(1, live.Version)

	versions, err := suite.projectRepo.ListVersions(project.ID)
	suite.Require().NoError(err)
	suite.Empty(versions)
	suite.Empty(suite.historyDescriptions(project.ID))
}

func (suite *TransitionServiceTestSuite) TestComponentGroupSubmitsTogether() {
	group := &models.ComponentGroup{}
	suite.Require().NoError(suite.baseTestSuite.DB.Create(group).Error)

	head := suite.createSubmittable()
	sibling := suite.createSubmittable()
	for _, p := range []*models.Project{head, sibling} {
		p.ComponentID = &group.ID
		suite.Require().NoError(suite.projectRepo.Update(p))
	}

	result, err := suite.execute(head.ID, ActionSubmit)
	suite.Require().NoError(err)
	suite.Len(result.Projects, 2)

	for _, id := range []uuid.UUID{head.ID, sibling.ID} {
		live, err := suite.projectRepo.GetByID(id)
		suite.Require().NoError(err)
		suite.Equal(models.SubmissionStatusSubmitted, live.SubmissionStatus)
		suite.Equal(2, live.Version)
	}
}

func (suite *TransitionServiceTestSuite) TestOneInvalidMemberRollsBackTheWholeBatch() {
	group := &models.ComponentGroup{}
	suite.Require().NoError(suite.baseTestSuite.DB.Create(group).Error)

	complete := suite.createSubmittable()
	incomplete := suite.factories.Project.Create()
	suite.Require().NoError(suite.projectRepo.Create(incomplete))
	for _, p := range []*models.Project{complete, incomplete} {
		p.ComponentID = &group.ID
		suite.Require().NoError(suite.projectRepo.Update(p))
	}

	_, err := suite.execute(complete.ID, ActionSubmit)
	suite.Require().Error(err)

	var batchErr *apperrors.BatchValidationError
	suite.Require().ErrorAs(err, &batchErr)
	suite.Require().Len(batchErr.Items, 1)
	suite.Equal(incomplete.ID, batchErr.Items[0].ID)

	// Neither member moved and nothing was archived or recorded
	for _, id := range []uuid.UUID{complete.ID, incomplete.ID} {
		live, err := suite.projectRepo.GetByID(id)
		suite.Require().NoError(err)
		suite.Equal(models.SubmissionStatusDraft, live.SubmissionStatus)
		suite.Equal(1, live.Version)

		versions, err := suite.projectRepo.ListVersions(id)
		suite.Require().NoError(err)
		suite.Empty(versions)
		suite.Empty(suite.historyDescriptions(id))
	}
}

func (suite *TransitionServiceTestSuite) TestRecommendOpensVersionThree() {
	project := suite.createSubmittable()

	_, err := suite.execute(project.ID, ActionSubmit)
	suite.Require().NoError(err)

	_, err = suite.execute(project.ID, ActionRecommend)
	suite.Require().NoError(err)

	live, err := suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubmissionStatusRecommended, live.SubmissionStatus)
	suite.Equal(3, live.Version)

	versions, err := suite.projectRepo.ListVersions(project.ID)
	suite.Require().NoError(err)
	suite.Require().Len(versions, 2)
	suite.Equal(models.SubmissionStatusDraft, versions[0].SubmissionStatus)
	suite.Equal(models.SubmissionStatusSubmitted, versions[1].SubmissionStatus)
}

func (suite *TransitionServiceTestSuite) TestApproveRequiresRecommendedVersionThree() {
	project := suite.createSubmittable()
	_, err := suite.execute(project.ID, ActionSubmit)
	suite.Require().NoError(err)

	_, err = suite.svc.Execute(context.Background(), &TransitionRequest{
		ProjectID: project.ID,
		Action:    ActionApprove,
		User:      "tester",
		Approval:  suite.approvalPayload(),
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsTransition(err))
}

func (suite *TransitionServiceTestSuite) TestApproveWithoutPayloadRejected() {
	project := suite.createSubmittable()

	_, err := suite.execute(project.ID, ActionApprove)
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TransitionServiceTestSuite) approvalPayload() *ApprovalPayload {
	meeting := suite.factories.Meeting.Create()
	decision := suite.factories.Decision.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(meeting).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(decision).Error)

	completion := meeting.CreatedAt.AddDate(1, 0, 0)
	return &ApprovalPayload{
		MeetingID:      &meeting.ID,
		DecisionID:     &decision.ID,
		ExcomProvision: "Approved in principle",
		DateCompletion: &completion,
	}
}

func (suite *TransitionServiceTestSuite) TestApproveRecordsDecisionAttributes() {
	project := suite.createSubmittable()
	_, err := suite.execute(project.ID, ActionSubmit)
	suite.Require().NoError(err)
	_, err = suite.execute(project.ID, ActionRecommend)
	suite.Require().NoError(err)

	payload := suite.approvalPayload()
	_, err = suite.svc.Execute(context.Background(), &TransitionRequest{
		ProjectID: project.ID,
		Action:    ActionApprove,
		User:      "tester",
		Approval:  payload,
	})
	suite.Require().NoError(err)

	live, err := suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubmissionStatusApproved, live.SubmissionStatus)
	suite.Equal(models.ProjectStatusOngoing, live.Status)
	suite.Equal(3, live.Version, "approval does not open a new version")
	suite.Equal(*payload.MeetingID, *live.MeetingID)
	suite.Equal(*payload.DecisionID, *live.DecisionID)
	suite.Equal("Approved in principle", live.ExcomProvision)
	suite.NotNil(live.DateCompletion)

	suite.Contains(suite.historyDescriptions(project.ID), "Project approved")
}

func (suite *TransitionServiceTestSuite) TestWithdrawDetachesComponent() {
	group := &models.ComponentGroup{}
	suite.Require().NoError(suite.baseTestSuite.DB.Create(group).Error)

	project := suite.createSubmittable()
	project.ComponentID = &group.ID
	suite.Require().NoError(suite.projectRepo.Update(project))

	_, err := suite.execute(project.ID, ActionSubmit)
	suite.Require().NoError(err)
	_, err = suite.execute(project.ID, ActionWithdraw)
	suite.Require().NoError(err)

	live, err := suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubmissionStatusWithdrawn, live.SubmissionStatus)
	suite.Nil(live.ComponentID)
}

func (suite *TransitionServiceTestSuite) TestSendBackToDraftKeepsVersionAndResubmitSkipsArchive() {
	project := suite.createSubmittable()

	_, err := suite.execute(project.ID, ActionSubmit)
	suite.Require().NoError(err)
	_, err = suite.execute(project.ID, ActionSendBackToDraft)
	suite.Require().NoError(err)

	live, err := suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubmissionStatusDraft, live.SubmissionStatus)
	suite.Equal(2, live.Version, "returning to draft does not roll the version back")

	// Resubmitting the corrected draft stays at version 2
	_, err = suite.execute(project.ID, ActionSubmit)
	suite.Require().NoError(err)

	live, err = suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubmissionStatusSubmitted, live.SubmissionStatus)
	suite.Equal(2, live.Version)

	versions, err := suite.projectRepo.ListVersions(project.ID)
	suite.Require().NoError(err)
	suite.Len(versions, 1, "only the original draft was archived")
}

func (suite *TransitionServiceTestSuite) TestSubmitLaterTrancheRequiresApprovedPredecessor() {
	meta := suite.factories.MetaProject.WithType(models.MetaProjectTypeMYA)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(meta).Error)

	tranche := 2
	project := suite.createSubmittable()
	project.MetaProjectID = &meta.ID
	project.Tranche = &tranche
	suite.Require().NoError(suite.projectRepo.Update(project))

	_, err := suite.execute(project.ID, ActionSubmit)
	suite.Require().Error(err)

	var batchErr *apperrors.BatchValidationError
	suite.Require().ErrorAs(err, &batchErr)
	suite.Require().Len(batchErr.Items, 1)
	suite.Equal([]string{"Project must have at least one previous tranche entry."},
		batchErr.Items[0].Errors["previous_tranches"])

	// Once tranche 1 is approved within the same meta project the rule passes
	previousTranche := 1
	predecessor := suite.factories.Project.WithStatus(models.SubmissionStatusApproved, 3)
	predecessor.MetaProjectID = &meta.ID
	predecessor.Tranche = &previousTranche
	suite.Require().NoError(suite.projectRepo.Create(predecessor))

	_, err = suite.execute(project.ID, ActionSubmit)
	suite.Require().NoError(err)

	live, err := suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubmissionStatusSubmitted, live.SubmissionStatus)
}

func (suite *TransitionServiceTestSuite) TestSubmitPublishesOneEventPerMember() {
	ctrl := gomock.NewController(suite.T())
	notifier := mocks.NewMockNotifier(ctrl)
	svc := NewTransitionService(suite.baseTestSuite.DB, notifier)

	group := &models.ComponentGroup{}
	suite.Require().NoError(suite.baseTestSuite.DB.Create(group).Error)

	head := suite.createSubmittable()
	sibling := suite.createSubmittable()
	for _, p := range []*models.Project{head, sibling} {
		p.ComponentID = &group.ID
		suite.Require().NoError(suite.projectRepo.Update(p))
	}

	notifier.EXPECT().
		ProjectSubmitted(gomock.Any(), gomock.Any(), "tester").
		Return(nil).
		Times(2)

	_, err := svc.Execute(context.Background(), &TransitionRequest{
		ProjectID: head.ID,
		Action:    ActionSubmit,
		User:      "tester",
	})
	suite.Require().NoError(err)
}

func (suite *TransitionServiceTestSuite) TestRejectedSubmitPublishesNothing() {
	ctrl := gomock.NewController(suite.T())
	notifier := mocks.NewMockNotifier(ctrl)
	svc := NewTransitionService(suite.baseTestSuite.DB, notifier)

	incomplete := suite.factories.Project.Create()
	suite.Require().NoError(suite.projectRepo.Create(incomplete))

	_, err := svc.Execute(context.Background(), &TransitionRequest{
		ProjectID: incomplete.ID,
		Action:    ActionSubmit,
		User:      "tester",
	})
	suite.Require().Error(err)
}

func (suite *TransitionServiceTestSuite) TestTransitionOnArchivedRowRefused() {
	live := suite.createSubmittable()

	archive := suite.factories.Project.Create()
	archive.LatestProjectID = &live.ID
	suite.Require().NoError(suite.projectRepo.CreateArchive(archive))

	_, err := suite.execute(archive.ID, ActionSubmit)
	suite.Require().ErrorIs(err, apperrors.ErrProjectArchived)
}

func (suite *TransitionServiceTestSuite) TestTransitionOnMissingProject() {
	_, err := suite.execute(uuid.New(), ActionSubmit)
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestTransitionServiceTestSuite runs the test suite
func TestTransitionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionServiceTestSuite))
}
