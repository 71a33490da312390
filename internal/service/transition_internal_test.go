package service

import (
	"testing"

	"fund-reporting-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestTransitionPreconditions(t *testing.T) {
	s := &TransitionService{}

	cases := []struct {
		name    string
		status  models.SubmissionStatus
		version int
		action  TransitionAction
		allowed bool
	}{
		{"submit draft v1", models.SubmissionStatusDraft, 1, ActionSubmit, true},
		{"resubmit draft v2", models.SubmissionStatusDraft, 2, ActionSubmit, true},
		{"submit submitted", models.SubmissionStatusSubmitted, 2, ActionSubmit, false},
		{"submit approved", models.SubmissionStatusApproved, 3, ActionSubmit, false},

		{"recommend submitted v2", models.SubmissionStatusSubmitted, 2, ActionRecommend, true},
		{"recommend submitted v1", models.SubmissionStatusSubmitted, 1, ActionRecommend, false},
		{"recommend draft v2", models.SubmissionStatusDraft, 2, ActionRecommend, false},

		{"approve recommended v3", models.SubmissionStatusRecommended, 3, ActionApprove, true},
		{"approve recommended v2", models.SubmissionStatusRecommended, 2, ActionApprove, false},
		{"approve submitted v3", models.SubmissionStatusSubmitted, 3, ActionApprove, false},

		{"reject recommended v3", models.SubmissionStatusRecommended, 3, ActionReject, true},
		{"reject draft v1", models.SubmissionStatusDraft, 1, ActionReject, false},

		{"withdraw submitted v2", models.SubmissionStatusSubmitted, 2, ActionWithdraw, true},
		{"withdraw recommended v3", models.SubmissionStatusRecommended, 3, ActionWithdraw, false},

		{"send back submitted v2", models.SubmissionStatusSubmitted, 2, ActionSendBackToDraft, true},
		{"send back draft v1", models.SubmissionStatusDraft, 1, ActionSendBackToDraft, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &models.Project{
				Title:            "Test",
				SubmissionStatus: tc.status,
				Version:          tc.version,
			}
			err := s.checkPrecondition(p, tc.action)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTransitionUnknownAction(t *testing.T) {
	s := &TransitionService{}
	err := s.checkPrecondition(&models.Project{}, TransitionAction("promote"))
	assert.Error(t, err)
}
