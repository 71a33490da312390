package models

import (
	"time"

	"github.com/google/uuid"
)

// Child collections owned by a Project. Each is deep-copied onto the archived
// snapshot when a version increase freezes the current row.

// ProjectOdsOdp records one substance (or blend) phase-out line of a project.
// OdsSubstanceID and OdsBlendID are mutually exclusive per row.
type ProjectOdsOdp struct {
	BaseModel
	ProjectID      uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index"`
	OdsSubstanceID *uuid.UUID `json:"ods_substance_id" gorm:"type:uuid"`
	OdsBlendID     *uuid.UUID `json:"ods_blend_id" gorm:"type:uuid"`
	OdsDisplayName *string    `json:"ods_display_name" gorm:"size:150"`
	OdpAmount      *float64   `json:"odp_amount"`
	CO2MT          *float64   `json:"co2_mt"`
	PhaseOutMT     *float64   `json:"phase_out_mt"`
	SortOrder      int        `json:"sort_order" gorm:"default:0"`

	OdsSubstance *OdsSubstance `json:"ods_substance,omitempty" gorm:"foreignKey:OdsSubstanceID"`
	OdsBlend     *OdsBlend     `json:"ods_blend,omitempty" gorm:"foreignKey:OdsBlendID"`
}

func (ProjectOdsOdp) TableName() string { return "project_ods_odp" }

// ProjectFund is one approved/adjusted/transferred funding line
type ProjectFund struct {
	BaseModel
	ProjectID      uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index"`
	FundType       string     `json:"fund_type" gorm:"size:30"`
	Amount         *float64   `json:"amount"`
	SupportPSC     *float64   `json:"support_psc"`
	InterestAmount *float64   `json:"interest_amount"`
	MeetingID      *uuid.UUID `json:"meeting_id" gorm:"type:uuid"`
}

func (ProjectFund) TableName() string { return "project_funds" }

// ProjectRBMMeasure is one results-based-management indicator value
type ProjectRBMMeasure struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Measure   string    `json:"measure" gorm:"size:150"`
	Value     *float64  `json:"value"`
}

func (ProjectRBMMeasure) TableName() string { return "project_rbm_measures" }

// SubmissionAmount is the per-agency requested/recommended amount of a submission
type SubmissionAmount struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Label       string    `json:"label" gorm:"size:50"` // requested / recommended
	Amount      *float64  `json:"amount"`
	SupportCost *float64  `json:"support_cost"`
	Overridden  bool      `json:"overridden" gorm:"default:false"`
}

func (SubmissionAmount) TableName() string { return "submission_amounts" }

// ProjectComment carries secretariat/agency remarks tied to a meeting of report
type ProjectComment struct {
	BaseModel
	ProjectID          uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index"`
	MeetingOfReportID  *uuid.UUID `json:"meeting_of_report_id" gorm:"type:uuid"`
	SecretariatComment string     `json:"secretariat_comment" gorm:"type:text"`
	AgencyResponse     string     `json:"agency_response" gorm:"type:text"`
}

func (ProjectComment) TableName() string { return "project_comments" }

// ProjectFile is the metadata record of an uploaded supporting document
type ProjectFile struct {
	BaseModel
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Filename   string    `json:"filename" gorm:"not null;size:250"`
	Path       string    `json:"path" gorm:"size:500"`
	UploadedBy string    `json:"uploaded_by" gorm:"size:100"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func (ProjectFile) TableName() string { return "project_files" }
