package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents one funded intervention, versioned across its approval
// lifecycle. An archived row (LatestProjectID set) is an immutable snapshot of
// a superseded version; the live head of a lineage has LatestProjectID nil.
type Project struct {
	BaseModel
	Code         string `json:"code" gorm:"size:64;index"`
	LegacyCode   string `json:"legacy_code" gorm:"size:64"`
	SerialNumber int    `json:"serial_number"`

	Title       string `json:"title" gorm:"size:250"`
	Description string `json:"description" gorm:"type:text"`

	CountryID     *uuid.UUID `json:"country_id" gorm:"type:uuid;index"`
	AgencyID      *uuid.UUID `json:"agency_id" gorm:"type:uuid;index"`
	ClusterID     *uuid.UUID `json:"cluster_id" gorm:"type:uuid;index"`
	ProjectTypeID *uuid.UUID `json:"project_type_id" gorm:"type:uuid"`
	SectorID      *uuid.UUID `json:"sector_id" gorm:"type:uuid"`

	MeetingID         *uuid.UUID `json:"meeting_id" gorm:"type:uuid"`
	TransferMeetingID *uuid.UUID `json:"transfer_meeting_id" gorm:"type:uuid"`
	DecisionID        *uuid.UUID `json:"decision_id" gorm:"type:uuid"`

	MetaProjectID *uuid.UUID `json:"meta_project_id" gorm:"type:uuid;index"`
	ComponentID   *uuid.UUID `json:"component_id" gorm:"type:uuid;index"`

	SubmissionStatus SubmissionStatus `json:"submission_status" gorm:"type:varchar(20);default:'draft';index"`
	Status           ProjectStatus    `json:"status" gorm:"type:varchar(10);default:'NEW'"`

	Version          int        `json:"version" gorm:"default:1"`
	LatestProjectID  *uuid.UUID `json:"latest_project_id" gorm:"type:uuid;index"`
	VersionCreatedBy string     `json:"version_created_by" gorm:"size:100"`

	Tranche *int  `json:"tranche"`
	IsLVC   *bool `json:"is_lvc"`

	ProjectStartDate *time.Time `json:"project_start_date"`
	ProjectEndDate   *time.Time `json:"project_end_date"`
	DateCompletion   *time.Time `json:"date_completion"`

	TotalFund      *float64 `json:"total_fund"`
	SupportCostPSC *float64 `json:"support_cost_psc"`
	ExcomProvision string   `json:"excom_provision" gorm:"type:text"`

	// Actual (post-approval) progress indicators
	FundsDisbursed       *float64   `json:"funds_disbursed"`
	DateActualCompletion *time.Time `json:"date_actual_completion"`
	PhaseOutActual       *float64   `json:"phase_out_actual"`

	// Relationships
	Country     *Country           `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	Agency      *Agency            `json:"agency,omitempty" gorm:"foreignKey:AgencyID"`
	Cluster     *ProjectCluster    `json:"cluster,omitempty" gorm:"foreignKey:ClusterID"`
	ProjectType *ProjectType       `json:"project_type,omitempty" gorm:"foreignKey:ProjectTypeID"`
	Sector      *ProjectSector     `json:"sector,omitempty" gorm:"foreignKey:SectorID"`
	SubSectors  []ProjectSubSector `json:"subsectors,omitempty" gorm:"many2many:project_project_subsectors"`
	Meeting     *Meeting           `json:"meeting,omitempty" gorm:"foreignKey:MeetingID"`
	Decision    *Decision          `json:"decision,omitempty" gorm:"foreignKey:DecisionID"`
	MetaProject *MetaProject       `json:"meta_project,omitempty" gorm:"foreignKey:MetaProjectID"`
	Component   *ComponentGroup    `json:"component,omitempty" gorm:"foreignKey:ComponentID"`

	OdsOdp            []ProjectOdsOdp    `json:"ods_odp,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Funds             []ProjectFund      `json:"funds,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	RBMMeasures       []ProjectRBMMeasure `json:"rbm_measures,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	SubmissionAmounts []SubmissionAmount `json:"submission_amounts,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Comments          []ProjectComment   `json:"comments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Files             []ProjectFile      `json:"files,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	History           []ProjectHistory   `json:"history,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// IsArchived reports whether this row is a frozen snapshot of a prior version
func (p *Project) IsArchived() bool {
	return p.LatestProjectID != nil
}
