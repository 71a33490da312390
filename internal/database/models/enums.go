package models

// SubmissionStatus is the approval workflow state of a project version lineage
type SubmissionStatus string

const (
	SubmissionStatusDraft       SubmissionStatus = "draft"
	SubmissionStatusSubmitted   SubmissionStatus = "submitted"
	SubmissionStatusRecommended SubmissionStatus = "recommended"
	SubmissionStatusApproved    SubmissionStatus = "approved"
	SubmissionStatusNotApproved SubmissionStatus = "not_approved"
	SubmissionStatusWithdrawn   SubmissionStatus = "withdrawn"
)

// ProjectStatus is the operational (real-world execution) state, independent
// of the submission workflow. Codes follow the legacy reporting convention.
type ProjectStatus string

const (
	ProjectStatusNewSubmission ProjectStatus = "NEW"
	ProjectStatusOngoing       ProjectStatus = "ONG"
	ProjectStatusCompleted     ProjectStatus = "COM"
	ProjectStatusClosed        ProjectStatus = "CLO"
	ProjectStatusTransferred   ProjectStatus = "TRF"
)

// MetaProjectType distinguishes one-off projects from multi-year agreements
type MetaProjectType string

const (
	MetaProjectTypeIndividual MetaProjectType = "individual"
	MetaProjectTypeMYA        MetaProjectType = "mya"
)

// FieldSection identifies where a configured project field is reported
type FieldSection string

const (
	FieldSectionHeader           FieldSection = "Header"
	FieldSectionSubstanceDetails FieldSection = "Substance Details"
	FieldSectionImpact           FieldSection = "Impact"
	FieldSectionImpactActual     FieldSection = "Impact (actual)"
)

// FieldTable names the logical table a configured field is read from
const (
	FieldTableProject = "project"
	FieldTableOdsOdp  = "ods_odp"
)
