package service

import (
	"fmt"

	"fund-reporting-backend/internal/database/models"
	apperrors "fund-reporting-backend/internal/errors"
)

// Submission eligibility checks. All functions here are pure over data the
// caller has already loaded, so they can be tested without a database. Checks
// accumulate: every problem is reported in one pass.

const msgFieldRequired = "This field is required."

// TrancheEntry bundles one previous-tranche sibling with its configured
// actual-indicator fields
type TrancheEntry struct {
	Project      models.Project
	ActualFields []models.ProjectField
}

// SubmissionData is everything the submission validator consults
type SubmissionData struct {
	Project          *models.Project
	OdsOdp           []models.ProjectOdsOdp
	SubSectorCount   int
	FileCount        int64
	FieldConfig      *models.ProjectSpecificFields // nil when no configuration matches
	PreviousTranches []TrancheEntry
}

// ValidateSubmission runs the full Draft -> Submitted eligibility check:
// mandatory fields, configured per-shape fields, attached file, and the
// previous-tranche rule. Returns an empty mapping when the project may be
// submitted.
func ValidateSubmission(data *SubmissionData) apperrors.SubmissionErrors {
	errs := ValidateFieldCompleteness(data)

	if data.FileCount == 0 {
		errs.Add("files", "At least one file must be attached before submission.")
	}

	trancheErrs, _ := CheckPreviousTranches(data.Project.Tranche, data.PreviousTranches)
	for _, msg := range trancheErrs {
		errs.Add("previous_tranches", msg)
	}

	return errs
}

// ValidateFieldCompleteness runs the mandatory-field and configured-field
// checks only (no file or tranche checks). Used on its own by the recommend
// transition.
func ValidateFieldCompleteness(data *SubmissionData) apperrors.SubmissionErrors {
	errs := apperrors.SubmissionErrors{}
	p := data.Project

	if p.ClusterID == nil {
		errs.Add("cluster", msgFieldRequired)
	}
	if p.ProjectTypeID == nil {
		errs.Add("project_type", msgFieldRequired)
	}
	if p.SectorID == nil {
		errs.Add("sector", msgFieldRequired)
	}
	if data.SubSectorCount == 0 {
		errs.Add("subsectors", "At least one subsector is required.")
	}
	if p.CountryID == nil {
		errs.Add("country", msgFieldRequired)
	}
	if p.AgencyID == nil {
		errs.Add("agency", msgFieldRequired)
	}
	if p.MeetingID == nil {
		errs.Add("meeting", msgFieldRequired)
	}
	if p.IsLVC == nil {
		errs.Add("is_lvc", msgFieldRequired)
	}
	if p.Title == "" {
		errs.Add("title", msgFieldRequired)
	}
	if p.Description == "" {
		errs.Add("description", msgFieldRequired)
	}
	if p.ProjectStartDate == nil {
		errs.Add("project_start_date", msgFieldRequired)
	}
	if p.ProjectEndDate == nil {
		errs.Add("project_end_date", msgFieldRequired)
	}
	if p.TotalFund == nil {
		errs.Add("total_fund", msgFieldRequired)
	}
	if p.SupportCostPSC == nil {
		errs.Add("support_cost_psc", msgFieldRequired)
	}

	if data.FieldConfig != nil {
		validateConfiguredFields(errs, p, data.OdsOdp, data.FieldConfig)
	}

	return errs
}

// validateConfiguredFields applies the declarative per-shape configuration:
// non-actual fields of the Header, Substance Details, and Impact sections
// must be populated, either on the project row or on every ods/odp child row.
func validateConfiguredFields(errs apperrors.SubmissionErrors, p *models.Project, odsRows []models.ProjectOdsOdp, cfg *models.ProjectSpecificFields) {
	for _, field := range cfg.SubmissionFields() {
		switch field.Table {
		case models.FieldTableOdsOdp:
			for _, row := range odsRows {
				if !OdsOdpFieldPopulated(&row, field.WriteFieldName) {
					errs.Add(field.WriteFieldName, msgFieldRequired)
					break
				}
			}
		default:
			if !ProjectFieldPopulated(p, field.WriteFieldName) {
				errs.Add(field.WriteFieldName, msgFieldRequired)
			}
		}
	}
}

// CheckPreviousTranches applies the previous-tranche rule. The aggregate
// error fires only when the tranche number exceeds 1 and no previous-tranche
// sibling exists at all (the legacy threshold; a stricter reading was
// deliberately not adopted). Each found sibling with a non-empty actual-field
// set and no populated actual indicator produces its own error. Warnings list
// every unfilled actual field independently of the errors, for the read-only
// previous-tranche listing.
func CheckPreviousTranches(tranche *int, prev []TrancheEntry) (errs []string, warnings []string) {
	if tranche == nil {
		return nil, nil
	}
	t := *tranche
	if t > 1 && len(prev) == 0 {
		errs = append(errs, "Project must have at least one previous tranche entry.")
	}

	for _, entry := range prev {
		actuals := projectTableFields(entry.ActualFields)
		if len(actuals) == 0 {
			continue
		}
		anyFilled := false
		for _, f := range actuals {
			if ProjectFieldPopulated(&entry.Project, f.WriteFieldName) {
				anyFilled = true
			} else {
				warnings = append(warnings, fmt.Sprintf("Previous tranche %s(%s): %s is not filled.",
					entry.Project.Title, entry.Project.ID, f.Label))
			}
		}
		if !anyFilled {
			errs = append(errs, fmt.Sprintf("Previous tranche %s(%s): At least one actual indicator should be filled.",
				entry.Project.Title, entry.Project.ID))
		}
	}
	return errs, warnings
}

func projectTableFields(fields []models.ProjectField) []models.ProjectField {
	var out []models.ProjectField
	for _, f := range fields {
		if f.Table != models.FieldTableOdsOdp {
			out = append(out, f)
		}
	}
	return out
}

// ValidateOdsOdpExclusivity enforces the substance/blend mutual exclusivity
// of one ods/odp row
func ValidateOdsOdpExclusivity(row *models.ProjectOdsOdp) error {
	if row.OdsSubstanceID != nil && row.OdsBlendID != nil {
		return apperrors.ErrSubstanceBlendConflict
	}
	return nil
}
