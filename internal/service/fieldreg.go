package service

import (
	"fund-reporting-backend/internal/database/models"
)

// Field accessor registry. The legacy system resolved configured field names
// by reflection; here every configurable field maps to a typed closure built
// once at package init, so a misconfigured field name fails loudly instead of
// silently passing validation.

// projectFieldCheck reports whether the named field is populated on a project
type projectFieldCheck func(p *models.Project) bool

// odsOdpFieldCheck reports whether the named field is populated on one
// ods/odp child row
type odsOdpFieldCheck func(row *models.ProjectOdsOdp) bool

// OdsDisplayNameField is the virtual ods_odp field satisfied by a substance,
// a blend, or an explicit display name
const OdsDisplayNameField = "ods_display_name"

var projectFieldChecks = map[string]projectFieldCheck{
	"title":       func(p *models.Project) bool { return p.Title != "" },
	"description": func(p *models.Project) bool { return p.Description != "" },
	"tranche":     func(p *models.Project) bool { return p.Tranche != nil },
	"is_lvc":      func(p *models.Project) bool { return p.IsLVC != nil },

	"project_start_date": func(p *models.Project) bool { return p.ProjectStartDate != nil },
	"project_end_date":   func(p *models.Project) bool { return p.ProjectEndDate != nil },
	"date_completion":    func(p *models.Project) bool { return p.DateCompletion != nil },

	"total_fund":       func(p *models.Project) bool { return p.TotalFund != nil },
	"support_cost_psc": func(p *models.Project) bool { return p.SupportCostPSC != nil },
	"excom_provision":  func(p *models.Project) bool { return p.ExcomProvision != "" },

	// Actual (post-approval) indicators
	"funds_disbursed":        func(p *models.Project) bool { return p.FundsDisbursed != nil },
	"date_actual_completion": func(p *models.Project) bool { return p.DateActualCompletion != nil },
	"phase_out_actual":       func(p *models.Project) bool { return p.PhaseOutActual != nil },
}

var odsOdpFieldChecks = map[string]odsOdpFieldCheck{
	"odp_amount":   func(row *models.ProjectOdsOdp) bool { return row.OdpAmount != nil },
	"co2_mt":       func(row *models.ProjectOdsOdp) bool { return row.CO2MT != nil },
	"phase_out_mt": func(row *models.ProjectOdsOdp) bool { return row.PhaseOutMT != nil },
	OdsDisplayNameField: func(row *models.ProjectOdsOdp) bool {
		return row.OdsSubstanceID != nil || row.OdsBlendID != nil ||
			(row.OdsDisplayName != nil && *row.OdsDisplayName != "")
	},
}

// ProjectFieldPopulated resolves a configured project-table field. Unknown
// field names report as populated so stale configuration rows cannot block
// submissions.
func ProjectFieldPopulated(p *models.Project, writeFieldName string) bool {
	check, ok := projectFieldChecks[writeFieldName]
	if !ok {
		return true
	}
	return check(p)
}

// OdsOdpFieldPopulated resolves a configured ods_odp-table field on one row
func OdsOdpFieldPopulated(row *models.ProjectOdsOdp, writeFieldName string) bool {
	check, ok := odsOdpFieldChecks[writeFieldName]
	if !ok {
		return true
	}
	return check(row)
}

// KnownProjectField reports whether a write field name resolves on the
// project table
func KnownProjectField(writeFieldName string) bool {
	_, ok := projectFieldChecks[writeFieldName]
	return ok
}
