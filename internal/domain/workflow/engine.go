package workflow

import (
	"fmt"
	"strings"
	"time"

	"bidtrack/internal/domain/entities"
)

// Apply runs one lifecycle action against a proposal and returns the mutated
// copy plus the side-effect records to persist. It is a pure function: no I/O,
// no clock, no identifiers. Guards run in a fixed order (action, role,
// ownership, status, payload) and any rejection returns the input untouched.
func Apply(p entities.Proposal, action Action, actor Actor, data ActionData, now time.Time) (Result, error) {
	r, ok := transitions[action]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	roles := allowedRoles(action, p)
	if !roleAllowed(roles, actor.Role) {
		return Result{}, fmt.Errorf("%w: %s requires %v", ErrRoleNotAllowed, action, roles)
	}

	// A business development manager only ever touches their own proposals.
	if actor.Role == entities.RoleBDM && p.CreatedByUID != actor.UID {
		return Result{}, ErrNotOwner
	}

	if p.Status != r.requiredStatus {
		return Result{}, fmt.Errorf("%w: %s requires status %q, proposal is %q",
			ErrStatusConflict, action, r.requiredStatus, p.Status)
	}

	out := p
	details, err := mutate(&out, action, actor, data, now)
	if err != nil {
		return Result{}, err
	}

	out.Status = r.nextStatus
	out.Revision = p.Revision + 1
	out.UpdatedAt = now
	out.ChangeLog = append(out.ChangeLog, entities.ChangeLogEntry{
		Timestamp:       now,
		Action:          string(action),
		PerformedByName: actor.Name,
		Details:         details,
	})

	return Result{
		Proposal:      out,
		Activity:      newActivity(out, string(action), actor, details, now),
		Notifications: notificationsFor(out, actor, now),
	}, nil
}

// Create assembles a brand-new proposal for a business development manager.
// The caller assigns the document ID before persisting.
func Create(actor Actor, data ActionData, now time.Time) (Result, error) {
	if actor.Role != entities.RoleBDM {
		return Result{}, fmt.Errorf("%w: create requires %s", ErrRoleNotAllowed, entities.RoleBDM)
	}
	for field, v := range map[string]string{
		"project_name":   data.ProjectName,
		"client_company": data.ClientCompany,
		"project_type":   data.ProjectType,
		"scope_of_work":  data.ScopeOfWork,
	} {
		if strings.TrimSpace(v) == "" {
			return Result{}, fmt.Errorf("%w: %s is required", ErrInvalidActionData, field)
		}
	}

	p := entities.Proposal{
		ProjectName:   strings.TrimSpace(data.ProjectName),
		ClientCompany: strings.TrimSpace(data.ClientCompany),
		ProjectType:   strings.TrimSpace(data.ProjectType),
		ScopeOfWork:   data.ScopeOfWork,
		Priority:      data.Priority,
		Country:       data.Country,
		Timeline:      data.Timeline,
		CreatedByUID:  actor.UID,
		CreatedByName: actor.Name,
		Status:        entities.StatusPendingEstimation,
		Revision:      1,
		CreatedAt:     now,
		UpdatedAt:     now,
		ChangeLog: []entities.ChangeLogEntry{{
			Timestamp:       now,
			Action:          string(ActionCreate),
			PerformedByName: actor.Name,
			Details:         "Proposal created",
		}},
	}

	return Result{
		Proposal: p,
		Activity: newActivity(p, string(ActionCreate), actor, "Proposal created", now),
	}, nil
}

// mutate applies the action-specific effect to out. Payload validation lives
// here so a bad payload is rejected before any field changes.
func mutate(out *entities.Proposal, action Action, actor Actor, data ActionData, now time.Time) (string, error) {
	switch action {
	case ActionEditProposal:
		changed := applyEditableFields(out, data)
		if len(changed) == 0 {
			return "No fields changed", nil
		}
		return "Updated: " + strings.Join(changed, ", "), nil

	case ActionAddEstimation:
		if err := setEstimation(out, actor, data, now); err != nil {
			return "", err
		}
		return fmt.Sprintf("%.1f hours (%s)", data.TotalHours, out.Estimation.QuoteType), nil

	case ActionSetPricing:
		if err := setPricing(out, actor, data, now); err != nil {
			return "", err
		}
		return fmt.Sprintf("Quote %s %s", out.Pricing.QuoteValue.StringFixed(2), out.Pricing.Currency), nil

	case ActionDirectorApprove:
		at := now
		out.DirectorApproval = &entities.DirectorApproval{
			Approved:       true,
			Notes:          data.Notes,
			ApprovedBy:     actor.UID,
			ApprovedByName: actor.Name,
			ApprovedAt:     &at,
		}
		return data.Notes, nil

	case ActionDirectorReject:
		switch data.RequiresRevisionBy {
		case entities.RoleBDM, entities.RoleEstimator, entities.RoleCOO:
		default:
			return "", fmt.Errorf("%w: requires_revision_by must name bdm, estimator or coo", ErrInvalidActionData)
		}
		at := now
		out.DirectorApproval = &entities.DirectorApproval{
			Approved:           false,
			Notes:              data.Notes,
			RejectedBy:         actor.UID,
			RejectedByName:     actor.Name,
			RejectedAt:         &at,
			RequiresRevisionBy: data.RequiresRevisionBy,
		}
		return fmt.Sprintf("Revision assigned to %s", data.RequiresRevisionBy), nil

	case ActionResubmitAfterRevision:
		// The designated role may refresh its own stage before the proposal
		// goes back to the director.
		switch actor.Role {
		case entities.RoleEstimator:
			if data.TotalHours > 0 {
				if err := setEstimation(out, actor, data, now); err != nil {
					return "", err
				}
			}
		case entities.RoleCOO:
			if data.QuoteValue.IsPositive() {
				if err := setPricing(out, actor, data, now); err != nil {
					return "", err
				}
			}
		case entities.RoleBDM:
			applyEditableFields(out, data)
		}
		out.RevisionHistory = append(out.RevisionHistory, entities.RevisionEntry{
			ResubmittedBy:     actor.UID,
			ResubmittedByName: actor.Name,
			Notes:             data.Notes,
			ResubmittedAt:     now,
		})
		return data.Notes, nil

	case ActionSubmitToClient:
		return "", nil

	case ActionMarkJobWon:
		out.JobOutcome = &entities.JobOutcome{
			Outcome:        "won",
			Notes:          data.Notes,
			RecordedBy:     actor.UID,
			RecordedByName: actor.Name,
			RecordedAt:     now,
		}
		return data.Notes, nil

	case ActionMarkJobLost:
		out.JobOutcome = &entities.JobOutcome{
			Outcome:        "lost",
			Reason:         data.Reason,
			Notes:          data.Notes,
			RecordedBy:     actor.UID,
			RecordedByName: actor.Name,
			RecordedAt:     now,
		}
		return data.Reason, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func setEstimation(out *entities.Proposal, actor Actor, data ActionData, now time.Time) error {
	if data.TotalHours <= 0 {
		return fmt.Errorf("%w: total_hours must be positive", ErrInvalidActionData)
	}
	quoteType := strings.TrimSpace(data.QuoteType)
	if quoteType == "" {
		return fmt.Errorf("%w: quote_type is required", ErrInvalidActionData)
	}
	out.Estimation = &entities.Estimation{
		TotalHours:      data.TotalHours,
		QuoteType:       quoteType,
		Notes:           data.Notes,
		EstimatedBy:     actor.UID,
		EstimatedByName: actor.Name,
		EstimatedAt:     now,
	}
	return nil
}

func setPricing(out *entities.Proposal, actor Actor, data ActionData, now time.Time) error {
	if !data.QuoteValue.IsPositive() {
		return fmt.Errorf("%w: quote_value must be positive", ErrInvalidActionData)
	}
	if data.HourlyRate.IsNegative() || data.MaterialsCost.IsNegative() {
		return fmt.Errorf("%w: rates must not be negative", ErrInvalidActionData)
	}
	currency := strings.ToUpper(strings.TrimSpace(data.Currency))
	if currency == "" {
		currency = "USD"
	}
	out.Pricing = &entities.Pricing{
		HourlyRate:    data.HourlyRate,
		MaterialsCost: data.MaterialsCost,
		QuoteValue:    data.QuoteValue,
		ProfitMargin:  data.ProfitMargin,
		Currency:      currency,
		PricedBy:      actor.UID,
		PricedByName:  actor.Name,
		PricedAt:      now,
	}
	return nil
}

// applyEditableFields overwrites the create-time descriptive fields with any
// non-blank values and reports which ones changed.
func applyEditableFields(out *entities.Proposal, data ActionData) []string {
	var changed []string
	set := func(name string, dst *string, v string) {
		v = strings.TrimSpace(v)
		if v != "" && v != *dst {
			*dst = v
			changed = append(changed, name)
		}
	}
	set("project_name", &out.ProjectName, data.ProjectName)
	set("client_company", &out.ClientCompany, data.ClientCompany)
	set("project_type", &out.ProjectType, data.ProjectType)
	set("scope_of_work", &out.ScopeOfWork, data.ScopeOfWork)
	set("priority", &out.Priority, data.Priority)
	set("country", &out.Country, data.Country)
	set("timeline", &out.Timeline, data.Timeline)
	return changed
}

func newActivity(p entities.Proposal, action string, actor Actor, details string, now time.Time) entities.Activity {
	return entities.Activity{
		Type:            action,
		ProposalID:      p.ID,
		ProjectName:     p.ProjectName,
		ClientCompany:   p.ClientCompany,
		PerformedByUID:  actor.UID,
		PerformedByName: actor.Name,
		PerformedByRole: actor.Role,
		Details:         details,
		Timestamp:       now,
	}
}
