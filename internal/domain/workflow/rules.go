package workflow

import (
	"errors"

	"bidtrack/internal/domain/entities"
)

var (
	ErrUnknownAction     = errors.New("unknown workflow action")
	ErrRoleNotAllowed    = errors.New("role not allowed to perform this action")
	ErrNotOwner          = errors.New("proposal belongs to another business development manager")
	ErrStatusConflict    = errors.New("proposal status does not allow this action")
	ErrInvalidActionData = errors.New("invalid action data")
)

// rule is one row of the transition table: which status the proposal must be
// in, who may act, and where the proposal goes.
type rule struct {
	requiredStatus entities.ProposalStatus
	// roles allowed to act; empty means the role is resolved at runtime
	// (resubmit_after_revision follows DirectorApproval.RequiresRevisionBy).
	roles      []entities.Role
	nextStatus entities.ProposalStatus
	label      string
}

// transitions is the single authority on who may do what, when. Guards check
// this table before any action-specific code runs; there are no role or status
// checks anywhere else in the engine.
var transitions = map[Action]rule{
	ActionEditProposal: {
		requiredStatus: entities.StatusPendingEstimation,
		roles:          []entities.Role{entities.RoleBDM},
		nextStatus:     entities.StatusPendingEstimation,
		label:          "Proposal details updated",
	},
	ActionAddEstimation: {
		requiredStatus: entities.StatusPendingEstimation,
		roles:          []entities.Role{entities.RoleEstimator},
		nextStatus:     entities.StatusPendingPricing,
		label:          "Estimation submitted",
	},
	ActionSetPricing: {
		requiredStatus: entities.StatusPendingPricing,
		roles:          []entities.Role{entities.RoleCOO},
		nextStatus:     entities.StatusPendingDirectorApproval,
		label:          "Pricing set",
	},
	ActionDirectorApprove: {
		requiredStatus: entities.StatusPendingDirectorApproval,
		roles:          []entities.Role{entities.RoleDirector},
		nextStatus:     entities.StatusApproved,
		label:          "Approved by director",
	},
	ActionDirectorReject: {
		requiredStatus: entities.StatusPendingDirectorApproval,
		roles:          []entities.Role{entities.RoleDirector},
		nextStatus:     entities.StatusRevisionRequired,
		label:          "Revision requested by director",
	},
	ActionResubmitAfterRevision: {
		requiredStatus: entities.StatusRevisionRequired,
		nextStatus:     entities.StatusPendingDirectorApproval,
		label:          "Resubmitted for director approval",
	},
	ActionSubmitToClient: {
		requiredStatus: entities.StatusApproved,
		roles:          []entities.Role{entities.RoleBDM},
		nextStatus:     entities.StatusSubmittedToClient,
		label:          "Submitted to client",
	},
	ActionMarkJobWon: {
		requiredStatus: entities.StatusSubmittedToClient,
		roles:          []entities.Role{entities.RoleBDM},
		nextStatus:     entities.StatusWon,
		label:          "Job won",
	},
	ActionMarkJobLost: {
		requiredStatus: entities.StatusSubmittedToClient,
		roles:          []entities.Role{entities.RoleBDM},
		nextStatus:     entities.StatusLost,
		label:          "Job lost",
	},
}

// allowedRoles resolves the role set for an action against a concrete
// proposal. Only resubmission depends on proposal state: the director names
// the role that must revise, and only that role may resubmit.
func allowedRoles(action Action, p entities.Proposal) []entities.Role {
	r, ok := transitions[action]
	if !ok {
		return nil
	}
	if len(r.roles) > 0 {
		return r.roles
	}
	if action == ActionResubmitAfterRevision && p.DirectorApproval != nil {
		return []entities.Role{p.DirectorApproval.RequiresRevisionBy}
	}
	return nil
}

func roleAllowed(roles []entities.Role, role entities.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanDelete checks the delete permission matrix: the creator may delete only
// while the proposal is still pending estimation; a director may delete at any
// status. Everyone else is refused.
func CanDelete(p entities.Proposal, actor Actor) error {
	if actor.Role == entities.RoleDirector {
		return nil
	}
	if p.CreatedByUID != actor.UID {
		return ErrNotOwner
	}
	if p.Status != entities.StatusPendingEstimation {
		return ErrStatusConflict
	}
	return nil
}
