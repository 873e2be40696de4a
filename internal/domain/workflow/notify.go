package workflow

import (
	"fmt"
	"time"

	"bidtrack/internal/domain/entities"
)

// notificationsFor maps the proposal's resulting status to its notification
// fan-out. The mapping is a pure lookup; recipients never depend on anything
// except the status and the designated revision owner.
//
//	approved          -> creator (uid), estimator role, coo role
//	revision_required -> the designated role (creator uid when the role is bdm)
//	won / lost        -> coo role, director role
//
// Every other status notifies nobody.
func notificationsFor(p entities.Proposal, actor Actor, now time.Time) []entities.Notification {
	base := func(typ, message string) entities.Notification {
		return entities.Notification{
			Type:        typ,
			ProposalID:  p.ID,
			ProjectName: p.ProjectName,
			Message:     message,
			CreatedAt:   now,
		}
	}

	switch p.Status {
	case entities.StatusApproved:
		msg := fmt.Sprintf("Proposal %q was approved by %s", p.ProjectName, actor.Name)
		creator := base("proposal_approved", msg)
		creator.RecipientUID = p.CreatedByUID
		estimators := base("proposal_approved", msg)
		estimators.RecipientRole = entities.RoleEstimator
		coo := base("proposal_approved", msg)
		coo.RecipientRole = entities.RoleCOO
		return []entities.Notification{creator, estimators, coo}

	case entities.StatusRevisionRequired:
		if p.DirectorApproval == nil {
			return nil
		}
		msg := fmt.Sprintf("Proposal %q needs revision: %s", p.ProjectName, p.DirectorApproval.Notes)
		n := base("revision_required", msg)
		if p.DirectorApproval.RequiresRevisionBy == entities.RoleBDM {
			n.RecipientUID = p.CreatedByUID
		} else {
			n.RecipientRole = p.DirectorApproval.RequiresRevisionBy
		}
		return []entities.Notification{n}

	case entities.StatusWon:
		return outcomePair(base, "job_won", fmt.Sprintf("Proposal %q was won", p.ProjectName))

	case entities.StatusLost:
		return outcomePair(base, "job_lost", fmt.Sprintf("Proposal %q was lost", p.ProjectName))
	}
	return nil
}

func outcomePair(base func(string, string) entities.Notification, typ, msg string) []entities.Notification {
	coo := base(typ, msg)
	coo.RecipientRole = entities.RoleCOO
	director := base(typ, msg)
	director.RecipientRole = entities.RoleDirector
	return []entities.Notification{coo, director}
}
