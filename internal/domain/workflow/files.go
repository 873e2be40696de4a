package workflow

import "bidtrack/internal/domain/entities"

// estimationVisibleStatuses are the statuses at which the creator may see
// estimation attachments: everything from director approval onward.
var estimationVisibleStatuses = map[entities.ProposalStatus]bool{
	entities.StatusApproved:          true,
	entities.StatusSubmittedToClient: true,
	entities.StatusWon:               true,
	entities.StatusLost:              true,
}

// FileVisible reports whether actor may see one attachment of the given
// proposal. Estimator, COO and director see everything. The creating business
// development manager sees project files and links always, but estimation
// files only once the proposal has passed director approval.
func FileVisible(f entities.FileAttachment, p entities.Proposal, actor Actor) bool {
	if actor.Role != entities.RoleBDM {
		return true
	}
	if p.CreatedByUID != actor.UID {
		return false
	}
	if f.FileType != entities.FileTypeEstimation {
		return true
	}
	return estimationVisibleStatuses[p.Status]
}

// UploadType classifies a fresh upload by the uploader's role: estimator
// uploads are estimation material, everyone else's are project material.
func UploadType(role entities.Role) entities.FileType {
	if role == entities.RoleEstimator {
		return entities.FileTypeEstimation
	}
	return entities.FileTypeProject
}

// CanDeleteFile allows the uploader and the director to remove an attachment.
func CanDeleteFile(f entities.FileAttachment, actor Actor) bool {
	return actor.Role == entities.RoleDirector || f.UploadedByUID == actor.UID
}
