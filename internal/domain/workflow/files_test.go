package workflow

import (
	"testing"

	"bidtrack/internal/domain/entities"
)

func TestFileVisible(t *testing.T) {
	estimationFile := entities.FileAttachment{FileType: entities.FileTypeEstimation, UploadedByUID: estimator.UID}
	projectFile := entities.FileAttachment{FileType: entities.FileTypeProject, UploadedByUID: bdm.UID}

	t.Run("elevated roles see everything", func(t *testing.T) {
		p := baseProposal(entities.StatusPendingPricing)
		for _, a := range []Actor{estimator, coo, director} {
			if !FileVisible(estimationFile, p, a) {
				t.Fatalf("%s should see estimation files", a.Role)
			}
		}
	})

	t.Run("creator sees estimation files only after approval", func(t *testing.T) {
		hidden := []entities.ProposalStatus{
			entities.StatusPendingEstimation,
			entities.StatusPendingPricing,
			entities.StatusPendingDirectorApproval,
			entities.StatusRevisionRequired,
		}
		for _, s := range hidden {
			if FileVisible(estimationFile, baseProposal(s), bdm) {
				t.Fatalf("estimation file visible to creator at %q", s)
			}
		}
		visible := []entities.ProposalStatus{
			entities.StatusApproved,
			entities.StatusSubmittedToClient,
			entities.StatusWon,
			entities.StatusLost,
		}
		for _, s := range visible {
			if !FileVisible(estimationFile, baseProposal(s), bdm) {
				t.Fatalf("estimation file hidden from creator at %q", s)
			}
		}
	})

	t.Run("creator always sees project files", func(t *testing.T) {
		if !FileVisible(projectFile, baseProposal(entities.StatusPendingEstimation), bdm) {
			t.Fatalf("project file hidden from creator")
		}
	})

	t.Run("another bdm sees nothing", func(t *testing.T) {
		if FileVisible(projectFile, baseProposal(entities.StatusApproved), otherBDM) {
			t.Fatalf("file visible to a bdm who does not own the proposal")
		}
	})
}

func TestUploadType(t *testing.T) {
	if UploadType(entities.RoleEstimator) != entities.FileTypeEstimation {
		t.Fatalf("estimator uploads should be estimation files")
	}
	for _, r := range []entities.Role{entities.RoleBDM, entities.RoleCOO, entities.RoleDirector} {
		if UploadType(r) != entities.FileTypeProject {
			t.Fatalf("%s uploads should be project files", r)
		}
	}
}

func TestCanDeleteFile(t *testing.T) {
	f := entities.FileAttachment{UploadedByUID: estimator.UID}
	if !CanDeleteFile(f, estimator) {
		t.Fatalf("uploader should delete their own file")
	}
	if !CanDeleteFile(f, director) {
		t.Fatalf("director should delete any file")
	}
	if CanDeleteFile(f, coo) {
		t.Fatalf("coo should not delete someone else's file")
	}
}
