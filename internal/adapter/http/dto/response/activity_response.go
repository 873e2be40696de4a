package response

import (
	"time"

	"bidtrack/internal/domain/entities"
)

type ActivityResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	ProposalID      string    `json:"proposalId"`
	ProjectName     string    `json:"projectName"`
	ClientCompany   string    `json:"clientCompany"`
	PerformedByUID  string    `json:"performedByUid"`
	PerformedByName string    `json:"performedByName"`
	PerformedByRole string    `json:"performedByRole"`
	Details         string    `json:"details,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

func FromActivity(a entities.Activity) ActivityResponse {
	return ActivityResponse{
		ID:              a.ID,
		Type:            a.Type,
		ProposalID:      a.ProposalID,
		ProjectName:     a.ProjectName,
		ClientCompany:   a.ClientCompany,
		PerformedByUID:  a.PerformedByUID,
		PerformedByName: a.PerformedByName,
		PerformedByRole: string(a.PerformedByRole),
		Details:         a.Details,
		Timestamp:       a.Timestamp,
	}
}

func FromActivities(as []entities.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromActivity(a))
	}
	return out
}
