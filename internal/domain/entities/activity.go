package entities

import "time"

// Activity is one immutable line of the global audit feed, written once per
// accepted workflow action and never updated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id, ts
//   - GSI2 (performed_by-index): performed_by_uid, ts
//   - GSI3 (record_type-index): record_type (constant), ts for the global recency feed
type Activity struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	ProposalID      string    `json:"proposal_id"`
	ProjectName     string    `json:"project_name"`
	ClientCompany   string    `json:"client_company"`
	PerformedByUID  string    `json:"performed_by_uid"`
	PerformedByName string    `json:"performed_by_name"`
	PerformedByRole Role      `json:"performed_by_role"`
	Details         string    `json:"details,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}
