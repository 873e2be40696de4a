package entities

import "time"

// Notification targets either a single user (RecipientUID) or everyone holding a
// role (RecipientRole); exactly one of the two is set. IsRead is the only field
// that ever changes after creation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (recipient_uid-index): recipient_uid, created_at
//   - GSI2 (recipient_role-index): recipient_role, created_at
type Notification struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	RecipientUID  string    `json:"recipient_uid,omitempty"`
	RecipientRole Role      `json:"recipient_role,omitempty"`
	ProposalID    string    `json:"proposal_id"`
	ProjectName   string    `json:"project_name"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}
