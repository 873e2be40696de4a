package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the lifecycle of a commercial proposal.
//
// Domain notes:
//   - Transitions are owned by the workflow engine; nothing else writes Status.
//   - StatusRejected is recognized for documents written by earlier releases but
//     the current engine routes director rejections to StatusRevisionRequired.
type ProposalStatus string

const (
	StatusPendingEstimation       ProposalStatus = "pending_estimation"
	StatusPendingPricing          ProposalStatus = "pending_pricing"
	StatusPendingDirectorApproval ProposalStatus = "pending_director_approval"
	StatusApproved                ProposalStatus = "approved"
	StatusRejected                ProposalStatus = "rejected"
	StatusRevisionRequired        ProposalStatus = "revision_required"
	StatusSubmittedToClient       ProposalStatus = "submitted_to_client"
	StatusWon                     ProposalStatus = "won"
	StatusLost                    ProposalStatus = "lost"
)

// ValidStatus reports whether s is a status this service ever persists.
func ValidStatus(s ProposalStatus) bool {
	switch s {
	case StatusPendingEstimation, StatusPendingPricing, StatusPendingDirectorApproval,
		StatusApproved, StatusRejected, StatusRevisionRequired,
		StatusSubmittedToClient, StatusWon, StatusLost:
		return true
	}
	return false
}

// Terminal reports whether s admits no further workflow transitions.
func (s ProposalStatus) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusRejected
}

// Proposal is the commercial proposal document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_by_uid-index): created_by_uid, created_at
//   - GSI2 (record_type-index): record_type (constant), created_at for newest-first listing
//
// Concurrency:
//   - Revision increments on every accepted transition and guards the conditional
//     write; a stale writer loses instead of silently overwriting.
//
// Sub-records are nil until the corresponding stage has happened at least once.
type Proposal struct {
	ID            string `json:"id"`
	ProjectName   string `json:"project_name"`
	ClientCompany string `json:"client_company"`
	ProjectType   string `json:"project_type"`
	ScopeOfWork   string `json:"scope_of_work"`
	Priority      string `json:"priority"`
	Country       string `json:"country"`
	Timeline      string `json:"timeline"`
	CreatedByUID  string `json:"created_by_uid"`
	CreatedByName string `json:"created_by_name"`

	Status           ProposalStatus    `json:"status"`
	Estimation       *Estimation       `json:"estimation,omitempty"`
	Pricing          *Pricing          `json:"pricing,omitempty"`
	DirectorApproval *DirectorApproval `json:"director_approval,omitempty"`
	JobOutcome       *JobOutcome       `json:"job_outcome,omitempty"`
	RevisionHistory  []RevisionEntry   `json:"revision_history,omitempty"`

	// ChangeLog is append-only; entries are never rewritten or truncated.
	ChangeLog []ChangeLogEntry `json:"change_log"`

	Revision  int64     `json:"revision"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Estimation is the effort estimate recorded by an estimator. It is overwritten
// when the estimator revises after a director rejection.
type Estimation struct {
	TotalHours      float64   `json:"total_hours"`
	QuoteType       string    `json:"quote_type"`
	Notes           string    `json:"notes"`
	EstimatedBy     string    `json:"estimated_by"`
	EstimatedByName string    `json:"estimated_by_name"`
	EstimatedAt     time.Time `json:"estimated_at"`
}

// Pricing is the commercial quote recorded by the COO. Monetary fields use
// decimals end to end; floats never touch money.
type Pricing struct {
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	MaterialsCost decimal.Decimal `json:"materials_cost"`
	QuoteValue    decimal.Decimal `json:"quote_value"`
	ProfitMargin  float64         `json:"profit_margin"`
	Currency      string          `json:"currency"`
	PricedBy      string          `json:"priced_by"`
	PricedByName  string          `json:"priced_by_name"`
	PricedAt      time.Time       `json:"priced_at"`
}

// DirectorApproval records the most recent director decision. A rejection names
// the role that must revise before resubmission.
type DirectorApproval struct {
	Approved           bool       `json:"approved"`
	Notes              string     `json:"notes"`
	ApprovedBy         string     `json:"approved_by,omitempty"`
	ApprovedByName     string     `json:"approved_by_name,omitempty"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
	RejectedBy         string     `json:"rejected_by,omitempty"`
	RejectedByName     string     `json:"rejected_by_name,omitempty"`
	RejectedAt         *time.Time `json:"rejected_at,omitempty"`
	RequiresRevisionBy Role       `json:"requires_revision_by,omitempty"`
}

// JobOutcome records the final result after client submission.
type JobOutcome struct {
	Outcome        string    `json:"outcome"`
	Reason         string    `json:"reason,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	RecordedBy     string    `json:"recorded_by"`
	RecordedByName string    `json:"recorded_by_name"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// ChangeLogEntry is one line of the proposal's embedded audit trail.
type ChangeLogEntry struct {
	Timestamp       time.Time `json:"timestamp"`
	Action          string    `json:"action"`
	PerformedByName string    `json:"performed_by_name"`
	Details         string    `json:"details,omitempty"`
}

// RevisionEntry records one resubmission after a director rejection.
type RevisionEntry struct {
	ResubmittedBy     string    `json:"resubmitted_by"`
	ResubmittedByName string    `json:"resubmitted_by_name"`
	Notes             string    `json:"notes,omitempty"`
	ResubmittedAt     time.Time `json:"resubmitted_at"`
}
