package workflow

import (
	"bidtrack/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Action names one proposal lifecycle operation. Values travel on the wire in
// PUT /proposals bodies and are stored verbatim in change log and activity rows.
type Action string

const (
	ActionCreate                Action = "create"
	ActionEditProposal          Action = "edit_proposal"
	ActionAddEstimation         Action = "add_estimation"
	ActionSetPricing            Action = "set_pricing"
	ActionDirectorApprove       Action = "director_approve"
	ActionDirectorReject        Action = "director_reject"
	ActionResubmitAfterRevision Action = "resubmit_after_revision"
	ActionSubmitToClient        Action = "submit_to_client"
	ActionMarkJobWon            Action = "mark_job_won"
	ActionMarkJobLost           Action = "mark_job_lost"
	ActionDelete                Action = "delete"
)

// Actor is the authenticated caller as resolved by the auth middleware.
type Actor struct {
	UID  string
	Name string
	Role entities.Role
}

// ActionData carries the per-action payload of a transition request. Fields are
// grouped by the action that reads them; the engine ignores the rest.
type ActionData struct {
	// edit_proposal (and bdm resubmission): blank fields keep their current value.
	ProjectName   string
	ClientCompany string
	ProjectType   string
	ScopeOfWork   string
	Priority      string
	Country       string
	Timeline      string

	// add_estimation (and estimator resubmission).
	TotalHours float64
	QuoteType  string

	// set_pricing (and coo resubmission).
	HourlyRate    decimal.Decimal
	MaterialsCost decimal.Decimal
	QuoteValue    decimal.Decimal
	ProfitMargin  float64
	Currency      string

	// director_reject: role that must revise before resubmission.
	RequiresRevisionBy entities.Role

	// mark_job_lost.
	Reason string

	// Free-text notes; meaning depends on the action.
	Notes string
}

// Result is the outcome of one accepted transition: the mutated proposal plus
// the side-effect records the caller must persist. IDs are left blank; the
// caller assigns them.
type Result struct {
	Proposal      entities.Proposal
	Activity      entities.Activity
	Notifications []entities.Notification
}
