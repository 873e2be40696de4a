package response

import (
	"time"

	"github.com/shopspring/decimal"

	"bidtrack/internal/domain/entities"
)

type EstimationResponse struct {
	TotalHours      float64   `json:"totalHours"`
	QuoteType       string    `json:"quoteType"`
	Notes           string    `json:"notes,omitempty"`
	EstimatedBy     string    `json:"estimatedBy"`
	EstimatedByName string    `json:"estimatedByName"`
	EstimatedAt     time.Time `json:"estimatedAt"`
}

type PricingResponse struct {
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	MaterialsCost decimal.Decimal `json:"materialsCost"`
	QuoteValue    decimal.Decimal `json:"quoteValue"`
	ProfitMargin  float64         `json:"profitMargin"`
	Currency      string          `json:"currency"`
	PricedBy      string          `json:"pricedBy"`
	PricedByName  string          `json:"pricedByName"`
	PricedAt      time.Time       `json:"pricedAt"`
}

type DirectorApprovalResponse struct {
	Approved           bool       `json:"approved"`
	Notes              string     `json:"notes,omitempty"`
	ApprovedBy         string     `json:"approvedBy,omitempty"`
	ApprovedByName     string     `json:"approvedByName,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	RejectedBy         string     `json:"rejectedBy,omitempty"`
	RejectedByName     string     `json:"rejectedByName,omitempty"`
	RejectedAt         *time.Time `json:"rejectedAt,omitempty"`
	RequiresRevisionBy string     `json:"requiresRevisionBy,omitempty"`
}

type JobOutcomeResponse struct {
	Outcome        string    `json:"outcome"`
	Reason         string    `json:"reason,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	RecordedBy     string    `json:"recordedBy"`
	RecordedByName string    `json:"recordedByName"`
	RecordedAt     time.Time `json:"recordedAt"`
}

type ChangeLogEntryResponse struct {
	Timestamp       time.Time `json:"timestamp"`
	Action          string    `json:"action"`
	PerformedByName string    `json:"performedByName"`
	Details         string    `json:"details,omitempty"`
}

type RevisionEntryResponse struct {
	ResubmittedBy     string    `json:"resubmittedBy"`
	ResubmittedByName string    `json:"resubmittedByName"`
	Notes             string    `json:"notes,omitempty"`
	ResubmittedAt     time.Time `json:"resubmittedAt"`
}

type ProposalResponse struct {
	ID            string `json:"id"`
	ProjectName   string `json:"projectName"`
	ClientCompany string `json:"clientCompany"`
	ProjectType   string `json:"projectType"`
	ScopeOfWork   string `json:"scopeOfWork"`
	Priority      string `json:"priority,omitempty"`
	Country       string `json:"country,omitempty"`
	Timeline      string `json:"timeline,omitempty"`
	CreatedByUID  string `json:"createdByUid"`
	CreatedByName string `json:"createdByName"`

	Status           string                    `json:"status"`
	Estimation       *EstimationResponse       `json:"estimation,omitempty"`
	Pricing          *PricingResponse          `json:"pricing,omitempty"`
	DirectorApproval *DirectorApprovalResponse `json:"directorApproval,omitempty"`
	JobOutcome       *JobOutcomeResponse       `json:"jobOutcome,omitempty"`
	RevisionHistory  []RevisionEntryResponse   `json:"revisionHistory,omitempty"`
	ChangeLog        []ChangeLogEntryResponse  `json:"changeLog"`

	Revision  int64     `json:"revision"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	resp := ProposalResponse{
		ID:            p.ID,
		ProjectName:   p.ProjectName,
		ClientCompany: p.ClientCompany,
		ProjectType:   p.ProjectType,
		ScopeOfWork:   p.ScopeOfWork,
		Priority:      p.Priority,
		Country:       p.Country,
		Timeline:      p.Timeline,
		CreatedByUID:  p.CreatedByUID,
		CreatedByName: p.CreatedByName,
		Status:        string(p.Status),
		Revision:      p.Revision,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.Estimation != nil {
		resp.Estimation = &EstimationResponse{
			TotalHours:      p.Estimation.TotalHours,
			QuoteType:       p.Estimation.QuoteType,
			Notes:           p.Estimation.Notes,
			EstimatedBy:     p.Estimation.EstimatedBy,
			EstimatedByName: p.Estimation.EstimatedByName,
			EstimatedAt:     p.Estimation.EstimatedAt,
		}
	}
	if p.Pricing != nil {
		resp.Pricing = &PricingResponse{
			HourlyRate:    p.Pricing.HourlyRate,
			MaterialsCost: p.Pricing.MaterialsCost,
			QuoteValue:    p.Pricing.QuoteValue,
			ProfitMargin:  p.Pricing.ProfitMargin,
			Currency:      p.Pricing.Currency,
			PricedBy:      p.Pricing.PricedBy,
			PricedByName:  p.Pricing.PricedByName,
			PricedAt:      p.Pricing.PricedAt,
		}
	}
	if p.DirectorApproval != nil {
		resp.DirectorApproval = &DirectorApprovalResponse{
			Approved:           p.DirectorApproval.Approved,
			Notes:              p.DirectorApproval.Notes,
			ApprovedBy:         p.DirectorApproval.ApprovedBy,
			ApprovedByName:     p.DirectorApproval.ApprovedByName,
			ApprovedAt:         p.DirectorApproval.ApprovedAt,
			RejectedBy:         p.DirectorApproval.RejectedBy,
			RejectedByName:     p.DirectorApproval.RejectedByName,
			RejectedAt:         p.DirectorApproval.RejectedAt,
			RequiresRevisionBy: string(p.DirectorApproval.RequiresRevisionBy),
		}
	}
	if p.JobOutcome != nil {
		resp.JobOutcome = &JobOutcomeResponse{
			Outcome:        p.JobOutcome.Outcome,
			Reason:         p.JobOutcome.Reason,
			Notes:          p.JobOutcome.Notes,
			RecordedBy:     p.JobOutcome.RecordedBy,
			RecordedByName: p.JobOutcome.RecordedByName,
			RecordedAt:     p.JobOutcome.RecordedAt,
		}
	}

	for _, r := range p.RevisionHistory {
		resp.RevisionHistory = append(resp.RevisionHistory, RevisionEntryResponse{
			ResubmittedBy:     r.ResubmittedBy,
			ResubmittedByName: r.ResubmittedByName,
			Notes:             r.Notes,
			ResubmittedAt:     r.ResubmittedAt,
		})
	}

	resp.ChangeLog = make([]ChangeLogEntryResponse, 0, len(p.ChangeLog))
	for _, e := range p.ChangeLog {
		resp.ChangeLog = append(resp.ChangeLog, ChangeLogEntryResponse{
			Timestamp:       e.Timestamp,
			Action:          e.Action,
			PerformedByName: e.PerformedByName,
			Details:         e.Details,
		})
	}

	return resp
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}
