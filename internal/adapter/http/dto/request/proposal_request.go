package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/domain/workflow"
)

// CreateProposalRequest is the POST /proposals payload.
type CreateProposalRequest struct {
	ProjectName   string `json:"projectName" binding:"required"`
	ClientCompany string `json:"clientCompany" binding:"required"`
	ProjectType   string `json:"projectType" binding:"required"`
	ScopeOfWork   string `json:"scopeOfWork" binding:"required"`
	Priority      string `json:"priority"`
	Country       string `json:"country"`
	Timeline      string `json:"timeline"`
}

func (r CreateProposalRequest) ToActionData() workflow.ActionData {
	return workflow.ActionData{
		ProjectName:   strings.TrimSpace(r.ProjectName),
		ClientCompany: strings.TrimSpace(r.ClientCompany),
		ProjectType:   strings.TrimSpace(r.ProjectType),
		ScopeOfWork:   strings.TrimSpace(r.ScopeOfWork),
		Priority:      strings.TrimSpace(r.Priority),
		Country:       strings.TrimSpace(r.Country),
		Timeline:      strings.TrimSpace(r.Timeline),
	}
}

// ActionDataRequest is the per-action payload inside PUT /proposals bodies.
// Fields irrelevant to the requested action are ignored. Money fields accept
// JSON numbers or strings (decimal handles both).
type ActionDataRequest struct {
	ProjectName   string `json:"projectName"`
	ClientCompany string `json:"clientCompany"`
	ProjectType   string `json:"projectType"`
	ScopeOfWork   string `json:"scopeOfWork"`
	Priority      string `json:"priority"`
	Country       string `json:"country"`
	Timeline      string `json:"timeline"`

	TotalHours float64 `json:"totalHours"`
	QuoteType  string  `json:"quoteType"`

	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	MaterialsCost decimal.Decimal `json:"materialsCost"`
	QuoteValue    decimal.Decimal `json:"quoteValue"`
	ProfitMargin  float64         `json:"profitMargin"`
	Currency      string          `json:"currency"`

	RequiresRevisionBy string `json:"requiresRevisionBy"`

	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

// ProposalActionRequest is the PUT /proposals payload.
type ProposalActionRequest struct {
	Action string            `json:"action" binding:"required"`
	Data   ActionDataRequest `json:"data"`
}

func (r ProposalActionRequest) ResolveAction() workflow.Action {
	return workflow.Action(strings.TrimSpace(r.Action))
}

func (r ProposalActionRequest) ToActionData() workflow.ActionData {
	return workflow.ActionData{
		ProjectName:        strings.TrimSpace(r.Data.ProjectName),
		ClientCompany:      strings.TrimSpace(r.Data.ClientCompany),
		ProjectType:        strings.TrimSpace(r.Data.ProjectType),
		ScopeOfWork:        strings.TrimSpace(r.Data.ScopeOfWork),
		Priority:           strings.TrimSpace(r.Data.Priority),
		Country:            strings.TrimSpace(r.Data.Country),
		Timeline:           strings.TrimSpace(r.Data.Timeline),
		TotalHours:         r.Data.TotalHours,
		QuoteType:          strings.TrimSpace(r.Data.QuoteType),
		HourlyRate:         r.Data.HourlyRate,
		MaterialsCost:      r.Data.MaterialsCost,
		QuoteValue:         r.Data.QuoteValue,
		ProfitMargin:       r.Data.ProfitMargin,
		Currency:           strings.TrimSpace(r.Data.Currency),
		RequiresRevisionBy: entities.Role(strings.TrimSpace(r.Data.RequiresRevisionBy)),
		Reason:             strings.TrimSpace(r.Data.Reason),
		Notes:              strings.TrimSpace(r.Data.Notes),
	}
}
