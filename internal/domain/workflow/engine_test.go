package workflow

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"bidtrack/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	testNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	bdm       = Actor{UID: "bdm-1", Name: "Bianca Monte", Role: entities.RoleBDM}
	otherBDM  = Actor{UID: "bdm-2", Name: "Otto Vargas", Role: entities.RoleBDM}
	estimator = Actor{UID: "est-1", Name: "Elena Ruiz", Role: entities.RoleEstimator}
	coo       = Actor{UID: "coo-1", Name: "Carla Osei", Role: entities.RoleCOO}
	director  = Actor{UID: "dir-1", Name: "Dara Ionescu", Role: entities.RoleDirector}
)

func baseProposal(status entities.ProposalStatus) entities.Proposal {
	return entities.Proposal{
		ID:            "prop-1",
		ProjectName:   "Harbor Expansion",
		ClientCompany: "Acme Marine",
		ProjectType:   "construction",
		ScopeOfWork:   "Quay wall extension",
		CreatedByUID:  bdm.UID,
		CreatedByName: bdm.Name,
		Status:        status,
		Revision:      3,
		CreatedAt:     testNow.Add(-48 * time.Hour),
		UpdatedAt:     testNow.Add(-24 * time.Hour),
		ChangeLog: []entities.ChangeLogEntry{
			{Timestamp: testNow.Add(-48 * time.Hour), Action: "create", PerformedByName: bdm.Name, Details: "Proposal created"},
		},
	}
}

// snapshot deep-copies the parts of a proposal that share backing storage so a
// rejected Apply can be checked for zero mutation.
func snapshot(p entities.Proposal) entities.Proposal {
	c := p
	c.ChangeLog = append([]entities.ChangeLogEntry(nil), p.ChangeLog...)
	c.RevisionHistory = append([]entities.RevisionEntry(nil), p.RevisionHistory...)
	if p.Estimation != nil {
		e := *p.Estimation
		c.Estimation = &e
	}
	if p.Pricing != nil {
		pr := *p.Pricing
		c.Pricing = &pr
	}
	if p.DirectorApproval != nil {
		d := *p.DirectorApproval
		c.DirectorApproval = &d
	}
	if p.JobOutcome != nil {
		j := *p.JobOutcome
		c.JobOutcome = &j
	}
	return c
}

func estimationData() ActionData {
	return ActionData{TotalHours: 120.5, QuoteType: "fixed_bid", Notes: "two crews"}
}

func pricingData() ActionData {
	return ActionData{
		HourlyRate:    decimal.NewFromInt(95),
		MaterialsCost: decimal.NewFromInt(40000),
		QuoteValue:    decimal.NewFromInt(185000),
		ProfitMargin:  22.5,
		Currency:      "usd",
	}
}

func TestApply_Guards(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingEstimation), Action("promote"), director, ActionData{}, testNow)
		if !errors.Is(err, ErrUnknownAction) {
			t.Fatalf("expected ErrUnknownAction, got %v", err)
		}
	})

	t.Run("role not allowed", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingPricing), ActionSetPricing, estimator, pricingData(), testNow)
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("bdm cannot act on another bdm's proposal", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingEstimation), ActionEditProposal, otherBDM, ActionData{Priority: "high"}, testNow)
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("status conflict", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingPricing), ActionAddEstimation, estimator, estimationData(), testNow)
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("approve twice conflicts", func(t *testing.T) {
		p := baseProposal(entities.StatusApproved)
		_, err := Apply(p, ActionDirectorApprove, director, ActionData{}, testNow)
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("rejected apply leaves proposal untouched", func(t *testing.T) {
		p := baseProposal(entities.StatusPendingEstimation)
		p.Estimation = &entities.Estimation{TotalHours: 10, QuoteType: "rough"}
		before := snapshot(p)

		if _, err := Apply(p, ActionSetPricing, coo, pricingData(), testNow); err == nil {
			t.Fatalf("expected error")
		}
		if !reflect.DeepEqual(p, before) {
			t.Fatalf("proposal mutated by rejected transition:\n got %+v\nwant %+v", p, before)
		}
	})
}

func TestApply_ChangeLogGrowsByOne(t *testing.T) {
	cases := []struct {
		name   string
		status entities.ProposalStatus
		action Action
		actor  Actor
		data   ActionData
	}{
		{"edit", entities.StatusPendingEstimation, ActionEditProposal, bdm, ActionData{Priority: "high"}},
		{"estimate", entities.StatusPendingEstimation, ActionAddEstimation, estimator, estimationData()},
		{"price", entities.StatusPendingPricing, ActionSetPricing, coo, pricingData()},
		{"approve", entities.StatusPendingDirectorApproval, ActionDirectorApprove, director, ActionData{}},
		{"reject", entities.StatusPendingDirectorApproval, ActionDirectorReject, director, ActionData{RequiresRevisionBy: entities.RoleCOO}},
		{"submit", entities.StatusApproved, ActionSubmitToClient, bdm, ActionData{}},
		{"won", entities.StatusSubmittedToClient, ActionMarkJobWon, bdm, ActionData{}},
		{"lost", entities.StatusSubmittedToClient, ActionMarkJobLost, bdm, ActionData{Reason: "price"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseProposal(tc.status)
			res, err := Apply(p, tc.action, tc.actor, tc.data, testNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got, want := len(res.Proposal.ChangeLog), len(p.ChangeLog)+1; got != want {
				t.Fatalf("change log length = %d, want %d", got, want)
			}
			last := res.Proposal.ChangeLog[len(res.Proposal.ChangeLog)-1]
			if last.Action != string(tc.action) {
				t.Fatalf("last change log action = %q, want %q", last.Action, tc.action)
			}
			if last.PerformedByName != tc.actor.Name {
				t.Fatalf("last change log author = %q, want %q", last.PerformedByName, tc.actor.Name)
			}
			if res.Proposal.Revision != p.Revision+1 {
				t.Fatalf("revision = %d, want %d", res.Proposal.Revision, p.Revision+1)
			}
			if !res.Proposal.UpdatedAt.Equal(testNow) {
				t.Fatalf("updated_at = %v, want %v", res.Proposal.UpdatedAt, testNow)
			}
			if res.Activity.Type != string(tc.action) {
				t.Fatalf("activity type = %q, want %q", res.Activity.Type, tc.action)
			}
		})
	}
}

func TestApply_AddEstimation(t *testing.T) {
	t.Run("values land verbatim", func(t *testing.T) {
		res, err := Apply(baseProposal(entities.StatusPendingEstimation), ActionAddEstimation, estimator, estimationData(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e := res.Proposal.Estimation
		if e == nil {
			t.Fatalf("estimation not set")
		}
		if e.TotalHours != 120.5 || e.QuoteType != "fixed_bid" || e.Notes != "two crews" {
			t.Fatalf("estimation = %+v", e)
		}
		if e.EstimatedBy != estimator.UID || e.EstimatedByName != estimator.Name {
			t.Fatalf("estimator attribution = %q/%q", e.EstimatedBy, e.EstimatedByName)
		}
		if res.Proposal.Status != entities.StatusPendingPricing {
			t.Fatalf("status = %q, want pending_pricing", res.Proposal.Status)
		}
		if len(res.Notifications) != 0 {
			t.Fatalf("estimation should notify nobody, got %d", len(res.Notifications))
		}
	})

	t.Run("non-positive hours rejected", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingEstimation), ActionAddEstimation, estimator, ActionData{TotalHours: 0, QuoteType: "fixed_bid"}, testNow)
		if !errors.Is(err, ErrInvalidActionData) {
			t.Fatalf("expected ErrInvalidActionData, got %v", err)
		}
	})

	t.Run("quote type required", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingEstimation), ActionAddEstimation, estimator, ActionData{TotalHours: 10, QuoteType: "  "}, testNow)
		if !errors.Is(err, ErrInvalidActionData) {
			t.Fatalf("expected ErrInvalidActionData, got %v", err)
		}
	})
}

func TestApply_SetPricing(t *testing.T) {
	t.Run("decimals land verbatim, currency normalized", func(t *testing.T) {
		res, err := Apply(baseProposal(entities.StatusPendingPricing), ActionSetPricing, coo, pricingData(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pr := res.Proposal.Pricing
		if pr == nil {
			t.Fatalf("pricing not set")
		}
		if !pr.QuoteValue.Equal(decimal.NewFromInt(185000)) || !pr.HourlyRate.Equal(decimal.NewFromInt(95)) {
			t.Fatalf("pricing = %+v", pr)
		}
		if pr.Currency != "USD" {
			t.Fatalf("currency = %q, want USD", pr.Currency)
		}
		if res.Proposal.Status != entities.StatusPendingDirectorApproval {
			t.Fatalf("status = %q", res.Proposal.Status)
		}
	})

	t.Run("currency defaults to USD", func(t *testing.T) {
		data := pricingData()
		data.Currency = ""
		res, err := Apply(baseProposal(entities.StatusPendingPricing), ActionSetPricing, coo, data, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Proposal.Pricing.Currency != "USD" {
			t.Fatalf("currency = %q", res.Proposal.Pricing.Currency)
		}
	})

	t.Run("zero quote rejected", func(t *testing.T) {
		data := pricingData()
		data.QuoteValue = decimal.Zero
		_, err := Apply(baseProposal(entities.StatusPendingPricing), ActionSetPricing, coo, data, testNow)
		if !errors.Is(err, ErrInvalidActionData) {
			t.Fatalf("expected ErrInvalidActionData, got %v", err)
		}
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		data := pricingData()
		data.HourlyRate = decimal.NewFromInt(-1)
		_, err := Apply(baseProposal(entities.StatusPendingPricing), ActionSetPricing, coo, data, testNow)
		if !errors.Is(err, ErrInvalidActionData) {
			t.Fatalf("expected ErrInvalidActionData, got %v", err)
		}
	})
}

func TestApply_ApproveAndReject(t *testing.T) {
	t.Run("approve sets decision and notifies creator, estimators and coo", func(t *testing.T) {
		res, err := Apply(baseProposal(entities.StatusPendingDirectorApproval), ActionDirectorApprove, director, ActionData{Notes: "good margin"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := res.Proposal.DirectorApproval
		if d == nil || !d.Approved || d.ApprovedBy != director.UID || d.ApprovedAt == nil {
			t.Fatalf("approval = %+v", d)
		}
		if res.Proposal.Status != entities.StatusApproved {
			t.Fatalf("status = %q", res.Proposal.Status)
		}
		if len(res.Notifications) != 3 {
			t.Fatalf("notifications = %d, want 3", len(res.Notifications))
		}
		if res.Notifications[0].RecipientUID != bdm.UID {
			t.Fatalf("first notification should target the creator, got %+v", res.Notifications[0])
		}
		roles := map[entities.Role]bool{}
		for _, n := range res.Notifications[1:] {
			roles[n.RecipientRole] = true
		}
		if !roles[entities.RoleEstimator] || !roles[entities.RoleCOO] {
			t.Fatalf("role fan-out = %v", roles)
		}
		for _, n := range res.Notifications {
			if n.IsRead {
				t.Fatalf("notification created already read: %+v", n)
			}
		}
	})

	t.Run("reject requires a designated role", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingDirectorApproval), ActionDirectorReject, director, ActionData{}, testNow)
		if !errors.Is(err, ErrInvalidActionData) {
			t.Fatalf("expected ErrInvalidActionData, got %v", err)
		}
	})

	t.Run("director cannot be the designated role", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingDirectorApproval), ActionDirectorReject, director, ActionData{RequiresRevisionBy: entities.RoleDirector}, testNow)
		if !errors.Is(err, ErrInvalidActionData) {
			t.Fatalf("expected ErrInvalidActionData, got %v", err)
		}
	})

	t.Run("reject routes revision to the designated role", func(t *testing.T) {
		res, err := Apply(baseProposal(entities.StatusPendingDirectorApproval), ActionDirectorReject, director, ActionData{RequiresRevisionBy: entities.RoleEstimator, Notes: "hours too low"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Proposal.Status != entities.StatusRevisionRequired {
			t.Fatalf("status = %q", res.Proposal.Status)
		}
		d := res.Proposal.DirectorApproval
		if d == nil || d.Approved || d.RequiresRevisionBy != entities.RoleEstimator || d.RejectedAt == nil {
			t.Fatalf("approval = %+v", d)
		}
		if len(res.Notifications) != 1 || res.Notifications[0].RecipientRole != entities.RoleEstimator {
			t.Fatalf("notifications = %+v", res.Notifications)
		}
		if !strings.Contains(res.Notifications[0].Message, "hours too low") {
			t.Fatalf("message = %q", res.Notifications[0].Message)
		}
	})

	t.Run("reject aimed at bdm notifies the creator by uid", func(t *testing.T) {
		res, err := Apply(baseProposal(entities.StatusPendingDirectorApproval), ActionDirectorReject, director, ActionData{RequiresRevisionBy: entities.RoleBDM}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Notifications) != 1 || res.Notifications[0].RecipientUID != bdm.UID || res.Notifications[0].RecipientRole != "" {
			t.Fatalf("notifications = %+v", res.Notifications)
		}
	})
}

func TestApply_Resubmit(t *testing.T) {
	rejected := func(designated entities.Role) entities.Proposal {
		p := baseProposal(entities.StatusRevisionRequired)
		at := testNow.Add(-time.Hour)
		p.DirectorApproval = &entities.DirectorApproval{
			Approved:           false,
			RejectedBy:         director.UID,
			RejectedByName:     director.Name,
			RejectedAt:         &at,
			RequiresRevisionBy: designated,
		}
		p.Estimation = &entities.Estimation{TotalHours: 80, QuoteType: "fixed_bid", EstimatedBy: estimator.UID}
		return p
	}

	t.Run("only the designated role may resubmit", func(t *testing.T) {
		_, err := Apply(rejected(entities.RoleEstimator), ActionResubmitAfterRevision, coo, ActionData{}, testNow)
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("designated estimator refreshes the estimation", func(t *testing.T) {
		res, err := Apply(rejected(entities.RoleEstimator), ActionResubmitAfterRevision, estimator, ActionData{TotalHours: 140, QuoteType: "fixed_bid", Notes: "added rework buffer"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Proposal.Status != entities.StatusPendingDirectorApproval {
			t.Fatalf("status = %q", res.Proposal.Status)
		}
		if res.Proposal.Estimation.TotalHours != 140 {
			t.Fatalf("estimation hours = %v, want 140", res.Proposal.Estimation.TotalHours)
		}
		if len(res.Proposal.RevisionHistory) != 1 {
			t.Fatalf("revision history = %d entries", len(res.Proposal.RevisionHistory))
		}
		rh := res.Proposal.RevisionHistory[0]
		if rh.ResubmittedBy != estimator.UID || rh.Notes != "added rework buffer" {
			t.Fatalf("revision entry = %+v", rh)
		}
		if len(res.Notifications) != 0 {
			t.Fatalf("resubmit should notify nobody, got %d", len(res.Notifications))
		}
	})

	t.Run("designated bdm must be the creator", func(t *testing.T) {
		_, err := Apply(rejected(entities.RoleBDM), ActionResubmitAfterRevision, otherBDM, ActionData{}, testNow)
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
		res, err := Apply(rejected(entities.RoleBDM), ActionResubmitAfterRevision, bdm, ActionData{Timeline: "Q3"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Proposal.Timeline != "Q3" {
			t.Fatalf("timeline = %q", res.Proposal.Timeline)
		}
	})
}

func TestApply_Outcomes(t *testing.T) {
	t.Run("won", func(t *testing.T) {
		res, err := Apply(baseProposal(entities.StatusSubmittedToClient), ActionMarkJobWon, bdm, ActionData{Notes: "signed"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Proposal.Status != entities.StatusWon || res.Proposal.JobOutcome == nil || res.Proposal.JobOutcome.Outcome != "won" {
			t.Fatalf("outcome = %+v", res.Proposal.JobOutcome)
		}
		assertOutcomeFanOut(t, res.Notifications)
	})

	t.Run("lost keeps the reason", func(t *testing.T) {
		res, err := Apply(baseProposal(entities.StatusSubmittedToClient), ActionMarkJobLost, bdm, ActionData{Reason: "undercut on price"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Proposal.JobOutcome.Outcome != "lost" || res.Proposal.JobOutcome.Reason != "undercut on price" {
			t.Fatalf("outcome = %+v", res.Proposal.JobOutcome)
		}
		assertOutcomeFanOut(t, res.Notifications)
	})
}

func assertOutcomeFanOut(t *testing.T, ns []entities.Notification) {
	t.Helper()
	if len(ns) != 2 {
		t.Fatalf("notifications = %d, want 2", len(ns))
	}
	roles := map[entities.Role]bool{}
	for _, n := range ns {
		roles[n.RecipientRole] = true
	}
	if !roles[entities.RoleCOO] || !roles[entities.RoleDirector] {
		t.Fatalf("outcome fan-out = %v", roles)
	}
}

func TestApply_EditProposal(t *testing.T) {
	t.Run("creator edits before estimation", func(t *testing.T) {
		res, err := Apply(baseProposal(entities.StatusPendingEstimation), ActionEditProposal, bdm, ActionData{ProjectName: "Harbor Expansion II", Timeline: "Q4"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Proposal.ProjectName != "Harbor Expansion II" || res.Proposal.Timeline != "Q4" {
			t.Fatalf("edit not applied: %+v", res.Proposal)
		}
		if res.Proposal.Status != entities.StatusPendingEstimation {
			t.Fatalf("status = %q", res.Proposal.Status)
		}
		last := res.Proposal.ChangeLog[len(res.Proposal.ChangeLog)-1]
		if !strings.Contains(last.Details, "project_name") || !strings.Contains(last.Details, "timeline") {
			t.Fatalf("details = %q", last.Details)
		}
	})

	t.Run("locked once estimation started", func(t *testing.T) {
		_, err := Apply(baseProposal(entities.StatusPendingPricing), ActionEditProposal, bdm, ActionData{Priority: "low"}, testNow)
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})
}

func TestCreate(t *testing.T) {
	createData := ActionData{
		ProjectName:   "Harbor Expansion",
		ClientCompany: "Acme Marine",
		ProjectType:   "construction",
		ScopeOfWork:   "Quay wall extension",
		Priority:      "high",
	}

	t.Run("only bdm may create", func(t *testing.T) {
		_, err := Create(estimator, createData, testNow)
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("required fields", func(t *testing.T) {
		for _, blank := range []func(*ActionData){
			func(d *ActionData) { d.ProjectName = " " },
			func(d *ActionData) { d.ClientCompany = "" },
			func(d *ActionData) { d.ProjectType = "" },
			func(d *ActionData) { d.ScopeOfWork = "" },
		} {
			d := createData
			blank(&d)
			if _, err := Create(bdm, d, testNow); !errors.Is(err, ErrInvalidActionData) {
				t.Fatalf("expected ErrInvalidActionData for %+v, got %v", d, err)
			}
		}
	})

	t.Run("new proposal starts pending estimation", func(t *testing.T) {
		res, err := Create(bdm, createData, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := res.Proposal
		if p.Status != entities.StatusPendingEstimation || p.Revision != 1 {
			t.Fatalf("proposal = status %q revision %d", p.Status, p.Revision)
		}
		if p.CreatedByUID != bdm.UID || p.CreatedByName != bdm.Name {
			t.Fatalf("creator = %q/%q", p.CreatedByUID, p.CreatedByName)
		}
		if len(p.ChangeLog) != 1 || p.ChangeLog[0].Action != string(ActionCreate) {
			t.Fatalf("change log = %+v", p.ChangeLog)
		}
		if res.Activity.Type != string(ActionCreate) {
			t.Fatalf("activity = %+v", res.Activity)
		}
		if len(res.Notifications) != 0 {
			t.Fatalf("create should notify nobody")
		}
	})
}

func TestCanDelete(t *testing.T) {
	cases := []struct {
		name    string
		status  entities.ProposalStatus
		actor   Actor
		wantErr error
	}{
		{"creator while pending estimation", entities.StatusPendingEstimation, bdm, nil},
		{"creator after estimation", entities.StatusPendingPricing, bdm, ErrStatusConflict},
		{"creator after approval", entities.StatusApproved, bdm, ErrStatusConflict},
		{"other bdm", entities.StatusPendingEstimation, otherBDM, ErrNotOwner},
		{"estimator", entities.StatusPendingEstimation, estimator, ErrNotOwner},
		{"director any status", entities.StatusWon, director, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanDelete(baseProposal(tc.status), tc.actor)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestApply_FullLifecycle(t *testing.T) {
	res, err := Create(bdm, ActionData{
		ProjectName:   "Harbor Expansion",
		ClientCompany: "Acme Marine",
		ProjectType:   "construction",
		ScopeOfWork:   "Quay wall extension",
	}, testNow)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p := res.Proposal
	p.ID = "prop-1"

	step := func(action Action, actor Actor, data ActionData, at time.Time) Result {
		t.Helper()
		r, err := Apply(p, action, actor, data, at)
		if err != nil {
			t.Fatalf("%s: %v", action, err)
		}
		if r.Proposal.Revision != p.Revision+1 {
			t.Fatalf("%s: revision %d, want %d", action, r.Proposal.Revision, p.Revision+1)
		}
		p = r.Proposal
		return r
	}

	step(ActionAddEstimation, estimator, estimationData(), testNow.Add(time.Hour))

	// Pricing is the COO's alone.
	if _, err := Apply(p, ActionSetPricing, estimator, pricingData(), testNow.Add(2*time.Hour)); !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed for estimator pricing, got %v", err)
	}

	step(ActionSetPricing, coo, pricingData(), testNow.Add(2*time.Hour))
	if p.Status != entities.StatusPendingDirectorApproval {
		t.Fatalf("status = %q", p.Status)
	}

	approval := step(ActionDirectorApprove, director, ActionData{Notes: "approved"}, testNow.Add(3*time.Hour))
	creatorNotified := false
	for _, n := range approval.Notifications {
		if n.RecipientUID == bdm.UID {
			creatorNotified = true
		}
	}
	if !creatorNotified {
		t.Fatalf("creator was not notified on approval: %+v", approval.Notifications)
	}

	step(ActionSubmitToClient, bdm, ActionData{}, testNow.Add(4*time.Hour))
	step(ActionMarkJobWon, bdm, ActionData{}, testNow.Add(5*time.Hour))

	if p.Status != entities.StatusWon {
		t.Fatalf("final status = %q", p.Status)
	}
	// create + estimate + price + approve + submit + won
	if len(p.ChangeLog) != 6 {
		t.Fatalf("change log entries = %d, want 6", len(p.ChangeLog))
	}
}
