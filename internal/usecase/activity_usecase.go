package usecase

import (
	"context"
	"strings"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/usecase/interfaces"
)

// ActivityFilter narrows the audit feed. An empty ProposalID means the global
// feed (scoped to the actor's own actions for a bdm).
type ActivityFilter struct {
	ProposalID string
	Limit      int
}

//go:generate mockgen -source=activity_usecase.go -destination=../adapter/http/handlers/mocks/activity_usecase_mock.go -package=mocks

// IActivityUseCase exposes read access to the audit feed. Writes happen as a
// side effect of proposal transitions, never through this interface.
type IActivityUseCase interface {
	List(ctx context.Context, actor workflow.Actor, filter ActivityFilter) ([]entities.Activity, error)
}

type ActivityUseCase struct {
	repo      interfaces.IActivityRepository
	proposals interfaces.IProposalRepository
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(repo interfaces.IActivityRepository, proposals interfaces.IProposalRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, proposals: proposals}
}

func (u *ActivityUseCase) List(ctx context.Context, actor workflow.Actor, filter ActivityFilter) ([]entities.Activity, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	proposalID := strings.TrimSpace(filter.ProposalID)
	if proposalID != "" {
		p, err := u.proposals.GetByID(ctx, proposalID)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, ErrProposalNotFound
		}
		if actor.Role == entities.RoleBDM && p.CreatedByUID != actor.UID {
			return nil, workflow.ErrNotOwner
		}
		return u.repo.ListByProposal(ctx, p.ID, limit)
	}

	// Without a proposal filter a bdm sees only what they did themselves;
	// elevated roles get the global feed.
	if actor.Role == entities.RoleBDM {
		return u.repo.ListByPerformer(ctx, actor.UID, limit)
	}
	return u.repo.ListRecent(ctx, limit)
}
