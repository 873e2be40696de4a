package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/observability"
	"bidtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrProposalConflict  = errors.New("proposal was modified concurrently")
)

const defaultListLimit = 50

// ProposalFilter narrows List results. Zero values mean no filtering.
type ProposalFilter struct {
	Status entities.ProposalStatus
	Limit  int
}

//go:generate mockgen -source=proposal_usecase.go -destination=../adapter/http/handlers/mocks/proposal_usecase_mock.go -package=mocks

// IProposalUseCase exposes the proposal lifecycle operations.
//
// Every mutation runs through the workflow engine; this layer adds
// persistence, identifier assignment and the best-effort side effects
// (activity feed, notifications, realtime push, bus events).
type IProposalUseCase interface {
	Create(ctx context.Context, actor workflow.Actor, data workflow.ActionData) (entities.Proposal, error)
	GetByID(ctx context.Context, actor workflow.Actor, id string) (entities.Proposal, error)
	List(ctx context.Context, actor workflow.Actor, filter ProposalFilter) ([]entities.Proposal, error)
	ApplyAction(ctx context.Context, actor workflow.Actor, id string, action workflow.Action, data workflow.ActionData) (entities.Proposal, error)
	Delete(ctx context.Context, actor workflow.Actor, id string) error
}

type ProposalUseCase struct {
	repo          interfaces.IProposalRepository
	activities    interfaces.IActivityRepository
	notifications interfaces.INotificationRepository
	files         interfaces.IFileRepository
	blobs         interfaces.IBlobStore
	events        interfaces.IEventPublisher
	realtime      interfaces.IRealtimeBroadcaster
	log           zerolog.Logger
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	activities interfaces.IActivityRepository,
	notifications interfaces.INotificationRepository,
	files interfaces.IFileRepository,
	blobs interfaces.IBlobStore,
	events interfaces.IEventPublisher,
	realtime interfaces.IRealtimeBroadcaster,
	log zerolog.Logger,
) *ProposalUseCase {
	return &ProposalUseCase{
		repo:          repo,
		activities:    activities,
		notifications: notifications,
		files:         files,
		blobs:         blobs,
		events:        events,
		realtime:      realtime,
		log:           log.With().Str("component", "proposal_usecase").Logger(),
	}
}

func (u *ProposalUseCase) Create(ctx context.Context, actor workflow.Actor, data workflow.ActionData) (entities.Proposal, error) {
	res, err := workflow.Create(actor, data, time.Now().UTC())
	if err != nil {
		observability.RecordTransition(string(workflow.ActionCreate), observability.OutcomeRejected)
		return entities.Proposal{}, err
	}

	res.Proposal.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, res.Proposal)
	if err != nil {
		return entities.Proposal{}, err
	}
	observability.RecordTransition(string(workflow.ActionCreate), observability.OutcomeAccepted)

	res.Activity.ProposalID = created.ID
	u.recordActivity(ctx, res.Activity)
	u.publishEvent(ctx, string(workflow.ActionCreate), created, actor.Name)
	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, actor workflow.Actor, id string) (entities.Proposal, error) {
	p, err := u.fetch(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if actor.Role == entities.RoleBDM && p.CreatedByUID != actor.UID {
		return entities.Proposal{}, workflow.ErrNotOwner
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context, actor workflow.Actor, filter ProposalFilter) ([]entities.Proposal, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var (
		proposals []entities.Proposal
		err       error
	)
	// A bdm only ever sees their own pipeline.
	if actor.Role == entities.RoleBDM {
		proposals, err = u.repo.ListByCreator(ctx, actor.UID, limit)
	} else {
		proposals, err = u.repo.ListAll(ctx, limit)
	}
	if err != nil {
		return nil, err
	}

	if filter.Status == "" {
		return proposals, nil
	}
	filtered := make([]entities.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if p.Status == filter.Status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (u *ProposalUseCase) ApplyAction(ctx context.Context, actor workflow.Actor, id string, action workflow.Action, data workflow.ActionData) (entities.Proposal, error) {
	current, err := u.fetch(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	res, err := workflow.Apply(current, action, actor, data, time.Now().UTC())
	if err != nil {
		observability.RecordTransition(string(action), observability.OutcomeRejected)
		return entities.Proposal{}, err
	}

	updated, err := u.repo.Update(ctx, res.Proposal, current.Revision)
	if err != nil {
		if errors.Is(err, interfaces.ErrRevisionMismatch) {
			observability.RecordTransition(string(action), observability.OutcomeConflict)
			return entities.Proposal{}, ErrProposalConflict
		}
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	observability.RecordTransition(string(action), observability.OutcomeAccepted)

	// The transition is committed; everything below is best-effort.
	u.recordActivity(ctx, res.Activity)
	u.dispatchNotifications(ctx, res.Notifications)
	u.publishEvent(ctx, string(action), updated, actor.Name)
	return updated, nil
}

func (u *ProposalUseCase) Delete(ctx context.Context, actor workflow.Actor, id string) error {
	p, err := u.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err := workflow.CanDelete(p, actor); err != nil {
		return err
	}

	// Attachments go first so no metadata survives pointing at a dead proposal.
	attachments, err := u.files.ListByProposal(ctx, p.ID)
	if err != nil {
		return err
	}
	for _, f := range attachments {
		if u.blobs != nil && f.FileType != entities.FileTypeLink && f.FileName != "" {
			if err := u.blobs.Delete(ctx, f.FileName); err != nil {
				u.log.Warn().Err(err).Str("file_id", f.ID).Str("key", f.FileName).Msg("blob cleanup failed")
			}
		}
		if err := u.files.Delete(ctx, f.ID); err != nil {
			return err
		}
	}

	if err := u.repo.Delete(ctx, p.ID); err != nil {
		return err
	}
	observability.RecordTransition(string(workflow.ActionDelete), observability.OutcomeAccepted)

	u.recordActivity(ctx, entities.Activity{
		Type:            string(workflow.ActionDelete),
		ProposalID:      p.ID,
		ProjectName:     p.ProjectName,
		ClientCompany:   p.ClientCompany,
		PerformedByUID:  actor.UID,
		PerformedByName: actor.Name,
		PerformedByRole: actor.Role,
		Timestamp:       time.Now().UTC(),
	})
	u.publishEvent(ctx, string(workflow.ActionDelete), p, actor.Name)
	return nil
}

func (u *ProposalUseCase) fetch(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// recordActivity appends to the audit feed. Failures are logged and swallowed;
// the committed transition is never rolled back over its audit line.
func (u *ProposalUseCase) recordActivity(ctx context.Context, a entities.Activity) {
	a.ID = uuid.NewString()
	if _, err := u.activities.Create(ctx, a); err != nil {
		u.log.Warn().Err(err).Str("proposal_id", a.ProposalID).Str("action", a.Type).Msg("activity write failed")
	}
}

func (u *ProposalUseCase) dispatchNotifications(ctx context.Context, ns []entities.Notification) {
	for _, n := range ns {
		n.ID = uuid.NewString()
		created, err := u.notifications.Create(ctx, n)
		if err != nil {
			u.log.Warn().Err(err).Str("proposal_id", n.ProposalID).Str("type", n.Type).Msg("notification write failed")
			continue
		}
		observability.RecordNotification(created.Type)
		if u.realtime != nil {
			u.realtime.BroadcastNotification(created)
		}
	}
}

func (u *ProposalUseCase) publishEvent(ctx context.Context, action string, p entities.Proposal, actorName string) {
	if u.events == nil {
		return
	}
	if err := u.events.PublishTransition(ctx, action, p, actorName); err != nil {
		u.log.Warn().Err(err).Str("proposal_id", p.ID).Str("action", action).Msg("event publish failed")
	}
}
