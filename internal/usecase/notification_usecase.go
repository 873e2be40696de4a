package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrNotRecipient          = errors.New("notification belongs to another recipient")
)

//go:generate mockgen -source=notification_usecase.go -destination=../adapter/http/handlers/mocks/notification_usecase_mock.go -package=mocks

// INotificationUseCase exposes the actor's notification inbox: everything
// addressed to their uid plus everything addressed to their role.
type INotificationUseCase interface {
	ListForActor(ctx context.Context, actor workflow.Actor, unreadOnly bool, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, actor workflow.Actor, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, actor workflow.Actor) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
	log  zerolog.Logger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, log zerolog.Logger) *NotificationUseCase {
	return &NotificationUseCase{
		repo: repo,
		log:  log.With().Str("component", "notification_usecase").Logger(),
	}
}

func (u *NotificationUseCase) ListForActor(ctx context.Context, actor workflow.Actor, unreadOnly bool, limit int) ([]entities.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	byUID, err := u.repo.ListByRecipientUID(ctx, actor.UID, limit)
	if err != nil {
		return nil, err
	}
	byRole, err := u.repo.ListByRecipientRole(ctx, actor.Role, limit)
	if err != nil {
		return nil, err
	}

	merged := append(byUID, byRole...)
	if unreadOnly {
		unread := merged[:0]
		for _, n := range merged {
			if !n.IsRead {
				unread = append(unread, n)
			}
		}
		merged = unread
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actor workflow.Actor, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if !addressedTo(n, actor) {
		return entities.Notification{}, ErrNotRecipient
	}

	updated, err := u.repo.MarkRead(ctx, n.ID)
	if err != nil {
		return entities.Notification{}, err
	}
	if updated.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return updated, nil
}

// MarkAllRead flips every unread notification currently addressed to the actor
// and reports how many it touched.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context, actor workflow.Actor) (int, error) {
	pending, err := u.ListForActor(ctx, actor, true, markAllScanLimit)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range pending {
		if _, err := u.repo.MarkRead(ctx, n.ID); err != nil {
			u.log.Warn().Err(err).Str("notification_id", n.ID).Msg("mark read failed")
			continue
		}
		count++
	}
	return count, nil
}

const markAllScanLimit = 200

func addressedTo(n entities.Notification, actor workflow.Actor) bool {
	if n.RecipientUID != "" {
		return n.RecipientUID == actor.UID
	}
	return n.RecipientRole == actor.Role
}
