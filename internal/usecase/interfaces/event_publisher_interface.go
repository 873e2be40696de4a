package interfaces

import (
	"context"

	"bidtrack/internal/domain/entities"
)

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_mock.go -package=mocks

// IEventPublisher pushes accepted workflow transitions onto the message bus
// for downstream consumers. Publishing is best-effort: callers log failures
// and move on, the transition itself is already committed.
type IEventPublisher interface {
	PublishTransition(ctx context.Context, action string, p entities.Proposal, actorName string) error
}

// IRealtimeBroadcaster fans fresh notifications out to connected websocket
// clients. Implementations must never block the caller.
type IRealtimeBroadcaster interface {
	BroadcastNotification(n entities.Notification)
}
