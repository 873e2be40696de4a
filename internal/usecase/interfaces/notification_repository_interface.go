package interfaces

import (
	"context"

	"bidtrack/internal/domain/entities"
)

//go:generate mockgen -source=notification_repository_interface.go -destination=mocks/notification_repository_mock.go -package=mocks

// INotificationRepository abstracts DynamoDB persistence for notifications.
//
// A notification targets either one user (recipient uid) or a whole role;
// reads merge both query paths for the acting user. MarkRead flips is_read and
// returns the zero value when the id is unknown.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByRecipientUID(ctx context.Context, uid string, limit int) ([]entities.Notification, error)
	ListByRecipientRole(ctx context.Context, role entities.Role, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}
