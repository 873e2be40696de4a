package interfaces

import (
	"context"

	"bidtrack/internal/domain/entities"
)

//go:generate mockgen -source=activity_repository_interface.go -destination=mocks/activity_repository_mock.go -package=mocks

// IActivityRepository abstracts DynamoDB persistence for the audit feed.
// Activities are write-once; there is no update or delete.
type IActivityRepository interface {
	Create(ctx context.Context, a entities.Activity) (entities.Activity, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Activity, error)
	ListByProposal(ctx context.Context, proposalID string, limit int) ([]entities.Activity, error)
	ListByPerformer(ctx context.Context, performerUID string, limit int) ([]entities.Activity, error)
}
