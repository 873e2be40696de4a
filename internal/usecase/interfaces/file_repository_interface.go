package interfaces

import (
	"context"

	"bidtrack/internal/domain/entities"
)

//go:generate mockgen -source=file_repository_interface.go -destination=mocks/file_repository_mock.go -package=mocks

// IFileRepository abstracts DynamoDB persistence for attachment metadata.
// The bytes live in the blob store; these are the documents pointing at them.
type IFileRepository interface {
	Create(ctx context.Context, f entities.FileAttachment) (entities.FileAttachment, error)
	GetByID(ctx context.Context, id string) (entities.FileAttachment, error)
	ListByProposal(ctx context.Context, proposalID string) ([]entities.FileAttachment, error)
	Delete(ctx context.Context, id string) error
}
