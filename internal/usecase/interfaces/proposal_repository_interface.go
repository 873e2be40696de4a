package interfaces

import (
	"context"
	"errors"

	"bidtrack/internal/domain/entities"
)

//go:generate mockgen -source=proposal_repository_interface.go -destination=mocks/proposal_repository_mock.go -package=mocks

// ErrRevisionMismatch reports a lost optimistic-concurrency race: the stored
// revision no longer matches the one the caller read.
var ErrRevisionMismatch = errors.New("proposal revision mismatch")

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Contract notes:
//   - GetByID returns a zero-value proposal (empty ID) when nothing matches.
//   - Update replaces the whole document conditionally on expectedRevision and
//     returns ErrRevisionMismatch when a concurrent writer got there first.
//   - Lists come back newest first, capped at limit.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListAll(ctx context.Context, limit int) ([]entities.Proposal, error)
	ListByCreator(ctx context.Context, creatorUID string, limit int) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal, expectedRevision int64) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}
