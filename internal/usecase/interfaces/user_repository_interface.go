package interfaces

import (
	"context"

	"bidtrack/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/user_repository_mock.go -package=mocks

// IUserRepository abstracts DynamoDB persistence for workforce accounts.
// GetByUID returns a zero-value user (empty UID) when nothing matches; the
// auth middleware then falls back to the token claims.
type IUserRepository interface {
	GetByUID(ctx context.Context, uid string) (entities.User, error)
	Put(ctx context.Context, u entities.User) (entities.User, error)
}
