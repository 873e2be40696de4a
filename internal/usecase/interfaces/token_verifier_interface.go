package interfaces

import (
	"context"

	"bidtrack/internal/domain/entities"
)

//go:generate mockgen -source=token_verifier_interface.go -destination=mocks/token_verifier_mock.go -package=mocks

// ITokenVerifier validates a bearer token and returns the identity it was
// minted for. Identity verification itself is an external concern; this
// service only checks the token and reads its claims.
type ITokenVerifier interface {
	Verify(ctx context.Context, token string) (entities.User, error)
}
