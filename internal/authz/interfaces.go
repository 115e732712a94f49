package authz

import (
	"context"

	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=authz

// ProfileLoader resolves the roles of a verified user
type ProfileLoader interface {
	GetProfileByID(ctx context.Context, id uuid.UUID) (store.Profile, error)
}

// TokenValidator verifies a bearer token
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error)
}
