package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/pkg/serrors"
)

var (
	ErrNotFound   = serrors.NewError("USER_NOT_FOUND", "user not found")
	ErrEmailTaken = serrors.NewError("USER_EMAIL_TAKEN", "email already registered")
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByAPIKeyDigest(ctx context.Context, digest string) (User, error)
	Create(ctx context.Context, u User) (User, error)
}
