package tenant

import (
	"context"

	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/pkg/serrors"
)

var ErrNotFound = serrors.NewError("TENANT_NOT_FOUND", "tenant not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Tenant, error)
	GetBySlug(ctx context.Context, slug string) (Tenant, error)
	Create(ctx context.Context, t Tenant) (Tenant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Tenant, error)
}
