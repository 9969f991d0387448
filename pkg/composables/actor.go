package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/pkg/constants"
)

var (
	ErrNoTenant = errors.New("no tenant found in context")
	ErrNoActor  = errors.New("no actor found in context")
)

// Actor is the authenticated identity executing the request. Concrete user
// aggregates implement it; everything downstream only needs the two IDs.
type Actor interface {
	ID() uuid.UUID
	TenantID() uuid.UUID
}

func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.TenantIDKey, tenantID)
}

// UseTenantID returns the acting tenant. Prefers an explicitly pinned tenant
// id, falling back to the actor's tenant.
func UseTenantID(ctx context.Context) (uuid.UUID, error) {
	if tenantID, ok := ctx.Value(constants.TenantIDKey).(uuid.UUID); ok && tenantID != uuid.Nil {
		return tenantID, nil
	}
	if actor, ok := ctx.Value(constants.UserKey).(Actor); ok {
		return actor.TenantID(), nil
	}
	return uuid.Nil, ErrNoTenant
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, constants.UserKey, actor)
}

func UseActor(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(constants.UserKey).(Actor)
	if !ok {
		return nil, ErrNoActor
	}
	return actor, nil
}
