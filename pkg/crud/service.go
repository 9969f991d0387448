package crud

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/eventbus"
)

// CreateInput is a validated creation payload. TenantClaim exposes an
// explicit tenant_id carried by the payload, if any; Entity builds the
// entity to persist.
type CreateInput[E any] interface {
	TenantClaim() (uuid.UUID, bool)
	Entity() (E, error)
}

// UpdateInput is a partial patch: Changes returns only the fields the
// caller explicitly supplied, so absent fields stay untouched.
type UpdateInput interface {
	Changes() []Change
}

// BeforeCreateFunc checks an entity against existing data before it is
// persisted, e.g. that a referenced parent resolves under the acting
// tenant.
type BeforeCreateFunc[E any] func(ctx context.Context, entity *E) error

// Service orchestrates one resource kind through the gateway contract:
// creation ownership, pagination bounds, partial updates and lifecycle
// events. It holds no per-request state; the acting tenant always comes
// from the request context.
type Service[E any] struct {
	schema       Schema[E]
	repo         Repository[E]
	bus          eventbus.EventBus
	beforeCreate BeforeCreateFunc[E]
	defaultSize  int
	maxSize      int
}

type ServiceOptions struct {
	DefaultPageSize int
	MaxPageSize     int
}

func NewService[E any](schema Schema[E], repository Repository[E], bus eventbus.EventBus, opts ServiceOptions) *Service[E] {
	if err := schema.Validate(); err != nil {
		panic(err)
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 20
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = 100
	}
	return &Service[E]{
		schema:      schema,
		repo:        repository,
		bus:         bus,
		defaultSize: opts.DefaultPageSize,
		maxSize:     opts.MaxPageSize,
	}
}

func (s *Service[E]) Schema() Schema[E] {
	return s.schema
}

// OnBeforeCreate installs a pre-persist check and returns the service for
// chaining at registration time.
func (s *Service[E]) OnBeforeCreate(fn BeforeCreateFunc[E]) *Service[E] {
	s.beforeCreate = fn
	return s
}

// Create persists a new resource under the actor's tenant. A payload
// explicitly claiming another tenant is rejected before anything is
// written; an absent claim defaults to the actor's tenant.
func (s *Service[E]) Create(ctx context.Context, input CreateInput[E]) (E, error) {
	var zero E
	if s.schema.tenantScoped() {
		if claimed, ok := input.TenantClaim(); ok {
			tenantID, err := composables.UseTenantID(ctx)
			if err != nil {
				return zero, err
			}
			if claimed != tenantID {
				return zero, ErrForeignTenant.WithTemplateData(map[string]string{
					"resource": s.schema.Resource,
				})
			}
		}
	}

	entity, err := input.Entity()
	if err != nil {
		return zero, err
	}
	if s.beforeCreate != nil {
		if err := s.beforeCreate(ctx, &entity); err != nil {
			return zero, err
		}
	}
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return zero, err
	}
	s.publish(&CreatedEvent[E]{Resource: s.schema.Resource, Entity: created})
	return created, nil
}

func (s *Service[E]) GetByID(ctx context.Context, id uuid.UUID) (E, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service[E]) List(ctx context.Context, params ListParams) (Page[E], error) {
	params, err := params.Normalize(s.defaultSize, s.maxSize)
	if err != nil {
		return Page[E]{}, err
	}
	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return Page[E]{}, err
	}
	return NewPage(items, total, params), nil
}

// Update applies a partial patch. The resource must resolve under the
// tenant predicate first; an empty patch reads back the current state
// without writing.
func (s *Service[E]) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (E, error) {
	changes := input.Changes()
	if len(changes) == 0 {
		return s.repo.GetByID(ctx, id)
	}
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		var zero E
		return zero, err
	}
	s.publish(&UpdatedEvent[E]{Resource: s.schema.Resource, Entity: updated})
	return updated, nil
}

func (s *Service[E]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(&DeletedEvent[E]{Resource: s.schema.Resource, ID: id})
	return nil
}

func (s *Service[E]) publish(event any) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event)
}

// IsNotFound reports whether err is the gateway's not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
