package crud

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/eventbus"
)

type widgetCreate struct {
	tenant *uuid.UUID
	name   string
	color  string
}

func (d widgetCreate) TenantClaim() (uuid.UUID, bool) {
	if d.tenant == nil {
		return uuid.Nil, false
	}
	return *d.tenant, true
}

func (d widgetCreate) Entity() (widget, error) {
	return widget{Name: d.name, Color: d.color}, nil
}

type widgetPatch struct {
	changes []Change
}

func (d widgetPatch) Changes() []Change { return d.changes }

func newWidgetService(t *testing.T) *Service[widget] {
	t.Helper()
	return NewService(widgetSchema, NewMemoryRepository(widgetSchema), nil, ServiceOptions{
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})
}

func tenantCtx(tenantID uuid.UUID) context.Context {
	return composables.WithTenantID(context.Background(), tenantID)
}

func TestServiceCreate_OwnershipDefaultsToActorTenant(t *testing.T) {
	svc := newWidgetService(t)
	tenantID := uuid.New()

	created, err := svc.Create(tenantCtx(tenantID), widgetCreate{name: "gear", color: "red"})
	require.NoError(t, err)

	assert.Equal(t, tenantID, created.TenantID)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestServiceCreate_MatchingClaimIsAccepted(t *testing.T) {
	svc := newWidgetService(t)
	tenantID := uuid.New()

	created, err := svc.Create(tenantCtx(tenantID), widgetCreate{tenant: &tenantID, name: "gear"})
	require.NoError(t, err)
	assert.Equal(t, tenantID, created.TenantID)
}

func TestServiceCreate_ForeignClaimIsRejected(t *testing.T) {
	svc := newWidgetService(t)
	tenantID := uuid.New()
	other := uuid.New()

	_, err := svc.Create(tenantCtx(tenantID), widgetCreate{tenant: &other, name: "gear"})
	require.ErrorIs(t, err, ErrForeignTenant)

	// Nothing was written.
	page, err := svc.List(tenantCtx(tenantID), ListParams{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestServiceCreate_BeforeCreateRejectionWritesNothing(t *testing.T) {
	svc := newWidgetService(t).OnBeforeCreate(func(_ context.Context, w *widget) error {
		if w.Name == "reserved" {
			return NewValidationError(map[string]string{"name": "reserved name"})
		}
		return nil
	})
	ctx := tenantCtx(uuid.New())

	_, err := svc.Create(ctx, widgetCreate{name: "reserved"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	page, err := svc.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	created, err := svc.Create(ctx, widgetCreate{name: "gear"})
	require.NoError(t, err)
	assert.Equal(t, "gear", created.Name)
}

func TestServiceTenantIsolation(t *testing.T) {
	svc := newWidgetService(t)
	tenantA := uuid.New()
	tenantB := uuid.New()

	created, err := svc.Create(tenantCtx(tenantA), widgetCreate{name: "gear", color: "red"})
	require.NoError(t, err)

	t.Run("foreign reads are indistinguishable from absent", func(t *testing.T) {
		_, err := svc.GetByID(tenantCtx(tenantB), created.ID)
		assert.True(t, IsNotFound(err))
	})

	t.Run("foreign list is empty", func(t *testing.T) {
		page, err := svc.List(tenantCtx(tenantB), ListParams{})
		require.NoError(t, err)
		assert.Zero(t, page.Total)
		assert.Empty(t, page.Items)
	})

	t.Run("foreign update misses", func(t *testing.T) {
		_, err := svc.Update(tenantCtx(tenantB), created.ID, widgetPatch{
			changes: []Change{{Column: "name", Value: "stolen"}},
		})
		assert.True(t, IsNotFound(err))
	})

	t.Run("foreign delete misses", func(t *testing.T) {
		err := svc.Delete(tenantCtx(tenantB), created.ID)
		assert.True(t, IsNotFound(err))
	})

	t.Run("owner still sees the original", func(t *testing.T) {
		got, err := svc.GetByID(tenantCtx(tenantA), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "gear", got.Name)
	})
}

func TestServiceList_PaginationReproducesTheFullSet(t *testing.T) {
	svc := newWidgetService(t)
	tenantID := uuid.New()
	ctx := tenantCtx(tenantID)

	want := make(map[uuid.UUID]bool, 25)
	for i := 0; i < 25; i++ {
		created, err := svc.Create(ctx, widgetCreate{name: "gear", color: "red"})
		require.NoError(t, err)
		want[created.ID] = true
	}

	got := make(map[uuid.UUID]bool, 25)
	sizes := []int{10, 10, 5}
	for page := 1; page <= 3; page++ {
		result, err := svc.List(ctx, ListParams{Page: page, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(25), result.Total)
		assert.Equal(t, 3, result.Pages)
		assert.Len(t, result.Items, sizes[page-1])
		for _, item := range result.Items {
			assert.False(t, got[item.ID], "item %s appeared twice", item.ID)
			got[item.ID] = true
		}
	}
	assert.Equal(t, want, got)

	t.Run("past the last page is empty, not an error", func(t *testing.T) {
		result, err := svc.List(ctx, ListParams{Page: 4, Size: 10})
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, int64(25), result.Total)
	})
}

func TestServiceList_SearchIsCaseInsensitive(t *testing.T) {
	svc := newWidgetService(t)
	ctx := tenantCtx(uuid.New())

	_, err := svc.Create(ctx, widgetCreate{name: "Main Gear", color: "red"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, widgetCreate{name: "sprocket", color: "blue"})
	require.NoError(t, err)

	page, err := svc.List(ctx, ListParams{Search: "mAiN"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Main Gear", page.Items[0].Name)
	assert.Equal(t, int64(1), page.Total)
}

func TestServiceList_InvalidPagingIsRejected(t *testing.T) {
	svc := newWidgetService(t)
	ctx := tenantCtx(uuid.New())

	for _, params := range []ListParams{{Page: -1}, {Size: 101}} {
		_, err := svc.List(ctx, params)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	}
}

func TestServiceUpdate_PartialPatchLeavesOtherFieldsUntouched(t *testing.T) {
	svc := newWidgetService(t)
	ctx := tenantCtx(uuid.New())

	created, err := svc.Create(ctx, widgetCreate{name: "gear", color: "red"})
	require.NoError(t, err)

	patch := widgetPatch{changes: []Change{{Column: "name", Value: "sprocket"}}}

	first, err := svc.Update(ctx, created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "sprocket", first.Name)
	assert.Equal(t, "red", first.Color)

	// Re-applying the same patch converges on the same state.
	second, err := svc.Update(ctx, created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Color, second.Color)
}

func TestServiceUpdate_EmptyPatchReadsBackCurrentState(t *testing.T) {
	svc := newWidgetService(t)
	ctx := tenantCtx(uuid.New())

	created, err := svc.Create(ctx, widgetCreate{name: "gear", color: "red"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, created.ID, widgetPatch{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "gear", got.Name)
	assert.Equal(t, "red", got.Color)
}

func TestServiceDelete_IsFinal(t *testing.T) {
	svc := newWidgetService(t)
	ctx := tenantCtx(uuid.New())

	created, err := svc.Create(ctx, widgetCreate{name: "gear"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.True(t, IsNotFound(err))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, IsNotFound(err))

	page, err := svc.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestServicePublishesLifecycleEvents(t *testing.T) {
	bus := eventbus.NewEventPublisher(logrus.New())
	svc := NewService(widgetSchema, NewMemoryRepository(widgetSchema), bus, ServiceOptions{})
	ctx := tenantCtx(uuid.New())

	var created, updated, deleted int
	bus.Subscribe(func(e *CreatedEvent[widget]) { created++ })
	bus.Subscribe(func(e *UpdatedEvent[widget]) { updated++ })
	bus.Subscribe(func(e *DeletedEvent[widget]) { deleted++ })

	w, err := svc.Create(ctx, widgetCreate{name: "gear"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, w.ID, widgetPatch{changes: []Change{{Column: "name", Value: "x"}}})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, w.ID))

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, deleted)
}
