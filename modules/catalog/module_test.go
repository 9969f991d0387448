package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxion-io/fluxion/modules/catalog/domain"
	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

func TestPlansAreVisibleToEveryTenant(t *testing.T) {
	repo := crud.NewMemoryRepository(domain.PlanSchema)
	svc := crud.NewService(domain.PlanSchema, repo, nil, crud.ServiceOptions{})

	created, err := repo.Create(context.Background(), domain.Plan{
		Code: "starter", Name: "Starter", PriceCents: 0, ContactLimit: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, created.TenantID)

	for range 2 {
		ctx := composables.WithTenantID(context.Background(), uuid.New())
		page, err := svc.List(ctx, crud.ListParams{})
		require.NoError(t, err)
		require.Equal(t, int64(1), page.Total)
		assert.Equal(t, "starter", page.Items[0].Code)
	}
}

func TestPlanSchemaIsGlobalAndOrderedByPrice(t *testing.T) {
	assert.Equal(t, crud.ScopeGlobal, domain.PlanSchema.Scope)
	assert.Equal(t, "price_cents ASC", domain.PlanSchema.OrderBy)
	require.NoError(t, domain.PlanSchema.Validate())
}
