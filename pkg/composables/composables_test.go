package composables

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxion-io/fluxion/pkg/configuration"
)

type testActor struct {
	id       uuid.UUID
	tenantID uuid.UUID
}

func (a testActor) ID() uuid.UUID       { return a.id }
func (a testActor) TenantID() uuid.UUID { return a.tenantID }

func TestUseTenantID_FromActor(t *testing.T) {
	tenantID := uuid.New()
	ctx := WithActor(context.Background(), testActor{id: uuid.New(), tenantID: tenantID})

	got, err := UseTenantID(ctx)
	require.NoError(t, err)
	assert.Equal(t, tenantID, got)
}

func TestUseTenantID_PinnedOverridesActor(t *testing.T) {
	pinned := uuid.New()
	ctx := WithActor(context.Background(), testActor{id: uuid.New(), tenantID: uuid.New()})
	ctx = WithTenantID(ctx, pinned)

	got, err := UseTenantID(ctx)
	require.NoError(t, err)
	assert.Equal(t, pinned, got)
}

func TestUseTenantID_Missing(t *testing.T) {
	_, err := UseTenantID(context.Background())
	assert.ErrorIs(t, err, ErrNoTenant)
}

func TestUseActor_Missing(t *testing.T) {
	_, err := UseActor(context.Background())
	assert.ErrorIs(t, err, ErrNoActor)
}

func TestUseTx_NoPoolNoTx(t *testing.T) {
	_, err := UseTx(context.Background())
	assert.ErrorIs(t, err, ErrNoPool)
}

func TestApplyTenantRLS_NoTenantIsANoop(t *testing.T) {
	t.Setenv("RLS_ENFORCE", "enforce")
	t.Setenv("LOG_PATH", filepath.Join(t.TempDir(), "app.log"))
	require.Equal(t, "enforce", configuration.Use().RLSEnforce)

	// Seed and migration contexts carry no tenant; nothing is executed on
	// the transaction, so a nil tx is safe to pass.
	require.NoError(t, ApplyTenantRLS(context.Background(), nil))
}

func TestUseParams(t *testing.T) {
	params := &Params{IP: "10.0.0.1", UserAgent: "test-agent", Authenticated: true}
	ctx := WithParams(context.Background(), params)

	got, ok := UseParams(ctx)
	require.True(t, ok)
	assert.Equal(t, params, got)

	ip, ok := UseIP(ctx)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", ip)

	ua, ok := UseUserAgent(ctx)
	require.True(t, ok)
	assert.Equal(t, "test-agent", ua)

	assert.True(t, UseAuthenticated(ctx))
	assert.False(t, UseAuthenticated(context.Background()))
}
