package crud

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/configuration"
)

func TestPgRepositoryEnforcedRLS(t *testing.T) {
	t.Setenv("RLS_ENFORCE", "enforce")
	t.Setenv("LOG_PATH", filepath.Join(t.TempDir(), "app.log"))
	require.Equal(t, "enforce", configuration.Use().RLSEnforce)

	r := NewPgRepository(widgetSchema)
	ctx := composables.WithTenantID(context.Background(), uuid.New())

	t.Run("reads resolve without a request transaction", func(t *testing.T) {
		// No pool is wired here, so an allowed read surfaces ErrNoPool from
		// the tenant transaction it opens on demand.
		_, err := r.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, composables.ErrNoPool)

		_, _, err = r.List(ctx, ListParams{Page: 1, Size: 10})
		require.ErrorIs(t, err, composables.ErrNoPool)
	})

	t.Run("writes demand an explicit transaction", func(t *testing.T) {
		_, err := r.Create(ctx, widget{Name: "gear"})
		require.ErrorContains(t, err, "explicit transaction")

		_, err = r.Update(ctx, uuid.New(), []Change{{Column: "name", Value: "x"}})
		require.ErrorContains(t, err, "explicit transaction")

		err = r.Delete(ctx, uuid.New())
		require.ErrorContains(t, err, "explicit transaction")
	})
}
