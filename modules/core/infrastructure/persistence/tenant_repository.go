package persistence

import (
	"context"
	"errors"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fluxion-io/fluxion/modules/core/domain/aggregates/tenant"
	"github.com/fluxion-io/fluxion/pkg/composables"
)

const tenantColumns = "id, name, slug, status, plan_code, created_at, updated_at"

type TenantRepository struct{}

func NewTenantRepository() tenant.Repository {
	return &TenantRepository{}
}

func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return tenant.Tenant{}, err
	}
	row := tx.QueryRow(ctx, "SELECT "+tenantColumns+" FROM tenants WHERE id = $1", id)
	return scanTenant(row)
}

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return tenant.Tenant{}, err
	}
	row := tx.QueryRow(ctx, "SELECT "+tenantColumns+" FROM tenants WHERE slug = $1", slug)
	return scanTenant(row)
}

func (r *TenantRepository) Create(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return tenant.Tenant{}, err
	}
	row := tx.QueryRow(ctx, `
INSERT INTO tenants (name, slug, status, plan_code)
VALUES ($1, $2, $3, $4)
RETURNING `+tenantColumns,
		t.Name(), t.Slug(), string(t.Status()), t.PlanCode(),
	)
	created, err := scanTenant(row)
	if err != nil {
		return tenant.Tenant{}, gerrors.Wrap(err, "create tenant")
	}
	return created, nil
}

func (r *TenantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status tenant.Status) (tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return tenant.Tenant{}, err
	}
	row := tx.QueryRow(ctx, `
UPDATE tenants SET status = $1, updated_at = now()
WHERE id = $2
RETURNING `+tenantColumns,
		string(status), id,
	)
	return scanTenant(row)
}

func scanTenant(row pgx.Row) (tenant.Tenant, error) {
	var (
		id        uuid.UUID
		name      string
		slug      string
		status    string
		planCode  string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &slug, &status, &planCode, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.Tenant{}, tenant.ErrNotFound
		}
		return tenant.Tenant{}, err
	}
	return tenant.Hydrate(id, name, slug, tenant.Status(status), planCode, createdAt, updatedAt), nil
}
