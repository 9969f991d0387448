package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/modules/core/domain/aggregates/tenant"
)

type TenantService struct {
	repo tenant.Repository
}

func NewTenantService(repo tenant.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (tenant.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TenantService) GetBySlug(ctx context.Context, slug string) (tenant.Tenant, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *TenantService) Create(ctx context.Context, name, slug, planCode string) (tenant.Tenant, error) {
	return s.repo.Create(ctx, tenant.New(name, slug, planCode))
}

func (s *TenantService) Suspend(ctx context.Context, id uuid.UUID) (tenant.Tenant, error) {
	return s.repo.UpdateStatus(ctx, id, tenant.StatusSuspended)
}

func (s *TenantService) Activate(ctx context.Context, id uuid.UUID) (tenant.Tenant, error) {
	return s.repo.UpdateStatus(ctx, id, tenant.StatusActive)
}
