package services

import (
	"context"
	"errors"

	"github.com/fluxion-io/fluxion/modules/core/domain/aggregates/tenant"
	"github.com/fluxion-io/fluxion/modules/core/domain/aggregates/user"
	"github.com/fluxion-io/fluxion/pkg/serrors"
)

var (
	ErrInvalidAPIKey     = serrors.NewError("UNAUTHORIZED", "invalid API key")
	ErrTenantSuspended   = serrors.NewError("TENANT_SUSPENDED", "tenant is suspended")
	ErrInvalidCredential = serrors.NewError("UNAUTHORIZED", "invalid email or password")
)

type AuthService struct {
	users   user.Repository
	tenants tenant.Repository
}

func NewAuthService(users user.Repository, tenants tenant.Repository) *AuthService {
	return &AuthService{users: users, tenants: tenants}
}

// AuthenticateAPIKey resolves a bearer API key to its user and verifies the
// owning tenant is active. Unknown keys and keys of suspended tenants are
// reported with distinct errors so the transport layer can map them to 401
// and 403 respectively.
func (s *AuthService) AuthenticateAPIKey(ctx context.Context, apiKey string) (user.User, tenant.Tenant, error) {
	u, err := s.users.GetByAPIKeyDigest(ctx, DigestAPIKey(apiKey))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, tenant.Tenant{}, ErrInvalidAPIKey
		}
		return user.User{}, tenant.Tenant{}, err
	}
	t, err := s.tenants.GetByID(ctx, u.TenantID())
	if err != nil {
		return user.User{}, tenant.Tenant{}, err
	}
	if !t.IsActive() {
		return user.User{}, tenant.Tenant{}, ErrTenantSuspended
	}
	return u, t, nil
}
