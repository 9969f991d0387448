package tenant

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Tenant is the isolation boundary: every tenant-owned resource belongs to
// exactly one tenant, and actors only ever see their own tenant's rows.
type Tenant struct {
	id        uuid.UUID
	name      string
	slug      string
	status    Status
	planCode  string
	createdAt time.Time
	updatedAt time.Time
}

func New(name, slug, planCode string) Tenant {
	return Tenant{
		name:     strings.TrimSpace(name),
		slug:     normalizeSlug(slug),
		status:   StatusActive,
		planCode: strings.TrimSpace(planCode),
	}
}

func Hydrate(
	id uuid.UUID,
	name string,
	slug string,
	status Status,
	planCode string,
	createdAt time.Time,
	updatedAt time.Time,
) Tenant {
	return Tenant{
		id:        id,
		name:      strings.TrimSpace(name),
		slug:      normalizeSlug(slug),
		status:    status,
		planCode:  strings.TrimSpace(planCode),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t Tenant) ID() uuid.UUID        { return t.id }
func (t Tenant) Name() string         { return t.name }
func (t Tenant) Slug() string         { return t.slug }
func (t Tenant) Status() Status       { return t.status }
func (t Tenant) PlanCode() string     { return t.planCode }
func (t Tenant) CreatedAt() time.Time { return t.createdAt }
func (t Tenant) UpdatedAt() time.Time { return t.updatedAt }
func (t Tenant) IsZero() bool         { return t.id == uuid.Nil && t.slug == "" }
func (t Tenant) IsActive() bool       { return t.status == StatusActive }

func (t Tenant) Suspend() Tenant {
	t.status = StatusSuspended
	return t
}

func normalizeSlug(v string) string { return strings.ToLower(strings.TrimSpace(v)) }
