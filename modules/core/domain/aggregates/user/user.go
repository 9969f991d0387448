package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the authenticated actor. It belongs to exactly one tenant; every
// operation the user performs is implicitly scoped to that tenant. The
// accessor pair ID/TenantID satisfies composables.Actor.
type User struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	email        string
	displayName  string
	passwordHash string
	apiKeyDigest string
	createdAt    time.Time
	updatedAt    time.Time
}

func New(tenantID uuid.UUID, email, displayName, passwordHash, apiKeyDigest string) User {
	return User{
		tenantID:     tenantID,
		email:        normalizeEmail(email),
		displayName:  strings.TrimSpace(displayName),
		passwordHash: passwordHash,
		apiKeyDigest: apiKeyDigest,
	}
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	email string,
	displayName string,
	passwordHash string,
	apiKeyDigest string,
	createdAt time.Time,
	updatedAt time.Time,
) User {
	return User{
		id:           id,
		tenantID:     tenantID,
		email:        normalizeEmail(email),
		displayName:  strings.TrimSpace(displayName),
		passwordHash: passwordHash,
		apiKeyDigest: apiKeyDigest,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u User) ID() uuid.UUID        { return u.id }
func (u User) TenantID() uuid.UUID  { return u.tenantID }
func (u User) Email() string        { return u.email }
func (u User) DisplayName() string  { return u.displayName }
func (u User) PasswordHash() string { return u.passwordHash }
func (u User) APIKeyDigest() string { return u.apiKeyDigest }
func (u User) CreatedAt() time.Time { return u.createdAt }
func (u User) UpdatedAt() time.Time { return u.updatedAt }
func (u User) IsZero() bool         { return u.id == uuid.Nil && u.email == "" }

func normalizeEmail(v string) string { return strings.ToLower(strings.TrimSpace(v)) }
