package persistence

import (
	"context"
	"errors"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fluxion-io/fluxion/modules/core/domain/aggregates/user"
	"github.com/fluxion-io/fluxion/pkg/composables"
)

const userColumns = "id, tenant_id, email, display_name, password_hash, api_key_digest, created_at, updated_at"

type UserRepository struct{}

func NewUserRepository() user.Repository {
	return &UserRepository{}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}
	row := tx.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}
	row := tx.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (r *UserRepository) GetByAPIKeyDigest(ctx context.Context, digest string) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}
	row := tx.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE api_key_digest = $1", digest)
	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}
	row := tx.QueryRow(ctx, `
INSERT INTO users (tenant_id, email, display_name, password_hash, api_key_digest)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+userColumns,
		u.TenantID(), u.Email(), u.DisplayName(), u.PasswordHash(), u.APIKeyDigest(),
	)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, gerrors.Wrap(err, "create user")
	}
	return created, nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var (
		id           uuid.UUID
		tenantID     uuid.UUID
		email        string
		displayName  string
		passwordHash string
		apiKeyDigest string
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &tenantID, &email, &displayName, &passwordHash, &apiKeyDigest, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return user.Hydrate(id, tenantID, email, displayName, passwordHash, apiKeyDigest, createdAt, updatedAt), nil
}
