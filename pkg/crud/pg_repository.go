package crud

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/configuration"
	"github.com/fluxion-io/fluxion/pkg/constants"
	"github.com/fluxion-io/fluxion/pkg/repo"
)

// Repository is the persistence contract of the gateway, generic over the
// entity type. The PostgreSQL implementation below is the production one;
// MemoryRepository backs tests.
type Repository[E any] interface {
	Create(ctx context.Context, entity E) (E, error)
	GetByID(ctx context.Context, id uuid.UUID) (E, error)
	List(ctx context.Context, params ListParams) ([]E, int64, error)
	Update(ctx context.Context, id uuid.UUID, changes []Change) (E, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PgRepository[E any] struct {
	schema Schema[E]
}

func NewPgRepository[E any](schema Schema[E]) *PgRepository[E] {
	if err := schema.Validate(); err != nil {
		panic(err)
	}
	return &PgRepository[E]{schema: schema}
}

// writeTx resolves the executor for a mutation. When RLS is enforced every
// write must run inside an explicit transaction carrying the tenant
// setting, so falling back to the bare pool is refused.
func (r *PgRepository[E]) writeTx(ctx context.Context) (repo.Tx, error) {
	if configuration.Use().RLSEnforce == "enforce" {
		if ctx.Value(constants.TxKey) == nil {
			return nil, gerrors.Errorf("rls enforced: %s writes require an explicit transaction", r.schema.Resource)
		}
	}
	return composables.UseTx(ctx)
}

// query resolves the read executor and runs fn on it. Reads normally run
// straight off the pool; under enforced RLS the tenant setting only lives
// on a transaction, so one is opened around fn when the request did not
// bring its own.
func (r *PgRepository[E]) query(ctx context.Context, fn func(ctx context.Context, tx repo.Tx) error) error {
	if configuration.Use().RLSEnforce == "enforce" && ctx.Value(constants.TxKey) == nil {
		return composables.InTenantTx(ctx, func(txCtx context.Context) error {
			tx, err := composables.UseTx(txCtx)
			if err != nil {
				return err
			}
			return fn(txCtx, tx)
		})
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, tx)
}

// tenantID returns the acting tenant for scoped schemas and uuid.Nil for
// global ones, which never reference it.
func (r *PgRepository[E]) tenantID(ctx context.Context) (uuid.UUID, error) {
	if !r.schema.tenantScoped() {
		return uuid.Nil, nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return uuid.Nil, gerrors.Wrap(err, "failed to get tenant from context")
	}
	return tenantID, nil
}

func (r *PgRepository[E]) Create(ctx context.Context, entity E) (E, error) {
	var zero E
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return zero, err
	}
	tx, err := r.writeTx(ctx)
	if err != nil {
		return zero, err
	}

	q, args := r.schema.buildInsertQuery(tenantID, &entity)
	var out E
	if err := tx.QueryRow(ctx, q, args...).Scan(r.schema.scanDest(&out)...); err != nil {
		return zero, gerrors.Wrapf(err, "create %s", r.schema.Resource)
	}
	return out, nil
}

func (r *PgRepository[E]) GetByID(ctx context.Context, id uuid.UUID) (E, error) {
	var zero E
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return zero, err
	}
	q, args := r.schema.buildGetQuery(tenantID, id)
	var out E
	err = r.query(ctx, func(ctx context.Context, tx repo.Tx) error {
		if err := tx.QueryRow(ctx, q, args...).Scan(r.schema.scanDest(&out)...); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return gerrors.Wrapf(err, "get %s", r.schema.Resource)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return out, nil
}

func (r *PgRepository[E]) List(ctx context.Context, params ListParams) ([]E, int64, error) {
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return nil, 0, err
	}
	q, args := r.schema.buildListQuery(tenantID, params)
	countQ, countArgs := r.schema.buildCountQuery(tenantID, params)

	out := make([]E, 0, params.Size)
	var total int64
	err = r.query(ctx, func(ctx context.Context, tx repo.Tx) error {
		rows, err := tx.Query(ctx, q, args...)
		if err != nil {
			return gerrors.Wrapf(err, "list %s", r.schema.Resource)
		}
		defer rows.Close()

		for rows.Next() {
			var e E
			if err := rows.Scan(r.schema.scanDest(&e)...); err != nil {
				return gerrors.Wrapf(err, "scan %s", r.schema.Resource)
			}
			out = append(out, e)
		}
		if err := rows.Err(); err != nil {
			return gerrors.Wrapf(err, "list %s", r.schema.Resource)
		}

		// The count runs on the same executor so total and items agree.
		if err := tx.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
			return gerrors.Wrapf(err, "count %s", r.schema.Resource)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PgRepository[E]) Update(ctx context.Context, id uuid.UUID, changes []Change) (E, error) {
	var zero E
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return zero, err
	}
	tx, err := r.writeTx(ctx)
	if err != nil {
		return zero, err
	}

	q, args, err := r.schema.buildUpdateQuery(tenantID, id, changes)
	if err != nil {
		return zero, err
	}
	var out E
	if err := tx.QueryRow(ctx, q, args...).Scan(r.schema.scanDest(&out)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, gerrors.Wrapf(err, "update %s", r.schema.Resource)
	}
	return out, nil
}

func (r *PgRepository[E]) Delete(ctx context.Context, id uuid.UUID) error {
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return err
	}
	tx, err := r.writeTx(ctx)
	if err != nil {
		return err
	}

	q, args := r.schema.buildDeleteQuery(tenantID, id)
	tag, err := tx.Exec(ctx, q, args...)
	if err != nil {
		return gerrors.Wrapf(err, "delete %s", r.schema.Resource)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
