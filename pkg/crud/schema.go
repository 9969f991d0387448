package crud

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Scope controls whether a resource is isolated per tenant or shared by
// every tenant. Tenant scoping is the default; global scope is an explicit,
// per-schema opt-in for system catalogs and must never be inferred.
type Scope int

const (
	ScopeTenant Scope = iota
	ScopeGlobal
)

// Base carries the server-assigned identity and timestamps shared by every
// gateway resource. Entities embed it; tenant_id stays zero for global
// resources.
type Base struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) base() *Base { return b }

// baseOf resolves the embedded Base of any gateway entity.
func baseOf[E any](e *E) *Base {
	hb, ok := any(e).(interface{ base() *Base })
	if !ok {
		panic(fmt.Sprintf("crud: %T must embed crud.Base", e))
	}
	return hb.base()
}

// Schema is the per-resource configuration record the generic gateway is
// parameterized with: table layout, searchable columns, ordering and scope.
// One schema literal per resource kind replaces a hand-written repository.
type Schema[E any] struct {
	// Resource is the plural resource name used in paths and events.
	Resource string
	Table    string
	Scope    Scope

	// Columns lists the entity-specific columns in declaration order,
	// excluding id, tenant_id and the timestamps which the gateway owns.
	Columns []string
	// SearchColumns is the subset of Columns matched case-insensitively by
	// the free-text search parameter.
	SearchColumns []string
	// OrderBy overrides the default `created_at DESC` collection ordering.
	OrderBy string

	// Fields returns pointers to the entity fields backing Columns, in the
	// same order. The gateway reads them on insert and writes them on scan.
	Fields func(e *E) []any
}

func (s Schema[E]) Validate() error {
	if s.Resource == "" {
		return fmt.Errorf("crud: schema requires a resource name")
	}
	if s.Table == "" {
		return fmt.Errorf("crud: schema %q requires a table", s.Resource)
	}
	if len(s.Columns) == 0 || s.Fields == nil {
		return fmt.Errorf("crud: schema %q requires columns and fields", s.Resource)
	}
	var sample E
	if got := len(s.Fields(&sample)); got != len(s.Columns) {
		return fmt.Errorf("crud: schema %q has %d columns but %d fields", s.Resource, len(s.Columns), got)
	}
	for _, c := range s.SearchColumns {
		if !slices.Contains(s.Columns, c) {
			return fmt.Errorf("crud: schema %q search column %q is not a declared column", s.Resource, c)
		}
	}
	return nil
}

func (s Schema[E]) tenantScoped() bool {
	return s.Scope == ScopeTenant
}

func (s Schema[E]) orderBy() string {
	if s.OrderBy != "" {
		return s.OrderBy
	}
	return "created_at DESC"
}

// selectColumns is the full column list in scan order.
func (s Schema[E]) selectColumns() []string {
	cols := make([]string, 0, len(s.Columns)+4)
	cols = append(cols, "id")
	if s.tenantScoped() {
		cols = append(cols, "tenant_id")
	}
	cols = append(cols, s.Columns...)
	cols = append(cols, "created_at", "updated_at")
	return cols
}

// scanDest returns scan destinations matching selectColumns order.
func (s Schema[E]) scanDest(e *E) []any {
	b := baseOf(e)
	dest := make([]any, 0, len(s.Columns)+4)
	dest = append(dest, &b.ID)
	if s.tenantScoped() {
		dest = append(dest, &b.TenantID)
	}
	dest = append(dest, s.Fields(e)...)
	dest = append(dest, &b.CreatedAt, &b.UpdatedAt)
	return dest
}

// insertValues returns the values backing Columns for the given entity.
func (s Schema[E]) insertValues(e *E) []any {
	fields := s.Fields(e)
	values := make([]any, len(fields))
	for i, f := range fields {
		values[i] = deref(f)
	}
	return values
}
