package crud

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/pkg/composables"
)

// MemoryRepository is an in-memory Repository used by tests and local
// prototyping. It honors the same contract as PgRepository: tenant
// isolation on scoped schemas, search over the declared search columns,
// newest-first ordering and hard deletes. Domain-specific OrderBy
// overrides are a SQL concern and are not replicated here.
type MemoryRepository[E any] struct {
	schema Schema[E]

	mu   sync.RWMutex
	rows []memoryRow[E]
	seq  int64
}

type memoryRow[E any] struct {
	entity E
	seq    int64
}

func NewMemoryRepository[E any](schema Schema[E]) *MemoryRepository[E] {
	if err := schema.Validate(); err != nil {
		panic(err)
	}
	return &MemoryRepository[E]{schema: schema}
}

func (r *MemoryRepository[E]) tenantID(ctx context.Context) (uuid.UUID, error) {
	if !r.schema.tenantScoped() {
		return uuid.Nil, nil
	}
	return composables.UseTenantID(ctx)
}

func (r *MemoryRepository[E]) visible(e *E, tenantID uuid.UUID) bool {
	if !r.schema.tenantScoped() {
		return true
	}
	return baseOf(e).TenantID == tenantID
}

func (r *MemoryRepository[E]) Create(ctx context.Context, entity E) (E, error) {
	var zero E
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	b := baseOf(&entity)
	b.ID = uuid.New()
	b.TenantID = tenantID
	b.CreatedAt = now
	b.UpdatedAt = now

	r.seq++
	r.rows = append(r.rows, memoryRow[E]{entity: entity, seq: r.seq})
	return entity, nil
}

func (r *MemoryRepository[E]) GetByID(ctx context.Context, id uuid.UUID) (E, error) {
	var zero E
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.rows {
		e := r.rows[i].entity
		if baseOf(&e).ID == id && r.visible(&e, tenantID) {
			return e, nil
		}
	}
	return zero, ErrNotFound
}

func (r *MemoryRepository[E]) List(ctx context.Context, params ListParams) ([]E, int64, error) {
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]memoryRow[E], 0, len(r.rows))
	for _, row := range r.rows {
		e := row.entity
		if !r.visible(&e, tenantID) {
			continue
		}
		if !r.matchesSearch(&e, params.Search) {
			continue
		}
		if !r.matchesFilters(&e, params.Filters) {
			continue
		}
		matched = append(matched, memoryRow[E]{entity: e, seq: row.seq})
	}

	slices.SortStableFunc(matched, func(a, b memoryRow[E]) int {
		at, bt := baseOf(&a.entity).CreatedAt, baseOf(&b.entity).CreatedAt
		if at.After(bt) {
			return -1
		}
		if bt.After(at) {
			return 1
		}
		// Same timestamp: newest insertion first.
		return int(b.seq - a.seq)
	})

	total := int64(len(matched))
	start := params.offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Size
	if params.Size <= 0 || end > len(matched) {
		end = len(matched)
	}

	out := make([]E, 0, end-start)
	for _, row := range matched[start:end] {
		out = append(out, row.entity)
	}
	return out, total, nil
}

func (r *MemoryRepository[E]) Update(ctx context.Context, id uuid.UUID, changes []Change) (E, error) {
	var zero E
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		e := r.rows[i].entity
		if baseOf(&e).ID != id || !r.visible(&e, tenantID) {
			continue
		}
		if err := r.apply(&e, changes); err != nil {
			return zero, err
		}
		baseOf(&e).UpdatedAt = time.Now()
		r.rows[i].entity = e
		return e, nil
	}
	return zero, ErrNotFound
}

func (r *MemoryRepository[E]) Delete(ctx context.Context, id uuid.UUID) error {
	tenantID, err := r.tenantID(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		e := r.rows[i].entity
		if baseOf(&e).ID == id && r.visible(&e, tenantID) {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository[E]) columnValue(e *E, column string) (any, bool) {
	idx := slices.Index(r.schema.Columns, column)
	if idx < 0 {
		return nil, false
	}
	return deref(r.schema.Fields(e)[idx]), true
}

func (r *MemoryRepository[E]) matchesSearch(e *E, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" || len(r.schema.SearchColumns) == 0 {
		return true
	}
	needle := strings.ToLower(search)
	for _, col := range r.schema.SearchColumns {
		v, ok := r.columnValue(e, col)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func (r *MemoryRepository[E]) matchesFilters(e *E, filters []Filter) bool {
	for _, f := range filters {
		v, ok := r.columnValue(e, f.Column)
		if !ok {
			return false
		}
		if !reflect.DeepEqual(v, deref(f.Value)) {
			return false
		}
	}
	return true
}

func (r *MemoryRepository[E]) apply(e *E, changes []Change) error {
	for _, c := range changes {
		idx := slices.Index(r.schema.Columns, c.Column)
		if idx < 0 {
			return fmt.Errorf("crud: column %q of %q is not updatable", c.Column, r.schema.Resource)
		}
		field := reflect.ValueOf(r.schema.Fields(e)[idx]).Elem()
		value := reflect.ValueOf(deref(c.Value))
		switch {
		case value.Type().AssignableTo(field.Type()):
		case field.Kind() == reflect.Pointer && value.Type().AssignableTo(field.Type().Elem()):
			ptr := reflect.New(field.Type().Elem())
			ptr.Elem().Set(value)
			value = ptr
		case value.Type().ConvertibleTo(field.Type()):
			value = value.Convert(field.Type())
		default:
			return fmt.Errorf("crud: column %q change has incompatible type %s", c.Column, value.Type())
		}
		field.Set(value)
	}
	return nil
}
