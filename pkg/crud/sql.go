package crud

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/pkg/repo"
)

// The query builders below are the single place the tenant predicate is
// injected. Repositories never assemble WHERE clauses themselves, so no
// call site can forget the isolation filter.

type predicate struct {
	conditions []string
	args       []any
}

func (p *predicate) and(condition string, args ...any) {
	p.conditions = append(p.conditions, condition)
	p.args = append(p.args, args...)
}

func (p *predicate) placeholder() string {
	return fmt.Sprintf("$%d", len(p.args)+1)
}

// scopePredicate starts a predicate with the mandatory tenant condition,
// unless the schema explicitly opted into global scope.
func scopePredicate(tenantScoped bool, tenantID uuid.UUID) *predicate {
	p := &predicate{}
	if tenantScoped {
		p.and("tenant_id = "+p.placeholder(), tenantID)
	}
	return p
}

func (p *predicate) andID(id uuid.UUID) {
	p.and("id = "+p.placeholder(), id)
}

func (p *predicate) andSearch(columns []string, search string) {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return
	}
	ph := p.placeholder()
	matches := make([]string, len(columns))
	for i, col := range columns {
		matches[i] = col + " ILIKE " + ph
	}
	p.and("("+strings.Join(matches, " OR ")+")", "%"+search+"%")
}

func (p *predicate) andFilters(filters []Filter) {
	for _, f := range filters {
		p.and(f.Column+" = "+p.placeholder(), f.Value)
	}
}

func (s Schema[E]) buildGetQuery(tenantID uuid.UUID, id uuid.UUID) (string, []any) {
	p := scopePredicate(s.tenantScoped(), tenantID)
	p.andID(id)
	q := repo.Join(
		"SELECT "+strings.Join(s.selectColumns(), ", "),
		"FROM "+s.Table,
		repo.JoinWhere(p.conditions...),
	)
	return q, p.args
}

func (s Schema[E]) buildListQuery(tenantID uuid.UUID, params ListParams) (string, []any) {
	p := scopePredicate(s.tenantScoped(), tenantID)
	p.andSearch(s.SearchColumns, params.Search)
	p.andFilters(params.Filters)
	q := repo.Join(
		"SELECT "+strings.Join(s.selectColumns(), ", "),
		"FROM "+s.Table,
		repo.JoinWhere(p.conditions...),
		"ORDER BY "+s.orderBy(),
		repo.FormatLimitOffset(params.Size, params.offset()),
	)
	return q, p.args
}

// buildCountQuery shares the list predicate so total always matches the
// filtered result set.
func (s Schema[E]) buildCountQuery(tenantID uuid.UUID, params ListParams) (string, []any) {
	p := scopePredicate(s.tenantScoped(), tenantID)
	p.andSearch(s.SearchColumns, params.Search)
	p.andFilters(params.Filters)
	q := repo.Join(
		"SELECT COUNT(*)",
		"FROM "+s.Table,
		repo.JoinWhere(p.conditions...),
	)
	return q, p.args
}

func (s Schema[E]) buildInsertQuery(tenantID uuid.UUID, entity *E) (string, []any) {
	cols := make([]string, 0, len(s.Columns)+1)
	args := make([]any, 0, len(s.Columns)+1)
	if s.tenantScoped() {
		cols = append(cols, "tenant_id")
		args = append(args, tenantID)
	}
	cols = append(cols, s.Columns...)
	args = append(args, s.insertValues(entity)...)

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	q := repo.Join(
		"INSERT INTO "+s.Table,
		"("+strings.Join(cols, ", ")+")",
		"VALUES ("+strings.Join(placeholders, ", ")+")",
		"RETURNING "+strings.Join(s.selectColumns(), ", "),
	)
	return q, args
}

func (s Schema[E]) buildUpdateQuery(tenantID uuid.UUID, id uuid.UUID, changes []Change) (string, []any, error) {
	sets := make([]string, 0, len(changes)+1)
	args := make([]any, 0, len(changes)+2)
	for _, c := range changes {
		if !slices.Contains(s.Columns, c.Column) {
			return "", nil, fmt.Errorf("crud: column %q of %q is not updatable", c.Column, s.Resource)
		}
		args = append(args, c.Value)
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Column, len(args)))
	}
	sets = append(sets, "updated_at = now()")

	p := &predicate{args: args}
	if s.tenantScoped() {
		p.and("tenant_id = "+p.placeholder(), tenantID)
	}
	p.andID(id)

	q := repo.Join(
		"UPDATE "+s.Table,
		"SET "+strings.Join(sets, ", "),
		repo.JoinWhere(p.conditions...),
		"RETURNING "+strings.Join(s.selectColumns(), ", "),
	)
	return q, p.args, nil
}

func (s Schema[E]) buildDeleteQuery(tenantID uuid.UUID, id uuid.UUID) (string, []any) {
	p := scopePredicate(s.tenantScoped(), tenantID)
	p.andID(id)
	q := repo.Join(
		"DELETE FROM "+s.Table,
		repo.JoinWhere(p.conditions...),
	)
	return q, p.args
}
