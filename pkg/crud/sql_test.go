package crud

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Base
	Name  string `json:"name"`
	Color string `json:"color"`
}

var widgetSchema = Schema[widget]{
	Resource:      "widgets",
	Table:         "widgets",
	Columns:       []string{"name", "color"},
	SearchColumns: []string{"name", "color"},
	Fields: func(e *widget) []any {
		return []any{&e.Name, &e.Color}
	},
}

var globalWidgetSchema = Schema[widget]{
	Resource: "widgets",
	Table:    "widgets",
	Scope:    ScopeGlobal,
	Columns:  []string{"name", "color"},
	Fields: func(e *widget) []any {
		return []any{&e.Name, &e.Color}
	},
}

func TestBuildGetQuery_TenantPredicate(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()

	q, args := widgetSchema.buildGetQuery(tenantID, id)

	assert.Equal(t,
		"SELECT id, tenant_id, name, color, created_at, updated_at FROM widgets WHERE tenant_id = $1 AND id = $2",
		q,
	)
	assert.Equal(t, []any{tenantID, id}, args)
}

func TestBuildGetQuery_GlobalScopeHasNoTenantPredicate(t *testing.T) {
	id := uuid.New()

	q, args := globalWidgetSchema.buildGetQuery(uuid.Nil, id)

	assert.Equal(t,
		"SELECT id, name, color, created_at, updated_at FROM widgets WHERE id = $1",
		q,
	)
	assert.Equal(t, []any{id}, args)
}

func TestBuildListQuery(t *testing.T) {
	tenantID := uuid.New()

	t.Run("plain", func(t *testing.T) {
		q, args := widgetSchema.buildListQuery(tenantID, ListParams{Page: 1, Size: 10})
		assert.Equal(t,
			"SELECT id, tenant_id, name, color, created_at, updated_at FROM widgets WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT 10",
			q,
		)
		assert.Equal(t, []any{tenantID}, args)
	})

	t.Run("search spans columns with one argument", func(t *testing.T) {
		q, args := widgetSchema.buildListQuery(tenantID, ListParams{Page: 2, Size: 10, Search: "blue"})
		assert.Equal(t,
			"SELECT id, tenant_id, name, color, created_at, updated_at FROM widgets "+
				"WHERE tenant_id = $1 AND (name ILIKE $2 OR color ILIKE $2) "+
				"ORDER BY created_at DESC LIMIT 10 OFFSET 10",
			q,
		)
		assert.Equal(t, []any{tenantID, "%blue%"}, args)
	})

	t.Run("structured filter", func(t *testing.T) {
		q, args := widgetSchema.buildListQuery(tenantID, ListParams{
			Page: 1, Size: 5,
			Filters: []Filter{{Column: "color", Value: "red"}},
		})
		assert.Contains(t, q, "WHERE tenant_id = $1 AND color = $2")
		assert.Equal(t, []any{tenantID, "red"}, args)
	})

	t.Run("count shares the list predicate", func(t *testing.T) {
		params := ListParams{Page: 3, Size: 10, Search: "x", Filters: []Filter{{Column: "color", Value: "red"}}}
		_, listArgs := widgetSchema.buildListQuery(tenantID, params)
		countQ, countArgs := widgetSchema.buildCountQuery(tenantID, params)
		assert.Equal(t, listArgs, countArgs)
		assert.Equal(t,
			"SELECT COUNT(*) FROM widgets WHERE tenant_id = $1 AND (name ILIKE $2 OR color ILIKE $2) AND color = $3",
			countQ,
		)
	})
}

func TestBuildInsertQuery(t *testing.T) {
	tenantID := uuid.New()
	e := widget{Name: "gear", Color: "red"}

	q, args := widgetSchema.buildInsertQuery(tenantID, &e)

	assert.Equal(t,
		"INSERT INTO widgets (tenant_id, name, color) VALUES ($1, $2, $3) "+
			"RETURNING id, tenant_id, name, color, created_at, updated_at",
		q,
	)
	assert.Equal(t, []any{tenantID, "gear", "red"}, args)
}

func TestBuildInsertQuery_Global(t *testing.T) {
	e := widget{Name: "gear", Color: "red"}

	q, args := globalWidgetSchema.buildInsertQuery(uuid.Nil, &e)

	assert.Equal(t,
		"INSERT INTO widgets (name, color) VALUES ($1, $2) RETURNING id, name, color, created_at, updated_at",
		q,
	)
	assert.Equal(t, []any{"gear", "red"}, args)
}

func TestBuildUpdateQuery(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()

	q, args, err := widgetSchema.buildUpdateQuery(tenantID, id, []Change{
		{Column: "name", Value: "sprocket"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE widgets SET name = $1, updated_at = now() WHERE tenant_id = $2 AND id = $3 "+
			"RETURNING id, tenant_id, name, color, created_at, updated_at",
		q,
	)
	assert.Equal(t, []any{"sprocket", tenantID, id}, args)
}

func TestBuildUpdateQuery_RejectsUndeclaredColumns(t *testing.T) {
	for _, column := range []string{"tenant_id", "id", "created_at", "nope"} {
		_, _, err := widgetSchema.buildUpdateQuery(uuid.New(), uuid.New(), []Change{
			{Column: column, Value: "x"},
		})
		require.Error(t, err, column)
	}
}

func TestBuildDeleteQuery(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()

	q, args := widgetSchema.buildDeleteQuery(tenantID, id)

	assert.Equal(t, "DELETE FROM widgets WHERE tenant_id = $1 AND id = $2", q)
	assert.Equal(t, []any{tenantID, id}, args)
}
