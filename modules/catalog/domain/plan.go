package domain

import "github.com/fluxion-io/fluxion/pkg/crud"

// Plan is a system-wide subscription catalog entry. It is the one global
// resource: every tenant reads the same rows and no tenant predicate applies.
type Plan struct {
	crud.Base
	Code         string `json:"code"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
	ContactLimit int    `json:"contact_limit"`
}

var PlanSchema = crud.Schema[Plan]{
	Resource:      "plans",
	Table:         "plans",
	Scope:         crud.ScopeGlobal,
	Columns:       []string{"code", "name", "price_cents", "contact_limit"},
	SearchColumns: []string{"code", "name"},
	OrderBy:       "price_cents ASC",
	Fields: func(e *Plan) []any {
		return []any{&e.Code, &e.Name, &e.PriceCents, &e.ContactLimit}
	},
}
