package domain

import (
	"time"

	"github.com/fluxion-io/fluxion/pkg/crud"
)

const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Campaign is a tenant-owned marketing campaign. StartsAt and EndsAt are
// optional; a nil bound means open-ended.
type Campaign struct {
	crud.Base
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

var CampaignSchema = crud.Schema[Campaign]{
	Resource:      "campaigns",
	Table:         "campaigns",
	Columns:       []string{"name", "description", "status", "starts_at", "ends_at"},
	SearchColumns: []string{"name", "description"},
	Fields: func(e *Campaign) []any {
		return []any{&e.Name, &e.Description, &e.Status, &e.StartsAt, &e.EndsAt}
	},
}
