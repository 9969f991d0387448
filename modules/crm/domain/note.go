package domain

import (
	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/pkg/crud"
)

// Note is free-form text attached to a contact of the same tenant.
type Note struct {
	crud.Base
	ContactID uuid.UUID `json:"contact_id"`
	Body      string    `json:"body"`
}

var NoteSchema = crud.Schema[Note]{
	Resource:      "notes",
	Table:         "notes",
	Columns:       []string{"contact_id", "body"},
	SearchColumns: []string{"body"},
	Fields: func(e *Note) []any {
		return []any{&e.ContactID, &e.Body}
	},
}
