package domain

import "github.com/fluxion-io/fluxion/pkg/crud"

// Contact is a tenant-owned CRM record.
type Contact struct {
	crud.Base
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

var ContactSchema = crud.Schema[Contact]{
	Resource:      "contacts",
	Table:         "contacts",
	Columns:       []string{"first_name", "last_name", "email", "phone"},
	SearchColumns: []string{"first_name", "last_name", "email"},
	Fields: func(e *Contact) []any {
		return []any{&e.FirstName, &e.LastName, &e.Email, &e.Phone}
	},
}
