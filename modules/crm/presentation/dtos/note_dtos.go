package dtos

import (
	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/modules/crm/domain"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

type NoteCreateDTO struct {
	TenantID  *uuid.UUID `json:"tenant_id"`
	ContactID uuid.UUID  `json:"contact_id" validate:"required"`
	Body      string     `json:"body" validate:"required"`
}

func (d *NoteCreateDTO) TenantClaim() (uuid.UUID, bool) {
	if d.TenantID == nil {
		return uuid.Nil, false
	}
	return *d.TenantID, true
}

func (d *NoteCreateDTO) Entity() (domain.Note, error) {
	return domain.Note{
		ContactID: d.ContactID,
		Body:      d.Body,
	}, nil
}

type NoteUpdateDTO struct {
	Body *string `json:"body" validate:"omitempty,min=1"`
}

func (d *NoteUpdateDTO) Changes() []crud.Change {
	var changes []crud.Change
	if d.Body != nil {
		changes = append(changes, crud.Change{Column: "body", Value: *d.Body})
	}
	return changes
}
