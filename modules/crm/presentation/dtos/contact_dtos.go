package dtos

import (
	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/modules/crm/domain"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

type ContactCreateDTO struct {
	TenantID  *uuid.UUID `json:"tenant_id"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Phone     string     `json:"phone"`
}

func (d *ContactCreateDTO) TenantClaim() (uuid.UUID, bool) {
	if d.TenantID == nil {
		return uuid.Nil, false
	}
	return *d.TenantID, true
}

func (d *ContactCreateDTO) Entity() (domain.Contact, error) {
	return domain.Contact{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
	}, nil
}

// ContactUpdateDTO is a partial patch: nil fields were absent from the
// payload and stay untouched.
type ContactUpdateDTO struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

func (d *ContactUpdateDTO) Changes() []crud.Change {
	var changes []crud.Change
	if d.FirstName != nil {
		changes = append(changes, crud.Change{Column: "first_name", Value: *d.FirstName})
	}
	if d.LastName != nil {
		changes = append(changes, crud.Change{Column: "last_name", Value: *d.LastName})
	}
	if d.Email != nil {
		changes = append(changes, crud.Change{Column: "email", Value: *d.Email})
	}
	if d.Phone != nil {
		changes = append(changes, crud.Change{Column: "phone", Value: *d.Phone})
	}
	return changes
}
