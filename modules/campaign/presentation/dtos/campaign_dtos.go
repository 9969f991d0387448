package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/modules/campaign/domain"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

type CampaignCreateDTO struct {
	TenantID    *uuid.UUID `json:"tenant_id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft active archived"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

func (d *CampaignCreateDTO) TenantClaim() (uuid.UUID, bool) {
	if d.TenantID == nil {
		return uuid.Nil, false
	}
	return *d.TenantID, true
}

func (d *CampaignCreateDTO) Entity() (domain.Campaign, error) {
	status := d.Status
	if status == "" {
		status = domain.StatusDraft
	}
	return domain.Campaign{
		Name:        d.Name,
		Description: d.Description,
		Status:      status,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
	}, nil
}

type CampaignUpdateDTO struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft active archived"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

func (d *CampaignUpdateDTO) Changes() []crud.Change {
	var changes []crud.Change
	if d.Name != nil {
		changes = append(changes, crud.Change{Column: "name", Value: *d.Name})
	}
	if d.Description != nil {
		changes = append(changes, crud.Change{Column: "description", Value: *d.Description})
	}
	if d.Status != nil {
		changes = append(changes, crud.Change{Column: "status", Value: *d.Status})
	}
	if d.StartsAt != nil {
		changes = append(changes, crud.Change{Column: "starts_at", Value: d.StartsAt})
	}
	if d.EndsAt != nil {
		changes = append(changes, crud.Change{Column: "ends_at", Value: d.EndsAt})
	}
	return changes
}
