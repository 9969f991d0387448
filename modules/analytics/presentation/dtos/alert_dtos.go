package dtos

import (
	"github.com/google/uuid"

	"github.com/fluxion-io/fluxion/modules/analytics/domain"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

type AlertCreateDTO struct {
	TenantID  *uuid.UUID `json:"tenant_id"`
	Name      string     `json:"name" validate:"required"`
	Metric    string     `json:"metric" validate:"required"`
	Threshold float64    `json:"threshold"`
}

func (d *AlertCreateDTO) TenantClaim() (uuid.UUID, bool) {
	if d.TenantID == nil {
		return uuid.Nil, false
	}
	return *d.TenantID, true
}

func (d *AlertCreateDTO) Entity() (domain.AnalyticsAlert, error) {
	return domain.AnalyticsAlert{
		Name:      d.Name,
		Metric:    d.Metric,
		Threshold: d.Threshold,
	}, nil
}

type AlertUpdateDTO struct {
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	Metric    *string  `json:"metric" validate:"omitempty,min=1"`
	Threshold *float64 `json:"threshold"`
	Triggered *bool    `json:"triggered"`
}

func (d *AlertUpdateDTO) Changes() []crud.Change {
	var changes []crud.Change
	if d.Name != nil {
		changes = append(changes, crud.Change{Column: "name", Value: *d.Name})
	}
	if d.Metric != nil {
		changes = append(changes, crud.Change{Column: "metric", Value: *d.Metric})
	}
	if d.Threshold != nil {
		changes = append(changes, crud.Change{Column: "threshold", Value: *d.Threshold})
	}
	if d.Triggered != nil {
		changes = append(changes, crud.Change{Column: "triggered", Value: *d.Triggered})
	}
	return changes
}
