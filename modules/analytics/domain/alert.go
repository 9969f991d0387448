package domain

import "github.com/fluxion-io/fluxion/pkg/crud"

// AnalyticsAlert fires when the named metric crosses its threshold. The
// gateway only stores the definition; evaluation happens elsewhere.
type AnalyticsAlert struct {
	crud.Base
	Name      string  `json:"name"`
	Metric    string  `json:"metric"`
	Threshold float64 `json:"threshold"`
	Triggered bool    `json:"triggered"`
}

var AlertSchema = crud.Schema[AnalyticsAlert]{
	Resource:      "analytics_alerts",
	Table:         "analytics_alerts",
	Columns:       []string{"name", "metric", "threshold", "triggered"},
	SearchColumns: []string{"name", "metric"},
	Fields: func(e *AnalyticsAlert) []any {
		return []any{&e.Name, &e.Metric, &e.Threshold, &e.Triggered}
	},
}
