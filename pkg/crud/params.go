package crud

import "strconv"

// Filter is a structured equality predicate on a declared column, e.g.
// notes filtered by contact_id. Columns are code literals supplied by the
// resource module, never user input.
type Filter struct {
	Column string
	Value  any
}

// Change is one column mutation of a partial update. Only columns declared
// on the schema are updatable; id, tenant_id and timestamps never are.
type Change struct {
	Column string
	Value  any
}

// ListParams is the validated paging/filtering input of a list operation.
type ListParams struct {
	Page    int
	Size    int
	Search  string
	Filters []Filter
}

// Normalize applies defaults and bounds-checks paging before any query
// runs. Zero values mean "not supplied" and fall back to defaults.
func (p ListParams) Normalize(defaultSize, maxSize int) (ListParams, error) {
	fields := map[string]string{}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Page < 1 {
		fields["page"] = "must be greater than or equal to 1"
	}
	if p.Size == 0 {
		p.Size = defaultSize
	}
	if p.Size < 1 || p.Size > maxSize {
		fields["size"] = "must be within [1, " + strconv.Itoa(maxSize) + "]"
	}
	if len(fields) > 0 {
		return p, NewValidationError(fields)
	}
	return p, nil
}

func (p ListParams) offset() int {
	return (p.Page - 1) * p.Size
}

// Page is the collection envelope: one page of items plus the total count
// over the same filtered predicate.
type Page[E any] struct {
	Items []E   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

func NewPage[E any](items []E, total int64, params ListParams) Page[E] {
	pages := int((total + int64(params.Size) - 1) / int64(params.Size))
	return Page[E]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: pages,
	}
}
