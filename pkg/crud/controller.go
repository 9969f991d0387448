package crud

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/httpapi"
	"github.com/fluxion-io/fluxion/pkg/middleware"
	"github.com/fluxion-io/fluxion/pkg/serrors"
	"github.com/fluxion-io/fluxion/pkg/shared"
)

// ControllerConfig parameterizes the generic HTTP surface of one resource
// kind. Modules supply DTO factories and an optional view mapper; the
// controller owns routing, decoding and the error-to-status translation.
type ControllerConfig[E any] struct {
	// BasePath is the mount point, e.g. "/api/v1/contacts".
	BasePath string
	Service  *Service[E]

	NewCreateDTO func() CreateInput[E]
	NewUpdateDTO func() UpdateInput

	// View maps an entity to its response shape; identity when nil.
	View func(E) any
	// QueryFilters extracts structured filters from the raw query, e.g.
	// notes?contact_id=... Optional.
	QueryFilters func(values url.Values) []Filter

	// Middleware runs on every route of the resource (auth etc.).
	Middleware []mux.MiddlewareFunc
	// Transaction wraps the mutating routes so each write is
	// all-or-nothing; defaults to middleware.WithTransaction().
	Transaction mux.MiddlewareFunc

	// ReadOnly suppresses the mutating routes entirely; catalogs exposed
	// this way answer 405 on writes.
	ReadOnly bool
}

type Controller[E any] struct {
	config ControllerConfig[E]
}

func NewController[E any](config ControllerConfig[E]) *Controller[E] {
	if config.BasePath == "" || config.Service == nil {
		panic("crud: controller requires a base path and a service")
	}
	if !config.ReadOnly && (config.NewCreateDTO == nil || config.NewUpdateDTO == nil) {
		panic("crud: writable controller requires create and update DTO factories")
	}
	if config.View == nil {
		config.View = func(e E) any { return e }
	}
	if config.Transaction == nil {
		config.Transaction = middleware.WithTransaction()
	}
	return &Controller[E]{config: config}
}

func (c *Controller[E]) Key() string {
	return c.config.BasePath
}

func (c *Controller[E]) Register(r *mux.Router) {
	router := r.PathPrefix(c.config.BasePath).Subrouter()
	router.Use(c.config.Middleware...)
	// Subrouters do not inherit the parent's MethodNotAllowedHandler, so
	// each resource carries its own.
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)

	if c.config.ReadOnly {
		return
	}
	tx := c.config.Transaction
	router.Handle("", tx(http.HandlerFunc(c.Create))).Methods(http.MethodPost)
	router.Handle("/{id}", tx(http.HandlerFunc(c.Update))).Methods(http.MethodPut)
	router.Handle("/{id}", tx(http.HandlerFunc(c.Delete))).Methods(http.MethodDelete)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
}

type listQuery struct {
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Search string `form:"search"`
}

func (c *Controller[E]) List(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := shared.Decoder.Decode(&q, r.URL.Query()); err != nil {
		c.writeError(w, r, NewValidationError(map[string]string{
			"query": "invalid query parameters",
		}))
		return
	}
	params := ListParams{
		Page:   q.Page,
		Size:   q.Size,
		Search: q.Search,
	}
	if c.config.QueryFilters != nil {
		params.Filters = c.config.QueryFilters(r.URL.Query())
	}

	page, err := c.config.Service.List(r.Context(), params)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	items := make([]any, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, c.config.View(e))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": page.Total,
		"page":  page.Page,
		"size":  page.Size,
		"pages": page.Pages,
	})
}

func (c *Controller[E]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.writeError(w, r, ErrNotFound)
		return
	}
	entity, err := c.config.Service.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, c.config.View(entity))
}

func (c *Controller[E]) Create(w http.ResponseWriter, r *http.Request) {
	dto := c.config.NewCreateDTO()
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid json", nil)
		return
	}
	if err := ValidateStruct(dto); err != nil {
		c.writeError(w, r, err)
		return
	}
	created, err := c.config.Service.Create(r.Context(), dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, c.config.View(created))
}

func (c *Controller[E]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.writeError(w, r, ErrNotFound)
		return
	}
	dto := c.config.NewUpdateDTO()
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid json", nil)
		return
	}
	if err := ValidateStruct(dto); err != nil {
		c.writeError(w, r, err)
		return
	}
	updated, err := c.config.Service.Update(r.Context(), id, dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, c.config.View(updated))
}

func (c *Controller[E]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.writeError(w, r, ErrNotFound)
		return
	}
	if err := c.config.Service.Delete(r.Context(), id); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

// writeError is the single boundary translating gateway failures into
// HTTP statuses. Cross-tenant reads surface as plain 404s.
func (c *Controller[E]) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsValidationError(err):
		var base *serrors.BaseError
		errors.As(err, &base)
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, base.Code, base.Message, base.TemplateData)
	case errors.Is(err, ErrForeignTenant):
		var base *serrors.BaseError
		errors.As(err, &base)
		_ = httpapi.WriteError(w, http.StatusForbidden, base.Code, base.Message, nil)
	case IsNotFound(err):
		_ = httpapi.WriteError(w, http.StatusNotFound, ErrNotFound.Code, ErrNotFound.Message, nil)
	case errors.Is(err, composables.ErrNoActor), errors.Is(err, composables.ErrNoTenant):
		_ = httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
	default:
		composables.UseLogger(r.Context()).WithError(err).Error("gateway operation failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}
