package crud

import (
	"errors"

	"github.com/fluxion-io/fluxion/pkg/serrors"
)

var (
	// ErrNotFound covers both a genuinely absent resource and a resource
	// owned by another tenant; callers must not be able to tell the two
	// apart.
	ErrNotFound = serrors.NewError("NOT_FOUND", "resource not found")

	// ErrForeignTenant rejects creation payloads claiming a tenant other
	// than the actor's own.
	ErrForeignTenant = serrors.NewError("TENANT_MISMATCH", "cannot create resource for another tenant")

	errValidation = serrors.NewError("VALIDATION_FAILED", "validation failed")
)

// NewValidationError builds a field-keyed validation error surfaced as 422
// with the field map in the envelope meta.
func NewValidationError(fields map[string]string) *serrors.BaseError {
	return errValidation.WithTemplateData(fields)
}

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	var base *serrors.BaseError
	return errors.As(err, &base) && base.Code == errValidation.Code
}
