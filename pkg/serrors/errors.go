package serrors

import "fmt"

// BaseError is the standard error shape surfaced through API error envelopes.
// Code is a stable machine-readable identifier, Message is a human-readable
// fallback, TemplateData carries structured detail for the envelope meta.
type BaseError struct {
	Code         string
	Message      string
	TemplateData map[string]string
}

func NewError(code, message string) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
	}
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithTemplateData returns a copy of the error carrying the given detail map.
// The receiver is not mutated so package-level sentinels stay safe to share.
func (e *BaseError) WithTemplateData(data map[string]string) *BaseError {
	out := &BaseError{
		Code:         e.Code,
		Message:      e.Message,
		TemplateData: make(map[string]string, len(data)+len(e.TemplateData)),
	}
	for k, v := range e.TemplateData {
		out.TemplateData[k] = v
	}
	for k, v := range data {
		out.TemplateData[k] = v
	}
	return out
}

// Is matches two BaseErrors by code, so errors.Is works across
// WithTemplateData copies of the same sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
