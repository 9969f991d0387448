package crud

import "reflect"

// deref unwraps a non-nil pointer to its element value; anything else is
// returned as-is.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}
