package shared

import "github.com/go-playground/form"

// Decoder parses query and form values into tagged structs. Shared across
// controllers so custom type registrations happen once.
var Decoder = form.NewDecoder()

func init() {
	Decoder.SetTagName("form")
}
