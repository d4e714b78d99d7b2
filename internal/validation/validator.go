// Package validation registers the application's field constraints with
// go-playground/validator and formats their failures for API responses.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New creates a validator with every custom constraint registered. Fields are reported
// by their JSON name. It panics when a rule cannot be registered: the server must not
// start with a partial rule set.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	if err := registerRules(v); err != nil {
		panic("validation: failed to register rules: " + err.Error())
	}
	return v
}
