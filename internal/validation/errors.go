package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	TagHexCode:      "must be a hex color code like #a1b2c3",
	TagColorName:    fmt.Sprintf("must be 1-%d characters and not blank", ColorNameMaxLen),
	TagTaskListName: fmt.Sprintf("must be 1-%d characters of letters, digits, spaces or .,!?'\"()-_:;&/#@", TaskListNameMaxLen),
	TagPassword:     fmt.Sprintf("must be %d-%d characters with upper, lower, digit and symbol, no spaces", PasswordMinLen, PasswordMaxLen),
	TagUsername:     "must be 3-32 letters, digits, '_' or '.'",
	"required":      "is required",
	"email":         "must be a valid email address",
}

// FieldErrors converts a validator error into a field -> message map. Errors that are not
// validation errors are reported under the "error" key.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields["error"] = err.Error()
		return fields
	}
	for _, fe := range validationErrors {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}
