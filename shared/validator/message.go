package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

// message renders the first validation error as a sentence the frontend can
// show to the user, falling back to the library's own text for tags without a
// template.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		param := valErr.Param()

		switch valErr.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "email":
			return fmt.Sprintf("%s must be a valid email address", field)
		case "oneof":
			return fmt.Sprintf("%s must be one of %s", field, param)
		case "min", "gte":
			return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
		case "max", "lte":
			return fmt.Sprintf("%s must be less than or equal to %s", field, param)
		}
	}

	return valErrors.Error()
}
