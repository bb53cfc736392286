// Package validator flattens binding failures into the field-level `details`
// payload of an error response.
package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseError converts a binding error into a field -> message map. Anything
// that is not a validator.ValidationErrors collapses to a single "error" key.
func ParseError(err error) map[string]string {
	details := make(map[string]string)

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			details[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		return details
	}

	if err != nil {
		details["error"] = err.Error()
	}
	return details
}
