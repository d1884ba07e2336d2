package errors

import (
	"errors"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"sort"
	"strings"
)

// TranslateValidatorError takes an error from the go-playground validator (internally just a map of errors) and
// converts it into a RequestError with a user friendly message. Other errors are returned unchanged.
func TranslateValidatorError(err error, trans ut.Translator) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := validationErrors.Translate(trans)

	vals := make([]string, 0, len(errs))
	for _, value := range errs {
		vals = append(vals, value)
	}
	// Translate returns a map
	sort.Strings(vals)

	return NewRequestError(strings.Join(vals, " "))
}
