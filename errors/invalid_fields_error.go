package errors

import (
	"fmt"
	"strings"
)

// InvalidFieldsError lists every requested field that is missing from the source columns.
type InvalidFieldsError struct {
	Fields []string
}

func (e *InvalidFieldsError) Error() string {
	quoted := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		quoted = append(quoted, fmt.Sprintf("'%s'", field))
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(quoted, ", "))
}

func NewInvalidFieldsError(fields []string) error {
	return &InvalidFieldsError{Fields: fields}
}
