package errors

// ProjectionError signals an internal inconsistency between the selected fields and the fetched table.
type ProjectionError struct {
	msg string
}

func (e *ProjectionError) Error() string {
	return e.msg
}

func NewProjectionError(text string) error {
	return &ProjectionError{text}
}
