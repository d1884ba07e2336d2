package errors

import "fmt"

// SourceUnavailableError is returned when the CSV source cannot be opened, read or parsed.
type SourceUnavailableError struct {
	Location string
	Err      error
}

func (e *SourceUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unable to read source '%s'", e.Location)
	}
	return fmt.Sprintf("unable to read source '%s': %v", e.Location, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

func NewSourceUnavailableError(location string, err error) error {
	return &SourceUnavailableError{Location: location, Err: err}
}
