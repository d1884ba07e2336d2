package errors

type RequestError struct {
	msg string
}

func (e *RequestError) Error() string {
	return e.msg
}

func NewRequestError(text string) error {
	return &RequestError{text}
}
