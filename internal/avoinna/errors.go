package avoinna

import "fmt"

// StatusError reports a slot search that reached the provider but came
// back with a non-success status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("avoinna24: slot request failed (status=%d)", e.StatusCode)
}

// DecodeError reports a response body that did not match the expected
// envelope shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("avoinna24: malformed slot response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
