package collecting

import (
	"errors"
	"fmt"
)

var ErrTooManyFailures = errors.New("an unexpected error occurred requesting Opensea data")

// FailureError é retornado quando o limite de falhas consecutivas é atingido
type FailureError struct {
	Attempts int
	Cause    error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s after %d attempts: %v", ErrTooManyFailures, e.Attempts, e.Cause)
}

func (e *FailureError) Unwrap() []error {
	return []error{ErrTooManyFailures, e.Cause}
}
