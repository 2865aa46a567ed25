package erp

import (
	"errors"
	"fmt"
)

// Error is the failure contract of the ERP port. Retryable errors (network,
// rate limiting, 5xx) are retried with bounded backoff by the client
// implementation; permanent errors surface to the handler layer, which
// converts them into a failed automation result.
type Error struct {
	Op        string // e.g. "search_read"
	Model     string
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("erp %s on %s: %s", e.Op, e.Model, e.Message)
	}
	return fmt.Sprintf("erp %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// IsRetryable reports whether err is a retryable ERP error.
func IsRetryable(err error) bool {
	var ee *Error
	return errors.As(err, &ee) && ee.Retryable
}

func newRetryable(op, model, msg string, cause error) *Error {
	return &Error{Op: op, Model: model, Message: msg, Retryable: true, Cause: cause}
}

func newPermanent(op, model, msg string, cause error) *Error {
	return &Error{Op: op, Model: model, Message: msg, Retryable: false, Cause: cause}
}
