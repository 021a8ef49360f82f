package api

import (
	"errors"
	"fmt"
)

// TransportError reports a request that could not be sent or whose response
// could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BackendError carries a well-formed error envelope returned by an endpoint
// that otherwise answers with data rather than a Result.
type BackendError struct {
	Op      string
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend reported an error", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// IsTransport reports whether err stems from a transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// BackendMessage extracts the backend supplied message from err, if any.
func BackendMessage(err error) (string, bool) {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message, true
	}
	return "", false
}
