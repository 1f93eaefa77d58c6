package wex

import "fmt"

// unknownError is reported when the exchange fails a request without
// supplying an error message.
const unknownError = "unknown error"

// RemoteError is returned when the exchange rejects a request (4xx status or
// success flag zero) or when the retry budget is exhausted on server
// failures. Message carries the exchange-supplied text when one was present.
type RemoteError struct {
	Message string
	Status  int // last HTTP status observed, 0 when none applies
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("wex: remote error (http %d): %s", e.Status, e.Message)
	}
	return "wex: remote error: " + e.Message
}

func remoteError(message string, status int) *RemoteError {
	if message == "" {
		message = unknownError
	}
	return &RemoteError{Message: message, Status: status}
}
