package infrastructure

import "errors"

// Bus configuration errors. Both mean a wiring mistake, not a runtime user
// error: binaries are expected to call AssertRegistered at startup and fail
// fast instead of discovering a hole on the first request.
var (
	ErrNoHandler       = errors.New("no handler registered for request")
	ErrHandlerMismatch = errors.New("registered handler does not match request type")
)
