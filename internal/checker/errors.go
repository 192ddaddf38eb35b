package checker

import "errors"

// Standard errors returned by the checker bridge.
var (
	// ErrNotStarted indicates the bridge process has not been started.
	ErrNotStarted = errors.New("checker bridge not started")

	// ErrAlreadyStarted indicates the bridge process is already running.
	ErrAlreadyStarted = errors.New("checker bridge already started")

	// ErrShutdown indicates the bridge has been closed.
	ErrShutdown = errors.New("checker bridge shut down")

	// ErrInvalidResponse indicates a malformed response from the backend.
	ErrInvalidResponse = errors.New("invalid response from backend")

	// ErrBackendFailed indicates the backend reported an error status.
	ErrBackendFailed = errors.New("backend reported failure")
)
