package access

import "errors"

// Request-level error taxonomy. Handlers translate these at the boundary:
// ErrNotFound and ErrForbidden become 404/403 responses,
// ErrNotAuthenticated always becomes a redirect to the login flow.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("forbidden")
	ErrNotAuthenticated = errors.New("not authenticated")
)
