// Where: internal/infra/config/errors.go
// What: Shared error definitions for launcher config.
// Why: Ensure consistent error wrapping without dynamic error creation.
package config

import "errors"

var (
	errRootRequired  = errors.New("launcher root is required")
	errInvalidConfig = errors.New("invalid launcher config")
)
