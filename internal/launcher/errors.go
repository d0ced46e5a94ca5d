// Where: internal/launcher/errors.go
// What: Error kinds reported by the launch flow.
// Why: The entrypoint maps each kind onto an exit code and a console message.
package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironmentCreationFailed wraps every failure to build the environment.
	ErrEnvironmentCreationFailed = errors.New("environment creation failed")

	errNoSystemInterpreter = errors.New("no system python interpreter found")
	errMarkerMissing       = errors.New("interpreter missing after environment creation")
	errRunnerNil           = errors.New("command runner is nil")
)

// creationError carries the cause of an environment creation failure.
// It matches ErrEnvironmentCreationFailed under errors.Is.
type creationError struct {
	cause error
}

func newCreationError(cause error) error {
	return &creationError{cause: cause}
}

func (e *creationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrEnvironmentCreationFailed, e.cause)
}

func (e *creationError) Unwrap() []error {
	return []error{ErrEnvironmentCreationFailed, e.cause}
}

// AppExitError reports that the application exited with a non-zero status.
type AppExitError struct {
	Code int
	Err  error
}

func (e *AppExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("application exited with code %d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("application exited with code %d", e.Code)
}

func (e *AppExitError) Unwrap() error {
	return e.Err
}
