package store

import "fmt"

// ConnectionError reports that the store behind a locator could not be
// reached or opened. It is fatal to the enclosing call; the middleware never
// retries it on its own.
type ConnectionError struct {
	Locator string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store: cannot open %q: %v", e.Locator, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ExecutionError reports that a statement failed to run. Inside a
// transaction wrapper it triggers rollback; inside a retry policy it
// triggers another attempt while attempts remain.
type ExecutionError struct {
	Statement string
	Err       error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("store: execute %q: %v", e.Statement, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
