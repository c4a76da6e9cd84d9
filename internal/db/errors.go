package db

import "fmt"

// ConnectionError means the store could not be reached or opened. It is fatal
// for the calling operation; nothing at this layer retries.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("db: cannot connect to %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SchemaError means table creation failed. A half-built schema is unsafe to
// operate on, so callers must treat this as fatal at startup.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("db: schema setup failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
