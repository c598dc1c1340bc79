package content

import "fmt"

// NotFoundError indicates a collection name outside the allow-list
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("collection not found: %q", e.Name)
}

// LoadError represents a failure to read, parse or validate a backing document
type LoadError struct {
	Collection Name
	Message    string
	Cause      error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Collection, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Collection, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
