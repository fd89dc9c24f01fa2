package apperrors

import "fmt"

// ErrNotFound represents an error when a requested catalog resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewProgramSetNotFoundError creates a specific error for when a program set
// is missing from an episode query response.
func NewProgramSetNotFoundError(id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: "program set",
		ID:       id,
	}
}

// ErrMalformedResponse is returned when a query response does not carry the
// field shape the query requested.
type ErrMalformedResponse struct {
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Operation, e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedResponse) Is(target error) bool {
	_, ok := target.(*ErrMalformedResponse)
	return ok
}

// NewMalformedResponseError creates a new ErrMalformedResponse.
func NewMalformedResponseError(operation, reason string) *ErrMalformedResponse {
	return &ErrMalformedResponse{
		Operation: operation,
		Reason:    reason,
	}
}
