package fleet

import "fmt"

// ValidationError reports a create or update payload that cannot be
// normalized into a well formed vehicle record. The offending operation is
// aborted with no partial mutation applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against a vehicle id that is not in the
// collection
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("vehicle %s not found", e.ID)
}
