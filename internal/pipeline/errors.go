// Package pipeline provides the orchestration for a full fit analysis run.
package pipeline

import "fmt"

// InsufficientInputError means the caller's inputs cannot be analyzed at all
// (empty resume, blank job description). Retrying without different input
// will not help, which distinguishes it from transient failures.
type InsufficientInputError struct {
	Message string
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("insufficient input: %s", e.Message)
}
