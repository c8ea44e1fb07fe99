package llm

import "fmt"

// TimeoutError represents a generative call that exceeded its deadline even
// after the single permitted retry.
type TimeoutError struct {
	Message string
	Cause   error
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generative step timeout: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generative step timeout: %s", e.Message)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// MalformedError represents a generative payload that failed the schema
// contract after the single permitted retry. The pipeline never substitutes
// filler text for a malformed payload.
type MalformedError struct {
	Message string
	Cause   error
}

func (e *MalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generative step returned malformed payload: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generative step returned malformed payload: %s", e.Message)
}

func (e *MalformedError) Unwrap() error {
	return e.Cause
}

// APICallError represents a transport-level failure talking to the provider.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
