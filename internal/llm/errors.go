package llm

import "fmt"

// GenerationError represents a failure of the text-generation capability:
// rate limiting, auth, network, or a malformed response. Callers treat these
// as recoverable: the conversation degrades to a templated message instead
// of dying.
type GenerationError struct {
	Message   string
	Retryable bool
	Cause     error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
