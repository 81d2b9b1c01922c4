package service

import (
	"context"
	"fmt"
)

// CompletionServiceInterface is a single blocking round trip to a text
// completion endpoint. One call per analysis, no retry, no streaming.
type CompletionServiceInterface interface {
	Complete(ctx context.Context, model string, prompt string) (string, error)
}

// ModelRequestError wraps any transport, authentication, or quota
// failure from a remote completion endpoint.
type ModelRequestError struct {
	Provider string
	Reason   string
	Err      error
}

func (e *ModelRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s request failed: %s", e.Provider, e.Reason)
}

func (e *ModelRequestError) Unwrap() error {
	return e.Err
}
