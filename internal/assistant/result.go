package assistant

import (
	"errors"
	"fmt"
)

var (
	// ErrCompletion marks a failed call to the completion provider.
	ErrCompletion = errors.New("completion failed")
	// ErrEmptyCompletion marks a provider answer without any text.
	ErrEmptyCompletion = errors.New("empty completion")
	// ErrPrompt marks a prompt that could not be rendered.
	ErrPrompt = errors.New("prompt rendering failed")
)

type Operation string

const (
	OperationChat         Operation = "chat"
	OperationRecipes      Operation = "recipe_search"
	OperationSubstitution Operation = "substitution"
)

// Result is the outcome of one assistant operation. Exactly one of Text or
// Err is meaningful.
type Result struct {
	Operation Operation
	Text      string
	Err       error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Message returns the model text, or the user-facing fallback for a failed call.
func (r Result) Message() string {
	if r.Err == nil {
		return r.Text
	}

	switch r.Operation {
	case OperationRecipes:
		return fmt.Sprintf("Error finding recipes: %s", r.Err)
	case OperationSubstitution:
		return fmt.Sprintf("Error getting substitutions: %s", r.Err)
	default:
		return fmt.Sprintf("I encountered an error: %s. Please try again.", r.Err)
	}
}

// Degraded reports whether the failure came from the provider rather than
// from the service itself.
func (r Result) Degraded() bool {
	return errors.Is(r.Err, ErrCompletion) || errors.Is(r.Err, ErrEmptyCompletion)
}
