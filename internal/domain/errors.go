package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDefinitionNotFound = errors.New("item definition not found")
	ErrActorNotFound      = errors.New("actor not found")
	ErrInvalidDefinition  = errors.New("invalid item definition")
	ErrInvalidTimedEffect = errors.New("invalid timed effect")
	ErrItemNotHeld        = errors.New("item not held")
)

// DispatchError reports a command the executor rejected.
type DispatchError struct {
	Command string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %q: %v", e.Command, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
