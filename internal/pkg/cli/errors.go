package cli

import (
	"fmt"

	"github.com/containerd/errdefs"
)

type ErrorKind string

const (
	ErrDuplicateKey    ErrorKind = "duplicate_key"
	ErrDuplicateAlias  ErrorKind = "duplicate_alias"
	ErrEmptyAlias      ErrorKind = "empty_alias"
	ErrInvalidPosition ErrorKind = "invalid_position"
	ErrPositionTaken   ErrorKind = "position_taken"
	ErrPositionGap     ErrorKind = "position_gap"
	ErrUnknownKey      ErrorKind = "unknown_key"
)

// DescriptorError is returned by New when the descriptors are inconsistent.
// Duplicates unwrap to errdefs.ErrAlreadyExists, everything else to
// errdefs.ErrInvalidArgument.
type DescriptorError struct {
	Kind     ErrorKind
	Key      any
	Alias    string
	Position int
}

func (e *DescriptorError) Error() string {
	switch e.Kind {
	case ErrDuplicateKey:
		return fmt.Sprintf("key %q has already been added", fmt.Sprint(e.Key))
	case ErrDuplicateAlias:
		return fmt.Sprintf("key %q: duplicate alias %q is not permitted", fmt.Sprint(e.Key), e.Alias)
	case ErrEmptyAlias:
		return fmt.Sprintf("key %q: empty strings as aliases are not allowed", fmt.Sprint(e.Key))
	case ErrInvalidPosition:
		return fmt.Sprintf("key %q: invalid position %d", fmt.Sprint(e.Key), e.Position)
	case ErrPositionTaken:
		return fmt.Sprintf("key %q: position %d is already used", fmt.Sprint(e.Key), e.Position)
	case ErrPositionGap:
		return fmt.Sprintf("positional arguments must be contiguous: position %d is not assigned", e.Position)
	case ErrUnknownKey:
		return fmt.Sprintf("key %q is not a known key", fmt.Sprint(e.Key))
	default:
		return fmt.Sprintf("invalid descriptor (%s)", e.Kind)
	}
}

func (e *DescriptorError) Unwrap() error {
	switch e.Kind {
	case ErrDuplicateKey, ErrDuplicateAlias, ErrPositionTaken:
		return errdefs.ErrAlreadyExists
	default:
		return errdefs.ErrInvalidArgument
	}
}

// UnknownCommandError is returned by Parse in strict mode for a token that
// names no registered argument.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q provided", e.Token)
}

func (e *UnknownCommandError) Unwrap() error { return errdefs.ErrNotFound }
