package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrMessageTooLong = errors.New("message must be 2000 characters or less")
)
