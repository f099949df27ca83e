package service

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrCartNotFound = errors.New("cart not found")

	// ErrItemDeleted refuses changes to a soft-deleted item.
	ErrItemDeleted = errors.New("cannot change deleted item")

	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownField    = errors.New("unexpected field")
	ErrForbiddenField  = errors.New("cannot change field")

	ErrNegativeInput = errors.New("input must be non-negative")
	ErrInputTooLarge = errors.New("input is too large")
	ErrEmptyInput    = errors.New("input must not be empty")
)
