package script

import "errors"

var (
	// ErrClosed is returned by a Runtime after Close.
	ErrClosed = errors.New("script runtime closed")

	// ErrNilTarget is returned by New without a target.
	ErrNilTarget = errors.New("script runtime needs a target")
)
