package dispatch

import (
	"context"
	"time"
)

// Task is a unit of listener work.
type Task func(ctx context.Context) error

// Result represents the outcome of a task execution.
type Result struct {
	// Success is true if the task completed without error or panic.
	Success bool

	// Error is the error returned by the task, if any.
	Error error

	// Panicked is true if the task panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the task took to execute.
	Duration time.Duration

	// Skipped is true if the task was not executed (context cancelled).
	Skipped bool
}

// IsSuccess returns true if the result indicates successful execution.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Error == nil
}

// IsError returns true if the result indicates an error (not panic).
func (r Result) IsError() bool {
	return r.Error != nil && !r.Panicked
}

// IsPanic returns true if the result indicates a panic.
func (r Result) IsPanic() bool {
	return r.Panicked
}

// PanicHandler is called when a task panics. subject identifies what the
// task was working on (usually the event being dispatched).
type PanicHandler func(subject any, panicValue any, stack []byte)

func defaultPanicHandler(any, any, []byte) {}
