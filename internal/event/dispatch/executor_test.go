package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestResult_Predicates(t *testing.T) {
	tests := []struct {
		name                       string
		result                     Result
		success, isError, isPanic bool
	}{
		{"success", Result{Success: true}, true, false, false},
		{"error", Result{Error: errors.New("boom")}, false, true, false},
		{"panic", Result{Panicked: true, PanicValue: "boom"}, false, false, true},
		{"skipped", Result{Skipped: true, Error: context.Canceled}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsSuccess(); got != tt.success {
				t.Errorf("IsSuccess() = %v, want %v", got, tt.success)
			}
			if got := tt.result.IsError(); got != tt.isError {
				t.Errorf("IsError() = %v, want %v", got, tt.isError)
			}
			if got := tt.result.IsPanic(); got != tt.isPanic {
				t.Errorf("IsPanic() = %v, want %v", got, tt.isPanic)
			}
		})
	}
}

func TestExecutor_Success(t *testing.T) {
	e := NewExecutor()
	ran := false

	result := e.Execute(context.Background(), "subject", func(ctx context.Context) error {
		ran = true
		return nil
	})

	if !ran {
		t.Fatal("task did not run")
	}
	if !result.IsSuccess() {
		t.Errorf("expected success, got %+v", result)
	}
}

func TestExecutor_Error(t *testing.T) {
	e := NewExecutor()
	want := errors.New("listener failed")

	result := e.Execute(context.Background(), nil, func(ctx context.Context) error {
		return want
	})

	if !errors.Is(result.Error, want) {
		t.Errorf("Error = %v, want %v", result.Error, want)
	}
	if result.Success {
		t.Error("Success should be false")
	}
}

func TestExecutor_PanicRecovery(t *testing.T) {
	var gotSubject, gotValue any
	var gotStack []byte
	e := NewExecutor(WithExecutorPanicHandler(func(subject, value any, stack []byte) {
		gotSubject, gotValue, gotStack = subject, value, stack
	}))

	result := e.Execute(context.Background(), "evt", func(ctx context.Context) error {
		panic("boom")
	})

	if !result.Panicked {
		t.Fatal("expected Panicked")
	}
	if result.PanicValue != "boom" {
		t.Errorf("PanicValue = %v, want boom", result.PanicValue)
	}
	if gotSubject != "evt" || gotValue != "boom" {
		t.Errorf("panic handler got (%v, %v), want (evt, boom)", gotSubject, gotValue)
	}
	if len(gotStack) == 0 {
		t.Error("panic handler received an empty stack")
	}
}

func TestExecutor_PanickingPanicHandler(t *testing.T) {
	e := NewExecutor(WithExecutorPanicHandler(func(any, any, []byte) {
		panic("handler panic")
	}))

	result := e.Execute(context.Background(), nil, func(ctx context.Context) error {
		panic("task panic")
	})

	if !result.Panicked {
		t.Error("expected Panicked")
	}
}

func TestExecutor_CancelledContext(t *testing.T) {
	e := NewExecutor()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	result := e.Execute(ctx, nil, func(ctx context.Context) error {
		ran = true
		return nil
	})

	if ran {
		t.Error("task should not run with a cancelled context")
	}
	if !result.Skipped {
		t.Error("expected Skipped")
	}
	if !errors.Is(result.Error, context.Canceled) {
		t.Errorf("Error = %v, want context.Canceled", result.Error)
	}
}

func TestExecutor_Timeout(t *testing.T) {
	e := NewExecutor(WithExecutorTimeout(10 * time.Millisecond))

	result := e.Execute(context.Background(), nil, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if !errors.Is(result.Error, context.DeadlineExceeded) {
		t.Errorf("Error = %v, want DeadlineExceeded", result.Error)
	}
	if result.Duration <= 0 {
		t.Error("Duration should be recorded")
	}
}
