package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewFormatsCodeAndMessage(t *testing.T) {
	err := New(ErrCodeRejectedNoPlacement, "no room in column %d", 4)

	if err.Code != ErrCodeRejectedNoPlacement {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRejectedNoPlacement)
	}
	if err.Message != "no room in column 4" {
		t.Errorf("Message = %q", err.Message)
	}
	if got, want := err.Error(), "REJECTED_NO_PLACEMENT: no room in column 4"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapKeepsCauseReachable(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeStore, cause, "load board %s", "b1")

	if err.Code != ErrCodeStore {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStore)
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() should return the cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through the wrapper")
	}
	if got, want := err.Error(), "STORE_ERROR: load board b1: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeInvalidComponent, "bad id")

	if !Is(err, ErrCodeInvalidComponent) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeStore) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrCodeInvalidComponent) {
		t.Error("Is should not match a plain error")
	}
	if Is(nil, ErrCodeInvalidComponent) {
		t.Error("Is should not match nil")
	}
}

func TestIsSeesOutermostCode(t *testing.T) {
	inner := New(ErrCodeComponentNotFound, "no such component")
	outer := Wrap(ErrCodeStore, inner, "apply failed")

	// As stops at the first *Error, so the outer code wins
	if !Is(outer, ErrCodeStore) {
		t.Error("Is should match the outer code")
	}
	if got := GetCode(outer); got != ErrCodeStore {
		t.Errorf("GetCode = %v, want the outer code", got)
	}
}

func TestGetCodeThroughPlainWrapping(t *testing.T) {
	// Callers often pass coded errors through fmt.Errorf("%w"); the code
	// must survive that.
	coded := New(ErrCodeRejectedOutOfBounds, "push past column 12")
	wrapped := fmt.Errorf("operation 3 of 5: %w", coded)

	if got := GetCode(wrapped); got != ErrCodeRejectedOutOfBounds {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeRejectedOutOfBounds)
	}
	if GetCode(errors.New("plain")) != "" {
		t.Error("GetCode of a plain error should be empty")
	}
	if GetCode(nil) != "" {
		t.Error("GetCode of nil should be empty")
	}
}

func TestUserMessageStripsCode(t *testing.T) {
	err := New(ErrCodeRejectedDuplicate, "component %q already exists", "cpu")
	if got, want := UserMessage(err), `component "cpu" already exists`; got != want {
		t.Errorf("UserMessage = %q, want %q", got, want)
	}

	plain := errors.New("disk full")
	if got := UserMessage(plain); got != "disk full" {
		t.Errorf("UserMessage of a plain error = %q, want it verbatim", got)
	}
}
