// ABOUTME: Tests for the error taxonomy
// ABOUTME: Verifies code matching and message formatting
package device

import (
	"errors"
	"fmt"
	"testing"
)

func TestDeviceErrorIsMatchesCode(t *testing.T) {
	err := &DeviceError{Code: NotOpen, Op: "start"}
	if !errors.Is(err, ErrNotOpen) {
		t.Error("expected NotOpen errors to match regardless of Op")
	}
	if errors.Is(err, ErrAlreadyOpen) {
		t.Error("different codes should not match")
	}
}

func TestDeviceErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("backend exploded")
	err := &DeviceError{Code: BackendRejected, Op: "open", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via Unwrap")
	}
	if err.Error() != "device open: backend rejected: backend exploded" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "channels", Reason: "must be between 1 and 32"}
	want := "invalid config: channels: must be between 1 and 32"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}
