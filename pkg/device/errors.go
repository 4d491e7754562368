// ABOUTME: Error taxonomy for config validation and device lifecycle
// ABOUTME: Defines ConfigError reasons and DeviceError codes
package device

import "fmt"

// ConfigError reports why NewConfig rejected its input.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// ErrorCode classifies a failed device operation.
type ErrorCode int

const (
	NoSuitableDriver ErrorCode = iota
	AlreadyOpen
	BackendRejected
	NotOpen
	AlreadyStarted
	NotStarted
)

func (c ErrorCode) String() string {
	switch c {
	case NoSuitableDriver:
		return "no suitable driver"
	case AlreadyOpen:
		return "already open"
	case BackendRejected:
		return "backend rejected"
	case NotOpen:
		return "not open"
	case AlreadyStarted:
		return "already started"
	case NotStarted:
		return "not started"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// DeviceError is returned by device lifecycle operations. Op names the
// operation that failed; Err carries the backend cause when there is one.
type DeviceError struct {
	Code ErrorCode
	Op   string
	Err  error
}

func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("device %s: %s: %v", e.Op, e.Code, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("device %s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("device: %s", e.Code)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Is matches on the error code only, so callers can compare against the
// sentinel values below with errors.Is regardless of Op and cause.
func (e *DeviceError) Is(target error) bool {
	t, ok := target.(*DeviceError)
	return ok && t.Code == e.Code
}

// Sentinel values for errors.Is comparisons.
var (
	ErrNoSuitableDriver = &DeviceError{Code: NoSuitableDriver}
	ErrAlreadyOpen      = &DeviceError{Code: AlreadyOpen}
	ErrBackendRejected  = &DeviceError{Code: BackendRejected}
	ErrNotOpen          = &DeviceError{Code: NotOpen}
	ErrAlreadyStarted   = &DeviceError{Code: AlreadyStarted}
	ErrNotStarted       = &DeviceError{Code: NotStarted}
)
