// ABOUTME: Driver capability interface for platform audio backends
// ABOUTME: The core depends on this seam and never on OS audio APIs
package device

// Handle is an opaque backend resource returned by Acquire. It is
// exclusively owned by the device that acquired it and is never shared.
type Handle any

// Trampoline is the engine-side entry point a driver calls from its
// real-time context. Drivers never invoke the application callback
// directly; they hand buffers to the trampoline and the engine applies
// pre-silencing, chunking and clipping before and after the callback.
type Trampoline interface {
	// Produce fills out with frameCount frames of audio.
	Produce(out []byte, frameCount int)

	// NoteUnderrun records a missed period deadline. Safe to call from
	// the real-time context.
	NoteUnderrun()
}

// Driver is the seam to a platform-specific audio output mechanism.
// Implementations live outside the core; the engine only ever calls
// through this interface.
type Driver interface {
	// Name identifies the driver in logs and the registry.
	Name() string

	// Acquire allocates a backend resource for cfg. The returned Config
	// is the effective configuration and may differ from the request,
	// e.g. when an unsupported sample rate is substituted with the
	// nearest supported one.
	Acquire(cfg Config) (Handle, Config, error)

	// Release frees the handle. It must not fail. Calling it twice for
	// the same handle is a contract violation.
	Release(h Handle)

	// Activate starts the backend's periodic production loop. The
	// driver must call tramp.Produce once per period until Deactivate.
	Activate(h Handle, tramp Trampoline) error

	// Deactivate halts the production loop. It must not return while an
	// invocation of the trampoline is still in flight; after it returns
	// the driver makes no further trampoline calls.
	Deactivate(h Handle)
}
