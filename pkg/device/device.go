// ABOUTME: Playback device lifecycle and state machine
// ABOUTME: Owns the driver handle and drives the callback trampoline
package device

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/Waveline-Audio/waveline-go/pkg/pcm"
	"github.com/google/uuid"
)

// State describes the device lifecycle position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateStarted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stats holds playback counters updated from the real-time path.
// Underruns are reported here rather than as errors, since they occur
// after Start has already returned.
type Stats struct {
	Callbacks int64 // application callback invocations
	Frames    int64 // frames produced
	Underruns int64 // missed period deadlines reported by the driver
}

// Device owns one open playback stream on a backend driver.
//
// Lifecycle: Closed -[Open]-> Open -[Start]-> Started -[Stop]-> Stopped,
// Stopped -[Start]-> Started, and Close from any state back to Closed.
// An invalid transition fails with a DeviceError and leaves the state
// unchanged. The zero Device is not usable; construct with New.
type Device struct {
	id     string
	driver Driver

	mu     sync.Mutex // guards state transitions only, never held across callbacks
	state  State
	handle Handle
	config Config

	// Scratch period buffer for fixed-size chunking, sized at Open.
	// When a driver requests a non-period-aligned frame count, the
	// unconsumed tail of the last produced period stays in scratch and
	// is served at the start of the next request.
	scratch  []byte
	carryOff int // byte offset of pending frames within scratch
	carryLen int // pending bytes not yet handed to the driver

	active    atomic.Bool
	callbacks atomic.Int64
	frames    atomic.Int64
	underruns atomic.Int64
}

// New creates a closed device bound to drv.
func New(drv Driver) *Device {
	return &Device{
		id:     uuid.New().String(),
		driver: drv,
		state:  StateClosed,
	}
}

// NewDefault creates a device bound to the default registered driver.
func NewDefault() (*Device, error) {
	drv, err := Default()
	if err != nil {
		return nil, err
	}
	return New(drv), nil
}

// ID returns the device instance identifier used in log lines.
func (d *Device) ID() string { return d.id }

// State returns the current lifecycle state.
func (d *Device) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Open acquires a backend resource for cfg. The driver may adjust the
// configuration; the adjusted version becomes the effective config
// reported by the accessors.
func (d *Device) Open(cfg Config) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateClosed {
		return &DeviceError{Code: AlreadyOpen, Op: "open"}
	}
	if d.driver == nil {
		return &DeviceError{Code: NoSuitableDriver, Op: "open"}
	}

	handle, effective, err := d.driver.Acquire(cfg)
	if err != nil {
		return &DeviceError{Code: BackendRejected, Op: "open", Err: err}
	}

	d.handle = handle
	d.config = effective
	d.scratch = make([]byte, effective.PeriodSizeInFrames()*effective.BytesPerFrame())
	d.carryOff, d.carryLen = 0, 0
	d.state = StateOpen

	if effective.SampleRate() != cfg.SampleRate() {
		log.Printf("device %s: driver %s adjusted sample rate %d -> %d",
			d.id, d.driver.Name(), cfg.SampleRate(), effective.SampleRate())
	}
	log.Printf("device %s: opened on %s: %s %dch %dHz period=%d profile=%s",
		d.id, d.driver.Name(), effective.Format(), effective.Channels(),
		effective.SampleRate(), effective.PeriodSizeInFrames(), effective.Profile())

	return nil
}

// Start activates the driver's periodic production loop.
func (d *Device) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case StateClosed:
		return &DeviceError{Code: NotOpen, Op: "start"}
	case StateStarted:
		return &DeviceError{Code: AlreadyStarted, Op: "start"}
	}

	// A fresh activation starts a fresh stream; frames held over from
	// before the last Stop are stale.
	d.carryOff, d.carryLen = 0, 0

	d.active.Store(true)
	if err := d.driver.Activate(d.handle, &trampoline{d: d}); err != nil {
		d.active.Store(false)
		return &DeviceError{Code: BackendRejected, Op: "start", Err: err}
	}

	d.state = StateStarted
	log.Printf("device %s: started", d.id)
	return nil
}

// Stop halts the production loop. It blocks until any in-flight
// callback invocation has completed; after Stop returns, no further
// callback runs until the next Start.
func (d *Device) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateStarted {
		return &DeviceError{Code: NotStarted, Op: "stop"}
	}

	// The loop is cooperative: it quiesces between periods, and
	// Deactivate does not return while a trampoline call is in flight.
	d.active.Store(false)
	d.driver.Deactivate(d.handle)

	d.state = StateStopped
	log.Printf("device %s: stopped", d.id)
	return nil
}

// Close releases the driver resource. Closing an already-closed device
// is a no-op, not an error. A started device is stopped first.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateClosed {
		return nil
	}

	if d.state == StateStarted {
		d.active.Store(false)
		d.driver.Deactivate(d.handle)
	}

	d.driver.Release(d.handle)
	d.handle = nil
	d.scratch = nil
	d.state = StateClosed

	log.Printf("device %s: closed", d.id)
	return nil
}

// SampleRate returns the effective sample rate.
func (d *Device) SampleRate() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateClosed {
		return 0, &DeviceError{Code: NotOpen, Op: "sampleRate"}
	}
	return d.config.SampleRate(), nil
}

// Channels returns the effective channel count.
func (d *Device) Channels() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateClosed {
		return 0, &DeviceError{Code: NotOpen, Op: "channels"}
	}
	return d.config.Channels(), nil
}

// Format returns the effective sample format.
func (d *Device) Format() (Format, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateClosed {
		return 0, &DeviceError{Code: NotOpen, Op: "format"}
	}
	return d.config.Format(), nil
}

// PeriodSizeInFrames returns the effective period size.
func (d *Device) PeriodSizeInFrames() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateClosed {
		return 0, &DeviceError{Code: NotOpen, Op: "periodSizeInFrames"}
	}
	return d.config.PeriodSizeInFrames(), nil
}

// Profile returns the effective performance profile.
func (d *Device) Profile() (Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateClosed {
		return 0, &DeviceError{Code: NotOpen, Op: "profile"}
	}
	return d.config.Profile(), nil
}

// UserData returns the opaque handle threaded through the callback.
// The device borrows it; ownership stays with the caller.
func (d *Device) UserData() (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateClosed {
		return nil, &DeviceError{Code: NotOpen, Op: "userData"}
	}
	return d.config.UserData(), nil
}

// Stats returns a snapshot of the playback counters.
func (d *Device) Stats() Stats {
	return Stats{
		Callbacks: d.callbacks.Load(),
		Frames:    d.frames.Load(),
		Underruns: d.underruns.Load(),
	}
}

// trampoline adapts driver buffer requests to the application callback.
// Its methods run on the driver's real-time thread and must not block
// or allocate.
type trampoline struct {
	d *Device
}

func (t *trampoline) Produce(out []byte, frameCount int) {
	d := t.d
	cfg := d.config

	if !d.active.Load() {
		// Stopped between periods; emit silence until deactivation.
		fill(out, cfg.Format().SilenceByte())
		return
	}

	if !cfg.NoPreSilencedOutputBuffer() {
		fill(out, cfg.Format().SilenceByte())
	}

	if cfg.NoFixedSizedCallback() {
		d.invoke(out, frameCount)
	} else {
		d.invokeFixed(out, frameCount)
	}

	if cfg.Format() == FormatFloat32 && !cfg.NoClip() {
		pcm.ClipFloat32LE(out)
	}
}

func (t *trampoline) NoteUnderrun() {
	t.d.underruns.Add(1)
}

// invoke runs the callback once for exactly frameCount frames.
func (d *Device) invoke(out []byte, frameCount int) {
	d.config.Callback()(out, frameCount, d.config.UserData())
	d.callbacks.Add(1)
	d.frames.Add(int64(frameCount))
}

// invokeFixed slices the driver's request into period-sized callback
// invocations. A trailing partial period is produced into the scratch
// buffer so the callback always sees a full period; the unconsumed
// remainder is carried over and served first on the next request, so
// no produced frame is ever dropped.
func (d *Device) invokeFixed(out []byte, frameCount int) {
	period := d.config.PeriodSizeInFrames()
	bpf := d.config.BytesPerFrame()

	if d.carryLen > 0 {
		n := copy(out, d.scratch[d.carryOff:d.carryOff+d.carryLen])
		d.carryOff += n
		d.carryLen -= n
		out = out[n:]
		frameCount -= n / bpf
	}

	for frameCount > 0 {
		if frameCount >= period {
			d.invoke(out[:period*bpf], period)
			out = out[period*bpf:]
			frameCount -= period
			continue
		}

		// Short tail: produce a full period into scratch, hand out the
		// prefix and keep the rest for the next request.
		fill(d.scratch, d.config.Format().SilenceByte())
		d.invoke(d.scratch, period)
		n := copy(out, d.scratch[:frameCount*bpf])
		d.carryOff = n
		d.carryLen = period*bpf - n
		frameCount = 0
	}
}

// fill sets every byte of b to v.
func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}
