// ABOUTME: Headless clock-paced playback driver
// ABOUTME: Invokes the trampoline at real period intervals, discarding audio
package nulldriver

import (
	"time"

	"github.com/Waveline-Audio/waveline-go/pkg/device"
)

// Driver paces the callback with a wall-clock ticker and discards the
// produced audio. It needs no hardware, which makes it the backend for
// CI, examples, and any headless use of the engine.
type Driver struct{}

// New creates a null driver.
func New() *Driver { return &Driver{} }

// Name implements device.Driver.
func (d *Driver) Name() string { return "null" }

type handle struct {
	cfg    device.Config
	buf    []byte
	period time.Duration

	stop chan struct{}
	done chan struct{}
}

// Acquire implements device.Driver. The null driver honors any valid
// configuration unchanged.
func (d *Driver) Acquire(cfg device.Config) (device.Handle, device.Config, error) {
	h := &handle{
		cfg:    cfg,
		buf:    make([]byte, cfg.PeriodSizeInFrames()*cfg.BytesPerFrame()),
		period: time.Duration(cfg.PeriodSizeInFrames()) * time.Second / time.Duration(cfg.SampleRate()),
	}
	return h, cfg, nil
}

// Release implements device.Driver.
func (d *Driver) Release(h device.Handle) {}

// Activate implements device.Driver. It spawns the pacing goroutine.
func (d *Driver) Activate(h device.Handle, tramp device.Trampoline) error {
	hd := h.(*handle)
	hd.stop = make(chan struct{})
	hd.done = make(chan struct{})
	go hd.run(tramp)
	return nil
}

// Deactivate implements device.Driver. It blocks until the pacing
// goroutine has exited, so no trampoline call is in flight afterwards.
func (d *Driver) Deactivate(h device.Handle) {
	hd := h.(*handle)
	if hd.stop == nil {
		return
	}
	close(hd.stop)
	<-hd.done
	hd.stop = nil
}

// run is the production loop: one trampoline call per period until stopped.
func (hd *handle) run(tramp device.Trampoline) {
	defer close(hd.done)

	ticker := time.NewTicker(hd.period)
	defer ticker.Stop()

	frames := hd.cfg.PeriodSizeInFrames()
	deadline := time.Now().Add(2 * hd.period)

	for {
		select {
		case <-hd.stop:
			return
		case now := <-ticker.C:
			// A tick arriving more than a full period past the previous
			// deadline means the consumer would have starved.
			if now.After(deadline) {
				tramp.NoteUnderrun()
			}
			deadline = now.Add(2 * hd.period)

			tramp.Produce(hd.buf, frames)
		}
	}
}
