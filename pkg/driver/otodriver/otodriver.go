// ABOUTME: Oto-based playback driver
// ABOUTME: Pulls periods from the trampoline through an io.Reader
package otodriver

import (
	"fmt"
	"sync"
	"time"

	"github.com/Waveline-Audio/waveline-go/pkg/device"
	"github.com/ebitengine/oto/v3"
)

// Driver plays through the oto library. oto allows exactly one context
// per process, so the first Acquire fixes the sample rate and channel
// count; later acquisitions must match. Only signed 16-bit output is
// supported.
type Driver struct {
	mu         sync.Mutex
	ctx        *oto.Context
	sampleRate int
	channels   int
}

// New creates an oto driver. The oto context is created lazily on the
// first Acquire.
func New() *Driver { return &Driver{} }

// Name implements device.Driver.
func (d *Driver) Name() string { return "oto" }

type handle struct {
	ctx    *oto.Context
	reader *pullReader
	player *oto.Player
}

// Acquire implements device.Driver.
func (d *Driver) Acquire(cfg device.Config) (device.Handle, device.Config, error) {
	if cfg.Format() != device.FormatSigned16 {
		return nil, cfg, fmt.Errorf("oto output is s16 only, got %s", cfg.Format())
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ctx == nil {
		period := time.Duration(cfg.PeriodSizeInFrames()) * time.Second / time.Duration(cfg.SampleRate())

		op := &oto.NewContextOptions{
			SampleRate:   cfg.SampleRate(),
			ChannelCount: cfg.Channels(),
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   bufferFor(cfg.Profile(), period),
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			return nil, cfg, fmt.Errorf("failed to create oto context: %w", err)
		}
		<-readyChan

		d.ctx = ctx
		d.sampleRate = cfg.SampleRate()
		d.channels = cfg.Channels()
	} else if d.sampleRate != cfg.SampleRate() || d.channels != cfg.Channels() {
		return nil, cfg, fmt.Errorf("oto context fixed at %dHz %dch, cannot open %dHz %dch",
			d.sampleRate, d.channels, cfg.SampleRate(), cfg.Channels())
	}

	h := &handle{
		ctx: d.ctx,
		reader: &pullReader{
			bytesPerFrame: cfg.BytesPerFrame(),
		},
	}
	return h, cfg, nil
}

// Release implements device.Driver. The oto context is process-wide and
// outlives individual handles.
func (d *Driver) Release(h device.Handle) {}

// Activate implements device.Driver. The oto player pulls audio from
// the reader on its own thread; the reader forwards each pull to the
// trampoline.
func (d *Driver) Activate(h device.Handle, tramp device.Trampoline) error {
	hd := h.(*handle)
	hd.reader.set(tramp)
	hd.player = hd.ctx.NewPlayer(hd.reader)
	hd.player.Play()
	return nil
}

// Deactivate implements device.Driver. Detaching the trampoline takes
// the reader's lock, which waits out any in-flight pull.
func (d *Driver) Deactivate(h device.Handle) {
	hd := h.(*handle)
	if hd.player != nil {
		hd.player.Close()
		hd.player = nil
	}
	hd.reader.set(nil)
}

// bufferFor maps the performance profile to oto's total buffer length.
func bufferFor(p device.Profile, period time.Duration) time.Duration {
	if p == device.ProfileConservative {
		return 8 * period
	}
	return 2 * period
}

// pullReader bridges oto's pull model to the trampoline. Read runs on
// oto's playback goroutine.
type pullReader struct {
	mu            sync.Mutex
	tramp         device.Trampoline
	bytesPerFrame int
}

func (r *pullReader) set(t device.Trampoline) {
	r.mu.Lock()
	r.tramp = t
	r.mu.Unlock()
}

func (r *pullReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := (len(p) / r.bytesPerFrame) * r.bytesPerFrame
	if n == 0 {
		// The player cannot be fed a single whole frame this pull, so it
		// will starve for the cycle.
		if r.tramp != nil {
			r.tramp.NoteUnderrun()
		}
		return 0, nil
	}

	if r.tramp == nil {
		// Detached: emit silence so the player never starves.
		for i := range p[:n] {
			p[i] = 0
		}
		return n, nil
	}

	r.tramp.Produce(p[:n], n/r.bytesPerFrame)
	return n, nil
}
