// ABOUTME: Opus packet source
// ABOUTME: Decodes pushed Opus packets to 16-bit frames
package source

import (
	"fmt"
	"sync"

	"gopkg.in/hraban/opus.v2"
)

// maxOpusFrameSize is the largest frame Opus can produce per channel
// (120ms at 48kHz).
const maxOpusFrameSize = 5760

// Opus decodes a stream of Opus packets pushed by the application.
// Push runs on a control goroutine; ReadFrames runs on the playback
// path and drains whatever has been decoded so far.
type Opus struct {
	decoder    *opus.Decoder
	sampleRate int
	channels   int

	mu      sync.Mutex
	pending []int16
	scratch []int16
}

// NewOpus creates a decoder-backed source for the given stream layout.
func NewOpus(sampleRate, channels int) (*Opus, error) {
	dec, err := opus.NewDecoder(sampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("failed to create opus decoder: %w", err)
	}

	return &Opus{
		decoder:    dec,
		sampleRate: sampleRate,
		channels:   channels,
		scratch:    make([]int16, maxOpusFrameSize*channels),
	}, nil
}

// Push decodes one Opus packet and queues its samples for ReadFrames.
func (o *Opus) Push(packet []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	n, err := o.decoder.Decode(packet, o.scratch)
	if err != nil {
		return fmt.Errorf("opus decode failed: %w", err)
	}

	o.pending = append(o.pending, o.scratch[:n*o.channels]...)
	return nil
}

func (o *Opus) ReadFrames(dst []int16) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	want := (len(dst) / o.channels) * o.channels
	n := copy(dst[:want], o.pending)
	o.pending = o.pending[n:]

	return n / o.channels, nil
}

// Buffered returns the number of queued frames not yet read.
func (o *Opus) Buffered() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending) / o.channels
}

func (o *Opus) SampleRate() int { return o.sampleRate }
func (o *Opus) Channels() int   { return o.channels }
func (o *Opus) Close() error    { return nil }
