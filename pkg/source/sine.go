// ABOUTME: Sine wave test tone source
// ABOUTME: Generates a pure tone at a configurable frequency
package source

import "math"

// Sine generates a continuous test tone. It never returns io.EOF.
type Sine struct {
	frequency  float64
	amplitude  float64
	sampleRate int
	channels   int

	sampleIndex uint64
}

// NewSine creates a tone generator. Amplitude defaults to 0.5 of full
// scale to leave headroom.
func NewSine(frequency float64, sampleRate, channels int) *Sine {
	return &Sine{
		frequency:  frequency,
		amplitude:  0.5,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// SetAmplitude adjusts output level, clamped to [0, 1].
func (s *Sine) SetAmplitude(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	s.amplitude = a
}

func (s *Sine) ReadFrames(dst []int16) (int, error) {
	frames := len(dst) / s.channels

	for i := 0; i < frames; i++ {
		t := float64(s.sampleIndex+uint64(i)) / float64(s.sampleRate)
		sample := math.Sin(2 * math.Pi * s.frequency * t)
		value := int16(sample * 32767.0 * s.amplitude)

		for ch := 0; ch < s.channels; ch++ {
			dst[i*s.channels+ch] = value
		}
	}

	s.sampleIndex += uint64(frames)
	return frames, nil
}

func (s *Sine) SampleRate() int { return s.sampleRate }
func (s *Sine) Channels() int   { return s.channels }
func (s *Sine) Close() error    { return nil }
