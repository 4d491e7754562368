// ABOUTME: Silence source
// ABOUTME: Produces zeroed frames indefinitely
package source

// Silence produces zeroed frames forever. Useful for keeping a device
// running without audible output.
type Silence struct {
	sampleRate int
	channels   int
}

// NewSilence creates a silence source.
func NewSilence(sampleRate, channels int) *Silence {
	return &Silence{sampleRate: sampleRate, channels: channels}
}

func (s *Silence) ReadFrames(dst []int16) (int, error) {
	for i := range dst {
		dst[i] = 0
	}
	return len(dst) / s.channels, nil
}

func (s *Silence) SampleRate() int { return s.sampleRate }
func (s *Silence) Channels() int   { return s.channels }
func (s *Silence) Close() error    { return nil }
