// ABOUTME: Tests for the sine tone source
// ABOUTME: Checks channel duplication, continuity and amplitude clamping
package source

import (
	"math"
	"testing"
)

func TestSineStereoDuplicatesSamples(t *testing.T) {
	s := NewSine(440, 44100, 2)

	buf := make([]int16, 64*2)
	n, err := s.ReadFrames(buf)
	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	if n != 64 {
		t.Fatalf("ReadFrames = %d frames, want 64", n)
	}

	for i := 0; i < 64; i++ {
		if buf[i*2] != buf[i*2+1] {
			t.Fatalf("frame %d: left %d != right %d", i, buf[i*2], buf[i*2+1])
		}
	}
}

func TestSinePhaseContinuity(t *testing.T) {
	// Two consecutive reads must produce the same stream as one big read.
	a := NewSine(1000, 48000, 1)
	b := NewSine(1000, 48000, 1)

	whole := make([]int16, 200)
	if _, err := a.ReadFrames(whole); err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}

	split := make([]int16, 200)
	if _, err := b.ReadFrames(split[:80]); err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	if _, err := b.ReadFrames(split[80:]); err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}

	for i := range whole {
		if whole[i] != split[i] {
			t.Fatalf("sample %d: whole %d != split %d", i, whole[i], split[i])
		}
	}
}

func TestSineAmplitude(t *testing.T) {
	s := NewSine(440, 44100, 1)
	s.SetAmplitude(0.1)

	buf := make([]int16, 4410)
	s.ReadFrames(buf)

	limit := int16(math.Ceil(32767 * 0.1))
	for i, v := range buf {
		if v > limit || v < -limit {
			t.Fatalf("sample %d = %d exceeds amplitude limit %d", i, v, limit)
		}
	}
}

func TestSineAmplitudeClamped(t *testing.T) {
	s := NewSine(440, 44100, 1)

	s.SetAmplitude(2.0)
	if s.amplitude != 1.0 {
		t.Errorf("amplitude = %v, want clamped to 1", s.amplitude)
	}
	s.SetAmplitude(-0.5)
	if s.amplitude != 0 {
		t.Errorf("amplitude = %v, want clamped to 0", s.amplitude)
	}
}

func TestSineMetadata(t *testing.T) {
	s := NewSine(440, 22050, 4)
	if s.SampleRate() != 22050 || s.Channels() != 4 {
		t.Errorf("metadata = %d/%d, want 22050/4", s.SampleRate(), s.Channels())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
