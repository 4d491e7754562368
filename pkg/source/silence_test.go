// ABOUTME: Tests for the silence source
// ABOUTME: Verifies zeroed output over dirty buffers
package source

import "testing"

func TestSilenceZeroesDirtyBuffer(t *testing.T) {
	s := NewSilence(48000, 2)

	buf := make([]int16, 32)
	for i := range buf {
		buf[i] = 0x7FFF
	}

	n, err := s.ReadFrames(buf)
	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	if n != 16 {
		t.Errorf("ReadFrames = %d frames, want 16", n)
	}
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("sample %d = %d, want 0", i, v)
		}
	}
}

func TestSilenceMetadata(t *testing.T) {
	s := NewSilence(44100, 1)
	if s.SampleRate() != 44100 || s.Channels() != 1 {
		t.Errorf("metadata = %d/%d, want 44100/1", s.SampleRate(), s.Channels())
	}
}
