// ABOUTME: Tests for the Opus packet source
// ABOUTME: Covers decoder construction, bad packets and buffering
package source

import "testing"

func TestNewOpusRejectsBadLayout(t *testing.T) {
	if _, err := NewOpus(48000, 3); err == nil {
		t.Error("expected error for 3 channels (opus supports 1 or 2)")
	}
	if _, err := NewOpus(44100, 2); err == nil {
		t.Error("expected error for 44100Hz (not an opus rate)")
	}
}

func TestOpusPushInvalidPacket(t *testing.T) {
	o, err := NewOpus(48000, 2)
	if err != nil {
		t.Fatalf("NewOpus failed: %v", err)
	}
	defer o.Close()

	if err := o.Push([]byte{0xDE, 0xAD, 0xBE, 0xEF}); err == nil {
		t.Error("expected decode error for garbage packet")
	}
	if o.Buffered() != 0 {
		t.Errorf("Buffered = %d after failed push, want 0", o.Buffered())
	}
}

func TestOpusReadFramesEmpty(t *testing.T) {
	o, err := NewOpus(48000, 2)
	if err != nil {
		t.Fatalf("NewOpus failed: %v", err)
	}
	defer o.Close()

	buf := make([]int16, 128)
	n, err := o.ReadFrames(buf)
	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	if n != 0 {
		t.Errorf("ReadFrames on empty source = %d frames, want 0", n)
	}
}

func TestOpusMetadata(t *testing.T) {
	o, err := NewOpus(48000, 1)
	if err != nil {
		t.Fatalf("NewOpus failed: %v", err)
	}
	defer o.Close()

	if o.SampleRate() != 48000 || o.Channels() != 1 {
		t.Errorf("metadata = %d/%d, want 48000/1", o.SampleRate(), o.Channels())
	}
}
