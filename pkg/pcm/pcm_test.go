// ABOUTME: Tests for PCM packing and conversion helpers
// ABOUTME: Covers sign extension, clamping and in-place clipping
package pcm

import "testing"

func TestInt16RoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	for _, v := range []int16{0, 1, -1, 32767, -32768, 12345} {
		PutInt16LE(buf, v)
		if got := Int16LE(buf); got != v {
			t.Errorf("Int16LE(PutInt16LE(%d)) = %d", v, got)
		}
	}
}

func TestInt24SignExtension(t *testing.T) {
	buf := make([]byte, 3)

	tests := []struct {
		name string
		v    int32
	}{
		{"zero", 0},
		{"positive", 1234567},
		{"negative", -1234567},
		{"max", Max24Bit},
		{"min", Min24Bit},
		{"minus one", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			PutInt24LE(buf, tt.v)
			if got := Int24LE(buf); got != tt.v {
				t.Errorf("Int24LE(PutInt24LE(%d)) = %d", tt.v, got)
			}
		})
	}
}

func TestInt24LENegativeBytes(t *testing.T) {
	// -1 stored as 24-bit is all ones; reading it back must sign extend.
	if got := Int24LE([]byte{0xFF, 0xFF, 0xFF}); got != -1 {
		t.Errorf("Int24LE(FF FF FF) = %d, want -1", got)
	}
	if got := Int24LE([]byte{0x00, 0x00, 0x80}); got != Min24Bit {
		t.Errorf("Int24LE(00 00 80) = %d, want %d", got, Min24Bit)
	}
}

func TestInt32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	for _, v := range []int32{0, 1, -1, 2147483647, -2147483648} {
		PutInt32LE(buf, v)
		if got := Int32LE(buf); got != v {
			t.Errorf("Int32LE(PutInt32LE(%d)) = %d", v, got)
		}
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	for _, v := range []float32{0, 1, -1, 0.5, -0.25} {
		PutFloat32LE(buf, v)
		if got := Float32LE(buf); got != v {
			t.Errorf("Float32LE(PutFloat32LE(%v)) = %v", v, got)
		}
	}
}

func TestFloat32ToInt16Clamps(t *testing.T) {
	if got := Float32ToInt16(2.0); got != 32767 {
		t.Errorf("Float32ToInt16(2.0) = %d, want 32767", got)
	}
	if got := Float32ToInt16(-2.0); got != -32768 {
		t.Errorf("Float32ToInt16(-2.0) = %d, want -32768", got)
	}
	if got := Float32ToInt16(0); got != 0 {
		t.Errorf("Float32ToInt16(0) = %d, want 0", got)
	}
}

func TestInt16ToFloat32Range(t *testing.T) {
	if got := Int16ToFloat32(-32768); got != -1.0 {
		t.Errorf("Int16ToFloat32(-32768) = %v, want -1", got)
	}
	if got := Int16ToFloat32(0); got != 0 {
		t.Errorf("Int16ToFloat32(0) = %v, want 0", got)
	}
	if got := Int16ToFloat32(16384); got != 0.5 {
		t.Errorf("Int16ToFloat32(16384) = %v, want 0.5", got)
	}
}

func TestClipFloat32LE(t *testing.T) {
	buf := make([]byte, 16)
	PutFloat32LE(buf[0:], 2.5)
	PutFloat32LE(buf[4:], -3.0)
	PutFloat32LE(buf[8:], 0.75)
	PutFloat32LE(buf[12:], -0.75)

	ClipFloat32LE(buf)

	if got := Float32LE(buf[0:]); got != 1.0 {
		t.Errorf("sample 0 = %v, want 1.0", got)
	}
	if got := Float32LE(buf[4:]); got != -1.0 {
		t.Errorf("sample 1 = %v, want -1.0", got)
	}
	if got := Float32LE(buf[8:]); got != 0.75 {
		t.Errorf("sample 2 = %v, want 0.75 untouched", got)
	}
	if got := Float32LE(buf[12:]); got != -0.75 {
		t.Errorf("sample 3 = %v, want -0.75 untouched", got)
	}
}
