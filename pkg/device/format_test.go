// ABOUTME: Tests for format and profile enumerations
// ABOUTME: Verifies sizes, silence bytes and validity checks
package device

import "testing"

func TestFormatBytesPerSample(t *testing.T) {
	tests := []struct {
		format Format
		want   int
	}{
		{FormatUnsigned8, 1},
		{FormatSigned16, 2},
		{FormatSigned24, 3},
		{FormatSigned32, 4},
		{FormatFloat32, 4},
		{Format(99), 0},
	}

	for _, tt := range tests {
		if got := tt.format.BytesPerSample(); got != tt.want {
			t.Errorf("%v.BytesPerSample() = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestFormatSilenceByte(t *testing.T) {
	if got := FormatUnsigned8.SilenceByte(); got != 0x80 {
		t.Errorf("u8 silence = %#x, want 0x80", got)
	}
	for _, f := range []Format{FormatSigned16, FormatSigned24, FormatSigned32, FormatFloat32} {
		if got := f.SilenceByte(); got != 0 {
			t.Errorf("%v silence = %#x, want 0", f, got)
		}
	}
}

func TestFormatValid(t *testing.T) {
	for _, f := range []Format{FormatUnsigned8, FormatSigned16, FormatSigned24, FormatSigned32, FormatFloat32} {
		if !f.Valid() {
			t.Errorf("%v should be valid", f)
		}
	}
	if Format(-1).Valid() || Format(5).Valid() {
		t.Error("out-of-range formats should be invalid")
	}
}

func TestProfileValid(t *testing.T) {
	if !ProfileLowLatency.Valid() || !ProfileConservative.Valid() {
		t.Error("expected enumerated profiles to be valid")
	}
	if Profile(2).Valid() {
		t.Error("out-of-range profile should be invalid")
	}
}

func TestFormatString(t *testing.T) {
	if FormatSigned16.String() != "s16" {
		t.Errorf("s16 String = %q", FormatSigned16.String())
	}
	if ProfileLowLatency.String() != "low-latency" {
		t.Errorf("low-latency String = %q", ProfileLowLatency.String())
	}
}
