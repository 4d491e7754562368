// ABOUTME: Tests for the malgo driver's config mapping
// ABOUTME: Pure mapping checks that need no audio hardware
package malgodriver

import (
	"testing"

	"github.com/Waveline-Audio/waveline-go/pkg/device"
	"github.com/gen2brain/malgo"
)

var _ device.Driver = (*Driver)(nil)

func TestMalgoFormat(t *testing.T) {
	tests := []struct {
		in   device.Format
		want malgo.FormatType
	}{
		{device.FormatUnsigned8, malgo.FormatU8},
		{device.FormatSigned16, malgo.FormatS16},
		{device.FormatSigned24, malgo.FormatS24},
		{device.FormatSigned32, malgo.FormatS32},
		{device.FormatFloat32, malgo.FormatF32},
	}

	for _, tt := range tests {
		got, err := malgoFormat(tt.in)
		if err != nil {
			t.Errorf("malgoFormat(%v) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("malgoFormat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := malgoFormat(device.Format(99)); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestMalgoProfile(t *testing.T) {
	if got := malgoProfile(device.ProfileLowLatency); got != malgo.LowLatency {
		t.Errorf("low-latency maps to %v", got)
	}
	if got := malgoProfile(device.ProfileConservative); got != malgo.Conservative {
		t.Errorf("conservative maps to %v", got)
	}
}

func TestBoolToU32(t *testing.T) {
	if boolToU32(true) != 1 || boolToU32(false) != 0 {
		t.Error("boolToU32 mapping wrong")
	}
}
