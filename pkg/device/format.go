// ABOUTME: Sample format and performance profile enumerations
// ABOUTME: Defines the PCM formats a playback device can negotiate
package device

import "fmt"

// Format identifies the PCM sample format of an output stream.
type Format int

const (
	FormatUnsigned8 Format = iota
	FormatSigned16
	FormatSigned24
	FormatSigned32
	FormatFloat32
)

// BytesPerSample returns the storage size of a single sample.
func (f Format) BytesPerSample() int {
	switch f {
	case FormatUnsigned8:
		return 1
	case FormatSigned16:
		return 2
	case FormatSigned24:
		return 3
	case FormatSigned32, FormatFloat32:
		return 4
	default:
		return 0
	}
}

// SilenceByte returns the byte value that represents silence when a
// buffer of this format is filled with it. Unsigned 8-bit audio centers
// at 0x80; every other format centers at zero.
func (f Format) SilenceByte() byte {
	if f == FormatUnsigned8 {
		return 0x80
	}
	return 0
}

// Valid reports whether f is one of the enumerated formats.
func (f Format) Valid() bool {
	return f >= FormatUnsigned8 && f <= FormatFloat32
}

func (f Format) String() string {
	switch f {
	case FormatUnsigned8:
		return "u8"
	case FormatSigned16:
		return "s16"
	case FormatSigned24:
		return "s24"
	case FormatSigned32:
		return "s32"
	case FormatFloat32:
		return "f32"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// Profile selects how aggressively a backend trades buffering for latency.
type Profile int

const (
	ProfileLowLatency Profile = iota
	ProfileConservative
)

// Valid reports whether p is one of the enumerated profiles.
func (p Profile) Valid() bool {
	return p == ProfileLowLatency || p == ProfileConservative
}

func (p Profile) String() string {
	switch p {
	case ProfileLowLatency:
		return "low-latency"
	case ProfileConservative:
		return "conservative"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}
