// ABOUTME: PCM sample packing and conversion helpers
// ABOUTME: Little-endian byte layout shared by drivers and sources
package pcm

import (
	"encoding/binary"
	"math"
)

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// PutInt16LE writes v to the first two bytes of b.
func PutInt16LE(b []byte, v int16) {
	binary.LittleEndian.PutUint16(b, uint16(v))
}

// Int16LE reads a sample from the first two bytes of b.
func Int16LE(b []byte) int16 {
	return int16(binary.LittleEndian.Uint16(b))
}

// PutInt24LE writes the lower 24 bits of v to the first three bytes of b.
func PutInt24LE(b []byte, v int32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

// Int24LE reads a 24-bit sample from b and sign-extends it to 32 bits.
func Int24LE(b []byte) int32 {
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF
	}
	return val
}

// PutInt32LE writes v to the first four bytes of b.
func PutInt32LE(b []byte, v int32) {
	binary.LittleEndian.PutUint32(b, uint32(v))
}

// Int32LE reads a sample from the first four bytes of b.
func Int32LE(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

// PutFloat32LE writes v to the first four bytes of b.
func PutFloat32LE(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

// Float32LE reads a sample from the first four bytes of b.
func Float32LE(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// Int16ToFloat32 converts a 16-bit sample to the [-1, 1) float range.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt16 converts a float sample to 16-bit, clamping to range.
func Float32ToInt16(v float32) int16 {
	scaled := float64(v) * 32767.0
	if scaled > 32767 {
		return 32767
	}
	if scaled < -32768 {
		return -32768
	}
	return int16(scaled)
}

// ClipFloat32LE clamps every float32 sample in buf to [-1, 1] in place.
// buf length must be a multiple of four.
func ClipFloat32LE(buf []byte) {
	for i := 0; i+4 <= len(buf); i += 4 {
		v := Float32LE(buf[i:])
		if v > 1 {
			PutFloat32LE(buf[i:], 1)
		} else if v < -1 {
			PutFloat32LE(buf[i:], -1)
		}
	}
}
