// ABOUTME: Frame source interface and device callback adapter
// ABOUTME: Bridges pull-based PCM producers to the playback callback
package source

import (
	"io"

	"github.com/Waveline-Audio/waveline-go/pkg/device"
	"github.com/Waveline-Audio/waveline-go/pkg/pcm"
)

// Source produces interleaved signed 16-bit PCM frames on demand.
type Source interface {
	// ReadFrames fills dst with up to len(dst)/Channels() frames and
	// returns the number of frames produced. io.EOF follows the last
	// frame; a short read without error means more audio is coming.
	ReadFrames(dst []int16) (int, error)

	// SampleRate returns the source's native sample rate.
	SampleRate() int

	// Channels returns the interleaved channel count.
	Channels() int

	// Close releases source resources.
	Close() error
}

// Callback adapts src to a device data callback. The device must be
// configured for FormatSigned16 with the source's channel count; frames
// the source cannot supply are left pre-silenced.
//
// maxFrames sizes the intermediate buffer up front so the callback
// itself never allocates; pass the device's period size. With fixed-size
// callbacks (the default) no invocation exceeds it. Larger requests
// still work but grow the buffer on the real-time path.
func Callback(src Source, maxFrames int) device.DataCallback {
	channels := src.Channels()
	scratch := make([]int16, maxFrames*channels)

	return func(out []byte, frameCount int, _ any) {
		need := frameCount * channels
		if cap(scratch) < need {
			scratch = make([]int16, need)
		}
		buf := scratch[:need]

		n, err := src.ReadFrames(buf)
		if err != nil && err != io.EOF {
			// Real-time path: swallow the error and emit silence; the
			// source surfaces its failure on Close or the next control
			// interaction.
			return
		}

		for i, s := range buf[:n*channels] {
			pcm.PutInt16LE(out[i*2:], s)
		}
	}
}
