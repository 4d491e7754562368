// ABOUTME: MP3 file source
// ABOUTME: Decodes MP3 streams to 16-bit stereo frames via go-mp3
package source

import (
	"fmt"
	"io"

	"github.com/Waveline-Audio/waveline-go/pkg/pcm"
	"github.com/hajimehoshi/go-mp3"
)

// MP3 decodes an MP3 stream into frames. go-mp3 always emits 16-bit
// stereo at the file's native sample rate.
type MP3 struct {
	decoder *mp3.Decoder
	closer  io.Closer
	buf     []byte
	eof     bool
}

// NewMP3 wraps r in a streaming MP3 decoder. If r implements io.Closer
// it is closed along with the source.
func NewMP3(r io.Reader) (*MP3, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	closer, _ := r.(io.Closer)
	return &MP3{decoder: decoder, closer: closer}, nil
}

func (m *MP3) ReadFrames(dst []int16) (int, error) {
	if m.eof {
		return 0, io.EOF
	}

	// 2 channels, 2 bytes per sample
	want := (len(dst) / 2) * 4
	if cap(m.buf) < want {
		m.buf = make([]byte, want)
	}
	buf := m.buf[:want]

	n, err := io.ReadFull(m.decoder, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		m.eof = true
		err = nil
	}
	if err != nil {
		return 0, fmt.Errorf("mp3 decode error: %w", err)
	}

	frames := n / 4
	for i := 0; i < frames*2; i++ {
		dst[i] = pcm.Int16LE(buf[i*2:])
	}

	if frames == 0 && m.eof {
		return 0, io.EOF
	}
	return frames, nil
}

func (m *MP3) SampleRate() int { return m.decoder.SampleRate() }
func (m *MP3) Channels() int   { return 2 }

func (m *MP3) Close() error {
	if m.closer != nil {
		return m.closer.Close()
	}
	return nil
}
