// ABOUTME: Source package documentation
// ABOUTME: Frame producers that feed the playback callback
// Package source provides pull-based PCM frame producers and an
// adapter that turns any Source into a device data callback.
//
// Sources emit interleaved signed 16-bit samples. Available producers:
//   - Sine: continuous test tone
//   - Silence: zeroed frames
//   - MP3: streaming decoder over an io.Reader
//   - Opus: packet-fed decoder for transport integration
package source
