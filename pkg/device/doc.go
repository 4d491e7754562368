// ABOUTME: Core playback engine package documentation
// ABOUTME: Describes the Config/Device/Driver triad
// Package device implements a minimal callback-driven audio playback
// engine.
//
// An application builds an immutable Config describing the stream it
// wants (format, channels, sample rate, period size, tuning flags) and
// the callback that produces audio, opens a Device against a Driver,
// and starts playback. The driver owns the real-time thread; the engine
// wraps the application callback in a trampoline that applies
// pre-silencing, fixed-size chunking and float clipping around it.
//
// Concrete drivers live in pkg/driver; the engine itself depends only
// on the Driver interface and never on OS audio APIs.
//
// Example:
//
//	cfg, err := device.NewConfig(device.Options{
//	    Format:             device.FormatSigned16,
//	    Channels:           2,
//	    SampleRate:         44100,
//	    PeriodSizeInFrames: 512,
//	    Profile:            device.ProfileLowLatency,
//	    Callback:           fillFrames,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dev := device.New(nulldriver.New())
//	if err := dev.Open(cfg); err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	dev.Start()
package device
