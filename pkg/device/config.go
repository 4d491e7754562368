// ABOUTME: Immutable playback configuration value object
// ABOUTME: Validates stream parameters at construction time
package device

const (
	// MaxChannels is the highest channel count a config accepts.
	MaxChannels = 32
)

// DataCallback produces audio for one period. out holds exactly
// frameCount frames in the negotiated format and channel layout, and
// must be filled completely before returning. userData is the handle
// given to NewConfig, borrowed for the duration of the call only.
//
// The callback runs on the driver's real-time thread. It must return
// within the period budget and must not block on I/O, locks held by
// other threads, or allocation.
type DataCallback func(out []byte, frameCount int, userData any)

// Options collects the requested stream parameters for NewConfig.
type Options struct {
	Format             Format
	Channels           int
	SampleRate         int
	PeriodSizeInFrames int
	Profile            Profile

	// NoPreSilencedOutputBuffer skips zeroing the output buffer before
	// each callback. The callback must then write every byte itself.
	NoPreSilencedOutputBuffer bool

	// NoClip disables clamping of float32 samples to [-1, 1] after the
	// callback returns.
	NoClip bool

	// NoFixedSizedCallback allows the driver to request arbitrary frame
	// counts instead of exactly PeriodSizeInFrames per invocation.
	NoFixedSizedCallback bool

	Callback DataCallback
	UserData any
}

// Config is an immutable, validated description of a playback stream.
// Build one with NewConfig; the zero value is not usable.
type Config struct {
	format     Format
	channels   int
	sampleRate int
	periodSize int
	profile    Profile

	noPreSilence bool
	noClip       bool
	noFixedSize  bool

	callback DataCallback
	userData any
}

// NewConfig validates opts and returns an immutable Config. Each
// rejected field produces a distinct ConfigError.
func NewConfig(opts Options) (Config, error) {
	if !opts.Format.Valid() {
		return Config{}, &ConfigError{Field: "format", Reason: "unrecognized format"}
	}
	if opts.Channels < 1 || opts.Channels > MaxChannels {
		return Config{}, &ConfigError{Field: "channels", Reason: "must be between 1 and 32"}
	}
	if opts.SampleRate <= 0 {
		return Config{}, &ConfigError{Field: "sampleRate", Reason: "must be positive"}
	}
	if opts.PeriodSizeInFrames <= 0 {
		return Config{}, &ConfigError{Field: "periodSizeInFrames", Reason: "must be positive"}
	}
	if !opts.Profile.Valid() {
		return Config{}, &ConfigError{Field: "profile", Reason: "unrecognized profile"}
	}
	if opts.Callback == nil {
		return Config{}, &ConfigError{Field: "callback", Reason: "must not be nil"}
	}

	return Config{
		format:       opts.Format,
		channels:     opts.Channels,
		sampleRate:   opts.SampleRate,
		periodSize:   opts.PeriodSizeInFrames,
		profile:      opts.Profile,
		noPreSilence: opts.NoPreSilencedOutputBuffer,
		noClip:       opts.NoClip,
		noFixedSize:  opts.NoFixedSizedCallback,
		callback:     opts.Callback,
		userData:     opts.UserData,
	}, nil
}

func (c Config) Format() Format          { return c.format }
func (c Config) Channels() int           { return c.channels }
func (c Config) SampleRate() int         { return c.sampleRate }
func (c Config) PeriodSizeInFrames() int { return c.periodSize }
func (c Config) Profile() Profile        { return c.profile }

func (c Config) NoPreSilencedOutputBuffer() bool { return c.noPreSilence }
func (c Config) NoClip() bool                    { return c.noClip }
func (c Config) NoFixedSizedCallback() bool      { return c.noFixedSize }

func (c Config) Callback() DataCallback { return c.callback }
func (c Config) UserData() any          { return c.userData }

// BytesPerFrame returns the size of one interleaved frame.
func (c Config) BytesPerFrame() int {
	return c.format.BytesPerSample() * c.channels
}

// WithSampleRate returns a copy with an adjusted sample rate. Drivers
// use this when the backend cannot honor the requested rate.
func (c Config) WithSampleRate(rate int) Config {
	c.sampleRate = rate
	return c
}

// WithPeriodSizeInFrames returns a copy with an adjusted period size.
func (c Config) WithPeriodSizeInFrames(frames int) Config {
	c.periodSize = frames
	return c
}
