// ABOUTME: Miniaudio playback driver via malgo
// ABOUTME: Maps engine configs onto malgo device configs
package malgodriver

import (
	"fmt"
	"log"

	"github.com/Waveline-Audio/waveline-go/pkg/device"
	"github.com/gen2brain/malgo"
)

// Driver plays through miniaudio via the malgo binding. One miniaudio
// context is shared by every handle; call Close when the driver is no
// longer needed.
type Driver struct {
	ctx *malgo.AllocatedContext
}

// New initializes the miniaudio context.
func New() (*Driver, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize malgo context: %w", err)
	}
	return &Driver{ctx: ctx}, nil
}

// Close tears down the miniaudio context. Call only after every device
// using this driver has been closed.
func (d *Driver) Close() error {
	if d.ctx == nil {
		return nil
	}
	if err := d.ctx.Uninit(); err != nil {
		return fmt.Errorf("malgo context uninit failed: %w", err)
	}
	d.ctx.Free()
	d.ctx = nil
	return nil
}

// Name implements device.Driver.
func (d *Driver) Name() string { return "malgo" }

type handle struct {
	cfg          device.Config
	deviceConfig malgo.DeviceConfig
	ctx          malgo.Context
	dev          *malgo.Device
}

// Acquire implements device.Driver. The config maps field-for-field
// onto miniaudio's device config, including the tuning flags.
func (d *Driver) Acquire(cfg device.Config) (device.Handle, device.Config, error) {
	format, err := malgoFormat(cfg.Format())
	if err != nil {
		return nil, cfg, err
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = format
	deviceConfig.Playback.Channels = uint32(cfg.Channels())
	deviceConfig.SampleRate = uint32(cfg.SampleRate())
	deviceConfig.PeriodSizeInFrames = uint32(cfg.PeriodSizeInFrames())
	deviceConfig.PerformanceProfile = malgoProfile(cfg.Profile())
	deviceConfig.NoPreSilencedOutputBuffer = boolToU32(cfg.NoPreSilencedOutputBuffer())
	deviceConfig.NoClip = boolToU32(cfg.NoClip())
	deviceConfig.NoFixedSizedCallback = boolToU32(cfg.NoFixedSizedCallback())
	deviceConfig.Alsa.NoMMap = 1

	h := &handle{
		cfg:          cfg,
		deviceConfig: deviceConfig,
		ctx:          d.ctx.Context,
	}
	return h, cfg, nil
}

// Release implements device.Driver.
func (d *Driver) Release(h device.Handle) {
	hd := h.(*handle)
	if hd.dev != nil {
		hd.dev.Uninit()
		hd.dev = nil
	}
}

// Activate implements device.Driver. The miniaudio device is created on
// first activation and restarted on subsequent ones.
func (d *Driver) Activate(h device.Handle, tramp device.Trampoline) error {
	hd := h.(*handle)

	if hd.dev == nil {
		onSamples := func(pOutput, pInput []byte, frameCount uint32) {
			tramp.Produce(pOutput, int(frameCount))
		}

		dev, err := malgo.InitDevice(hd.ctx, hd.deviceConfig, malgo.DeviceCallbacks{
			Data: onSamples,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize playback device: %w", err)
		}
		hd.dev = dev
	}

	if err := hd.dev.Start(); err != nil {
		return fmt.Errorf("failed to start device: %w", err)
	}
	return nil
}

// Deactivate implements device.Driver. miniaudio's stop blocks until
// the data callback has returned.
func (d *Driver) Deactivate(h device.Handle) {
	hd := h.(*handle)
	if hd.dev == nil {
		return
	}
	if err := hd.dev.Stop(); err != nil {
		log.Printf("malgo device stop error: %v", err)
	}
}

func malgoFormat(f device.Format) (malgo.FormatType, error) {
	switch f {
	case device.FormatUnsigned8:
		return malgo.FormatU8, nil
	case device.FormatSigned16:
		return malgo.FormatS16, nil
	case device.FormatSigned24:
		return malgo.FormatS24, nil
	case device.FormatSigned32:
		return malgo.FormatS32, nil
	case device.FormatFloat32:
		return malgo.FormatF32, nil
	default:
		return malgo.FormatUnknown, fmt.Errorf("unsupported format: %s", f)
	}
}

func malgoProfile(p device.Profile) malgo.PerformanceProfile {
	if p == device.ProfileConservative {
		return malgo.Conservative
	}
	return malgo.LowLatency
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
