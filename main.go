// ABOUTME: Entry point for the Waveline playback demo
// ABOUTME: Parses CLI flags and plays a tone or MP3 file through a driver
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Waveline-Audio/waveline-go/internal/ui"
	"github.com/Waveline-Audio/waveline-go/internal/version"
	"github.com/Waveline-Audio/waveline-go/pkg/device"
	"github.com/Waveline-Audio/waveline-go/pkg/driver/malgodriver"
	"github.com/Waveline-Audio/waveline-go/pkg/driver/nulldriver"
	"github.com/Waveline-Audio/waveline-go/pkg/driver/otodriver"
	"github.com/Waveline-Audio/waveline-go/pkg/source"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	driverName = flag.String("driver", "malgo", "Playback driver: malgo, oto, null")
	rate       = flag.Int("rate", 44100, "Sample rate (Hz)")
	channels   = flag.Int("channels", 2, "Number of channels")
	period     = flag.Int("period", 512, "Period size in frames")
	profile    = flag.String("profile", "low-latency", "Performance profile: low-latency, conservative")
	freq       = flag.Float64("freq", 440.0, "Test tone frequency (Hz)")
	file       = flag.String("file", "", "MP3 file to play instead of the test tone")
	logFile    = flag.String("log-file", "waveline.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
)

func main() {
	flag.Parse()

	useTUI := !*noTUI

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		log.SetOutput(io.MultiWriter(os.Stdout, f))
		log.Printf("Starting %s %s", version.Product, version.Version)
	}

	registerDrivers()

	drv, ok := device.Lookup(*driverName)
	if !ok {
		log.Fatalf("Unknown driver %q (available: %v)", *driverName, device.Drivers())
	}

	prof := device.ProfileLowLatency
	if *profile == "conservative" {
		prof = device.ProfileConservative
	}

	// Pick the audio source
	var src source.Source
	if *file != "" {
		r, err := os.Open(*file)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", *file, err)
		}
		mp3Src, err := source.NewMP3(r)
		if err != nil {
			log.Fatalf("Failed to decode %s: %v", *file, err)
		}
		src = mp3Src
		*rate = mp3Src.SampleRate()
		*channels = mp3Src.Channels()
		log.Printf("Playing %s: %dHz stereo", *file, *rate)
	} else {
		src = source.NewSine(*freq, *rate, *channels)
		log.Printf("Playing %.1fHz test tone", *freq)
	}
	defer src.Close()

	cfg, err := device.NewConfig(device.Options{
		Format:             device.FormatSigned16,
		Channels:           *channels,
		SampleRate:         *rate,
		PeriodSizeInFrames: *period,
		Profile:            prof,
		Callback:           source.Callback(src, *period),
	})
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	dev := device.New(drv)
	if err := dev.Open(cfg); err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer dev.Close()

	if err := dev.Start(); err != nil {
		log.Fatalf("Failed to start playback: %v", err)
	}

	effectiveRate, _ := dev.SampleRate()
	log.Printf("Playback started: %s %dHz %dch, %d-frame periods",
		cfg.Format(), effectiveRate, *channels, *period)

	// TUI setup
	var tuiProg *tea.Program
	var ctrl *ui.Control

	if useTUI {
		ctrl = ui.NewControl()
		tuiProg, err = ui.Run(ctrl)
		if err != nil {
			log.Fatalf("Failed to start TUI: %v", err)
		}
		go tuiProg.Run()

		tuiProg.Send(ui.StatusMsg{
			Driver:     drv.Name(),
			State:      dev.State().String(),
			Format:     cfg.Format().String(),
			SampleRate: effectiveRate,
			Channels:   *channels,
			PeriodSize: *period,
			Profile:    prof.String(),
		})

		go statsUpdateLoop(dev, tuiProg)
		go handleControl(dev, ctrl, tuiProg)
	}

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if ctrl != nil {
		select {
		case <-ctrl.Quit:
			log.Printf("Received quit signal from TUI")
		case <-sigChan:
			log.Printf("Shutdown signal received")
		}
		tuiProg.Quit()
	} else {
		<-sigChan
		log.Printf("Shutdown signal received")
	}

	if err := dev.Close(); err != nil {
		log.Printf("Error closing device: %v", err)
	}

	stats := dev.Stats()
	log.Printf("Playback stopped: %d callbacks, %d frames, %d underruns",
		stats.Callbacks, stats.Frames, stats.Underruns)
}

// registerDrivers wires every available backend into the registry.
func registerDrivers() {
	if err := device.Register(nulldriver.New()); err != nil {
		log.Printf("null driver unavailable: %v", err)
	}
	if err := device.Register(otodriver.New()); err != nil {
		log.Printf("oto driver unavailable: %v", err)
	}
	if md, err := malgodriver.New(); err != nil {
		log.Printf("malgo driver unavailable: %v", err)
	} else if err := device.Register(md); err != nil {
		log.Printf("malgo driver unavailable: %v", err)
	}
}

// handleControl processes start/stop toggles from the TUI
func handleControl(dev *device.Device, ctrl *ui.Control, tuiProg *tea.Program) {
	for {
		select {
		case <-ctrl.Toggles:
			var err error
			if dev.State() == device.StateStarted {
				err = dev.Stop()
			} else {
				err = dev.Start()
			}
			if err != nil {
				log.Printf("Toggle failed: %v", err)
			}
			tuiProg.Send(ui.StatusMsg{State: dev.State().String()})
		case <-ctrl.Quit:
			return
		}
	}
}

// statsUpdateLoop periodically updates the TUI with playback statistics
func statsUpdateLoop(dev *device.Device, tuiProg *tea.Program) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	runtimeTicker := time.NewTicker(2 * time.Second)
	defer runtimeTicker.Stop()

	var lastGoroutines int
	var lastMemAlloc uint64

	for {
		select {
		case <-runtimeTicker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			lastGoroutines = runtime.NumGoroutine()
			lastMemAlloc = m.Alloc

		case <-ticker.C:
			stats := dev.Stats()
			tuiProg.Send(ui.StatusMsg{
				Callbacks:  stats.Callbacks,
				Frames:     stats.Frames,
				Underruns:  stats.Underruns,
				Goroutines: lastGoroutines,
				MemAlloc:   lastMemAlloc,
			})
		}
	}
}
