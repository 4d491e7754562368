// ABOUTME: Bubbletea model for the playback monitor TUI
// ABOUTME: Defines application state and update logic
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI state
type Model struct {
	// Device
	driver  string
	state   string
	started bool

	// Negotiated format
	format     string
	sampleRate int
	channels   int
	periodSize int
	profile    string

	// Stats
	callbacks int64
	frames    int64
	underruns int64

	// Debug
	showDebug  bool
	goroutines int
	memAlloc   uint64

	// Dimensions
	width  int
	height int

	control *Control
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StatusMsg:
		m.applyStatus(msg)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderFormat()
	s += m.renderStats()

	if m.showDebug {
		s += m.renderDebug()
	}

	s += m.renderHelp()

	return s
}

// renderHeader renders driver and playback state
func (m Model) renderHeader() string {
	stateIcon := "■"
	if m.started {
		stateIcon = "▶"
	}

	return fmt.Sprintf(`┌─ Waveline Playback ──────────────────────────────────┐
│ Driver: %-45s │
│ State:  %s %-43s │
├──────────────────────────────────────────────────────┤
`, m.driver, stateIcon, m.state)
}

// renderFormat renders the negotiated device format
func (m Model) renderFormat() string {
	if m.format == "" {
		return "│ Device not open                                      │\n"
	}

	playTime := ""
	if m.sampleRate > 0 {
		playTime = fmt.Sprintf("%.1fs", float64(m.frames)/float64(m.sampleRate))
	}

	s := fmt.Sprintf("│ Format: %s %dHz %s, %d-frame periods%-10s │\n",
		m.format, m.sampleRate, channelName(m.channels), m.periodSize, "")
	s += fmt.Sprintf("│ Profile: %-12s Played: %-10s%-12s │\n", m.profile, playTime, "")

	return s
}

// renderStats renders callback statistics
func (m Model) renderStats() string {
	return fmt.Sprintf(`├──────────────────────────────────────────────────────┤
│ Stats:  Callbacks: %d  Frames: %d  Underruns: %d%-4s │
│                                                      │
`, m.callbacks, m.frames, m.underruns, "")
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ s:Start/Stop  d:Debug  q:Quit                      │
└──────────────────────────────────────────────────────┘
`
}

// renderDebug renders debug information
func (m Model) renderDebug() string {
	return fmt.Sprintf(`│ DEBUG:                                               │
│   Goroutines: %-6d                                │
│   Heap: %d KiB                                     │
`, m.goroutines, m.memAlloc/1024)
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.control != nil {
			select {
			case m.control.Quit <- QuitMsg{}:
			default:
			}
		}
		return m, tea.Quit
	case "s":
		if m.control != nil {
			select {
			case m.control.Toggles <- ToggleMsg{}:
			default:
			}
		}
	case "d":
		m.showDebug = !m.showDebug
	}

	return m, nil
}

// applyStatus updates model from status message
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.Driver != "" {
		m.driver = msg.Driver
	}
	if msg.State != "" {
		m.state = msg.State
		m.started = msg.State == "started"
	}
	if msg.Format != "" {
		m.format = msg.Format
		m.sampleRate = msg.SampleRate
		m.channels = msg.Channels
		m.periodSize = msg.PeriodSize
		m.profile = msg.Profile
	}
	if msg.Callbacks != 0 || msg.Frames != 0 {
		m.callbacks = msg.Callbacks
		m.frames = msg.Frames
		m.underruns = msg.Underruns
	}
	if msg.Goroutines != 0 {
		m.goroutines = msg.Goroutines
		m.memAlloc = msg.MemAlloc
	}
}

// StatusMsg updates TUI state
type StatusMsg struct {
	Driver     string
	State      string
	Format     string
	SampleRate int
	Channels   int
	PeriodSize int
	Profile    string
	Callbacks  int64
	Frames     int64
	Underruns  int64
	Goroutines int
	MemAlloc   uint64
}

func channelName(channels int) string {
	switch channels {
	case 1:
		return "Mono"
	case 2:
		return "Stereo"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}
