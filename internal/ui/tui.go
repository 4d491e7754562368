// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the playback monitor
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ToggleMsg asks the application to start or stop playback
type ToggleMsg struct{}

// QuitMsg asks the application to shut down
type QuitMsg struct{}

// Control holds channels for TUI-to-application communication
type Control struct {
	Toggles chan ToggleMsg
	Quit    chan QuitMsg
}

// NewControl creates a new control handler
func NewControl() *Control {
	return &Control{
		Toggles: make(chan ToggleMsg, 10),
		Quit:    make(chan QuitMsg, 1),
	}
}

// NewModel creates a new TUI model
func NewModel(ctrl *Control) Model {
	return Model{
		state:   "closed",
		control: ctrl,
	}
}

// Run starts the TUI
func Run(ctrl *Control) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())
	return p, nil
}
