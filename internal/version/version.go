// ABOUTME: Version constants for the Waveline engine
// ABOUTME: Reported by the demo binary and examples
package version

const (
	Version      = "0.1.0"
	Product      = "Waveline"
	Manufacturer = "Waveline Audio"
)
