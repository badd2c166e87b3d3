package bandwidth

import (
	"fmt"
	"strings"
)

// Table renders the analysis as an ASCII table, one section per streaming
// interface plus a bandwidth summary.
func (a *Analysis) Table() string {
	if len(a.Interfaces) == 0 {
		return "No streaming interfaces found.\n"
	}

	var b strings.Builder
	rule := strings.Repeat("=", 85)
	thin := strings.Repeat("-", 85)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "STREAMING INTERFACES AND BANDWIDTH")
	fmt.Fprintln(&b, rule)

	for _, iface := range a.Interfaces {
		fmt.Fprintln(&b)
		direction := "Capture"
		if iface.Direction == "OUT" {
			direction = "Playback"
		}
		fmt.Fprintf(&b, "Interface %d: %s\n", iface.InterfaceNumber, direction)
		if iface.TerminalType != "" {
			fmt.Fprintf(&b, "  Terminal: %s (ID %d)\n", iface.TerminalType, iface.TerminalID)
		}
		fmt.Fprintln(&b, thin)
		fmt.Fprintf(&b, "%4s | %-25s | %-20s | %-12s | %-12s\n", "Alt", "Format", "Sample Rate", "Sync", "Bandwidth")
		fmt.Fprintln(&b, thin)

		for _, alt := range iface.AlternateSettings {
			if alt.IsZeroBandwidth() {
				fmt.Fprintf(&b, "%4d | %-25s | %-20s | %-12s | %-12s\n",
					alt.AlternateSetting, "(zero bandwidth - disabled)", "", "", "0")
				continue
			}
			format, rate := "Unknown", "Unknown"
			if alt.Format != nil {
				format = alt.Format.String()
				rate = alt.Format.SampleRateString()
			}
			fmt.Fprintf(&b, "%4d | %-25s | %-20s | %-12s | %-12s\n",
				alt.AlternateSetting, format, rate, alt.SyncTypeString(), alt.RateString())
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "BANDWIDTH SUMMARY")
	fmt.Fprintln(&b, thin)
	if a.MaxPlaybackBandwidth > 0 {
		fmt.Fprintf(&b, "Max Playback Bandwidth: %s\n", rateString(a.MaxPlaybackBandwidth))
	}
	if a.MaxCaptureBandwidth > 0 {
		fmt.Fprintf(&b, "Max Capture Bandwidth:  %s\n", rateString(a.MaxCaptureBandwidth))
	}
	fmt.Fprintf(&b, "Max Total Bandwidth:    %s\n", a.TotalRateString())

	return b.String()
}
