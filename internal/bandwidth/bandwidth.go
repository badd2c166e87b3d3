// Package bandwidth analyzes the bandwidth reservations implied by a
// device's streaming alternate settings. It consumes the model's ordered
// alternate-setting list and produces per-interface summaries plus
// worst-case totals for the playback and capture directions.
package bandwidth

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vk/uacscan/internal/ctxlog"
	"github.com/vk/uacscan/internal/model"
)

// usbHighSpeedBytes is the raw USB 2.0 high-speed budget in bytes/second.
const usbHighSpeedBytes = 480_000_000 / 8

// FormatInfo is the decoded audio format of one alternate setting.
type FormatInfo struct {
	Channels    int
	BitDepth    int
	SampleRates []int
	RateMin     int
	RateMax     int
	FormatName  string
}

// SampleRateString renders the supported rates, e.g. "44.1, 48.0 kHz" or
// "8.0-96.0 kHz" for a continuous range.
func (f *FormatInfo) SampleRateString() string {
	if len(f.SampleRates) > 0 {
		rates := append([]int(nil), f.SampleRates...)
		sort.Ints(rates)
		parts := make([]string, len(rates))
		for i, r := range rates {
			parts[i] = fmt.Sprintf("%.1f", float64(r)/1000)
		}
		return strings.Join(parts, ", ") + " kHz"
	}
	if f.RateMin != 0 && f.RateMax != 0 {
		return fmt.Sprintf("%.1f-%.1f kHz", float64(f.RateMin)/1000, float64(f.RateMax)/1000)
	}
	return "Unknown"
}

// String renders the format as "2ch 16-bit PCM".
func (f *FormatInfo) String() string {
	return fmt.Sprintf("%dch %d-bit %s", f.Channels, f.BitDepth, f.FormatName)
}

// Info is the bandwidth analysis of one alternate setting.
type Info struct {
	InterfaceNumber  int
	AlternateSetting int
	Direction        string // "IN" (capture) or "OUT" (playback)

	Format *FormatInfo

	EndpointAddress int
	MaxPacketSize   int
	SyncType        model.SyncType
	UsageType       model.UsageType

	BytesPerFrame    int
	BytesPerSecond   int
	BandwidthPercent float64

	TerminalID   int
	TerminalType string
}

// IsZeroBandwidth reports whether the setting reserves no bandwidth.
func (i *Info) IsZeroBandwidth() bool { return i.MaxPacketSize == 0 }

// SyncTypeString returns the endpoint sync type as a display string.
func (i *Info) SyncTypeString() string {
	switch i.SyncType {
	case model.SyncAsync:
		return "Asynchronous"
	case model.SyncAdaptive:
		return "Adaptive"
	case model.SyncSync:
		return "Synchronous"
	case model.SyncNone:
		return "None"
	}
	return "Unknown"
}

// RateString renders the byte rate, e.g. "1.5 MB/s" or "0 (disabled)".
func (i *Info) RateString() string {
	return rateString(i.BytesPerSecond)
}

func rateString(bytesPerSecond int) string {
	if bytesPerSecond == 0 {
		return "0 (disabled)"
	}
	return humanize.Bytes(uint64(bytesPerSecond)) + "/s"
}

// InterfaceSummary groups every alternate setting of one streaming
// interface.
type InterfaceSummary struct {
	InterfaceNumber   int
	Direction         string
	TerminalID        int
	TerminalType      string
	AlternateSettings []*Info
}

// MaxBandwidthSetting returns the non-disabled setting with the highest
// byte rate, or nil when every setting is zero bandwidth.
func (s *InterfaceSummary) MaxBandwidthSetting() *Info {
	var best *Info
	for _, alt := range s.AlternateSettings {
		if alt.IsZeroBandwidth() {
			continue
		}
		if best == nil || alt.BytesPerSecond > best.BytesPerSecond {
			best = alt
		}
	}
	return best
}

// Analysis is the complete bandwidth analysis of a device.
type Analysis struct {
	Interfaces         []*InterfaceSummary
	PlaybackInterfaces []*InterfaceSummary
	CaptureInterfaces  []*InterfaceSummary

	MaxPlaybackBandwidth int
	MaxCaptureBandwidth  int
	MaxTotalBandwidth    int
}

// TotalRateString renders the worst-case total byte rate.
func (a *Analysis) TotalRateString() string {
	if a.MaxTotalBandwidth == 0 {
		return "0 B/s"
	}
	return humanize.Bytes(uint64(a.MaxTotalBandwidth)) + "/s"
}

// Analyze computes the bandwidth analysis for the device's active
// configuration.
func Analyze(ctx context.Context, dev *model.Device) *Analysis {
	analysis := &Analysis{}

	perInterface := map[int][]*Info{}
	var order []int
	for _, alt := range dev.AlternateSettings() {
		if alt.Streaming == nil {
			continue
		}
		if _, seen := perInterface[alt.InterfaceNumber]; !seen {
			order = append(order, alt.InterfaceNumber)
		}
		perInterface[alt.InterfaceNumber] = append(perInterface[alt.InterfaceNumber], analyzeSetting(dev, alt))
	}
	sort.Ints(order)

	for _, ifaceNum := range order {
		settings := perInterface[ifaceNum]
		sort.SliceStable(settings, func(i, j int) bool {
			return settings[i].AlternateSetting < settings[j].AlternateSetting
		})
		summary := &InterfaceSummary{
			InterfaceNumber:   ifaceNum,
			AlternateSettings: settings,
		}
		for _, s := range settings {
			if !s.IsZeroBandwidth() {
				summary.Direction = s.Direction
				summary.TerminalID = s.TerminalID
				summary.TerminalType = s.TerminalType
				break
			}
		}
		analysis.Interfaces = append(analysis.Interfaces, summary)

		switch summary.Direction {
		case "OUT":
			analysis.PlaybackInterfaces = append(analysis.PlaybackInterfaces, summary)
		case "IN":
			analysis.CaptureInterfaces = append(analysis.CaptureInterfaces, summary)
		}
	}

	for _, iface := range analysis.PlaybackInterfaces {
		if best := iface.MaxBandwidthSetting(); best != nil {
			analysis.MaxPlaybackBandwidth += best.BytesPerSecond
		}
	}
	for _, iface := range analysis.CaptureInterfaces {
		if best := iface.MaxBandwidthSetting(); best != nil {
			analysis.MaxCaptureBandwidth += best.BytesPerSecond
		}
	}
	analysis.MaxTotalBandwidth = analysis.MaxPlaybackBandwidth + analysis.MaxCaptureBandwidth

	ctxlog.FromContext(ctx).Debug("bandwidth analysis complete.",
		"interfaces", len(analysis.Interfaces),
		"max_total_bytes_per_second", analysis.MaxTotalBandwidth,
	)
	return analysis
}

func analyzeSetting(dev *model.Device, alt *model.AlternateSetting) *Info {
	info := &Info{
		InterfaceNumber:  alt.InterfaceNumber,
		AlternateSetting: alt.AlternateSetting,
	}

	st := alt.Streaming
	info.TerminalID = st.TerminalLink
	if ac := dev.AudioControl(); ac != nil {
		if typ, ok := ac.TerminalType(st.TerminalLink); ok {
			info.TerminalType = model.TerminalTypeName(typ)
		}
	}

	if alt.Format != nil {
		min, max := alt.Format.SampleRateRange()
		info.Format = &FormatInfo{
			Channels:    alt.Format.NrChannels,
			BitDepth:    alt.Format.BitResolution,
			SampleRates: append([]int(nil), alt.Format.SampleFrequencies...),
			RateMin:     min,
			RateMax:     max,
			FormatName:  st.FormatName(),
		}
	}

	if ep := alt.Endpoint; ep != nil {
		info.EndpointAddress = ep.Address
		info.Direction = ep.Direction
		info.MaxPacketSize = ep.MaxPacketSize
		info.SyncType = ep.SyncType
		info.UsageType = ep.UsageType

		// One packet per (micro)frame: 8000/s at high speed, 1000/s at
		// full speed. An interval above 1 indicates full-speed framing.
		info.BytesPerFrame = ep.MaxPacketSize
		if ep.Interval <= 1 {
			info.BytesPerSecond = ep.MaxPacketSize * 8000
		} else {
			info.BytesPerSecond = ep.MaxPacketSize * 1000
		}
		info.BandwidthPercent = float64(info.BytesPerSecond) / float64(usbHighSpeedBytes) * 100
	}

	return info
}
