package model

import "fmt"

// Audio data format tags (UAC 1.0 wFormatTag).
const (
	FormatUndefined = 0x0000
	FormatPCM       = 0x0001
	FormatPCM8      = 0x0002
	FormatIEEEFloat = 0x0003
	FormatALaw      = 0x0004
	FormatMuLaw     = 0x0005
)

// UAC 2.0 bmFormats bits (Type I).
const (
	UAC2FormatPCM       = 0x00000001
	UAC2FormatPCM8      = 0x00000002
	UAC2FormatIEEEFloat = 0x00000004
	UAC2FormatALaw      = 0x00000008
	UAC2FormatMuLaw     = 0x00000010
	UAC2FormatRawData   = 0x80000000
)

// FormatTypeDescriptor is the class-specific AS format type descriptor.
type FormatTypeDescriptor struct {
	FormatType    int
	NrChannels    int
	SubframeSize  int
	BitResolution int
	// SampleFrequencies holds discrete rates in order of appearance.
	SampleFrequencies []int
	// FreqMin/FreqMax describe a continuous range.
	FreqMin int
	FreqMax int
}

// SampleRateRange returns the (min, max) sample rate covered by the
// descriptor, from either the discrete list or the continuous range.
func (f *FormatTypeDescriptor) SampleRateRange() (int, int) {
	if len(f.SampleFrequencies) > 0 {
		min, max := f.SampleFrequencies[0], f.SampleFrequencies[0]
		for _, r := range f.SampleFrequencies[1:] {
			if r < min {
				min = r
			}
			if r > max {
				max = r
			}
		}
		return min, max
	}
	if f.FreqMin != 0 && f.FreqMax != 0 {
		return f.FreqMin, f.FreqMax
	}
	return 0, 0
}

// AudioStreamingInterface is the class-specific AS general descriptor for
// one (interface, alternate setting) pair, together with its format and
// endpoint once resolved.
type AudioStreamingInterface struct {
	InterfaceNumber  int
	AlternateSetting int
	TerminalLink     int
	Delay            int
	FormatTag        int // UAC 1.0

	// UAC 2.0 fields.
	Controls      int
	ClockSourceID int
	Formats       int // bmFormats bitmask
	NrChannels    int // channel count lives in AS General for UAC 2.0

	Format   *FormatTypeDescriptor
	Endpoint *EndpointDescriptor
}

// FormatName returns the human-readable audio data format. UAC 2.0 devices
// report a bmFormats bitmask, UAC 1.0 devices a single format tag.
func (s *AudioStreamingInterface) FormatName() string {
	if s.Formats != 0 {
		bits := []struct {
			mask int
			name string
		}{
			{UAC2FormatPCM, "PCM"},
			{UAC2FormatPCM8, "PCM8"},
			{UAC2FormatIEEEFloat, "IEEE Float"},
			{UAC2FormatALaw, "A-Law"},
			{UAC2FormatMuLaw, "μ-Law"},
			{UAC2FormatRawData, "Raw Data"},
		}
		var names []string
		for _, b := range bits {
			if s.Formats&b.mask != 0 {
				names = append(names, b.name)
			}
		}
		if len(names) == 0 {
			return fmt.Sprintf("Unknown (0x%08X)", s.Formats)
		}
		out := names[0]
		for _, n := range names[1:] {
			out += "/" + n
		}
		return out
	}
	switch s.FormatTag {
	case FormatUndefined:
		return "Undefined"
	case FormatPCM:
		return "PCM"
	case FormatPCM8:
		return "PCM8"
	case FormatIEEEFloat:
		return "IEEE Float"
	case FormatALaw:
		return "A-Law"
	case FormatMuLaw:
		return "μ-Law"
	}
	return fmt.Sprintf("Unknown (0x%04X)", s.FormatTag)
}

// AlternateSetting pairs one streaming interface alternate setting with its
// optional format and endpoint. This is the view the bandwidth analyzer
// consumes; the list on Configuration is ordered by (interface number,
// alternate setting).
type AlternateSetting struct {
	InterfaceNumber  int
	AlternateSetting int
	Streaming        *AudioStreamingInterface
	Format           *FormatTypeDescriptor
	Endpoint         *EndpointDescriptor
}

// IsZeroBandwidth reports whether the setting reserves no bandwidth
// (no endpoint, or a zero max packet size).
func (a *AlternateSetting) IsZeroBandwidth() bool {
	return a.Endpoint == nil || a.Endpoint.MaxPacketSize == 0
}
