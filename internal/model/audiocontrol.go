package model

// Feature unit master-control bits (UAC 1.0 bmaControls layout).
const (
	ControlMute      = 0x001
	ControlVolume    = 0x002
	ControlBass      = 0x004
	ControlMid       = 0x008
	ControlTreble    = 0x010
	ControlGraphicEQ = 0x020
	ControlAutoGain  = 0x040
	ControlDelay     = 0x080
	ControlBassBoost = 0x100
	ControlLoudness  = 0x200
)

// AudioControlHeader is the class-specific AC interface header.
type AudioControlHeader struct {
	BCDADC           int // packed audio-class release, e.g. 0x0200
	TotalLength      int
	InCollection     int   // UAC 1.0
	InterfaceNumbers []int // UAC 1.0 baInterfaceNr list
	Category         int   // UAC 2.0
	Controls         int   // UAC 2.0
}

// InputTerminal is a signal entry point (microphone, line-in, USB stream
// from the host, ...).
type InputTerminal struct {
	TerminalID    int
	TerminalType  int
	AssocTerminal int
	NrChannels    int
	ChannelConfig int
	ChannelNames  string
	Name          string
	ClockSourceID int // UAC 2.0
	Controls      int // UAC 2.0
}

// TypeName returns the human-readable terminal type.
func (t *InputTerminal) TypeName() string { return TerminalTypeName(t.TerminalType) }

// IsUSBStreaming reports whether the terminal is the USB streaming endpoint
// itself (terminal type 0x0101).
func (t *InputTerminal) IsUSBStreaming() bool { return t.TerminalType == 0x0101 }

// OutputTerminal is a signal exit point (speaker, headphones, USB stream to
// the host, ...).
type OutputTerminal struct {
	TerminalID    int
	TerminalType  int
	AssocTerminal int
	SourceID      int
	Name          string
	ClockSourceID int // UAC 2.0
	Controls      int // UAC 2.0
}

// TypeName returns the human-readable terminal type.
func (t *OutputTerminal) TypeName() string { return TerminalTypeName(t.TerminalType) }

// IsUSBStreaming reports whether the terminal is the USB streaming endpoint
// itself (terminal type 0x0101).
func (t *OutputTerminal) IsUSBStreaming() bool { return t.TerminalType == 0x0101 }

// FeatureUnit exposes per-channel controls (mute, volume, tone, ...) on a
// single signal path.
type FeatureUnit struct {
	UnitID     int
	SourceID   int
	NrChannels int
	// Controls holds one bitmap per index line, in order of appearance.
	// Index 0 is the master channel.
	Controls []int
	Name     string
}

// HasMute reports whether the master channel has a mute control.
func (u *FeatureUnit) HasMute() bool {
	return len(u.Controls) > 0 && u.Controls[0]&ControlMute != 0
}

// HasVolume reports whether the master channel has a volume control.
func (u *FeatureUnit) HasVolume() bool {
	return len(u.Controls) > 0 && u.Controls[0]&ControlVolume != 0
}

// ControlNames returns the names of the controls available on the master
// channel, in bit order.
func (u *FeatureUnit) ControlNames() []string {
	if len(u.Controls) == 0 {
		return nil
	}
	master := u.Controls[0]
	bits := []struct {
		mask int
		name string
	}{
		{ControlMute, "Mute"},
		{ControlVolume, "Volume"},
		{ControlBass, "Bass"},
		{ControlMid, "Mid"},
		{ControlTreble, "Treble"},
		{ControlGraphicEQ, "Graphic EQ"},
		{ControlAutoGain, "AGC"},
		{ControlDelay, "Delay"},
		{ControlBassBoost, "Bass Boost"},
		{ControlLoudness, "Loudness"},
	}
	var names []string
	for _, b := range bits {
		if master&b.mask != 0 {
			names = append(names, b.name)
		}
	}
	return names
}

// MixerUnit mixes several input pins into one output.
type MixerUnit struct {
	UnitID        int
	NrInPins      int
	SourceIDs     []int
	NrChannels    int
	ChannelConfig int
	ChannelNames  string
	Name          string
}

// SelectorUnit routes exactly one of its input pins to its output.
type SelectorUnit struct {
	UnitID    int
	NrInPins  int
	SourceIDs []int
	Name      string
}

// ProcessingUnit applies a named transformation (up/downmix, Dolby Prologic,
// stereo extender, ...) to its inputs.
type ProcessingUnit struct {
	UnitID        int
	ProcessType   int
	NrInPins      int
	SourceIDs     []int
	NrChannels    int
	ChannelConfig int
	ChannelNames  string
	Controls      int
	Name          string
}

// ExtensionUnit is a vendor-specific processing stage.
type ExtensionUnit struct {
	UnitID        int
	ExtensionCode int
	NrInPins      int
	SourceIDs     []int
	NrChannels    int
	ChannelConfig int
	ChannelNames  string
	Controls      int
	Name          string
}

// ClockSource is a UAC 2.0 sample clock origin.
type ClockSource struct {
	ClockID       int
	Attributes    int
	Controls      int
	AssocTerminal int
	Name          string
}

// ClockType returns the clock type encoded in the attributes bitmap.
func (c *ClockSource) ClockType() string {
	switch c.Attributes & 0x03 {
	case 0b00:
		return "External"
	case 0b01:
		return "Internal Fixed"
	case 0b10:
		return "Internal Variable"
	default:
		return "Internal Programmable"
	}
}

// IsSyncedToSOF reports whether the clock is locked to the USB start-of-frame.
func (c *ClockSource) IsSyncedToSOF() bool { return c.Attributes&0x04 != 0 }

// ClockSelector routes one of several clock inputs (UAC 2.0).
type ClockSelector struct {
	ClockID     int
	NrInPins    int
	ClockPinIDs []int
	Controls    int
	Name        string
}

// ClockMultiplier derives a clock from another clock entity (UAC 2.0).
type ClockMultiplier struct {
	ClockID       int
	ClockSourceID int
	Controls      int
	Name          string
}

// AudioControlInterface aggregates every entity declared by one AudioControl
// interface. Slices keep descriptor order.
type AudioControlInterface struct {
	Header           *AudioControlHeader
	InputTerminals   []*InputTerminal
	OutputTerminals  []*OutputTerminal
	FeatureUnits     []*FeatureUnit
	MixerUnits       []*MixerUnit
	SelectorUnits    []*SelectorUnit
	ProcessingUnits  []*ProcessingUnit
	ExtensionUnits   []*ExtensionUnit
	ClockSources     []*ClockSource
	ClockSelectors   []*ClockSelector
	ClockMultipliers []*ClockMultiplier
}

// HasEntity reports whether any terminal, unit or clock entity carries the
// given ID.
func (ac *AudioControlInterface) HasEntity(id int) bool {
	_, ok := ac.TerminalType(id)
	if ok {
		return true
	}
	for _, u := range ac.FeatureUnits {
		if u.UnitID == id {
			return true
		}
	}
	for _, u := range ac.MixerUnits {
		if u.UnitID == id {
			return true
		}
	}
	for _, u := range ac.SelectorUnits {
		if u.UnitID == id {
			return true
		}
	}
	for _, u := range ac.ProcessingUnits {
		if u.UnitID == id {
			return true
		}
	}
	for _, u := range ac.ExtensionUnits {
		if u.UnitID == id {
			return true
		}
	}
	for _, c := range ac.ClockSources {
		if c.ClockID == id {
			return true
		}
	}
	for _, c := range ac.ClockSelectors {
		if c.ClockID == id {
			return true
		}
	}
	for _, c := range ac.ClockMultipliers {
		if c.ClockID == id {
			return true
		}
	}
	return false
}

// TerminalType returns the terminal type code of the terminal with the given
// ID, searching input terminals first. The second return is false when no
// terminal carries the ID.
func (ac *AudioControlInterface) TerminalType(id int) (int, bool) {
	for _, t := range ac.InputTerminals {
		if t.TerminalID == id {
			return t.TerminalType, true
		}
	}
	for _, t := range ac.OutputTerminals {
		if t.TerminalID == id {
			return t.TerminalType, true
		}
	}
	return 0, false
}
